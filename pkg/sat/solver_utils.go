package sat

import (
	"encoding/json"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// ConfigPath points to an optional JSON file mapping solver names to
// executable paths. When the file is absent, or a solver is not listed
// in it, the solver name itself is used and resolved through the PATH.
var ConfigPath = "config.json"

// parseSolution extracts an assignment from the "v" lines of a solver's
// DIMACS output, dropping the terminating 0. The assignment may span
// several "v" lines for large instances.
func parseSolution(solverOutput string) SATSolution {
	values := lo.Map(
		lo.Reduce(
			lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool {
				return len(line) > 0 && line[0] == 'v'
			}),
			func(values []string, line string, _ int) []string {
				return append(values, strings.Fields(line[1:])...)
			},
			[]string{},
		),
		func(valueStr string, _ int) int64 {
			value, err := strconv.ParseInt(valueStr, 10, 64)
			if err != nil {
				log.Panicf("invalid literal in solver output: %v", err)
			}
			return value
		},
	)

	if len(values) == 0 {
		return nil
	}
	return values[:len(values)-1]
}

func executablePath(solver string) string {
	bytes, err := os.ReadFile(ConfigPath)
	if err != nil {
		return solver
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		log.Fatalf("cannot read %v file: %v", ConfigPath, err)
	}

	var config map[string]string
	mapstructure.Decode(inputJson, &config)

	path, ok := config[solver]
	if !ok {
		return solver
	}
	return path
}
