package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/limaJavier/dpllsat/pkg/dimacs"
	"github.com/limaJavier/dpllsat/pkg/sat"

	"github.com/samber/lo"
)

var (
	validSolvers = []string{"dpll", "kissat"}
	solvers      = map[string]func() sat.SATSolver{
		"dpll":   sat.NewDPLLSolver,
		"kissat": sat.NewKissatSolver,
	}
)

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the DIMACS-CNF input file; if empty, the formula is read from the Standard Input")
	solverPtr := flag.String("solver", "dpll", "SAT-Solver to use. Allowed values are: \"dpll\" and \"kissat\", where \"dpll\" is the default")
	flag.Parse()
	filePath := *filePathPtr
	solverStr := strings.ToLower(*solverPtr)

	// Validate arguments. Exit-codes 0 and 1 are the sat/unsat verdicts,
	// so usage and runtime failures use 2 and 3.
	if !slices.Contains(validSolvers, solverStr) {
		fmt.Fprintf(os.Stderr, "%v is not a valid solver\n", solverStr)
		os.Exit(2)
	}

	// Extract the formula
	var input io.Reader = os.Stdin
	if filePath != "" {
		file, err := os.Open(filePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot open input file: %v\n", err)
			os.Exit(2)
		}
		defer file.Close()
		input = file
	}

	instance, err := dimacs.Parse(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot parse formula: %v\n", err)
		os.Exit(3)
	}

	// Solve
	solver := solvers[solverStr]()
	solution, err := solver.Solve(instance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "an error occurred during solving: %v\n", err)
		os.Exit(3)
	}

	if solution == nil {
		fmt.Println("unsat")
		os.Exit(1)
	}

	fmt.Println("sat")
	fmt.Println(formatSolution(solution))
}

// formatSolution renders the assignment as space-separated signed
// literals in increasing variable order, e.g. "1 -2 3".
func formatSolution(solution sat.SATSolution) string {
	return strings.Join(
		lo.Map(solution, func(literal int64, _ int) string { return strconv.FormatInt(literal, 10) }),
		" ",
	)
}
