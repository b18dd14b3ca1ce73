package sat

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

type kissatSolver struct{}

// NewKissatSolver returns a solver backed by the kissat executable,
// located through the optional JSON config (see ConfigPath) or the PATH.
func NewKissatSolver() SATSolver {
	return &kissatSolver{}
}

func (solver *kissatSolver) Solve(instance SAT) (SATSolution, error) {
	dimacs := instance.ToDIMACS() // Transform the instance into DIMACS-CNF string format

	cmd := exec.Command(executablePath("kissat"), "-q", "--relaxed")
	cmd.Stdin = strings.NewReader(dimacs) // Feed dimacs into kissat's standard input

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	err := cmd.Run()
	if err != nil && cmd.ProcessState.ExitCode() != 10 && cmd.ProcessState.ExitCode() != 20 { // Exit-code of 10 stands for satisfiable and exit-code 20 stands for unsatisfiable
		return nil, fmt.Errorf("an error occurred during kissat execution: %v : %v", err.Error(), stdErr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		return nil, nil
	}

	return parseSolution(stdOut.String()), nil
}
