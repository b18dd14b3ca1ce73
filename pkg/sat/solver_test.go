package sat

import (
	"log"
	"math/rand/v2"
	"os/exec"
	"testing"
)

func TestDPLLRandomInstances(t *testing.T) {
	solver := NewDPLLSolver()
	unsatisfiableCount := 0

	for range 50 {
		variables := uint64(rand.IntN(20) + 1)
		clauses := rand.IntN(80) + 1
		instance := GenerateSATInstance(variables, clauses)

		solution, err := solver.Solve(instance)
		if err != nil {
			t.Errorf("an error occurred while solving a SAT instance: %v", err)
		}

		if solution == nil {
			unsatisfiableCount++
			continue
		}

		if !AssertSATSolution(instance, solution) {
			t.Error("Wrong answer")
		}
	}

	log.Printf("Unsatisfiable instances: %v", unsatisfiableCount)
}

func TestKissatAgreesWithDPLL(t *testing.T) {
	if _, err := exec.LookPath("kissat"); err != nil {
		t.Skipf("kissat executable not found: %v", err)
	}

	dpllSolver := NewDPLLSolver()
	kissatSolver := NewKissatSolver()

	for range 10 {
		variables := uint64(rand.IntN(15) + 1)
		clauses := rand.IntN(60) + 1
		instance := GenerateSATInstance(variables, clauses)

		dpllSolution, err := dpllSolver.Solve(instance)
		if err != nil {
			t.Fatalf("an error occurred during dpll execution: %v", err)
		}
		kissatSolution, err := kissatSolver.Solve(instance)
		if err != nil {
			t.Fatalf("an error occurred during kissat execution: %v", err)
		}

		if (dpllSolution == nil) != (kissatSolution == nil) {
			t.Errorf("verdicts disagree on %v", instance.Clauses)
		}

		if kissatSolution != nil && !AssertSATSolution(instance, kissatSolution) {
			t.Error("Wrong answer")
		}
	}
}
