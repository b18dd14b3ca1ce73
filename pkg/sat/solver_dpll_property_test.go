package sat

import (
	"math/rand/v2"
	"testing"

	. "github.com/onsi/gomega"
)

// The DPLL verdict must agree with exhaustive enumeration on instances
// small enough to brute-force, and every reported solution must be a
// genuine total assignment.
func TestSolveAgreesWithBruteForce(t *testing.T) {
	g := NewWithT(t)
	solver := NewDPLLSolver()

	for range 300 {
		variables := uint64(rand.IntN(8) + 1)
		clauses := rand.IntN(24) + 1
		instance := GenerateSATInstance(variables, clauses)

		solution, err := solver.Solve(instance)
		g.Expect(err).NotTo(HaveOccurred())

		g.Expect(solution != nil).To(Equal(bruteForceSatisfiable(instance)), "clauses: %v", instance.Clauses)

		if solution != nil {
			g.Expect(solution).To(HaveLen(int(variables)))
			g.Expect(AssertSATSolution(instance, solution)).To(BeTrue(), "clauses: %v, solution: %v", instance.Clauses, solution)
		}
	}
}

func bruteForceSatisfiable(instance SAT) bool {
	for mask := uint64(0); mask < 1<<instance.Variables; mask++ {
		if satisfiedBy(instance, mask) {
			return true
		}
	}
	return false
}

func satisfiedBy(instance SAT, mask uint64) bool {
	for _, clause := range instance.Clauses {
		satisfied := false
		for _, literal := range clause {
			variable := abs(literal) - 1
			if (mask&(1<<variable) != 0) == (literal > 0) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}
