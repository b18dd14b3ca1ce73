package sat

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

type dpllSolver struct{}

// NewDPLLSolver returns an in-process solver implementing the classical
// Davis-Putnam-Logemann-Loveland procedure: unit propagation plus
// recursive two-way branching on the most frequent variable. The search
// is exponential in the worst case but complete, so a nil solution is a
// definitive unsatisfiability verdict.
func NewDPLLSolver() SATSolver {
	return &dpllSolver{}
}

func (solver *dpllSolver) Solve(instance SAT) (SATSolution, error) {
	if err := validate(instance); err != nil {
		return nil, err
	}

	// Variables start out true so that don't-care variables, and
	// variables eliminated by propagation before ever being branched on,
	// keep a fixed polarity in the final solution.
	assignment := make([]bool, instance.Variables)
	for i := range assignment {
		assignment[i] = true
	}

	if !dpll(instance.Clauses, assignment) {
		return nil, nil
	}

	solution := make(SATSolution, 0, instance.Variables)
	for i, value := range assignment {
		literal := int64(i + 1)
		if !value {
			literal = -literal
		}
		solution = append(solution, literal)
	}
	return solution, nil
}

func validate(instance SAT) error {
	for _, clause := range instance.Clauses {
		for _, literal := range clause {
			if literal == 0 {
				return fmt.Errorf("literal 0 is reserved as the clause terminator")
			} else if uint64(abs(literal)) > instance.Variables {
				return fmt.Errorf("literal %v references a variable outside [1, %v]", literal, instance.Variables)
			}
		}
	}
	return nil
}

// dpll runs one step of the search on a private copy of the clauses, so
// sibling branches never observe each other's simplifications. An empty
// clause set is satisfied; a remaining empty clause is a contradiction
// and fails the branch.
func dpll(clauses [][]int64, assignment []bool) bool {
	clauses = unitPropagate(copyClauses(clauses), assignment)

	if len(clauses) == 0 {
		return true
	}
	for _, clause := range clauses {
		if len(clause) == 0 {
			return false
		}
	}

	variable := dominantVariable(clauses, len(assignment))

	// Branch by pushing a unit clause with the candidate polarity: the
	// recursive call's propagation performs the actual commitment. The
	// true branch short-circuits the false one on success.
	if dpll(append(clauses, []int64{variable}), assignment) {
		return true
	}
	return dpll(append(clauses, []int64{-variable}), assignment)
}

// unitPropagate resolves unit clauses to fixpoint. Each unit clause
// forces its single literal true: the forced value is recorded in the
// assignment and the clauses are simplified with it, which may expose
// further unit clauses or an empty clause. Terminates because every
// round strictly shrinks the clause or literal count.
func unitPropagate(clauses [][]int64, assignment []bool) [][]int64 {
	for {
		unit, found := lo.Find(clauses, func(clause []int64) bool { return len(clause) == 1 })
		if !found {
			return clauses
		}
		literal := unit[0]
		assignment[abs(literal)-1] = literal > 0
		clauses = simplify(clauses, literal)
	}
}

// simplify applies a literal known to be true: every clause containing
// the literal is satisfied and removed, and every occurrence of its
// negation is stripped from the remaining clauses. A clause emptied by
// stripping is kept, since its presence is the unsatisfiability signal
// the search relies on.
//
// This is the hottest part of the solver, so clauses and literals are
// removed in-place with swap-removal instead of rebuilding slices.
func simplify(clauses [][]int64, literal int64) [][]int64 {
	negated := -literal

	i := 0
	for i < len(clauses) {
		clause := clauses[i]

		if slices.Contains(clause, literal) {
			clauses[i] = clauses[len(clauses)-1]
			clauses = clauses[:len(clauses)-1]
			continue
		}

		j := 0
		for j < len(clause) {
			if clause[j] == negated {
				clause[j] = clause[len(clause)-1]
				clause = clause[:len(clause)-1]
				continue
			}
			j++
		}
		clauses[i] = clause
		i++
	}
	return clauses
}

// dominantVariable returns the variable occurring most often across both
// polarities; ties resolve to the lowest variable index. Branching on
// the most referenced variable tends to shrink the formula fastest.
// Only called on a non-empty clause set with no empty clause, so at
// least one literal exists.
func dominantVariable(clauses [][]int64, variables int) int64 {
	frequencies := make([]int, variables)
	for _, clause := range clauses {
		for _, literal := range clause {
			frequencies[abs(literal)-1]++
		}
	}

	dominant := 0
	for i, frequency := range frequencies {
		if frequency > frequencies[dominant] {
			dominant = i
		}
	}
	return int64(dominant + 1)
}

func copyClauses(clauses [][]int64) [][]int64 {
	duplicate := make([][]int64, len(clauses))
	for i, clause := range clauses {
		duplicate[i] = slices.Clone(clause)
	}
	return duplicate
}

func abs(literal int64) int64 {
	if literal < 0 {
		return -literal
	}
	return literal
}
