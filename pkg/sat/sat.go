package sat

import (
	"fmt"
	"strings"
)

// SATSolution is a total assignment for a SAT instance: for every
// variable i in [1, Variables], in increasing order, it holds i if the
// variable is true and -i if it is false. A nil solution means the
// instance is unsatisfiable; a zero-variable satisfiable instance yields
// the empty (non-nil) solution.
type SATSolution []int64

// SAT is a propositional formula in conjunctive normal form: the
// AND-product of its clauses, where each clause is the OR-sum of the
// contained literals. A literal is a nonzero signed integer whose
// absolute value is a 1-based variable index in [1, Variables]; 0 is
// reserved as the clause terminator of the DIMACS format and never
// appears in a clause.
type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

// ToDIMACS serializes the instance into the DIMACS-CNF string format.
func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}
