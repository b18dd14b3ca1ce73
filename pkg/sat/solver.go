package sat

// SATSolver decides satisfiability of a CNF formula. Solve returns a
// total assignment if the instance is satisfiable, else it returns nil;
// both are valid outputs where the error shall be nil. A non-nil error
// reports a malformed instance or a backend failure, never
// unsatisfiability.
type SATSolver interface {
	Solve(SAT) (SATSolution, error)
}
