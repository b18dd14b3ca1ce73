package sat

import "math/rand/v2"

// GenerateSATInstance builds a random instance with the given number of
// variables and clauses. Each clause holds up to three distinct
// variables with random polarity, the usual shape for exercising a
// solver around the satisfiability threshold.
func GenerateSATInstance(variables uint64, clauses int) SAT {
	satInstance := SAT{
		Variables: variables,
		Clauses:   make([][]int64, clauses),
	}

	width := min(3, int(variables))

	for i := range clauses {
		chosen := rand.Perm(int(variables))[:width]

		satInstance.Clauses[i] = make([]int64, 0, width)
		for _, variable := range chosen {
			var sign int64 = 1
			if rand.Float32() < 0.5 {
				sign = -1
			}
			satInstance.Clauses[i] = append(satInstance.Clauses[i], sign*int64(variable+1))
		}
	}

	return satInstance
}

// AssertSATSolution reports whether a solution is consistent (no
// duplicate nor contradictory literals) and satisfies every clause of
// the instance.
func AssertSATSolution(satInstance SAT, satSolution SATSolution) bool {
	// Make sure there are no duplicates nor contradictions
	literals := make(map[int64]bool)
	for _, literal := range satSolution {
		if literals[literal] || literals[-literal] {
			return false
		}
		literals[literal] = true
	}

	// Check that all clauses are satisfied
	for _, clause := range satInstance.Clauses {
		satisfied := false
		for _, literal := range clause {
			if literals[literal] {
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
