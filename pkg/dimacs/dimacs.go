// Package dimacs parses the simplified DIMACS-CNF format: comment lines
// starting with "c", a problem line "p cnf <variables> <clauses>" and
// clauses given as runs of nonzero integers terminated by 0. Clause runs
// may span lines or share a line.
package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/limaJavier/dpllsat/pkg/sat"
)

var (
	ErrNoHeader      = errors.New("no problem header")
	ErrBadHeader     = errors.New("malformed problem header")
	ErrBadClause     = errors.New("malformed clause")
	ErrVariableCount = errors.New("unexpected number of variables")
	ErrClauseCount   = errors.New("unexpected number of clauses")
)

// Parse reads a DIMACS-CNF formula. Every literal is checked against the
// declared variable count and the number of parsed clauses must match
// the problem line. Errors wrap the package's sentinel errors so callers
// can discriminate with errors.Is.
func Parse(reader io.Reader) (sat.SAT, error) {
	scanner := bufio.NewScanner(reader)

	variables, clauseCount, err := parseHeader(scanner)
	if err != nil {
		return sat.SAT{}, err
	}

	clauses, err := parseClauses(scanner, variables)
	if err != nil {
		return sat.SAT{}, err
	}
	if err := scanner.Err(); err != nil {
		return sat.SAT{}, err
	}

	if len(clauses) != clauseCount {
		return sat.SAT{}, fmt.Errorf("%w: header declares %v, found %v", ErrClauseCount, clauseCount, len(clauses))
	}

	return sat.SAT{Variables: variables, Clauses: clauses}, nil
}

// parseHeader consumes lines up to and including the problem line,
// skipping comments and blank lines. Any other content before the
// problem line is an error.
func parseHeader(scanner *bufio.Scanner) (uint64, int, error) {
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "c") {
			continue
		}

		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}

		if tokens[0] != "p" {
			break
		}
		if len(tokens) != 4 || tokens[1] != "cnf" {
			return 0, 0, fmt.Errorf("%w: %q", ErrBadHeader, line)
		}

		variables, err := strconv.ParseUint(tokens[2], 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrBadHeader, line)
		}
		clauses, err := strconv.ParseUint(tokens[3], 10, 31)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrBadHeader, line)
		}

		return variables, int(clauses), nil
	}
	return 0, 0, ErrNoHeader
}

// parseClauses reads the zero-terminated literal runs following the
// problem line. A trailing run without its terminator is dropped, which
// the clause-count check in Parse then reports.
func parseClauses(scanner *bufio.Scanner, variables uint64) ([][]int64, error) {
	clauses := make([][]int64, 0)
	clause := make([]int64, 0)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "c") {
			continue
		}

		for _, token := range strings.Fields(line) {
			literal, err := strconv.ParseInt(token, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadClause, token)
			}

			if literal == 0 {
				clauses = append(clauses, clause)
				clause = make([]int64, 0)
				continue
			}

			magnitude := literal
			if magnitude < 0 {
				magnitude = -magnitude
			}
			if uint64(magnitude) > variables {
				return nil, fmt.Errorf("%w: literal %v exceeds %v variables", ErrVariableCount, literal, variables)
			}

			clause = append(clause, literal)
		}
	}

	return clauses, nil
}
