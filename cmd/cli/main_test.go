package main

import (
	"testing"

	"github.com/limaJavier/dpllsat/pkg/sat"

	"github.com/stretchr/testify/assert"
)

func TestFormatSolution(t *testing.T) {
	assert.Equal(t, "", formatSolution(sat.SATSolution{}))
	assert.Equal(t, "1", formatSolution(sat.SATSolution{1}))
	assert.Equal(t, "1 -2 3 -4", formatSolution(sat.SATSolution{1, -2, 3, -4}))
}
