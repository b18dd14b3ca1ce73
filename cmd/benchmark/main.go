// Benchmarks the registered solvers over a grid of random instances and
// writes the measurements to benchmark_results.csv.
package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"math"
	"os"
	"os/exec"
	"time"

	"github.com/limaJavier/dpllsat/pkg/sat"
)

const (
	runsPerSize = 5
	timeLimit   = 30 * time.Second
)

type ResultType int

const (
	solved ResultType = iota
	unsatisfiable
	timeout
)

var resultTypes = map[ResultType]string{
	solved:        "solved",
	unsatisfiable: "unsatisfiable",
	timeout:       "timeout",
}

type InstanceMetadata struct {
	Variables uint64
	Clauses   int
}

type BenchmarkResult struct {
	Solver   string
	Instance InstanceMetadata
	Duration int64 // milliseconds
	Result   ResultType
}

func main() {
	instances := getInstances()
	solvers := getSolvers()
	results := make([]BenchmarkResult, 0, len(instances)*len(solvers)*runsPerSize)

	for _, metadata := range instances {
		for run := range runsPerSize {
			instance := sat.GenerateSATInstance(metadata.Variables, metadata.Clauses)

			for _, name := range solverOrder {
				constructor, ok := solvers[name]
				if !ok {
					continue
				}
				fmt.Printf("Benchmarking %v variables, %v clauses (run %v) with solver \"%v\"\n", metadata.Variables, metadata.Clauses, run, name)

				duration, result := measure(constructor(), instance)

				results = append(results, BenchmarkResult{
					Solver:   name,
					Instance: metadata,
					Duration: duration,
					Result:   result,
				})
			}
		}
	}

	toCsv(results)
}

var solverOrder = []string{"dpll", "kissat"}

func getSolvers() map[string]func() sat.SATSolver {
	solvers := map[string]func() sat.SATSolver{
		"dpll": sat.NewDPLLSolver,
	}

	// The kissat backend needs the external binary.
	if _, err := exec.LookPath("kissat"); err == nil {
		solvers["kissat"] = sat.NewKissatSolver
	} else {
		log.Printf("kissat executable not found, skipping: %v", err)
	}

	return solvers
}

func getInstances() []InstanceMetadata {
	sizes := []uint64{20, 30, 40, 50}
	ratios := []float64{3.0, 4.26, 5.0}

	instances := make([]InstanceMetadata, 0, len(sizes)*len(ratios))
	for _, variables := range sizes {
		for _, ratio := range ratios {
			instances = append(instances, InstanceMetadata{
				Variables: variables,
				Clauses:   clauseCount(variables, ratio),
			})
		}
	}
	return instances
}

// clauseCount scales the clause total with the clause-to-variable ratio;
// random 3-SAT is hardest near ratio 4.26.
func clauseCount(variables uint64, ratio float64) int {
	return int(math.Round(ratio * float64(variables)))
}

func measure(solver sat.SATSolver, instance sat.SAT) (duration int64, result ResultType) {
	type answer struct {
		solution sat.SATSolution
		err      error
	}
	done := make(chan answer, 1)

	tStart := time.Now()
	go func() {
		solution, err := solver.Solve(instance)
		done <- answer{solution, err}
	}()

	select {
	case a := <-done:
		duration = time.Since(tStart).Milliseconds()
		if a.err != nil {
			log.Fatalf("an error occurred during solving: %v", a.err)
		}
		if a.solution == nil {
			result = unsatisfiable
		} else {
			if !sat.AssertSATSolution(instance, a.solution) {
				log.Fatalf("wrong answer on %v variables, %v clauses", instance.Variables, len(instance.Clauses))
			}
			result = solved
		}
	case <-time.After(timeLimit):
		duration = timeLimit.Milliseconds()
		result = timeout
	}

	return duration, result
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create("benchmark_results.csv")
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Solver", "Variables", "Clauses", "Duration(ms)", "Result"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			result.Solver,
			fmt.Sprintf("%d", result.Instance.Variables),
			fmt.Sprintf("%d", result.Instance.Clauses),
			fmt.Sprintf("%d", result.Duration),
			resultTypes[result.Result],
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}
