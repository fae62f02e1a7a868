package sat

import (
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/combopt/stsbench/internal/proc"
)

// giniSolver is the second in-process backend. Gini's GoSolve handle gives a
// real deadline on the search instead of an external kill.
type giniSolver struct{}

func NewGiniSolver() Solver {
	return &giniSolver{}
}

func (s *giniSolver) Solve(cnf CNF, timeLimit time.Duration) (Solution, error) {
	engine := gini.New()
	for _, clause := range cnf.Clauses {
		for _, literal := range clause {
			engine.Add(z.Dimacs2Lit(literal))
		}
		engine.Add(z.LitNull)
	}

	switch engine.GoSolve().Try(timeLimit) {
	case 1:
		solution := make(Solution, 0, cnf.Variables)
		for i := 0; i < cnf.Variables; i++ {
			literal := i + 1
			if !engine.Value(z.Dimacs2Lit(literal)) {
				literal = -literal
			}
			solution = append(solution, literal)
		}
		return solution, nil
	case -1:
		return nil, nil
	default:
		return nil, proc.ErrTimeout
	}
}
