package sat

import (
	"time"

	gophersat "github.com/crillab/gophersat/solver"

	"github.com/combopt/stsbench/internal/proc"
)

// gophersatSolver runs gophersat in-process, so the SAT pipeline works with
// no external binaries installed. The time limit is enforced from outside
// the search goroutine; on expiry the stop channel is closed so the search
// winds down instead of pegging a core for the rest of a benchmark sweep.
type gophersatSolver struct{}

func NewGophersatSolver() Solver {
	return &gophersatSolver{}
}

func (s *gophersatSolver) Solve(cnf CNF, timeLimit time.Duration) (Solution, error) {
	engine := gophersat.New(gophersat.ParseSlice(cnf.Clauses))

	// Optimal on a plain CNF stops at the first model (cost 0) or an unsat
	// proof, and honors the stop channel between search restarts.
	stop := make(chan struct{})
	done := make(chan gophersat.Result, 1)
	go func() {
		done <- engine.Optimal(nil, stop)
	}()

	select {
	case res := <-done:
		switch res.Status {
		case gophersat.Sat:
			model := engine.Model()
			solution := make(Solution, 0, cnf.Variables)
			for i := 0; i < cnf.Variables; i++ {
				literal := i + 1
				if i >= len(model) || !model[i] {
					literal = -literal
				}
				solution = append(solution, literal)
			}
			return solution, nil
		case gophersat.Unsat:
			return nil, nil
		default:
			return nil, proc.ErrTimeout
		}
	case <-time.After(timeLimit):
		close(stop)
		return nil, proc.ErrTimeout
	}
}
