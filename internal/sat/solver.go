package sat

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/combopt/stsbench/internal/config"
)

// Solver is the SAT backend contract. Solve returns a complete assignment if
// the instance is satisfiable, nil if it proved unsatisfiability (both with
// a nil error), or proc.ErrTimeout when the limit expired first.
type Solver interface {
	Solve(cnf CNF, timeLimit time.Duration) (Solution, error)
}

// ByName builds the backend selected on the command line. Subprocess
// backends resolve their binary through cfg; the gophersat and gini
// backends run in-process and need no external binary.
func ByName(name string, cfg *config.Config, log *zap.Logger) (Solver, error) {
	switch name {
	case "gophersat":
		return NewGophersatSolver(), nil
	case "gini":
		return NewGiniSolver(), nil
	case "kissat":
		return NewKissatSolver(cfg.Kissat, log), nil
	case "cadical":
		return NewCadicalSolver(cfg.Cadical, log), nil
	case "cryptominisat":
		return NewCryptominisatSolver(cfg.Cryptominisat, log), nil
	case "glucose":
		return NewGlucoseSolver(cfg.Glucose, log), nil
	}
	return nil, fmt.Errorf("unknown SAT solver %q", name)
}

// SolverNames lists the valid backend names, default first.
func SolverNames() []string {
	return []string{"gophersat", "gini", "kissat", "cadical", "cryptominisat", "glucose"}
}
