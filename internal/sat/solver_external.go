package sat

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/combopt/stsbench/internal/proc"
)

// dimacsSolver drives an external DIMACS-speaking solver through the
// subprocess backend. All the supported solvers follow the SAT competition
// convention: exit code 10 for satisfiable, 20 for unsatisfiable, value
// lines prefixed with "v".
type dimacsSolver struct {
	path    string
	args    []string
	viaFile bool // solver reads a file argument instead of stdin
	log     *zap.Logger
}

// NewKissatSolver invokes kissat in quiet relaxed mode over stdin.
func NewKissatSolver(path string, log *zap.Logger) Solver {
	return &dimacsSolver{path: path, args: []string{"-q", "--relaxed"}, log: log}
}

// NewCadicalSolver invokes cadical in quiet mode over stdin.
func NewCadicalSolver(path string, log *zap.Logger) Solver {
	return &dimacsSolver{path: path, args: []string{"-q"}, log: log}
}

// NewCryptominisatSolver invokes cryptominisat with verbosity off.
func NewCryptominisatSolver(path string, log *zap.Logger) Solver {
	return &dimacsSolver{path: path, args: []string{"--verb", "0"}, log: log}
}

// NewGlucoseSolver invokes glucose, which only accepts a file argument, with
// model printing enabled.
func NewGlucoseSolver(path string, log *zap.Logger) Solver {
	return &dimacsSolver{path: path, args: []string{"-model", "-verb=0"}, viaFile: true, log: log}
}

func (s *dimacsSolver) Solve(cnf CNF, timeLimit time.Duration) (Solution, error) {
	dimacs := cnf.ToDIMACS()

	inv := proc.Invocation{
		Path: s.path,
		Args: s.args,
		// Exit code 10 stands for satisfiable, 20 for unsatisfiable.
		OKExitCodes: []int{10, 20},
	}
	if s.viaFile {
		file, err := os.CreateTemp("", "stsbench-*.cnf")
		if err != nil {
			return nil, fmt.Errorf("cannot create CNF temp file: %w", err)
		}
		defer os.Remove(file.Name())
		if _, err := file.WriteString(dimacs); err != nil {
			file.Close()
			return nil, fmt.Errorf("cannot write CNF temp file: %w", err)
		}
		file.Close()
		inv.Args = append(append([]string(nil), s.args...), file.Name())
	} else {
		inv.Stdin = dimacs
	}

	result, err := proc.Invoke(inv, timeLimit, s.log)
	if err != nil {
		return nil, err
	}
	if result.TimedOut {
		return nil, proc.ErrTimeout
	}
	if result.ExitCode == 20 {
		return nil, nil
	}
	return ParseSolution(result.Stdout), nil
}
