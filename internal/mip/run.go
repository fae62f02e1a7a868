package mip

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/combopt/stsbench/internal/proc"
	"github.com/combopt/stsbench/pkg/model"
)

// SolverNames lists the supported ILP backends, default first.
func SolverNames() []string {
	return []string{"cbc", "glpk"}
}

// Run encodes the model into an LP file and solves it with the named ILP
// backend. Both backends write a solution file that is parsed by name, so no
// numeric reverse index is needed.
func Run(m *model.Model, binPath, solverName string, log *zap.Logger) (model.Outcome, error) {
	deadline := time.Now().Add(m.Options().EffectiveTimeLimit())

	artifact := Encode(m)
	log.Debug("MIP artifact built", zap.Int("lpBytes", len(artifact.LP)))

	dir, err := os.MkdirTemp("", "stsbench-mip-*")
	if err != nil {
		return model.Outcome{}, fmt.Errorf("cannot create MIP temp directory: %w", err)
	}
	defer os.RemoveAll(dir)

	lpPath := filepath.Join(dir, "sts.lp")
	solPath := filepath.Join(dir, "sts.sol")
	if err := os.WriteFile(lpPath, []byte(artifact.LP), 0666); err != nil {
		return model.Outcome{}, fmt.Errorf("cannot write LP file: %w", err)
	}

	remaining := time.Until(deadline)
	if remaining <= 0 {
		return model.Outcome{TimedOut: true}, nil
	}
	seconds := int(remaining.Seconds())
	if seconds < 1 {
		seconds = 1
	}

	var inv proc.Invocation
	switch solverName {
	case "cbc":
		inv = proc.Invocation{
			Path: binPath,
			Args: []string{lpPath, "seconds", fmt.Sprintf("%d", seconds), "solve", "solu", solPath},
		}
	case "glpk":
		inv = proc.Invocation{
			Path: binPath,
			Args: []string{"--lp", lpPath, "--tmlim", fmt.Sprintf("%d", seconds), "-o", solPath},
		}
	default:
		return model.Outcome{}, fmt.Errorf("unknown MIP solver %q", solverName)
	}

	result, err := proc.Invoke(inv, remaining+5*time.Second, log)
	if err != nil {
		return model.Outcome{}, err
	}
	if result.TimedOut {
		return model.Outcome{TimedOut: true}, nil
	}

	text, err := os.ReadFile(solPath)
	if err != nil {
		return model.Outcome{}, &proc.CrashError{
			Path:     binPath,
			ExitCode: result.ExitCode,
			Stderr:   result.Stderr,
			Err:      fmt.Errorf("no solution file produced: %w", err),
		}
	}

	var status solverStatus
	var values map[string]float64
	if solverName == "cbc" {
		status, values = parseCbcSolution(string(text))
	} else {
		status, values = parseGlpkSolution(string(text))
	}

	switch status {
	case statusInfeasible:
		return model.Outcome{Optimal: true}, nil
	case statusUndefined:
		// The limit expired before any incumbent: a timeout, not a crash.
		return model.Outcome{TimedOut: true}, nil
	case statusOptimal, statusStopped:
		sol, obj, err := Decode(artifact, values)
		if err != nil {
			return model.Outcome{}, err
		}
		return model.Outcome{
			Sol:      sol,
			Optimal:  status == statusOptimal,
			Obj:      obj,
			TimedOut: status == statusStopped,
		}, nil
	}

	return model.Outcome{}, &proc.CrashError{
		Path:     binPath,
		ExitCode: result.ExitCode,
		Stderr:   result.Stderr,
		Err:      fmt.Errorf("unparsable solver status"),
	}
}
