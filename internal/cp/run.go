package cp

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/combopt/stsbench/internal/proc"
	"github.com/combopt/stsbench/pkg/model"
)

// SolverNames lists the supported MiniZinc backends, default first.
func SolverNames() []string {
	return []string{"gecode", "chuffed"}
}

// Run encodes the model into a MiniZinc instance and solves it with the
// named backend. MiniZinc gets the remaining budget through --time-limit so
// it can report its incumbent; the subprocess backend still enforces the
// hard ceiling.
func Run(m *model.Model, minizincPath, solverName string, log *zap.Logger) (model.Outcome, error) {
	deadline := time.Now().Add(m.Options().EffectiveTimeLimit())

	artifact := Encode(m)
	log.Debug("CP artifact built", zap.Int("dataBytes", len(artifact.Data)))

	dir, err := os.MkdirTemp("", "stsbench-cp-*")
	if err != nil {
		return model.Outcome{}, fmt.Errorf("cannot create CP temp directory: %w", err)
	}
	defer os.RemoveAll(dir)

	modelPath := filepath.Join(dir, "sts.mzn")
	dataPath := filepath.Join(dir, "sts.dzn")
	if err := os.WriteFile(modelPath, []byte(artifact.ModelText), 0666); err != nil {
		return model.Outcome{}, fmt.Errorf("cannot write CP model file: %w", err)
	}
	if err := os.WriteFile(dataPath, []byte(artifact.Data), 0666); err != nil {
		return model.Outcome{}, fmt.Errorf("cannot write CP data file: %w", err)
	}

	remaining := time.Until(deadline)
	if remaining <= 0 {
		return model.Outcome{TimedOut: true}, nil
	}

	result, err := proc.Invoke(proc.Invocation{
		Path: minizincPath,
		Args: []string{
			"--solver", solverName,
			"--time-limit", fmt.Sprintf("%d", remaining.Milliseconds()),
			modelPath, dataPath,
		},
	}, remaining+5*time.Second, log)
	if err != nil {
		return model.Outcome{}, err
	}
	if result.TimedOut {
		return model.Outcome{TimedOut: true}, nil
	}

	if strings.Contains(result.Stdout, unsatMarker) {
		return model.Outcome{Optimal: true}, nil
	}

	sol, obj, err := Decode(artifact, result.Stdout)
	if err != nil {
		return model.Outcome{}, err
	}
	complete := strings.Contains(result.Stdout, completeMarker)
	if sol == nil && !complete {
		return model.Outcome{TimedOut: true}, nil
	}

	return model.Outcome{
		Sol:      sol,
		Optimal:  complete,
		Obj:      obj,
		TimedOut: !complete,
	}, nil
}
