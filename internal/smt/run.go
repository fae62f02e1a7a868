package smt

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/combopt/stsbench/internal/proc"
	"github.com/combopt/stsbench/pkg/model"
)

// Run encodes the model, hands the SMT-LIB2 script to z3 and decodes the
// reported model. z3 gets the remaining budget as its own soft limit; the
// subprocess backend enforces the hard one.
func Run(m *model.Model, z3Path string, log *zap.Logger) (model.Outcome, error) {
	deadline := time.Now().Add(m.Options().EffectiveTimeLimit())

	artifact := Encode(m)
	log.Debug("SMT artifact built", zap.Int("bytes", len(artifact.Script)))

	file, err := os.CreateTemp("", "stsbench-*.smt2")
	if err != nil {
		return model.Outcome{}, fmt.Errorf("cannot create SMT temp file: %w", err)
	}
	defer os.Remove(file.Name())
	if _, err := file.WriteString(artifact.Script); err != nil {
		file.Close()
		return model.Outcome{}, fmt.Errorf("cannot write SMT temp file: %w", err)
	}
	file.Close()

	remaining := time.Until(deadline)
	if remaining <= 0 {
		return model.Outcome{TimedOut: true}, nil
	}
	seconds := int(remaining.Seconds())
	if seconds < 1 {
		seconds = 1
	}

	result, err := proc.Invoke(proc.Invocation{
		Path: z3Path,
		Args: []string{"-smt2", fmt.Sprintf("-T:%d", seconds), file.Name()},
		// z3 exits 1 when the script ends after a timeout report.
		OKExitCodes: []int{1},
	}, remaining, log)
	if err != nil {
		return model.Outcome{}, err
	}
	if result.TimedOut {
		return model.Outcome{TimedOut: true}, nil
	}

	switch status(result.Stdout) {
	case "unsat":
		return model.Outcome{Optimal: true}, nil
	case "sat":
		sol, obj, err := Decode(artifact, result.Stdout)
		if err != nil {
			return model.Outcome{}, err
		}
		return model.Outcome{Sol: sol, Optimal: true, Obj: obj}, nil
	case "unknown", "timeout":
		return model.Outcome{TimedOut: true}, nil
	}

	return model.Outcome{}, &proc.CrashError{
		Path:     z3Path,
		ExitCode: result.ExitCode,
		Stderr:   result.Stderr,
		Err:      fmt.Errorf("unparsable solver output"),
	}
}

// status extracts the first verdict line from the solver output.
func status(output string) string {
	for _, line := range strings.Split(output, "\n") {
		switch strings.TrimSpace(line) {
		case "sat", "unsat", "unknown", "timeout":
			return strings.TrimSpace(line)
		}
	}
	return ""
}
