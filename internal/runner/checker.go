package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/combopt/stsbench/internal/proc"
	"github.com/combopt/stsbench/pkg/schedule"
)

// Verify re-reads every record under <outDir>/<APPROACH>/ and validates the
// stored schedules against the tournament invariants. It is the in-process
// counterpart of the external checker and reports the first violation found.
func Verify(outDir string, log *zap.Logger) error {
	for _, approach := range Approaches() {
		dir := filepath.Join(outDir, string(approach))
		entries, err := os.ReadDir(dir)
		if os.IsNotExist(err) {
			continue
		} else if err != nil {
			return err
		}

		for _, entry := range entries {
			name := entry.Name()
			if !strings.HasSuffix(name, ".json") {
				continue
			}
			n, err := strconv.Atoi(strings.TrimSuffix(name, ".json"))
			if err != nil {
				continue
			}

			path := filepath.Join(dir, name)
			res, err := Read(path)
			if err != nil {
				return err
			}
			if res.Sol == nil {
				continue
			}
			if err := schedule.Validate(n, res.Sol); err != nil {
				return fmt.Errorf("record %v: %w", path, err)
			}
			log.Debug("record verified", zap.String("path", path))
		}
	}
	return nil
}

// CheckExternal hands the result directory to the configured external
// checker and fails on any reported violation. Cross-checking with an
// independent oracle catches encoder/decoder bugs the solvers cannot.
func CheckExternal(checkerPath, outDir string, log *zap.Logger) error {
	result, err := proc.Invoke(proc.Invocation{
		Path: checkerPath,
		Args: []string{outDir},
	}, time.Minute, log)
	if err != nil {
		return err
	}
	if result.TimedOut {
		return fmt.Errorf("external checker timed out on %v", outDir)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("external checker rejected %v: %v", outDir, strings.TrimSpace(result.Stdout))
	}
	log.Info("external checker passed", zap.String("dir", outDir))
	return nil
}
