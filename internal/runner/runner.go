// Package runner glues the pipeline together: build the constraint model,
// realize it with the selected paradigm and backend, validate the decoded
// schedule and normalize everything into the canonical result record.
package runner

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/combopt/stsbench/internal/config"
	"github.com/combopt/stsbench/internal/cp"
	"github.com/combopt/stsbench/internal/mip"
	"github.com/combopt/stsbench/internal/sat"
	"github.com/combopt/stsbench/internal/satenc"
	"github.com/combopt/stsbench/internal/smt"
	"github.com/combopt/stsbench/pkg/model"
	"github.com/combopt/stsbench/pkg/schedule"
)

// Approach selects the modeling paradigm.
type Approach string

const (
	CP  Approach = "CP"
	SAT Approach = "SAT"
	SMT Approach = "SMT"
	MIP Approach = "MIP"
)

// Approaches lists all paradigms in canonical run order.
func Approaches() []Approach {
	return []Approach{CP, SAT, SMT, MIP}
}

// Runner executes (approach, n) runs. Each run is a pure function of the
// instance, the options and the configured backends; nothing is shared
// across runs.
type Runner struct {
	Cfg *config.Config
	Log *zap.Logger

	// Backend names per paradigm; empty picks the default.
	SATSolver string
	CPSolver  string
	MIPSolver string
}

// Run executes one instance under one paradigm and returns the normalized
// record. The reported time covers encoding too; on timeout it is exactly
// the limit in seconds. Crash, inconsistency and validation errors surface
// to the caller and no record should be written from them.
func (r *Runner) Run(approach Approach, n int, opts model.Options) (Result, error) {
	start := time.Now()

	m, err := model.Build(n, opts)
	if err != nil {
		return Result{}, err
	}

	out, err := r.realize(approach, m)
	if err != nil {
		return Result{}, fmt.Errorf("%v run on n=%v failed: %w", approach, n, err)
	}

	if out.Sol != nil {
		// A violation here is an encoder/decoder bug, never a solver result.
		if err := schedule.Validate(n, out.Sol); err != nil {
			return Result{}, fmt.Errorf("%v run on n=%v produced an invalid schedule: %w", approach, n, err)
		}
		if opts.Fairness {
			imbalance := schedule.Imbalance(n, out.Sol)
			if out.Obj != nil && *out.Obj != imbalance {
				r.Log.Warn("reported objective disagrees with the decoded schedule",
					zap.String("approach", string(approach)),
					zap.Int("reported", *out.Obj),
					zap.Int("recomputed", imbalance),
				)
			}
			out.Obj = &imbalance
		}
	}

	limit := opts.EffectiveTimeLimit().Seconds()
	res := Result{
		Optimal: out.Optimal && !out.TimedOut,
		Obj:     out.Obj,
		Sol:     out.Sol,
	}
	if out.TimedOut {
		res.Time = limit
	} else {
		res.Time = min(time.Since(start).Seconds(), limit)
	}
	return res, nil
}

func (r *Runner) realize(approach Approach, m *model.Model) (model.Outcome, error) {
	switch approach {
	case SAT:
		name := r.SATSolver
		if name == "" {
			name = sat.SolverNames()[0]
		}
		solver, err := sat.ByName(name, r.Cfg, r.Log)
		if err != nil {
			return model.Outcome{}, err
		}
		return satenc.Run(m, solver, r.Log)
	case SMT:
		return smt.Run(m, r.Cfg.Z3, r.Log)
	case CP:
		name := r.CPSolver
		if name == "" {
			name = cp.SolverNames()[0]
		}
		return cp.Run(m, r.Cfg.Minizinc, name, r.Log)
	case MIP:
		name := r.MIPSolver
		if name == "" {
			name = mip.SolverNames()[0]
		}
		bin := r.Cfg.Cbc
		if name == "glpk" {
			bin = r.Cfg.Glpsol
		}
		return mip.Run(m, bin, name, r.Log)
	}
	return model.Outcome{}, fmt.Errorf("unknown approach %q", approach)
}
