package satenc

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/combopt/stsbench/internal/proc"
	"github.com/combopt/stsbench/internal/sat"
	"github.com/combopt/stsbench/pkg/model"
)

// Run realizes the model with the given SAT backend. Decision variants do a
// single solve; fairness variants binary-search the smallest feasible
// imbalance bound, keeping the best incumbent when the limit cuts the search
// short.
func Run(m *model.Model, solver sat.Solver, log *zap.Logger) (model.Outcome, error) {
	deadline := time.Now().Add(m.Options().EffectiveTimeLimit())

	if !m.Options().Fairness {
		return runDecision(m, solver, deadline, log)
	}
	return runFairness(m, solver, deadline, log)
}

func runDecision(m *model.Model, solver sat.Solver, deadline time.Time, log *zap.Logger) (model.Outcome, error) {
	enc := Encode(m)
	log.Debug("SAT instance built",
		zap.Int("variables", enc.CNF.Variables),
		zap.Int("clauses", len(enc.CNF.Clauses)),
	)

	solution, err := solver.Solve(enc.CNF, time.Until(deadline))
	if errors.Is(err, proc.ErrTimeout) {
		return model.Outcome{TimedOut: true}, nil
	} else if err != nil {
		return model.Outcome{}, err
	} else if solution == nil {
		// Proof of unsatisfiability is still a complete answer.
		return model.Outcome{Optimal: true}, nil
	}

	sol, err := Decode(enc, solution)
	if err != nil {
		return model.Outcome{}, err
	}
	return model.Outcome{Sol: sol, Optimal: true}, nil
}

func runFairness(m *model.Model, solver sat.Solver, deadline time.Time, log *zap.Logger) (model.Outcome, error) {
	outcome := model.Outcome{}
	complete := true

	low, high := 0, m.Games()
	for low <= high {
		if time.Until(deadline) <= 0 {
			complete = false
			break
		}
		mid := (low + high) / 2

		enc := EncodeFairness(m, mid)
		solution, err := solver.Solve(enc.CNF, time.Until(deadline))
		if errors.Is(err, proc.ErrTimeout) {
			complete = false
			break
		} else if err != nil {
			return model.Outcome{}, err
		}

		if solution != nil {
			sol, err := Decode(enc, solution)
			if err != nil {
				return model.Outcome{}, err
			}
			obj := mid
			outcome.Sol = sol
			outcome.Obj = &obj
			log.Debug("fairness bound feasible", zap.Int("maxDiff", mid))
			high = mid - 1
		} else {
			log.Debug("fairness bound infeasible", zap.Int("maxDiff", mid))
			low = mid + 1
		}
	}

	outcome.Optimal = complete
	outcome.TimedOut = !complete
	return outcome, nil
}
