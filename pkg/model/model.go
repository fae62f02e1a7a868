// Package model defines the paradigm-neutral constraint model shared by the
// CP, SAT, SMT and MIP encoders: the fixed round-robin match set plus the
// option flags that toggle symmetry breaking, implied constraints and the
// fairness objective. Each encoder consumes the model read-only.
package model

import (
	"time"

	"github.com/combopt/stsbench/pkg/schedule"
)

// DefaultTimeLimit is the hard wall-clock ceiling per solver run.
const DefaultTimeLimit = 300 * time.Second

// Options is the immutable solver configuration threaded through the
// pipeline. Zero value means: plain decision variant, 300s limit.
type Options struct {
	// SymmetryBreaking pins the week-1 match involving team 1 to period 1,
	// eliminating one symmetry class without losing feasibility.
	SymmetryBreaking bool
	// ImpliedConstraints adds the redundant no-three-consecutive-weeks-same-
	// period strengthening on top of the period limit.
	ImpliedConstraints bool
	// Fairness turns the run into an optimization: minimize the maximum,
	// over teams, of |home_count - away_count|.
	Fairness bool
	// TimeLimit bounds the whole run, encoding included. Defaults to
	// DefaultTimeLimit when zero.
	TimeLimit time.Duration
}

func (o Options) EffectiveTimeLimit() time.Duration {
	if o.TimeLimit <= 0 {
		return DefaultTimeLimit
	}
	return o.TimeLimit
}

// Model is the constraint model for one instance: n teams, n-1 weeks, n/2
// periods and the fixed pairing set produced by the circle method. Matches
// are flattened week-major so every encoder shares one match indexing.
type Model struct {
	N       int
	Weeks   int
	Periods int
	Matches []schedule.Match

	opts   Options
	byWeek [][]int
	byTeam [][]int
	anchor int
}

// Build generates the round-robin pairing structure for n and wraps it into
// a constraint model. Fails with *schedule.InvalidInstanceError on odd or
// non-positive n, before any encoding happens.
func Build(n int, opts Options) (*Model, error) {
	weeks, err := schedule.RoundRobin(n)
	if err != nil {
		return nil, err
	}

	m := &Model{
		N:       n,
		Weeks:   n - 1,
		Periods: n / 2,
		opts:    opts,
		anchor:  -1,
	}

	m.byWeek = make([][]int, m.Weeks)
	m.byTeam = make([][]int, n)
	for _, week := range weeks {
		for _, match := range week {
			idx := len(m.Matches)
			m.Matches = append(m.Matches, match)
			m.byWeek[match.Week-1] = append(m.byWeek[match.Week-1], idx)
			m.byTeam[match.Home-1] = append(m.byTeam[match.Home-1], idx)
			m.byTeam[match.Away-1] = append(m.byTeam[match.Away-1], idx)
			if match.Week == 1 && match.Involves(1) {
				m.anchor = idx
			}
		}
	}

	return m, nil
}

func (m *Model) Options() Options {
	return m.opts
}

// Games is the number of games each team plays, which equals the number of
// weeks in a single round robin.
func (m *Model) Games() int {
	return m.Weeks
}

// MatchesOfWeek returns the indices of the matches fixed to week w (1-based).
func (m *Model) MatchesOfWeek(w int) []int {
	return m.byWeek[w-1]
}

// MatchesOfTeam returns the indices of the matches involving team t, in week
// order (one per week).
func (m *Model) MatchesOfTeam(t int) []int {
	return m.byTeam[t-1]
}

// Anchor is the index of the week-1 match involving team 1, the match pinned
// to period 1 by the symmetry-breaking option.
func (m *Model) Anchor() int {
	return m.anchor
}
