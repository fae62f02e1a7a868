// Package smt realizes the constraint model as an SMT-LIB2 (QF_LIA) script
// for an external SMT solver. Boolean slot variables are bridged into linear
// arithmetic with ite terms; the fairness variant mirrors the MIP
// linearization (d[t] >= |h[t]-a[t]|, minimize the max) term for term.
package smt

import (
	"fmt"
	"strings"

	"github.com/combopt/stsbench/pkg/model"
)

// Artifact is the immutable textual encoding handed to the backend.
type Artifact struct {
	Script   string
	Model    *model.Model
	Fairness bool
}

func slotVar(match, period int) string {
	return fmt.Sprintf("x_%d_%d", match, period)
}

func orientVar(match int) string {
	return fmt.Sprintf("o_%d", match)
}

// Encode renders the model as a deterministic SMT-LIB2 script: identical
// (n, options) inputs produce byte-identical artifacts.
func Encode(m *model.Model) *Artifact {
	var b strings.Builder
	opts := m.Options()

	b.WriteString("(set-logic QF_LIA)\n")

	for idx := range m.Matches {
		for p := 0; p < m.Periods; p++ {
			fmt.Fprintf(&b, "(declare-fun %s () Bool)\n", slotVar(idx, p))
		}
	}

	// Each match takes exactly one period.
	for idx := range m.Matches {
		terms := make([]string, m.Periods)
		for p := 0; p < m.Periods; p++ {
			terms[p] = slotVar(idx, p)
		}
		writeIteSum(&b, terms, "=", 1)
	}

	// Each (week, period) slot hosts exactly one match.
	for w := 1; w <= m.Weeks; w++ {
		for p := 0; p < m.Periods; p++ {
			terms := make([]string, 0, m.Periods)
			for _, idx := range m.MatchesOfWeek(w) {
				terms = append(terms, slotVar(idx, p))
			}
			writeIteSum(&b, terms, "=", 1)
		}
	}

	// Period limit.
	for t := 1; t <= m.N; t++ {
		for p := 0; p < m.Periods; p++ {
			terms := make([]string, 0, m.Weeks)
			for _, idx := range m.MatchesOfTeam(t) {
				terms = append(terms, slotVar(idx, p))
			}
			writeIteSum(&b, terms, "<=", 2)
		}
	}

	if opts.ImpliedConstraints {
		for t := 1; t <= m.N; t++ {
			team := m.MatchesOfTeam(t)
			for w := 0; w+2 < len(team); w++ {
				for p := 0; p < m.Periods; p++ {
					terms := []string{
						slotVar(team[w], p),
						slotVar(team[w+1], p),
						slotVar(team[w+2], p),
					}
					writeIteSum(&b, terms, "<=", 2)
				}
			}
		}
	}

	if opts.SymmetryBreaking {
		fmt.Fprintf(&b, "(assert %s)\n", slotVar(m.Anchor(), 0))
	}

	if opts.Fairness {
		for idx := range m.Matches {
			fmt.Fprintf(&b, "(declare-fun %s () Bool)\n", orientVar(idx))
		}
		for t := 1; t <= m.N; t++ {
			fmt.Fprintf(&b, "(declare-fun h_%d () Int)\n", t)
			fmt.Fprintf(&b, "(declare-fun a_%d () Int)\n", t)
			fmt.Fprintf(&b, "(declare-fun d_%d () Int)\n", t)
		}
		b.WriteString("(declare-fun maxdiff () Int)\n")

		games := m.Games()
		for t := 1; t <= m.N; t++ {
			terms := make([]string, 0, games)
			for _, idx := range m.MatchesOfTeam(t) {
				// Orientation true keeps the generator's home team.
				if m.Matches[idx].Home == t {
					terms = append(terms, fmt.Sprintf("(ite %s 1 0)", orientVar(idx)))
				} else {
					terms = append(terms, fmt.Sprintf("(ite %s 0 1)", orientVar(idx)))
				}
			}
			fmt.Fprintf(&b, "(assert (= h_%d (+ %s)))\n", t, strings.Join(terms, " "))
			fmt.Fprintf(&b, "(assert (= a_%d (- %d h_%d)))\n", t, games, t)
			fmt.Fprintf(&b, "(assert (>= d_%d (- h_%d a_%d)))\n", t, t, t)
			fmt.Fprintf(&b, "(assert (>= d_%d (- a_%d h_%d)))\n", t, t, t)
			fmt.Fprintf(&b, "(assert (>= maxdiff d_%d))\n", t)
		}
		b.WriteString("(minimize maxdiff)\n")
	}

	b.WriteString("(check-sat)\n")
	b.WriteString("(get-model)\n")

	return &Artifact{Script: b.String(), Model: m, Fairness: opts.Fairness}
}

// writeIteSum asserts `(op (+ (ite x 1 0)...) bound)` over boolean terms.
func writeIteSum(b *strings.Builder, vars []string, op string, bound int) {
	terms := make([]string, len(vars))
	for i, v := range vars {
		terms[i] = fmt.Sprintf("(ite %s 1 0)", v)
	}
	fmt.Fprintf(b, "(assert (%s (+ %s) %d))\n", op, strings.Join(terms, " "), bound)
}
