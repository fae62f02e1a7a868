package smt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/combopt/stsbench/pkg/model"
)

func TestEncodeDeterministic(t *testing.T) {
	opts := model.Options{SymmetryBreaking: true, ImpliedConstraints: true, Fairness: true}
	m, err := model.Build(8, opts)
	require.NoError(t, err)

	first := Encode(m).Script
	second := Encode(m).Script
	assert.Equal(t, first, second)
}

func TestEncodeDecisionScript(t *testing.T) {
	m, err := model.Build(6, model.Options{})
	require.NoError(t, err)
	artifact := Encode(m)

	assert.False(t, artifact.Fairness)
	script := artifact.Script
	assert.True(t, strings.HasPrefix(script, "(set-logic QF_LIA)\n"))
	assert.True(t, strings.HasSuffix(script, "(check-sat)\n(get-model)\n"))

	// One boolean per (match, period) slot, no orientation terms.
	assert.Equal(t, len(m.Matches)*m.Periods, strings.Count(script, "declare-fun x_"))
	assert.NotContains(t, script, "declare-fun o_")
	assert.NotContains(t, script, "minimize")
}

func TestEncodeSymmetryBreaking(t *testing.T) {
	m, err := model.Build(6, model.Options{SymmetryBreaking: true})
	require.NoError(t, err)

	assert.Contains(t, Encode(m).Script, "(assert x_0_0)\n")
}

func TestEncodeFairnessScript(t *testing.T) {
	m, err := model.Build(6, model.Options{Fairness: true})
	require.NoError(t, err)
	artifact := Encode(m)

	assert.True(t, artifact.Fairness)
	script := artifact.Script
	assert.Equal(t, len(m.Matches), strings.Count(script, "declare-fun o_"))
	for _, line := range []string{
		"(declare-fun maxdiff () Int)",
		"(assert (= a_1 (- 5 h_1)))",
		"(assert (>= d_1 (- h_1 a_1)))",
		"(assert (>= d_1 (- a_1 h_1)))",
		"(assert (>= maxdiff d_1))",
		"(minimize maxdiff)",
	} {
		assert.Contains(t, script, line)
	}
}
