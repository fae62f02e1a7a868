package satenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/combopt/stsbench/pkg/model"
)

func TestIndexerRoundTrip(t *testing.T) {
	indexer := NewIndexer(5)

	seen := make(map[int]bool)
	for match := 0; match < 30; match++ {
		for period := 0; period < 5; period++ {
			v := indexer.Index(match, period)
			assert.Greater(t, v, 0)
			assert.False(t, seen[v])
			seen[v] = true

			gotMatch, gotPeriod := indexer.Attributes(v)
			assert.Equal(t, match, gotMatch)
			assert.Equal(t, period, gotPeriod)
		}
	}
}

func TestEncodeDeterministic(t *testing.T) {
	opts := model.Options{SymmetryBreaking: true, ImpliedConstraints: true}
	m, err := model.Build(8, opts)
	require.NoError(t, err)

	first := Encode(m).CNF.ToDIMACS()
	second := Encode(m).CNF.ToDIMACS()
	assert.Equal(t, first, second)
}

func TestEncodeShape(t *testing.T) {
	m, err := model.Build(6, model.Options{})
	require.NoError(t, err)
	enc := Encode(m)

	// One variable per (match, period) slot and nothing else for the
	// decision variant without options.
	assert.Equal(t, len(m.Matches)*m.Periods, enc.CNF.Variables)
	assert.NotEmpty(t, enc.CNF.Clauses)
}

func TestEncodeAnchorClause(t *testing.T) {
	m, err := model.Build(6, model.Options{SymmetryBreaking: true})
	require.NoError(t, err)
	enc := Encode(m)

	anchorVar := enc.Indexer.Index(m.Anchor(), 0)
	found := false
	for _, clause := range enc.CNF.Clauses {
		if len(clause) == 1 && clause[0] == anchorVar {
			found = true
			break
		}
	}
	assert.True(t, found)
}

func TestImpliedConstraintsAddClauses(t *testing.T) {
	m, err := model.Build(6, model.Options{})
	require.NoError(t, err)
	plain := Encode(m)

	m, err = model.Build(6, model.Options{ImpliedConstraints: true})
	require.NoError(t, err)
	strengthened := Encode(m)

	assert.Greater(t, len(strengthened.CNF.Clauses), len(plain.CNF.Clauses))
	assert.Equal(t, plain.CNF.Variables, strengthened.CNF.Variables)
}

func TestEncodeFairnessAddsOrientationVars(t *testing.T) {
	m, err := model.Build(6, model.Options{Fairness: true})
	require.NoError(t, err)

	enc := EncodeFairness(m, 1)
	assert.Len(t, enc.orientVars, len(m.Matches))
	assert.Greater(t, enc.CNF.Variables, enc.slotVars+len(m.Matches)-1)

	// The artifact stays deterministic per bound.
	again := EncodeFairness(m, 1)
	assert.Equal(t, enc.CNF.ToDIMACS(), again.CNF.ToDIMACS())
}
