package smt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/combopt/stsbench/pkg/model"
	"github.com/combopt/stsbench/pkg/schedule"
)

// fourTeams builds the n=4 artifact: six matches, three weeks, two periods.
// The period limit makes the full instance unsatisfiable, but the decoder
// never checks it, which keeps the model dumps below small.
func fourTeams(t *testing.T, opts model.Options) *Artifact {
	t.Helper()
	m, err := model.Build(4, opts)
	require.NoError(t, err)
	return Encode(m)
}

const decisionDump = `sat
(model
  (define-fun x_0_0 () Bool true)
  (define-fun x_1_1 () Bool true)
  (define-fun x_2_0 () Bool true)
  (define-fun x_3_1 () Bool true)
  (define-fun x_4_0 () Bool
    true)
  (define-fun x_5_1 () Bool true)
  (define-fun x_5_0 () Bool false)
)
`

func TestDecodeDecision(t *testing.T) {
	artifact := fourTeams(t, model.Options{})

	sol, obj, err := Decode(artifact, decisionDump)
	require.NoError(t, err)
	assert.Nil(t, obj)

	expected := schedule.Schedule{
		{{1, 2}, {4, 1}, {1, 3}},
		{{4, 3}, {2, 3}, {2, 4}},
	}
	assert.Equal(t, expected, sol)
}

func TestDecodeFairness(t *testing.T) {
	artifact := fourTeams(t, model.Options{Fairness: true})

	dump := `sat
(model
  (define-fun x_0_0 () Bool true)
  (define-fun x_1_1 () Bool true)
  (define-fun x_2_0 () Bool true)
  (define-fun x_3_1 () Bool true)
  (define-fun x_4_0 () Bool true)
  (define-fun x_5_1 () Bool true)
  (define-fun o_0 () Bool false)
  (define-fun o_1 () Bool true)
  (define-fun o_2 () Bool true)
  (define-fun o_3 () Bool true)
  (define-fun o_4 () Bool true)
  (define-fun o_5 () Bool true)
  (define-fun maxdiff () Int
    1)
)
`
	sol, obj, err := Decode(artifact, dump)
	require.NoError(t, err)
	require.NotNil(t, obj)
	assert.Equal(t, 1, *obj)

	// Match 0 is flipped, the rest keep the generator's orientation.
	assert.Equal(t, schedule.Pair{2, 1}, sol[0][0])
	assert.Equal(t, schedule.Pair{4, 3}, sol[1][0])
}

func TestDecodeFairnessRecomputesMissingObjective(t *testing.T) {
	artifact := fourTeams(t, model.Options{Fairness: true})

	sol, obj, err := Decode(artifact, decisionDump)
	require.NoError(t, err)
	require.NotNil(t, obj)
	assert.Equal(t, schedule.Imbalance(4, sol), *obj)
}

func TestDecodeInconsistencies(t *testing.T) {
	tests := []struct {
		name string
		dump string
	}{
		{
			name: "slot maps to no match",
			dump: "sat\n(define-fun x_9_0 () Bool true)\n",
		},
		{
			name: "slot assigned twice",
			dump: "sat\n(define-fun x_0_0 () Bool true)\n(define-fun x_1_0 () Bool true)\n",
		},
		{
			name: "slot left unassigned",
			dump: `sat
(model
  (define-fun x_0_0 () Bool true)
  (define-fun x_1_1 () Bool true)
  (define-fun x_2_0 () Bool true)
  (define-fun x_3_1 () Bool true)
  (define-fun x_4_0 () Bool true)
)
`,
		},
	}

	artifact := fourTeams(t, model.Options{})
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := Decode(artifact, test.dump)
			var inconsistency *model.InconsistencyError
			require.ErrorAs(t, err, &inconsistency)
			assert.Equal(t, "SMT", inconsistency.Approach)
		})
	}
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "sat", status("c preamble\nsat\n(model)\n"))
	assert.Equal(t, "unsat", status("unsat\n"))
	assert.Equal(t, "timeout", status("timeout\nunknown\n"))
	assert.Equal(t, "", status("garbage\n"))
}
