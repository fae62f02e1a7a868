package runner

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/combopt/stsbench/internal/config"
	"github.com/combopt/stsbench/pkg/model"
	"github.com/combopt/stsbench/pkg/schedule"
)

// satRunner uses the in-process gophersat backend, so runner tests need no
// external binaries.
func satRunner() *Runner {
	return &Runner{Cfg: &config.Config{OutDir: "res"}, Log: zap.NewNop(), SATSolver: "gophersat"}
}

func TestApproaches(t *testing.T) {
	assert.Equal(t, []Approach{CP, SAT, SMT, MIP}, Approaches())
}

func TestRunDecision(t *testing.T) {
	r := satRunner()
	opts := model.Options{TimeLimit: time.Minute}

	res, err := r.Run(SAT, 6, opts)
	require.NoError(t, err)
	assert.True(t, res.Optimal)
	assert.Nil(t, res.Obj)
	require.NotNil(t, res.Sol)
	assert.NoError(t, schedule.Validate(6, res.Sol))
	assert.Greater(t, res.Time, 0.0)
	assert.Less(t, res.Time, 60.0)
}

func TestRunUnsatisfiableInstance(t *testing.T) {
	r := satRunner()

	res, err := r.Run(SAT, 4, model.Options{TimeLimit: time.Minute})
	require.NoError(t, err)
	// Proof of unsatisfiability: optimal with no solution.
	assert.True(t, res.Optimal)
	assert.Nil(t, res.Sol)
	assert.Nil(t, res.Obj)
}

func TestRunFairnessNormalizesObjective(t *testing.T) {
	r := satRunner()

	res, err := r.Run(SAT, 6, model.Options{Fairness: true, TimeLimit: time.Minute})
	require.NoError(t, err)
	assert.True(t, res.Optimal)
	require.NotNil(t, res.Sol)
	require.NotNil(t, res.Obj)
	// The recorded objective always matches the recorded schedule.
	assert.Equal(t, schedule.Imbalance(6, res.Sol), *res.Obj)
}

func TestRunTimeoutShapesRecord(t *testing.T) {
	r := satRunner()

	res, err := r.Run(SAT, 12, model.Options{TimeLimit: time.Nanosecond})
	require.NoError(t, err)
	assert.False(t, res.Optimal)
	assert.Nil(t, res.Sol)
	// On timeout the reported time is exactly the limit in seconds.
	assert.Equal(t, time.Nanosecond.Seconds(), res.Time)
}

func TestRunRejectsInvalidInstance(t *testing.T) {
	r := satRunner()

	_, err := r.Run(SAT, 7, model.Options{})
	var invalid *schedule.InvalidInstanceError
	require.True(t, errors.As(err, &invalid))
}

func TestRunRejectsUnknownApproach(t *testing.T) {
	r := satRunner()

	_, err := r.Run(Approach("LP"), 6, model.Options{TimeLimit: time.Minute})
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	r := satRunner()

	res, err := r.Run(SAT, 6, model.Options{TimeLimit: time.Minute})
	require.NoError(t, err)
	_, err = Write(dir, SAT, 6, res)
	require.NoError(t, err)

	assert.NoError(t, Verify(dir, zap.NewNop()))
}

func TestVerifyRejectsCorruptRecord(t *testing.T) {
	dir := t.TempDir()

	corrupt := Result{
		Time:    1,
		Optimal: true,
		// Pair {1, 1} breaks the team invariants.
		Sol: schedule.Schedule{
			{{1, 1}, {4, 1}, {1, 3}},
			{{4, 3}, {2, 3}, {2, 4}},
		},
	}
	_, err := Write(dir, CP, 4, corrupt)
	require.NoError(t, err)

	err = Verify(dir, zap.NewNop())
	var violation *schedule.Violation
	require.ErrorAs(t, err, &violation)
}

func TestVerifyEmptyDirectory(t *testing.T) {
	assert.NoError(t, Verify(t.TempDir(), zap.NewNop()))
}
