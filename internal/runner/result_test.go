package runner

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/combopt/stsbench/pkg/schedule"
)

func TestResultMarshalsNulls(t *testing.T) {
	data, err := json.Marshal(Result{Time: 300, Optimal: false})
	require.NoError(t, err)
	assert.JSONEq(t, `{"time": 300, "optimal": false, "obj": null, "sol": null}`, string(data))
}

func TestResultMarshalsSchedule(t *testing.T) {
	obj := 1
	res := Result{
		Time:    12.5,
		Optimal: true,
		Obj:     &obj,
		Sol: schedule.Schedule{
			{{1, 2}, {3, 4}},
			{{3, 4}, {1, 2}},
		},
	}

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"time": 12.5, "optimal": true, "obj": 1, "sol": [[[1,2],[3,4]],[[3,4],[1,2]]]}`, string(data))
}

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	obj := 2
	res := Result{
		Time:    0.042,
		Optimal: true,
		Obj:     &obj,
		Sol: schedule.Schedule{
			{{1, 2}, {4, 1}, {1, 3}},
			{{4, 3}, {2, 3}, {2, 4}},
		},
	}

	path, err := Write(dir, SAT, 4, res)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "SAT", "4.json"), path)

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, res, got)
}

func TestWriteReadUnsolvedRoundTrip(t *testing.T) {
	dir := t.TempDir()

	path, err := Write(dir, MIP, 16, Result{Time: 300})
	require.NoError(t, err)

	got, err := Read(path)
	require.NoError(t, err)
	assert.Nil(t, got.Obj)
	assert.Nil(t, got.Sol)
	assert.Equal(t, 300.0, got.Time)
}

func TestReadToleratesLooseTypes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "6.json")
	loose := `{"time": "1.5", "optimal": true, "obj": 1.0, "sol": [[[1, 2]]]}`
	require.NoError(t, os.WriteFile(path, []byte(loose), 0666))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, 1.5, got.Time)
	require.NotNil(t, got.Obj)
	assert.Equal(t, 1, *got.Obj)
	assert.Equal(t, schedule.Schedule{{{1, 2}}}, got.Sol)
}
