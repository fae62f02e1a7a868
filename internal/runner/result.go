package runner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"

	"github.com/combopt/stsbench/pkg/schedule"
)

// Result is the canonical record written for one (approach, n) run. Obj is
// null for decision variants; Sol is null when no feasible solution was
// found within the limit.
type Result struct {
	Time    float64           `json:"time"`
	Optimal bool              `json:"optimal"`
	Obj     *int              `json:"obj"`
	Sol     schedule.Schedule `json:"sol"`
}

// Write serializes the record to <outDir>/<APPROACH>/<n>.json and returns
// the path. Nothing is written when marshaling fails, so a failed run never
// leaves a corrupt record behind.
func Write(outDir string, approach Approach, n int, res Result) (string, error) {
	dir := filepath.Join(outDir, string(approach))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("cannot create result directory: %w", err)
	}

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return "", fmt.Errorf("cannot marshal result record: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%d.json", n))
	if err := os.WriteFile(path, data, 0666); err != nil {
		return "", fmt.Errorf("cannot write result record: %w", err)
	}
	return path, nil
}

// Read loads a result record back, tolerating the loosely typed JSON the
// record format allows (obj may be a float, sol a nested any-array).
func Read(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Result{}, fmt.Errorf("cannot parse result record %v: %w", path, err)
	}

	var res Result
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &res,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Result{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Result{}, fmt.Errorf("cannot decode result record %v: %w", path, err)
	}
	return res, nil
}
