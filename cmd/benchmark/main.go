package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/samber/lo"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/combopt/stsbench/internal/config"
	"github.com/combopt/stsbench/internal/runner"
	"github.com/combopt/stsbench/pkg/model"
)

// defaultSizes is the reference instance set.
var defaultSizes = []int{4, 6, 8, 10, 12, 14, 16}

type benchmarkRow struct {
	Approach runner.Approach
	N        int
	Fairness bool
	Result   runner.Result
	Failed   bool
}

func main() {
	sizesPtr := flag.IntSlice("sizes", defaultSizes, "Instance sizes to benchmark")
	symmetryPtr := flag.Bool("symmetry", false, "Enable the symmetry-breaking anchor")
	impliedPtr := flag.Bool("implied", false, "Enable the implied constraints")
	fairnessPtr := flag.Bool("fairness", false, "Run the fairness-optimization variants")
	timeoutPtr := flag.Int("timeout", 300, "Time limit per run in seconds")
	outPtr := flag.String("out", "", "Result directory root; overrides the configured one")
	csvPtr := flag.String("csv", "benchmark_results.csv", "Summary CSV path")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("cannot build logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}
	outDir := cfg.OutDir
	if *outPtr != "" {
		outDir = *outPtr
	}

	opts := model.Options{
		SymmetryBreaking:   *symmetryPtr,
		ImpliedConstraints: *impliedPtr,
		Fairness:           *fairnessPtr,
		TimeLimit:          time.Duration(*timeoutPtr) * time.Second,
	}
	r := &runner.Runner{Cfg: cfg, Log: logger}

	rows := make([]benchmarkRow, 0, len(*sizesPtr)*len(runner.Approaches()))
	for _, n := range *sizesPtr {
		for _, approach := range runner.Approaches() {
			fmt.Printf("Benchmarking approach %q on n=%v (fairness=%v)\n", approach, n, *fairnessPtr)

			res, err := r.Run(approach, n, opts)
			if err != nil {
				logger.Error("run failed",
					zap.String("approach", string(approach)),
					zap.Int("n", n),
					zap.Error(err),
				)
				rows = append(rows, benchmarkRow{Approach: approach, N: n, Fairness: *fairnessPtr, Failed: true})
				continue
			}

			if _, err := runner.Write(outDir, approach, n, res); err != nil {
				log.Fatalf("cannot write record: %v", err)
			}
			rows = append(rows, benchmarkRow{Approach: approach, N: n, Fairness: *fairnessPtr, Result: res})
		}
	}

	toCsv(*csvPtr, rows)

	solved := lo.CountBy(rows, func(row benchmarkRow) bool { return !row.Failed && row.Result.Sol != nil })
	fmt.Printf("Done: %v/%v runs produced a schedule\n", solved, len(rows))
}

func toCsv(path string, rows []benchmarkRow) {
	file, err := os.Create(path)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Approach", "N", "Fairness", "Time(s)", "Optimal", "Obj", "Solved", "Failed"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, row := range rows {
		obj := ""
		if row.Result.Obj != nil {
			obj = fmt.Sprintf("%d", *row.Result.Obj)
		}
		record := []string{
			string(row.Approach),
			fmt.Sprintf("%d", row.N),
			fmt.Sprintf("%v", row.Fairness),
			strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", row.Result.Time), "0"), "."),
			fmt.Sprintf("%v", row.Result.Optimal),
			obj,
			fmt.Sprintf("%v", row.Result.Sol != nil),
			fmt.Sprintf("%v", row.Failed),
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}
