package main

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/combopt/stsbench/internal/config"
	"github.com/combopt/stsbench/internal/cp"
	"github.com/combopt/stsbench/internal/mip"
	"github.com/combopt/stsbench/internal/runner"
	"github.com/combopt/stsbench/internal/sat"
	"github.com/combopt/stsbench/pkg/model"
	"github.com/combopt/stsbench/pkg/schedule"
)

func main() {
	// Define arguments
	approachPtr := flag.String("approach", "", "Paradigm to run. Allowed values are: \"CP\", \"SAT\", \"SMT\", \"MIP\"; empty runs all four sequentially")
	instancePtr := flag.Int("instance", 6, "Number of teams (positive even integer)")
	symmetryPtr := flag.Bool("symmetry", false, "Pin team 1's week-1 match to period 1")
	impliedPtr := flag.Bool("implied", false, "Add the no-three-consecutive-weeks-same-period strengthening")
	fairnessPtr := flag.Bool("fairness", false, "Minimize the maximum home/away imbalance instead of solving the decision problem")
	satSolverPtr := flag.String("sat-solver", "", fmt.Sprintf("SAT backend. Allowed values are: %v, where %q is the default", strings.Join(sat.SolverNames(), ", "), sat.SolverNames()[0]))
	cpSolverPtr := flag.String("cp-solver", "", fmt.Sprintf("MiniZinc backend. Allowed values are: %v, where %q is the default", strings.Join(cp.SolverNames(), ", "), cp.SolverNames()[0]))
	mipSolverPtr := flag.String("mip-solver", "", fmt.Sprintf("ILP backend. Allowed values are: %v, where %q is the default", strings.Join(mip.SolverNames(), ", "), mip.SolverNames()[0]))
	timeoutPtr := flag.Int("timeout", 300, "Time limit per run in seconds")
	outPtr := flag.String("out", "", "Result directory root; overrides the configured one")
	checkPtr := flag.Bool("check", false, "Validate all written records after the runs")
	verbosePtr := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	// Validate arguments
	approachStr := strings.ToUpper(*approachPtr)
	var approaches []runner.Approach
	if approachStr == "" {
		approaches = runner.Approaches()
	} else if slices.Contains(runner.Approaches(), runner.Approach(approachStr)) {
		approaches = []runner.Approach{runner.Approach(approachStr)}
	} else {
		log.Fatalf("%v is not a valid approach", *approachPtr)
	}
	if *satSolverPtr != "" && !slices.Contains(sat.SolverNames(), *satSolverPtr) {
		log.Fatalf("%v is not a valid SAT solver", *satSolverPtr)
	}
	if *cpSolverPtr != "" && !slices.Contains(cp.SolverNames(), *cpSolverPtr) {
		log.Fatalf("%v is not a valid CP solver", *cpSolverPtr)
	}
	if *mipSolverPtr != "" && !slices.Contains(mip.SolverNames(), *mipSolverPtr) {
		log.Fatalf("%v is not a valid MIP solver", *mipSolverPtr)
	}

	logger := newLogger(*verbosePtr)
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

	// Reject bad instances before touching any encoder or output file.
	if _, err := model.Build(*instancePtr, opts); err != nil {
		var invalid *schedule.InvalidInstanceError
		if errors.As(err, &invalid) {
			log.Fatalf("%v", invalid)
		}
		log.Fatalf("cannot build model: %v", err)
	}

	r := &runner.Runner{
		Cfg:       cfg,
		Log:       logger,
		SATSolver: *satSolverPtr,
		CPSolver:  *cpSolverPtr,
		MIPSolver: *mipSolverPtr,
	}

	failed := false
	for _, approach := range approaches {
		res, err := r.Run(approach, *instancePtr, opts)
		if err != nil {
			// Failed runs write no record rather than a corrupt one.
			logger.Error("run failed",
				zap.String("approach", string(approach)),
				zap.Int("n", *instancePtr),
				zap.Error(err),
			)
			failed = true
			continue
		}

		path, err := runner.Write(outDir, approach, *instancePtr, res)
		if err != nil {
			logger.Error("cannot write record", zap.Error(err))
			failed = true
			continue
		}
		logger.Info("run finished",
			zap.String("approach", string(approach)),
			zap.Int("n", *instancePtr),
			zap.Float64("time", res.Time),
			zap.Bool("optimal", res.Optimal),
			zap.Bool("solved", res.Sol != nil),
			zap.String("record", path),
		)
	}

	if *checkPtr {
		if err := runner.Verify(outDir, logger); err != nil {
			log.Fatalf("record validation failed: %v", err)
		}
		if cfg.Checker != "" {
			if err := runner.CheckExternal(cfg.Checker, outDir, logger); err != nil {
				log.Fatalf("external check failed: %v", err)
			}
		}
	}

	if failed {
		log.Fatal("one or more runs failed")
	}
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("cannot build logger: %v", err)
	}
	return logger
}
