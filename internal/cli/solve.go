package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hamilton/constraint"
	"github.com/katalvlaran/hamilton/core"
	"github.com/katalvlaran/hamilton/format"
	"github.com/katalvlaran/hamilton/internal/config"
	"github.com/katalvlaran/hamilton/internal/telemetry"
	"github.com/katalvlaran/hamilton/partition"
	"github.com/katalvlaran/hamilton/search"
)

// solution is the outcome of one search over the input files.
type solution struct {
	adj     [][]bool
	cycle   []int
	order   []int
	stats   search.Stats
	elapsed time.Duration
}

// report is the json/yaml rendering of a solution.
type report struct {
	RunID     string      `json:"run_id" yaml:"run_id"`
	Vertices  int         `json:"vertices" yaml:"vertices"`
	Cycle     []int       `json:"cycle" yaml:"cycle,flow"`
	Order     []int       `json:"partition_order,omitempty" yaml:"partition_order,omitempty,flow"`
	Stats     reportStats `json:"stats" yaml:"stats"`
	ElapsedMS int64       `json:"elapsed_ms" yaml:"elapsed_ms"`
}

type reportStats struct {
	Candidates   int            `json:"candidates" yaml:"candidates"`
	Backtracks   int            `json:"backtracks" yaml:"backtracks"`
	Propagations int            `json:"propagations" yaml:"propagations"`
	MaxDepth     int            `json:"max_depth" yaml:"max_depth"`
	Rejections   map[string]int `json:"rejections,omitempty" yaml:"rejections,omitempty"`
}

func newSolveAction(ctx context.Context, input *Input, stdout io.Writer) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := input.resolve(cmd.Flags())
		if err != nil {
			return err
		}
		log, err := input.newLogger(cmd, cfg)
		if err != nil {
			return err
		}
		sol, err := solveFiles(telemetry.WithLogger(ctx, log), cfg, args)
		if err != nil {
			return err
		}
		if cfg.Output.Verify {
			g, err := core.NewFromAdjacency(sol.adj)
			if err != nil {
				return err
			}
			if err := g.VerifyCycle(sol.cycle); err != nil {
				return fmt.Errorf("cycle failed verification: %w", err)
			}
			log.Debug("cycle verified")
		}

		return writeSolution(stdout, cfg.Output.Format, runID(log), sol)
	}
}

// resolve loads the config file, if any, and applies the flags the user set.
func (i *Input) resolve(flags *pflag.FlagSet) (*config.Config, error) {
	cfg := config.Default()
	if i.configPath != "" {
		loaded, err := config.Load(i.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flags.Changed("start") {
		cfg.Search.StartVertex = i.start
	}
	if flags.Changed("time-limit") {
		d, err := time.ParseDuration(i.timeLimit)
		if err != nil {
			return nil, fmt.Errorf("--time-limit: %w", err)
		}
		cfg.Search.TimeLimit = d
	}
	if flags.Changed("output") {
		cfg.Output.Format = i.output
	}
	if flags.Changed("verify") {
		cfg.Output.Verify = i.verify
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = i.metricsFile
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = i.logFormat
	}
	if i.verbose && cfg.Log.Level != "trace" {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newLogger builds the run logger, tagged with a fresh run id.
func (i *Input) newLogger(cmd *cobra.Command, cfg *config.Config) (*logrus.Entry, error) {
	logger, err := telemetry.NewLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	return logger.WithField("run_id", uuid.NewString()), nil
}

func runID(log *logrus.Entry) string {
	id, _ := log.Data["run_id"].(string)
	return id
}

// solveFiles reads the graph file and the optional partition file in args
// and runs the search they describe, logging to the logger in ctx.
func solveFiles(ctx context.Context, cfg *config.Config, args []string) (*solution, error) {
	log := telemetry.Logger(ctx)
	adj, err := format.LoadAdjacency(args[0])
	if err != nil {
		return nil, err
	}
	g, err := core.NewFromAdjacency(adj)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", args[0], err)
	}
	log = log.WithField("vertices", g.N())
	log.WithField("edges", g.NumEdges()).Debugf("loaded %s", args[0])

	var assignment []int
	if len(args) > 1 {
		if assignment, err = format.LoadAssignment(args[1], g.N()); err != nil {
			return nil, err
		}
		log.Debugf("loaded partition %s", args[1])
	}

	opts := []search.Option{
		search.WithContext(ctx),
		search.WithStartVertex(cfg.Search.StartVertex),
		search.WithTimeLimit(cfg.Search.TimeLimit),
	}
	if log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		opts = append(opts,
			search.WithOnExtend(func(depth, from, to int) {
				log.WithFields(logrus.Fields{"depth": depth, "from": from, "to": to}).Trace("extend")
			}),
			search.WithOnBacktrack(func(depth, vertex int, verdict constraint.Verdict) {
				log.WithFields(logrus.Fields{"depth": depth, "vertex": vertex, "verdict": verdict}).Trace("backtrack")
			}),
		)
	}

	var metrics *telemetry.Metrics
	if cfg.MetricsFile != "" {
		metrics = telemetry.NewMetrics()
	}

	began := time.Now()
	var (
		res  search.Result
		plan *partition.Plan
	)
	if assignment != nil {
		res, plan, err = partition.Solve(g, assignment, opts...)
	} else {
		res, err = search.Solve(g, opts...)
	}
	elapsed := time.Since(began)

	log.WithFields(logrus.Fields{
		"candidates":   res.Stats.Candidates,
		"backtracks":   res.Stats.Backtracks,
		"propagations": res.Stats.Propagations,
		"elapsed":      elapsed,
	}).Info("search finished")

	if metrics != nil {
		metrics.ObserveSolve(res.Stats, outcome(err), elapsed)
		if werr := metrics.WriteFile(cfg.MetricsFile); werr != nil {
			log.WithError(werr).Warn("writing metrics failed")
		}
	}
	if err != nil {
		return nil, err
	}

	sol := &solution{adj: adj, cycle: res.Cycle, stats: res.Stats, elapsed: elapsed}
	if plan != nil {
		sol.order = plan.Order
		log.WithField("order", plan.Order).Debug("partition order")
	}

	return sol, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return telemetry.OutcomeFound
	case errors.Is(err, search.ErrNoCycle):
		return telemetry.OutcomeNoCycle
	case errors.Is(err, search.ErrTimeLimit):
		return telemetry.OutcomeTimeout
	default:
		return telemetry.OutcomeError
	}
}

func writeSolution(w io.Writer, outputFormat, id string, sol *solution) error {
	if outputFormat == "plain" {
		return format.WriteCycle(w, sol.cycle)
	}

	r := report{
		RunID:     id,
		Vertices:  len(sol.adj),
		Cycle:     sol.cycle,
		Order:     sol.order,
		ElapsedMS: sol.elapsed.Milliseconds(),
		Stats: reportStats{
			Candidates:   sol.stats.Candidates,
			Backtracks:   sol.stats.Backtracks,
			Propagations: sol.stats.Propagations,
			MaxDepth:     sol.stats.MaxDepth,
		},
	}
	for v, n := range sol.stats.Rejections {
		if r.Stats.Rejections == nil {
			r.Stats.Rejections = make(map[string]int)
		}
		r.Stats.Rejections[v.String()] = n
	}

	switch outputFormat {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", outputFormat)
	}
}
