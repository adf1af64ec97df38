// Command mstbench generates random connected graphs and benchmarks Prim's
// and Kruskal's minimum spanning tree algorithms on them.
//
// Usage:
//
//	mstbench [flags] generate|solve|all
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/mstbench/bench"
	"github.com/katalvlaran/mstbench/config"
	"github.com/katalvlaran/mstbench/runner"
	"github.com/katalvlaran/mstbench/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "mstbench:", err)
		os.Exit(1)
	}
}

func run() error {
	// Command line flags
	cfgPath := flag.String("config", "", "YAML configuration file (defaults when empty)")
	dataDir := flag.String("data-dir", "", "directory for input/output files (overrides config)")
	seed := flag.Int64("seed", 0, "random seed (overrides config)")
	metricsAddr := flag.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] generate|solve|all\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return errors.New("exactly one command required")
	}
	command := flag.Arg(0)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data-dir":
			cfg.DataDir = *dataDir
		case "seed":
			cfg.Seed = *seed
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []runner.Option{runner.WithLogger(logger)}

	if *metricsAddr != "" {
		metrics := bench.NewMetrics(prometheus.DefaultRegisterer)
		opts = append(opts, runner.WithRecorder(bench.NewRecorder(bench.WithMetrics(metrics))))

		srv := &http.Server{Addr: *metricsAddr, Handler: promhttp.Handler(), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			logger.Info("serving metrics", zap.String("addr", *metricsAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", zap.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()
	}

	if cfg.SQLitePath != "" {
		s, err := store.Open(cfg.SQLitePath)
		if err != nil {
			return err
		}
		defer s.Close()
		opts = append(opts, runner.WithSink(s))
		logger.Info("archiving results", zap.String("sqlite_path", cfg.SQLitePath))
	}

	r, err := runner.New(cfg, opts...)
	if err != nil {
		return err
	}
	logger.Info("starting",
		zap.String("command", command),
		zap.String("run_id", r.RunID()),
		zap.Int64("seed", cfg.Seed),
		zap.String("data_dir", cfg.DataDir))

	switch command {
	case "generate":
		err = r.Generate(ctx)
	case "solve":
		err = r.Solve(ctx)
	case "all":
		err = r.All(ctx)
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
	if err != nil {
		logger.Error("run failed", zap.Error(err))
		return err
	}

	logger.Info("all categories processed")

	return nil
}
