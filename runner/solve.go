package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstbench/bench"
	"github.com/katalvlaran/mstbench/codec"
	"github.com/katalvlaran/mstbench/core"
)

// Solve processes input_<category> for every configured category and writes
// the matching output and summary files. A missing or empty input file is
// logged and skipped.
func (r *Runner) Solve(ctx context.Context) error {
	for _, cat := range r.cfg.Categories {
		if err := ctx.Err(); err != nil {
			return err
		}

		in := r.path(prefixInput, cat.Name)
		graphs, err := r.readGraphs(in)
		switch {
		case errors.Is(err, fs.ErrNotExist), errors.Is(err, codec.ErrNoGraphs):
			r.logger.Warn("no graphs found, skipping category",
				zap.String("category", cat.Name),
				zap.String("file", in))
			continue
		case err != nil:
			return fmt.Errorf("Solve: %s: %w", cat.Name, err)
		}

		r.logger.Info("processing category",
			zap.String("category", cat.Name),
			zap.Int("graphs", len(graphs)))

		reports, err := r.ProcessCategory(ctx, graphs)
		if err != nil {
			return fmt.Errorf("Solve: %s: %w", cat.Name, err)
		}

		if err := r.writeResults(cat.Name, reports); err != nil {
			return fmt.Errorf("Solve: %s: %w", cat.Name, err)
		}

		if r.sink != nil {
			if err := r.sink.SaveReports(ctx, r.runID, cat.Name, reports); err != nil {
				return fmt.Errorf("Solve: %s: archive: %w", cat.Name, err)
			}
		}
	}

	return nil
}

// ProcessCategory records every graph with a bounded pool of Config.Workers
// goroutines. reports[i] belongs to graphs[i].
//
// Disconnected graphs are logged and kept with their partial results. Any
// other Record error, including bench.ErrCostMismatch, aborts the category.
// With Config.ValidateInput set, every graph is structurally validated first.
func (r *Runner) ProcessCategory(ctx context.Context, graphs []*core.Graph) ([]bench.GraphReport, error) {
	if r.cfg.ValidateInput {
		for _, g := range graphs {
			if err := g.Validate(); err != nil {
				return nil, fmt.Errorf("ProcessCategory: graph %d: %w", g.ID, err)
			}
		}
	}

	reports := make([]bench.GraphReport, len(graphs))
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.cfg.Workers)

	for i, g := range graphs {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}

			rep, err := r.recorder.Record(g)
			switch {
			case err == nil:
			case errors.Is(err, core.ErrDisconnected):
				r.logger.Warn("graph is disconnected, keeping partial forests",
					zap.Int("graph_id", g.ID),
					zap.Error(err))
			default:
				return err
			}
			reports[i] = rep

			r.logger.Info("graph done",
				zap.Int("graph_id", g.ID),
				zap.Int("vertices", rep.InputStats.Vertices),
				zap.Int("edges", rep.InputStats.Edges))

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// categorySummary is the summary_<category>.yaml document.
type categorySummary struct {
	RunID      string          `yaml:"run_id"`
	Category   string          `yaml:"category"`
	Graphs     int             `yaml:"graphs"`
	Algorithms []bench.Summary `yaml:"algorithms"`
}

func (r *Runner) readGraphs(path string) ([]*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return r.codec.DecodeGraphs(f)
}

func (r *Runner) writeResults(category string, reports []bench.GraphReport) error {
	out := r.path(prefixOutput, category)
	if err := writeFile(out, func(w io.Writer) error {
		return r.codec.EncodeResults(w, reports)
	}); err != nil {
		return err
	}

	summary := categorySummary{
		RunID:      r.runID,
		Category:   category,
		Graphs:     len(reports),
		Algorithms: bench.Summarize(reports),
	}
	sumPath := r.summaryPath(category)
	if err := writeFile(sumPath, func(w io.Writer) error {
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(summary); err != nil {
			return err
		}
		return enc.Close()
	}); err != nil {
		return err
	}

	r.logger.Info("saved results",
		zap.String("category", category),
		zap.String("file", out),
		zap.String("summary", sumPath))

	return nil
}
