package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/mstbench/bench"
	"github.com/katalvlaran/mstbench/codec"
	"github.com/katalvlaran/mstbench/config"
)

// ErrNilConfig indicates New was called without a configuration.
var ErrNilConfig = errors.New("runner: nil config")

// Sink receives the reports of each solved category, e.g. *store.Store.
type Sink interface {
	SaveReports(ctx context.Context, runID, category string, reports []bench.GraphReport) error
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. Panics if logger is nil.
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic("runner: WithLogger(nil)")
	}
	return func(r *Runner) { r.logger = logger }
}

// WithRecorder replaces the default metrics-free Recorder.
// Panics if rec is nil.
func WithRecorder(rec *bench.Recorder) Option {
	if rec == nil {
		panic("runner: WithRecorder(nil)")
	}
	return func(r *Runner) { r.recorder = rec }
}

// WithSink archives every solved category into s.
func WithSink(s Sink) Option {
	return func(r *Runner) { r.sink = s }
}

// WithRunID overrides the generated run id.
func WithRunID(id string) Option {
	return func(r *Runner) { r.runID = id }
}

// Runner drives generation and solving for every configured category.
type Runner struct {
	cfg      *config.Config
	codec    codec.Codec
	recorder *bench.Recorder
	logger   *zap.Logger
	sink     Sink
	runID    string
}

// New validates cfg and builds a Runner. Without options it logs nowhere,
// records no metrics, archives nothing and draws a fresh UUID run id.
func New(cfg *config.Config, opts ...Option) (*Runner, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	c, err := codec.ForFormat(cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}

	r := &Runner{
		cfg:      cfg,
		codec:    c,
		recorder: bench.NewRecorder(),
		logger:   zap.NewNop(),
		runID:    uuid.New().String(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// RunID identifies this Runner's solve results in the sink and summaries.
func (r *Runner) RunID() string {
	return r.runID
}

// All runs Generate, then Solve.
func (r *Runner) All(ctx context.Context) error {
	if err := r.Generate(ctx); err != nil {
		return err
	}

	return r.Solve(ctx)
}
