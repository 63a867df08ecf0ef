// Package bulk validates batches of candidates concurrently. Validator trees
// are immutable and referentially transparent, so a single tree can be
// applied to many candidates in parallel without synchronization; this
// package provides the worker-pool plumbing around that guarantee.
package bulk

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/alitto/pond/v2"

	"github.com/amp-labs/amp-validation/errors"
	"github.com/amp-labs/amp-validation/report"
	"github.com/amp-labs/amp-validation/validity"
)

// Options configures a batch check.
type Options struct {
	// Concurrency is the maximum number of candidates checked at once.
	// Defaults to runtime.NumCPU().
	Concurrency int

	// Logger, when non-nil, receives a Debug record for every invalid
	// candidate. The core validators never log; this is the only logging
	// surface in the library and it is opt-in.
	Logger *slog.Logger
}

// Option is a functional option for configuring a batch check.
type Option func(*Options)

// WithConcurrency sets the maximum number of candidates checked at once.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		o.Concurrency = n
	}
}

// WithLogger sets the logger that receives per-failure Debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// CheckAll validates every candidate against the validator on a bounded
// worker pool and returns one Result per candidate, in candidate order.
//
// If the context is cancelled before every candidate has been checked,
// CheckAll returns nil results and the context's error: a partial batch would
// be indistinguishable from a fully valid one.
func CheckAll[T any](
	ctx context.Context,
	validator validity.Validator[T],
	candidates []T,
	opts ...Option,
) ([]validity.Result, error) {
	options := Options{
		Concurrency: runtime.NumCPU(),
	}
	for _, o := range opts {
		o(&options)
	}

	results := make([]validity.Result, len(candidates))

	pool := pond.NewPool(options.Concurrency, pond.WithContext(ctx))

	for i, candidate := range candidates {
		i, candidate := i, candidate

		pool.Submit(func() {
			// Each task owns its own slice index; no locking needed.
			results[i] = validator.CheckValid(candidate)

			if options.Logger != nil && !results[i].IsValid() {
				options.Logger.Debug("candidate failed validation",
					"index", i,
					"reasons", results[i].String())
			}
		})
	}

	pool.StopAndWait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// CheckAllErr is a convenience wrapper around CheckAll for callers that want
// a single error instead of per-candidate results: it returns nil when every
// candidate is valid, or the invalid candidates' errors (each wrapping
// errors.ErrValidation and naming the candidate's index) combined into one.
func CheckAllErr[T any](
	ctx context.Context,
	validator validity.Validator[T],
	candidates []T,
	opts ...Option,
) error {
	results, err := CheckAll(ctx, validator, candidates, opts...)
	if err != nil {
		return err
	}

	var collection errors.Collection

	for i, result := range results {
		if resultErr := report.Error(result); resultErr != nil {
			collection.Add(fmt.Errorf("candidate %d: %w", i, resultErr))
		}
	}

	return collection.GetError()
}
