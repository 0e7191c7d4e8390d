// Command execution for CLI commands.
//
// Information Hiding:
// - Query dispatch and answer caching hidden
// - Per-query error isolation hidden
// - Output formatting hidden

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/richinex/substrseq/storage"
	"github.com/richinex/substrseq/substr"
)

// ErrWordTooLong is reported for queries whose word exceeds MaxWordLen.
var ErrWordTooLong = errors.New("word exceeds maximum length")

// Options holds CLI execution options.
type Options struct {
	Mode       substr.BlockMode
	Format     string
	MaxWordLen int
	Logger     *slog.Logger
	Store      storage.AnswerStore // optional answer cache
}

// DefaultOptions returns default CLI options.
func DefaultOptions() Options {
	return Options{
		Mode:       substr.Distinct,
		Format:     "text",
		MaxWordLen: 100000,
	}
}

// Result is the outcome of one query.
type Result struct {
	Query  Query
	Char   byte
	Cached bool
	Err    error
}

// Summary counts the outcomes of a batch.
type Summary struct {
	RunID  string
	Total  int
	Failed int
	Cached int
}

// Runner solves queries one at a time. It is not safe for concurrent use.
type Runner struct {
	opts   Options
	solver *substr.Solver
	log    *slog.Logger
}

// NewRunner creates a runner for opts.
func NewRunner(opts Options) *Runner {
	if opts.MaxWordLen <= 0 {
		opts.MaxWordLen = DefaultOptions().MaxWordLen
	}
	log := opts.Logger
	if log == nil {
		log = discardLogger()
	}
	return &Runner{
		opts:   opts,
		solver: substr.NewSolver(opts.Mode),
		log:    log,
	}
}

// Solve answers a single query, consulting the answer cache when one is
// configured. Cache failures are logged and fall back to solving.
func (r *Runner) Solve(ctx context.Context, q Query) Result {
	res := Result{Query: q}
	if len(q.Word) > r.opts.MaxWordLen {
		res.Err = fmt.Errorf("%w: %d > %d", ErrWordTooLong, len(q.Word), r.opts.MaxWordLen)
		return res
	}

	mode := r.opts.Mode.String()
	if r.opts.Store != nil {
		cached, err := r.opts.Store.LookupAnswer(ctx, q.Word, q.K, mode)
		if err != nil {
			r.log.Warn("answer cache lookup failed", "error", err)
		} else if cached != nil {
			res.Char = cached.Char
			res.Cached = true
			return res
		}
	}

	ch, err := r.solver.Solve(q.Word, q.K)
	if err != nil {
		res.Err = err
		return res
	}
	res.Char = ch

	if r.opts.Store != nil {
		err := r.opts.Store.StoreAnswer(ctx, storage.Answer{Word: q.Word, K: q.K, Mode: mode, Char: ch})
		if err != nil {
			r.log.Warn("answer cache store failed", "error", err)
		}
	}
	return res
}

// RunBatch solves every query in order and writes one result line per query
// to w. A failed query is reported in place and does not stop the batch;
// the returned error is reserved for output and cancellation failures.
func (r *Runner) RunBatch(ctx context.Context, queries []Query, w io.Writer) (Summary, error) {
	out, err := newResultWriter(r.opts.Format, w)
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	if r.opts.Store != nil {
		id, err := r.opts.Store.BeginRun(ctx, r.opts.Mode.String())
		if err != nil {
			r.log.Warn("failed to record run", "error", err)
		}
		summary.RunID = id
	}

	for i, q := range queries {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		res := r.Solve(ctx, q)
		summary.Total++
		switch {
		case res.Err != nil:
			summary.Failed++
			r.log.Warn("query failed",
				"index", i+1,
				"word_len", len(q.Word),
				"k", q.K,
				"kind", errorKind(res.Err),
				"error", res.Err)
		case res.Cached:
			summary.Cached++
			r.log.Debug("query answered from cache", "index", i+1, "k", q.K)
		default:
			r.log.Debug("query solved", "index", i+1, "word_len", len(q.Word), "k", q.K)
		}

		if err := out.write(i+1, res); err != nil {
			return summary, fmt.Errorf("failed to write result %d: %w", i+1, err)
		}
	}

	if summary.RunID != "" {
		if err := r.opts.Store.FinishRun(ctx, summary.RunID, summary.Total, summary.Failed, summary.Cached); err != nil {
			r.log.Warn("failed to finish run", "run_id", summary.RunID, "error", err)
		}
	}

	r.log.Info("batch complete",
		"total", summary.Total,
		"failed", summary.Failed,
		"cached", summary.Cached,
		"mode", r.opts.Mode.String())
	return summary, nil
}
