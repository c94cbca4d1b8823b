package raycast

import (
	"context"
	"runtime"

	"barriercast/contact"
	"barriercast/geometry"
	"barriercast/ray"

	"github.com/golang/glog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"golang.org/x/xerrors"
)

// Recorder receives the outcome of every cast in a batch.  See Outcome for
// the possible values.
type Recorder interface {
	Record(ctx context.Context, outcome string)
}

// BatchResult is the outcome of casting one ray of a batch.  Err is nil on a
// hit and ErrNoHit otherwise.
type BatchResult struct {
	Hit contact.RayHit
	Err error
}

type batchConfig struct {
	parallelism int
	recorder    Recorder
}

type BatchOption func(c *batchConfig)

// WithParallelism bounds the number of rays cast at once.  Values below 1
// are ignored.
func WithParallelism(n int) BatchOption {
	return func(c *batchConfig) {
		if n >= 1 {
			c.parallelism = n
		}
	}
}

func WithRecorder(r Recorder) BatchOption {
	return func(c *batchConfig) {
		c.recorder = r
	}
}

// CastBatch runs CastWide for every ray against the same barriers, spread
// over several goroutines.  Results come back in the order of rays.
//
// Like CastWide, it panics with a *PreconditionError if bs is empty.  The
// only error it returns is the context's, if ctx ends before every ray has
// been cast.
func (c *Caster) CastBatch(ctx context.Context, rays []ray.Ray, bs []geometry.Barrier, opts ...BatchOption) ([]BatchResult, error) {
	if len(bs) == 0 {
		panic(&PreconditionError{Op: "CastBatch", Msg: "barrier slice cannot be empty"})
	}

	cfg := &batchConfig{
		parallelism: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	tracer := otel.Tracer("barriercast/raycast")
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Caster.CastBatch")
	defer span.End()

	span.SetAttributes(
		attribute.Int("rays", len(rays)),
		attribute.Int("barriers", len(bs)),
		attribute.Int("parallelism", cfg.parallelism),
	)

	results := make([]BatchResult, len(rays))
	sem := semaphore.NewWeighted(int64(cfg.parallelism))
	g, gctx := errgroup.WithContext(ctx)

	var schedErr error
	for i := range rays {
		if err := gctx.Err(); err != nil {
			schedErr = err
			break
		}
		if err := sem.Acquire(gctx, 1); err != nil {
			schedErr = err
			break
		}

		g.Go(func() error {
			defer sem.Release(1)
			if err := gctx.Err(); err != nil {
				return err
			}
			hit, err := c.CastWide(rays[i], bs)
			results[i] = BatchResult{Hit: hit, Err: err}
			if cfg.recorder != nil {
				cfg.recorder.Record(gctx, Outcome(err))
			}
			return nil
		})
	}

	// Workers only fail when the context ends before they start.
	if err := g.Wait(); err != nil && schedErr == nil {
		schedErr = err
	}

	if schedErr != nil {
		span.RecordError(schedErr)
		span.SetStatus(codes.Error, "batch interrupted")
		return nil, xerrors.Errorf("while casting batch: %w", schedErr)
	}

	hits := 0
	for _, r := range results {
		if r.Err == nil {
			hits++
		}
	}
	span.SetAttributes(attribute.Int("hits", hits))

	glog.V(2).Infof("Cast batch of %d rays against %d barriers: %d hits", len(rays), len(bs), hits)

	return results, nil
}
