package calc

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Outcome pairs a request with its response or error. Index is the
// request's position in the batch.
type Outcome struct {
	Index    int
	Request  Request
	Response Response
	Err      error
}

// Submit evaluates req on its own goroutine. The returned channel yields
// exactly one Outcome and is then closed, unless ctx is done before the
// evaluation finishes, in which case the outcome is dropped and the channel
// is closed empty.
func Submit(ctx context.Context, req Request, opts ...Option) <-chan Outcome {
	ch := make(chan Outcome, 1)
	go func() {
		defer close(ch)
		resp, err := Evaluate(req, opts...)
		if ctx.Err() != nil {
			log.Debugw("submit: outcome dropped", "name", req.Name, "op", req.Op.String(), "err", ctx.Err())
			return
		}
		ch <- Outcome{Request: req, Response: resp, Err: err}
	}()

	return ch
}

// EvaluateAll evaluates reqs concurrently on at most Options.Workers
// goroutines and returns one Outcome per request, in input order.
//
// A request that fails is reported in its Outcome.Err; the batch carries on.
// Only ctx cancellation stops it early: requests not yet started keep a
// zero Response and the context error is returned alongside the partial
// outcomes.
func EvaluateAll(ctx context.Context, reqs []Request, opts ...Option) ([]Outcome, error) {
	o := NewOptions(opts...)
	out := make([]Outcome, len(reqs))
	for i, req := range reqs {
		out[i] = Outcome{Index: i, Request: req}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, req := range reqs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			resp, err := Evaluate(req, opts...)
			if err != nil {
				log.Warnw("request failed", "index", i, "name", req.Name, "op", req.Op.String(), "err", err)
			}
			out[i].Response, out[i].Err = resp, err

			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return out, calcErrorf("EvaluateAll", err)
	}
	log.Infow("batch evaluated", "requests", len(reqs), "workers", o.workers)

	return out, nil
}
