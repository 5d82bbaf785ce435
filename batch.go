package sparsevec

import (
	"context"
	"reflect"
	"time"

	"golang.org/x/sync/errgroup"
)

// BatchDot computes query.Dot(c) for every candidate c, with at most
// WithConcurrency products in flight. scores[i] belongs to candidates[i].
//
// A nil query or candidate fails with *ErrInvalidArgumentType before any
// product is computed. The first failing product or a cancelled context
// aborts the batch; no partial scores are returned in that case.
func BatchDot[V Dotter[V]](ctx context.Context, query V, candidates []V, optFns ...Option) ([]int64, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	start := time.Now()
	scores, err := batchDot(ctx, query, candidates, opts.concurrency)

	opts.metricsCollector.RecordBatchDot(len(candidates), time.Since(start), err)
	opts.logger.LogBatchDot(ctx, len(candidates), opts.concurrency, err)

	if err != nil {
		return nil, err
	}
	return scores, nil
}

func batchDot[V Dotter[V]](ctx context.Context, query V, candidates []V, concurrency int) ([]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if isNil(query) {
		return nil, invalidArgumentType(query)
	}
	for _, c := range candidates {
		if isNil(c) {
			return nil, invalidArgumentType(c)
		}
	}

	scores := make([]int64, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, c := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := query.Dot(c)
			if err != nil {
				return err
			}
			scores[i] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
