// Package fanout runs one function over many items with a bounded number of
// goroutines. The approval service uses it to fetch flows for pending
// documents and to submit bulk decisions.
package fanout

import (
	"context"
	"fmt"
	"sync"
)

// Result is one item's outcome. Err is set on failure, Value otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for each item with at most maxWorkers in flight and returns
// the results in input order. maxWorkers below 1 means 1.
//
// Once ctx is done, items that have not started record ctx.Err() and fn is
// not called for them. A panic in fn becomes that item's error. Run returns
// after every started call has returned.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	slots := make(chan struct{}, max(maxWorkers, 1))
	var wg sync.WaitGroup

	for i := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case slots <- struct{}{}:
				defer func() { <-slots }()
			case <-ctx.Done():
				results[i].Err = ctx.Err()
				return
			}
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return
			}

			results[i] = call(ctx, items[i], fn)
		}()
	}

	wg.Wait()
	return results
}

func call[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	defer func() {
		if r := recover(); r != nil {
			res = Result[R]{Err: fmt.Errorf("fanout: panic: %v", r)}
		}
	}()

	val, err := fn(ctx, item)
	return Result[R]{Value: val, Err: err}
}
