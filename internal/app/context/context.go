// Package appctx provides request-scoped memoization for orchestration
// services.
//
// A RequestContext is created per HTTP request by the AppContext middleware
// and carried in the request context. Services fetch through it so that
// repeated reads of the same backend resource within one request cost a
// single call, even when the reads run concurrently:
//
//	flow, err := appctx.Fetch(ctx, "flow:"+docID, func(ctx context.Context) (*approval.Flow, error) {
//		return s.docs.GetApprovalFlow(ctx, docID)
//	})
//
// Writes use Set for read-your-writes and Invalidate to force a re-read.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. This indicates a programming error where
// the same cache key is used with different types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// RequestContext is a request-scoped context wrapper with an in-memory
// cache. It embeds context.Context and is safe for concurrent use by the
// goroutines serving one request. Do not share it between requests.
type RequestContext struct {
	context.Context

	group singleflight.Group

	mu    sync.Mutex
	cache map[string]cacheEntry
}

// cacheEntry stores the result of a fetch, including any error. Errors are
// cached too so a failing resource is not hit again within the request.
type cacheEntry struct {
	value any
	err   error
}

type contextKey struct{}

// New creates a RequestContext wrapping ctx with an empty cache.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx, if any.
func FromContext(ctx context.Context) (*RequestContext, bool) {
	rc, ok := ctx.Value(contextKey{}).(*RequestContext)
	return rc, ok
}

// GetOrFetch returns the cached value for key, or calls fetchFn to fetch and
// cache it. Concurrent callers for the same key share one fetchFn call.
// fetchFn receives the caller's ctx.
//
// Cancellation errors are returned but not cached. The same key must always
// be used with the same type T, otherwise ErrTypeMismatch is returned.
func GetOrFetch[T any](
	ctx context.Context, rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error),
) (T, error) {
	if entry, ok := rc.lookup(key); ok {
		return typed[T](key, entry)
	}

	v, err, _ := rc.group.Do(key, func() (any, error) {
		if entry, ok := rc.lookup(key); ok {
			return entry.value, entry.err
		}
		val, err := fetchFn(ctx)
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			rc.store(key, cacheEntry{value: val, err: err})
		}
		return val, err
	})
	return typed[T](key, cacheEntry{value: v, err: err})
}

// Fetch memoizes fetchFn through the RequestContext in ctx. Without one it
// calls fetchFn directly.
func Fetch[T any](ctx context.Context, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	rc, ok := FromContext(ctx)
	if !ok {
		return fetchFn(ctx)
	}
	return GetOrFetch(ctx, rc, key, fetchFn)
}

// Set caches value under key, replacing any earlier entry.
func (rc *RequestContext) Set(key string, value any) {
	rc.store(key, cacheEntry{value: value})
}

// Invalidate drops key so the next fetch goes to the source.
func (rc *RequestContext) Invalidate(key string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	delete(rc.cache, key)
}

func (rc *RequestContext) lookup(key string) (cacheEntry, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	entry, ok := rc.cache[key]
	return entry, ok
}

func (rc *RequestContext) store(key string, entry cacheEntry) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.cache[key] = entry
}

func typed[T any](key string, entry cacheEntry) (T, error) {
	var zero T
	if entry.err != nil {
		return zero, entry.err
	}
	if entry.value == nil {
		return zero, nil
	}
	v, ok := entry.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
	}
	return v, nil
}

// DataProvider is a type-safe wrapper around GetOrFetch for a specific data
// type. It binds a cache key and fetch function together, allowing callers
// to retrieve data without specifying the key and function each time.
type DataProvider[T any] struct {
	key     string
	fetchFn func(ctx context.Context) (T, error)
}

// NewDataProvider creates a DataProvider with the given cache key and fetch
// function.
func NewDataProvider[T any](key string, fetchFn func(ctx context.Context) (T, error)) *DataProvider[T] {
	return &DataProvider[T]{key: key, fetchFn: fetchFn}
}

// Get returns the cached value or fetches it through the RequestContext in
// ctx.
func (p *DataProvider[T]) Get(ctx context.Context) (T, error) {
	return Fetch(ctx, p.key, p.fetchFn)
}
