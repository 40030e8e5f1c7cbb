package artifact

import (
	"context"
	"sync/atomic"

	"go.trai.ch/hdrview/internal/core/domain"
)

// Handle entitles its holder to the current output of one cache entry.
// Several handles may alias the same entry.
type Handle[T any] struct {
	cache    *Cache
	entry    *entry
	released atomic.Bool
}

// NewHandle returns a handle to the entry identified by desc.
//
// The output type must be given explicitly since it cannot be inferred from
// the descriptor: artifact.NewHandle[fs.Contents](cache, load).
func NewHandle[T any, D Descriptor[T]](c *Cache, desc D) *Handle[T] {
	return &Handle[T]{
		cache: c,
		entry: c.acquire(desc, runner[T](desc)),
	}
}

func runner[T any, D Descriptor[T]](desc D) func(*RunContext) (any, error) {
	return func(rc *RunContext) (any, error) {
		v, err := desc.Run(rc)
		return v, err
	}
}

func typed[T any](v any, err error) (T, error) {
	t, _ := v.(T)
	return t, err
}

// Eval returns the output of the entry, running the work item if the entry
// was never evaluated or has been invalidated since. A failed run is cached
// like a successful one.
func (h *Handle[T]) Eval(ctx context.Context) (T, error) {
	if h.released.Load() {
		var zero T
		return zero, domain.ErrEntryReleased
	}
	return typed[T](h.cache.eval(ctx, h.entry))
}

// IsUpToDate reports whether the last evaluation is still valid.
func (h *Handle[T]) IsUpToDate() bool {
	if h.released.Load() {
		return false
	}
	return h.cache.upToDate(h.entry)
}

// Invalidate marks the entry and its dependents stale.
func (h *Handle[T]) Invalidate() {
	if h.released.Load() {
		return
	}
	h.cache.invalidate(h.entry)
}

// Release drops the handle's reference. Calling it more than once is a no-op.
func (h *Handle[T]) Release() {
	if h.released.CompareAndSwap(false, true) {
		h.cache.release(h.entry)
	}
}

// String describes the work item behind the handle.
func (h *Handle[T]) String() string {
	return h.entry.String()
}
