package artifact

import (
	"context"

	"go.trai.ch/hdrview/internal/core/domain"
	"go.trai.ch/zerr"
)

// RunContext is passed to a work item while it runs.
type RunContext struct {
	ctx   context.Context
	cache *Cache
	entry *entry
	deps  map[*entry]struct{}
}

// Context returns the context of the evaluation. It is never cancelled.
func (rc *RunContext) Context() context.Context {
	return rc.ctx
}

// Trigger returns the invalidation trigger of the running entry. It may be
// called any number of times from any goroutine.
func (rc *RunContext) Trigger() func() {
	c, e := rc.cache, rc.entry
	return func() {
		c.invalidate(e)
	}
}

// WatchPath invalidates the running entry whenever path is written.
// Without a configured watcher it does nothing.
func (rc *RunContext) WatchPath(path string) error {
	if rc.cache.watcher == nil {
		return nil
	}
	if err := rc.cache.watcher.Watch(path, rc.Trigger()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", path)
	}
	return nil
}

// Require evaluates desc as a dependency of the running entry. Invalidating
// desc afterwards also invalidates the running entry.
func Require[T any, D Descriptor[T]](rc *RunContext, desc D) (T, error) {
	child := rc.cache.link(rc, desc, runner[T](desc))
	if child == rc.entry {
		var zero T
		return zero, zerr.With(zerr.New("work item requires itself"), "artifact", child.String())
	}
	return typed[T](rc.cache.eval(rc.ctx, child))
}
