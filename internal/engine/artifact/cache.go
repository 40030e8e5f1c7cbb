// Package artifact implements an incremental, invalidation-driven memoization cache.
//
// A work item is described by a comparable descriptor value that knows how to
// compute its output. Equal descriptors share one cache entry. Entries are
// re-evaluated lazily after their invalidation trigger fires, either directly
// or through a dependency that was read during the last evaluation.
package artifact

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.trai.ch/hdrview/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

// Worker computes the output of a descriptor.
type Worker[T any] interface {
	Run(rc *RunContext) (T, error)
}

// Descriptor is an immutable work item. Its identity is the value itself.
type Descriptor[T any] interface {
	comparable
	Worker[T]
}

type entryID uint32

type entry struct {
	id   entryID
	desc any
	run  func(rc *RunContext) (any, error)

	// gen counts invalidations. A run captures it before starting.
	gen    atomic.Uint64
	flight singleflight.Group

	// Guarded by Cache.mu.
	live       bool
	refs       int
	evaluated  bool
	evalGen    uint64
	value      any
	err        error
	deps       map[*entry]struct{}
	dependents map[*entry]struct{}
}

func (e *entry) String() string {
	if s, ok := e.desc.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", e.desc)
}

type result struct {
	value any
	err   error
}

// Stats is a snapshot of cache occupancy.
type Stats struct {
	// Entries is the number of live entries.
	Entries int
	// Runs is the total number of work item executions.
	Runs uint64
}

// Cache memoizes descriptor outputs.
type Cache struct {
	mu      sync.Mutex
	index   map[any]entryID
	entries []*entry
	free    []entryID

	policy  EvictionPolicy
	watcher ports.PathWatcher
	runs    atomic.Uint64
}

// Option configures a Cache.
type Option func(*Cache)

// WithEvictionPolicy sets the policy applied to unreferenced entries.
func WithEvictionPolicy(p EvictionPolicy) Option {
	return func(c *Cache) {
		c.policy = p
	}
}

// WithPathWatcher sets the watcher used by RunContext.WatchPath.
func WithPathWatcher(w ports.PathWatcher) Option {
	return func(c *Cache) {
		c.watcher = w
	}
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		index: make(map[any]entryID),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Policy returns the configured eviction policy.
func (c *Cache) Policy() EvictionPolicy {
	return c.policy
}

// Stats returns a snapshot of the cache occupancy.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	n := len(c.index)
	c.mu.Unlock()
	return Stats{Entries: n, Runs: c.runs.Load()}
}

// acquire returns the entry for desc with one more reference, creating it if needed.
func (c *Cache) acquire(desc any, run func(*RunContext) (any, error)) *entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.lookupLocked(desc, run)
	e.refs++
	return e
}

func (c *Cache) lookupLocked(desc any, run func(*RunContext) (any, error)) *entry {
	if id, ok := c.index[desc]; ok {
		return c.entries[id]
	}

	var id entryID
	if n := len(c.free); n > 0 {
		id = c.free[n-1]
		c.free = c.free[:n-1]
	} else {
		id = entryID(len(c.entries))
		c.entries = append(c.entries, nil)
	}

	e := &entry{
		id:         id,
		desc:       desc,
		run:        run,
		live:       true,
		dependents: make(map[*entry]struct{}),
	}
	c.entries[id] = e
	c.index[desc] = id
	return e
}

// current returns the stored output if it reflects the latest invalidation.
func (c *Cache) current(e *entry) (result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e.live && e.evaluated && e.evalGen == e.gen.Load() {
		return result{value: e.value, err: e.err}, true
	}
	return result{}, false
}

func (c *Cache) upToDate(e *entry) bool {
	_, ok := c.current(e)
	return ok
}

// eval returns the current output of e, running its work item at most once
// for all concurrent callers.
func (c *Cache) eval(ctx context.Context, e *entry) (any, error) {
	if r, ok := c.current(e); ok {
		return r.value, r.err
	}

	v, _, _ := e.flight.Do("eval", func() (any, error) {
		if r, ok := c.current(e); ok {
			return r, nil
		}

		gen := e.gen.Load()
		rc := &RunContext{
			ctx:   context.WithoutCancel(ctx),
			cache: c,
			entry: e,
			deps:  make(map[*entry]struct{}),
		}
		c.runs.Add(1)
		value, err := e.run(rc)
		c.commit(e, rc, value, err, gen)
		return result{value: value, err: err}, nil
	})

	r := v.(result) //nolint:forcetypeassert // flight only ever returns result
	return r.value, r.err
}

// commit stores the outcome of a run started at generation gen and replaces
// the dependency edges of e with those recorded by rc.
func (c *Cache) commit(e *entry, rc *RunContext, value any, err error, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !e.live {
		for d := range rc.deps {
			delete(d.dependents, e)
			c.unrefLocked(d)
		}
		return
	}

	e.value, e.err = value, err
	e.evaluated = true
	e.evalGen = gen

	old := e.deps
	e.deps = rc.deps
	for d := range old {
		if _, kept := e.deps[d]; !kept {
			delete(d.dependents, e)
		}
		// Either the edge is gone, or the run took a second reference to it.
		c.unrefLocked(d)
	}
}

// link returns the entry for desc as a dependency of parent during rc.
func (c *Cache) link(rc *RunContext, desc any, run func(*RunContext) (any, error)) *entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	child := c.lookupLocked(desc, run)
	if child == rc.entry {
		return child
	}
	if _, ok := rc.deps[child]; !ok {
		child.refs++
		rc.deps[child] = struct{}{}
	}
	child.dependents[rc.entry] = struct{}{}
	return child
}

// invalidate marks e and every transitive dependent as stale.
func (c *Cache) invalidate(e *entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !e.live {
		return
	}

	seen := map[*entry]struct{}{e: {}}
	stack := []*entry{e}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cur.gen.Add(1)
		for d := range cur.dependents {
			if _, ok := seen[d]; !ok {
				seen[d] = struct{}{}
				stack = append(stack, d)
			}
		}
	}
}

func (c *Cache) release(e *entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unrefLocked(e)
}

func (c *Cache) unrefLocked(e *entry) {
	e.refs--
	if e.refs > 0 || c.policy != RefCounted || !e.live {
		return
	}

	e.live = false
	delete(c.index, e.desc)
	c.entries[e.id] = nil
	c.free = append(c.free, e.id)

	deps := e.deps
	e.deps = nil
	e.value, e.err = nil, nil
	for d := range deps {
		delete(d.dependents, e)
		c.unrefLocked(d)
	}
}
