package artifact_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hdrview/internal/core/domain"
	"go.trai.ch/hdrview/internal/core/ports/mocks"
	"go.trai.ch/hdrview/internal/engine/artifact"
	"go.uber.org/mock/gomock"
)

// counted is a work item that returns its name and counts executions.
type counted struct {
	Name  string
	Runs  *atomic.Int32
	Fail  bool
	Block chan struct{}
}

func (c counted) Run(_ *artifact.RunContext) (string, error) {
	c.Runs.Add(1)
	if c.Block != nil {
		<-c.Block
	}
	if c.Fail {
		return "", errors.New("boom")
	}
	return "out:" + c.Name, nil
}

// upper depends on a counted work item.
type upper struct {
	Child counted
	Runs  *atomic.Int32
}

func (u upper) Run(rc *artifact.RunContext) (string, error) {
	u.Runs.Add(1)
	v, err := artifact.Require[string](rc, u.Child)
	if err != nil {
		return "", err
	}
	return "upper(" + v + ")", nil
}

// selfInvalidating fires its own trigger while running.
type selfInvalidating struct {
	Runs *atomic.Int32
}

func (s selfInvalidating) Run(rc *artifact.RunContext) (int32, error) {
	n := s.Runs.Add(1)
	if n == 1 {
		rc.Trigger()()
	}
	return n, nil
}

type watched struct {
	Path string
	Runs *atomic.Int32
}

func (w watched) Run(rc *artifact.RunContext) (int32, error) {
	if err := rc.WatchPath(w.Path); err != nil {
		return 0, err
	}
	return w.Runs.Add(1), nil
}

func TestCache_Idempotence(t *testing.T) {
	c := artifact.New()
	runs := &atomic.Int32{}
	h := artifact.NewHandle[string](c, counted{Name: "a", Runs: runs})

	first, err := h.Eval(t.Context())
	require.NoError(t, err)
	second, err := h.Eval(t.Context())
	require.NoError(t, err)

	assert.Equal(t, "out:a", first)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), runs.Load())
	assert.True(t, h.IsUpToDate())
	assert.Equal(t, uint64(1), c.Stats().Runs)
}

func TestCache_UnevaluatedIsNotUpToDate(t *testing.T) {
	c := artifact.New()
	h := artifact.NewHandle[string](c, counted{Name: "a", Runs: &atomic.Int32{}})

	assert.False(t, h.IsUpToDate())
}

func TestCache_Invalidation(t *testing.T) {
	c := artifact.New()
	runs := &atomic.Int32{}
	h := artifact.NewHandle[string](c, counted{Name: "a", Runs: runs})

	_, err := h.Eval(t.Context())
	require.NoError(t, err)

	h.Invalidate()
	assert.False(t, h.IsUpToDate())

	_, err = h.Eval(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int32(2), runs.Load())
	assert.True(t, h.IsUpToDate())
}

func TestCache_StructuralIdentity(t *testing.T) {
	c := artifact.New()
	runs := &atomic.Int32{}
	h1 := artifact.NewHandle[string](c, counted{Name: "a", Runs: runs})
	h2 := artifact.NewHandle[string](c, counted{Name: "a", Runs: runs})
	other := artifact.NewHandle[string](c, counted{Name: "b", Runs: runs})

	_, err := h1.Eval(t.Context())
	require.NoError(t, err)
	assert.True(t, h2.IsUpToDate(), "equal descriptors must share one entry")
	assert.False(t, other.IsUpToDate())

	h2.Invalidate()
	assert.False(t, h1.IsUpToDate())
	assert.Equal(t, 2, c.Stats().Entries)
}

func TestCache_FailureIsCached(t *testing.T) {
	c := artifact.New()
	runs := &atomic.Int32{}
	h := artifact.NewHandle[string](c, counted{Name: "bad", Runs: runs, Fail: true})

	_, err := h.Eval(t.Context())
	require.ErrorContains(t, err, "boom")
	_, err = h.Eval(t.Context())
	require.ErrorContains(t, err, "boom")

	assert.Equal(t, int32(1), runs.Load())
	assert.True(t, h.IsUpToDate())

	h.Invalidate()
	_, err = h.Eval(t.Context())
	require.Error(t, err)
	assert.Equal(t, int32(2), runs.Load())
}

func TestCache_CollapsedConcurrentEvaluation(t *testing.T) {
	const callers = 16

	c := artifact.New()
	runs := &atomic.Int32{}
	block := make(chan struct{})
	h := artifact.NewHandle[string](c, counted{Name: "slow", Runs: runs, Block: block})

	var wg sync.WaitGroup
	results := make([]string, callers)
	for i := range callers {
		wg.Go(func() {
			v, err := h.Eval(t.Context())
			assert.NoError(t, err)
			results[i] = v
		})
	}

	close(block)
	wg.Wait()

	assert.Equal(t, int32(1), runs.Load())
	for _, v := range results {
		assert.Equal(t, "out:slow", v)
	}
}

func TestCache_InvalidationDuringRun(t *testing.T) {
	c := artifact.New()
	runs := &atomic.Int32{}
	h := artifact.NewHandle[int32](c, selfInvalidating{Runs: runs})

	v, err := h.Eval(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int32(1), v, "the caller receives the output available at completion")
	assert.False(t, h.IsUpToDate(), "a trigger fired mid-run leaves the entry dirty")

	v, err = h.Eval(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int32(2), v)
	assert.True(t, h.IsUpToDate())
}

func TestCache_DependencyPropagation(t *testing.T) {
	c := artifact.New()
	childRuns := &atomic.Int32{}
	parentRuns := &atomic.Int32{}
	child := counted{Name: "leaf", Runs: childRuns}

	parent := artifact.NewHandle[string](c, upper{Child: child, Runs: parentRuns})
	childHandle := artifact.NewHandle[string](c, child)

	v, err := parent.Eval(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "upper(out:leaf)", v)
	assert.True(t, childHandle.IsUpToDate(), "the dependency was evaluated through the parent")

	childHandle.Invalidate()
	assert.False(t, parent.IsUpToDate())

	_, err = parent.Eval(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int32(2), parentRuns.Load())
	assert.Equal(t, int32(2), childRuns.Load())

	// Invalidating the parent alone does not touch the dependency.
	parent.Invalidate()
	assert.True(t, childHandle.IsUpToDate())
	_, err = parent.Eval(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int32(3), parentRuns.Load())
	assert.Equal(t, int32(2), childRuns.Load())
}

func TestCache_WatchPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	watcher := mocks.NewMockPathWatcher(ctrl)

	var onWrite func()
	watcher.EXPECT().
		Watch("/assets/a.glsl", gomock.Any()).
		DoAndReturn(func(_ string, cb func()) error {
			onWrite = cb
			return nil
		}).
		Times(2)

	c := artifact.New(artifact.WithPathWatcher(watcher))
	runs := &atomic.Int32{}
	h := artifact.NewHandle[int32](c, watched{Path: "/assets/a.glsl", Runs: runs})

	_, err := h.Eval(t.Context())
	require.NoError(t, err)
	require.NotNil(t, onWrite)

	onWrite()
	assert.False(t, h.IsUpToDate())

	_, err = h.Eval(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int32(2), runs.Load())
}

func TestCache_WatchPathFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	watcher := mocks.NewMockPathWatcher(ctrl)
	watcher.EXPECT().Watch(gomock.Any(), gomock.Any()).Return(errors.New("too many open files"))

	c := artifact.New(artifact.WithPathWatcher(watcher))
	h := artifact.NewHandle[int32](c, watched{Path: "/assets/a.glsl", Runs: &atomic.Int32{}})

	_, err := h.Eval(t.Context())
	require.ErrorContains(t, err, domain.ErrWatchFailed.Error())
	require.ErrorContains(t, err, "too many open files")
}

func TestCache_EvictionPolicies(t *testing.T) {
	t.Run("retain forever keeps released entries", func(t *testing.T) {
		c := artifact.New(artifact.WithEvictionPolicy(artifact.RetainForever))
		runs := &atomic.Int32{}
		desc := counted{Name: "a", Runs: runs}

		h := artifact.NewHandle[string](c, desc)
		_, err := h.Eval(t.Context())
		require.NoError(t, err)
		h.Release()

		assert.Equal(t, 1, c.Stats().Entries)

		again := artifact.NewHandle[string](c, desc)
		assert.True(t, again.IsUpToDate())
		_, err = again.Eval(t.Context())
		require.NoError(t, err)
		assert.Equal(t, int32(1), runs.Load())
	})

	t.Run("refcounted evicts on last release", func(t *testing.T) {
		c := artifact.New(artifact.WithEvictionPolicy(artifact.RefCounted))
		runs := &atomic.Int32{}
		desc := counted{Name: "a", Runs: runs}

		h1 := artifact.NewHandle[string](c, desc)
		h2 := artifact.NewHandle[string](c, desc)
		_, err := h1.Eval(t.Context())
		require.NoError(t, err)

		h1.Release()
		h1.Release()
		assert.Equal(t, 1, c.Stats().Entries, "h2 still references the entry")
		assert.True(t, h2.IsUpToDate())

		h2.Release()
		assert.Equal(t, 0, c.Stats().Entries)

		fresh := artifact.NewHandle[string](c, desc)
		assert.False(t, fresh.IsUpToDate())
		_, err = fresh.Eval(t.Context())
		require.NoError(t, err)
		assert.Equal(t, int32(2), runs.Load())
	})

	t.Run("refcounted evicts unreferenced dependencies", func(t *testing.T) {
		c := artifact.New(artifact.WithEvictionPolicy(artifact.RefCounted))
		parent := artifact.NewHandle[string](c, upper{
			Child: counted{Name: "leaf", Runs: &atomic.Int32{}},
			Runs:  &atomic.Int32{},
		})

		_, err := parent.Eval(t.Context())
		require.NoError(t, err)
		assert.Equal(t, 2, c.Stats().Entries)

		parent.Release()
		assert.Equal(t, 0, c.Stats().Entries)
	})

	t.Run("released handle fails", func(t *testing.T) {
		c := artifact.New(artifact.WithEvictionPolicy(artifact.RefCounted))
		h := artifact.NewHandle[string](c, counted{Name: "a", Runs: &atomic.Int32{}})
		h.Release()

		_, err := h.Eval(t.Context())
		require.ErrorContains(t, err, domain.ErrEntryReleased.Error())
		assert.False(t, h.IsUpToDate())
	})

	t.Run("trigger of evicted entry is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		watcher := mocks.NewMockPathWatcher(ctrl)
		var onWrite func()
		watcher.EXPECT().Watch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ string, cb func()) error {
			onWrite = cb
			return nil
		})

		c := artifact.New(artifact.WithEvictionPolicy(artifact.RefCounted), artifact.WithPathWatcher(watcher))
		h := artifact.NewHandle[int32](c, watched{Path: "/x", Runs: &atomic.Int32{}})
		_, err := h.Eval(t.Context())
		require.NoError(t, err)
		h.Release()

		assert.NotPanics(t, onWrite)
		assert.Equal(t, 0, c.Stats().Entries)
	})
}

func TestParseEvictionPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    artifact.EvictionPolicy
		wantErr bool
	}{
		{in: "", want: artifact.RetainForever},
		{in: "retain", want: artifact.RetainForever},
		{in: "refcount", want: artifact.RefCounted},
		{in: "lru", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := artifact.ParseEvictionPolicy(tt.in)
			if tt.wantErr {
				require.ErrorContains(t, err, domain.ErrInvalidEvictionPolicy.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			roundTrip, err := artifact.ParseEvictionPolicy(got.String())
			require.NoError(t, err)
			assert.Equal(t, got, roundTrip)
		})
	}
}
