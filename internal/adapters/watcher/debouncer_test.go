package watcher_test

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hdrview/internal/adapters/watcher"
)

func TestDebouncer_SinglePath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var batches [][]string
		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			batches = append(batches, paths)
		})

		d.Add("/assets/shaders/linear.wgsl")

		time.Sleep(50 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, batches, "nothing is delivered inside the window")

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		require.Len(t, batches, 1)
		assert.Equal(t, []string{"/assets/shaders/linear.wgsl"}, batches[0])
	})
}

func TestDebouncer_RapidWritesCoalesce(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var batches [][]string
		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			batches = append(batches, paths)
		})

		// An editor writing, truncating and rewriting within the window.
		for range 5 {
			d.Add("/assets/a.wgsl")
			time.Sleep(20 * time.Millisecond)
		}
		d.Add("/assets/b.wgsl")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, batches, 1)
		assert.Equal(t, []string{"/assets/a.wgsl", "/assets/b.wgsl"}, batches[0])
	})
}

func TestDebouncer_SeparateBursts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		calls := 0
		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			calls++
		})

		d.Add("/a")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		d.Add("/a")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, 2, calls)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var got []string
		d := watcher.NewDebouncer(time.Hour, func(paths []string) {
			got = paths
		})

		d.Add("/b")
		d.Add("/a")
		d.Flush()

		assert.Equal(t, []string{"/a", "/b"}, got)

		got = nil
		d.Flush()
		assert.Nil(t, got, "an empty flush does not call back")
	})
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		calls := 0
		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			calls++
		})

		d.Add("/a")
		d.Stop()
		d.Add("/b")

		time.Sleep(time.Second)
		synctest.Wait()
		assert.Zero(t, calls)
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)
		d.Add("/a")
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()
		assert.NotPanics(t, d.Flush)
	})
}
