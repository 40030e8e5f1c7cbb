package watcher_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hdrview/internal/adapters/watcher"
	"go.trai.ch/hdrview/internal/core/domain"
	"go.trai.ch/hdrview/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const (
	testWindow  = 20 * time.Millisecond
	testTimeout = 5 * time.Second
)

func newTestWatcher(t *testing.T) *watcher.Watcher {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	w, err := watcher.New(log, testWindow)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(testTimeout):
		t.Fatal("timed out waiting for change notification")
	}
}

func signal(ch chan struct{}) func() {
	return func() {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func TestWatcher_NotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.wgsl")
	writeFile(t, path, "v1")

	w := newTestWatcher(t)
	fired := make(chan struct{}, 1)
	require.NoError(t, w.Watch(path, signal(fired)))

	writeFile(t, path, "v2")
	waitFor(t, fired)
}

func TestWatcher_NotifiesOnAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.wgsl")
	writeFile(t, path, "v1")

	w := newTestWatcher(t)
	fired := make(chan struct{}, 1)
	require.NoError(t, w.Watch(path, signal(fired)))

	tmp := filepath.Join(dir, ".a.wgsl.swp")
	writeFile(t, tmp, "v2")
	require.NoError(t, os.Rename(tmp, path))
	waitFor(t, fired)
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.wgsl")
	sibling := filepath.Join(dir, "b.wgsl")
	writeFile(t, path, "v1")
	writeFile(t, sibling, "v1")

	w := newTestWatcher(t)
	fired := make(chan struct{}, 1)
	require.NoError(t, w.Watch(path, signal(fired)))

	writeFile(t, sibling, "v2")

	select {
	case <-fired:
		t.Fatal("unexpected notification for an unwatched sibling")
	case <-time.After(10 * testWindow):
	}
}

func TestWatcher_ReRegistrationReplacesCallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.wgsl")
	writeFile(t, path, "v1")

	w := newTestWatcher(t)
	first := make(chan struct{}, 1)
	second := make(chan struct{}, 1)
	require.NoError(t, w.Watch(path, signal(first)))
	require.NoError(t, w.Watch(filepath.Join(dir, ".", "a.wgsl"), signal(second)))

	writeFile(t, path, "v2")
	waitFor(t, second)
	assert.Empty(t, first)
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := newTestWatcher(t)

	err := w.Watch(filepath.Join(t.TempDir(), "gone", "missing.wgsl"), func() {})
	require.ErrorContains(t, err, domain.ErrWatchFailed.Error())
}

func TestWatcher_NotifiesWhenMissingFileIsCreated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "later.wgsl")

	w := newTestWatcher(t)
	fired := make(chan struct{}, 1)
	require.NoError(t, w.Watch(path, signal(fired)))

	writeFile(t, path, "created")
	waitFor(t, fired)
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	w := newTestWatcher(t)
	require.NoError(t, w.Close())
	assert.NotPanics(t, func() { _ = w.Close() })
}
