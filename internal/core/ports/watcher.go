package ports

//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks

// PathWatcher delivers debounced write notifications for individual files.
type PathWatcher interface {
	// Watch registers onWrite for path. Registering the same path again replaces
	// the previous callback. onWrite runs on the watcher's goroutine and must not block.
	Watch(path string, onWrite func()) error
	// Close stops delivering notifications.
	Close() error
}
