package domain

import "go.trai.ch/zerr"

var (
	// ErrFileReadFailed is returned when a watched source file cannot be read.
	ErrFileReadFailed = zerr.New("failed to read file")

	// ErrWatchFailed is returned when a file watch cannot be registered.
	ErrWatchFailed = zerr.New("failed to watch path")

	// ErrPathResolveFailed is returned when a path cannot be made canonical.
	ErrPathResolveFailed = zerr.New("failed to resolve path")

	// ErrIncludeNotFound is returned when an include directive names a file that does not exist.
	ErrIncludeNotFound = zerr.New("include could not be resolved")

	// ErrIncludeCycle is returned when a file includes itself, directly or transitively.
	ErrIncludeCycle = zerr.New("include cycle detected")

	// ErrInvalidSourceEncoding is returned when shader source is not valid UTF-8.
	ErrInvalidSourceEncoding = zerr.New("shader source is not valid UTF-8")

	// ErrCompileFailed is returned when the driver rejects a shader stage.
	ErrCompileFailed = zerr.New("shader failed to compile")

	// ErrLinkFailed is returned when the driver rejects a linked program.
	ErrLinkFailed = zerr.New("shader failed to link")

	// ErrEntryReleased is returned when a cache handle is used after it was released.
	ErrEntryReleased = zerr.New("cache entry handle was released")

	// ErrInvalidEvictionPolicy is returned for an unknown cache eviction policy name.
	ErrInvalidEvictionPolicy = zerr.New("invalid eviction policy")

	// ErrConfigReadFailed is returned when the configuration file exists but cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the configuration file is malformed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedImageFormat is returned when no decoder handles an image's extension.
	ErrUnsupportedImageFormat = zerr.New("unsupported image format")

	// ErrImageDecodeFailed is returned when an image file is corrupt or truncated.
	ErrImageDecodeFailed = zerr.New("failed to decode image")

	// ErrNoImages is returned when the image input contains no loadable images.
	ErrNoImages = zerr.New("no images found")

	// ErrUnknownShader is returned when a shader name is not registered.
	ErrUnknownShader = zerr.New("unknown shader")

	// ErrShaderCompileAll is returned by a one-shot compile when at least one shader failed.
	ErrShaderCompileAll = zerr.New("one or more shaders failed to compile")

	// ErrInvalidHandle is returned when a device operation references an unknown object.
	ErrInvalidHandle = zerr.New("invalid device handle")
)
