package native

import "errors"

var (
	// ErrNilHALDevice is returned when a nil HAL device is passed.
	ErrNilHALDevice = errors.New("native: nil HAL device")

	// ErrNilHALQueue is returned when a nil HAL queue is passed.
	ErrNilHALQueue = errors.New("native: nil HAL queue")

	// ErrNilSource is returned when a nil source image is passed.
	ErrNilSource = errors.New("native: nil source image")

	// ErrNilTarget is returned when a nil target view is passed.
	ErrNilTarget = errors.New("native: nil target view")

	// ErrNilProvider is returned when a nil device provider is passed.
	ErrNilProvider = errors.New("native: nil device provider")

	// ErrInvalidProvider is returned when a device provider does not
	// expose HAL device and queue handles.
	ErrInvalidProvider = errors.New("native: provider does not expose HAL device and queue")

	// ErrBackendUnavailable is returned when no Vulkan backend is registered.
	ErrBackendUnavailable = errors.New("native: vulkan backend not available")

	// ErrNoAdapters is returned when the instance exposes no GPU adapters.
	ErrNoAdapters = errors.New("native: no GPU adapters found")
)
