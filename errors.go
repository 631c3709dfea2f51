package blitpass

import "errors"

var (
	// ErrNilTarget is returned when a render is attempted with a nil pixmap.
	ErrNilTarget = errors.New("blitpass: nil render target")

	// ErrNilTexture is returned when a render is attempted with a nil source texture.
	ErrNilTexture = errors.New("blitpass: nil source texture")

	// ErrRendererClosed is returned when a render is attempted after Close.
	ErrRendererClosed = errors.New("blitpass: renderer is closed")

	// ErrInvalidDimensions is returned for zero or negative pixmap dimensions.
	ErrInvalidDimensions = errors.New("blitpass: invalid dimensions")
)
