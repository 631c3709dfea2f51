package native

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// CreateSourceTexture uploads an 8-bit RGBA image as a sampleable 2D
// texture and returns the texture and a full view of it. The caller owns
// both and must destroy them (view first) when done.
func CreateSourceTexture(device hal.Device, queue hal.Queue, img *image.RGBA) (hal.Texture, hal.TextureView, error) {
	if device == nil {
		return nil, nil, ErrNilHALDevice
	}
	if queue == nil {
		return nil, nil, ErrNilHALQueue
	}
	if img == nil {
		return nil, nil, ErrNilSource
	}

	bounds := img.Bounds()
	w := uint32(bounds.Dx()) //nolint:gosec // image dimensions fit uint32
	h := uint32(bounds.Dy()) //nolint:gosec // image dimensions fit uint32
	if w == 0 || h == 0 {
		return nil, nil, fmt.Errorf("native: empty source image")
	}

	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "blit_gamma_source",
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create source texture: %w", err)
	}

	queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: tex, MipLevel: 0},
		tightPixels(img),
		&hal.ImageDataLayout{Offset: 0, BytesPerRow: w * 4, RowsPerImage: h},
		&hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	)

	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         "blit_gamma_source_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		device.DestroyTexture(tex)
		return nil, nil, fmt.Errorf("create source view: %w", err)
	}

	return tex, view, nil
}

// tightPixels returns the image's pixels as tightly packed rows. When
// the stride already matches the row width (the common case for images
// from image.NewRGBA), the backing slice is returned without copying.
func tightPixels(img *image.RGBA) []byte {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	rowBytes := w * 4

	if img.Stride == rowBytes && bounds.Min == img.Rect.Min {
		return img.Pix[:h*rowBytes]
	}

	tight := make([]byte, h*rowBytes)
	for y := 0; y < h; y++ {
		off := img.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(tight[y*rowBytes:(y+1)*rowBytes], img.Pix[off:off+rowBytes])
	}
	return tight
}
