// Command blitdemo runs the gamma blit pass over a PNG image.
//
// With no -input, a synthetic gradient is generated so the tool works
// standalone. The pass renders on the CPU by default; -gpu requests the
// Vulkan backend with a CPU fallback.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/blitpass"
	"github.com/gogpu/blitpass/backend/native"
)

func main() {
	var (
		input   = flag.String("input", "", "input PNG file (empty: synthetic gradient)")
		output  = flag.String("output", "blit.png", "output PNG file")
		width   = flag.Int("width", 0, "target width (0: source width)")
		height  = flag.Int("height", 0, "target height (0: source height)")
		workers = flag.Int("workers", 0, "CPU render workers (0: GOMAXPROCS)")
		filter  = flag.String("filter", "nearest", "sampling filter: nearest or linear")
		address = flag.String("address", "clamp", "address mode: clamp, repeat, or mirror")
		useGPU  = flag.Bool("gpu", false, "render on the GPU (falls back to CPU)")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		blitpass.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	src, err := loadSource(*input)
	if err != nil {
		log.Fatalf("Failed to load input: %v", err)
	}

	w, h := *width, *height
	if w == 0 {
		w = src.Bounds().Dx()
	}
	if h == 0 {
		h = src.Bounds().Dy()
	}

	sampler, err := parseSampler(*filter, *address)
	if err != nil {
		log.Fatal(err)
	}

	var result *image.RGBA
	if *useGPU {
		result, err = renderGPU(src, w, h)
		if err != nil {
			log.Printf("GPU render unavailable (%v), falling back to CPU", err)
			result = nil
		}
	}
	if result == nil {
		result, err = renderCPU(src, w, h, sampler, *workers)
		if err != nil {
			log.Fatalf("Render failed: %v", err)
		}
	}

	if err := savePNG(*output, result); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Blit saved to %s (%dx%d)\n", *output, w, h)
}

// loadSource decodes a PNG into an *image.RGBA, or generates a gradient
// when path is empty.
func loadSource(path string) (*image.RGBA, error) {
	if path == "" {
		return gradientImage(256, 256), nil
	}

	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, nil
	}
	rgba := image.NewRGBA(img.Bounds())
	xdraw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, xdraw.Src)
	return rgba, nil
}

// gradientImage produces a horizontal ramp per channel, a useful input
// for eyeballing the gamma curve.
func gradientImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(x * 255 / (w - 1)) //nolint:gosec // ramp value fits uint8
			i := img.PixOffset(x, y)
			img.Pix[i+0] = v
			img.Pix[i+1] = v
			img.Pix[i+2] = v
			img.Pix[i+3] = 255
		}
	}
	return img
}

func parseSampler(filter, address string) (blitpass.Sampler, error) {
	s := blitpass.DefaultSampler()

	switch filter {
	case "nearest":
		s.MagFilter = blitpass.FilterNearest
	case "linear":
		s.MagFilter = blitpass.FilterLinear
	default:
		return s, fmt.Errorf("unknown filter %q", filter)
	}

	var mode blitpass.AddressMode
	switch address {
	case "clamp":
		mode = blitpass.AddressClampToEdge
	case "repeat":
		mode = blitpass.AddressRepeat
	case "mirror":
		mode = blitpass.AddressMirrorRepeat
	default:
		return s, fmt.Errorf("unknown address mode %q", address)
	}
	s.AddressModeU = mode
	s.AddressModeV = mode

	return s, nil
}

func renderCPU(src *image.RGBA, w, h int, sampler blitpass.Sampler, workers int) (*image.RGBA, error) {
	dst, err := blitpass.NewPixmap(w, h)
	if err != nil {
		return nil, err
	}

	renderer := blitpass.NewRendererWithWorkers(workers)
	defer renderer.Close()

	tex := blitpass.NewTextureFromImage(src)
	if err := renderer.Render(dst, tex, sampler); err != nil {
		return nil, err
	}
	return dst.ToImage(), nil
}

func renderGPU(src *image.RGBA, w, h int) (*image.RGBA, error) {
	device, err := native.InitDevice()
	if err != nil {
		return nil, err
	}
	defer device.Close()

	blitter, err := device.NewBlitter()
	if err != nil {
		return nil, err
	}
	defer blitter.Destroy()

	return blitter.Render(src, w, h)
}

func savePNG(path string, img *image.RGBA) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, img)
}
