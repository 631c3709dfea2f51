package native

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestNewBlitter_NilArguments(t *testing.T) {
	if _, err := NewBlitter(nil, nil); !errors.Is(err, ErrNilHALDevice) {
		t.Errorf("NewBlitter(nil, nil) = %v, want ErrNilHALDevice", err)
	}
}

func TestDefaultSamplerDescriptor(t *testing.T) {
	d := defaultSamplerDescriptor()

	if d.AddressModeU != gputypes.AddressModeClampToEdge ||
		d.AddressModeV != gputypes.AddressModeClampToEdge ||
		d.AddressModeW != gputypes.AddressModeClampToEdge {
		t.Error("default sampler must clamp to edge on all axes")
	}
	if d.MagFilter != gputypes.FilterModeNearest ||
		d.MinFilter != gputypes.FilterModeNearest ||
		d.MipmapFilter != gputypes.FilterModeNearest {
		t.Error("default sampler must use nearest filtering")
	}
}

func TestBlitterDestroy_BeforeInit(t *testing.T) {
	// Destroy on a zero Blitter must not panic.
	var b Blitter
	b.Destroy()
	b.Destroy()
}
