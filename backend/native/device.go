package native

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/blitpass"
)

// Device is a standalone GPU device opened for offscreen blitting.
// It owns the HAL instance and device and must be closed when done.
type Device struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	name     string
}

// InitDevice opens a GPU device through the Vulkan HAL backend,
// preferring discrete and integrated adapters over software ones.
func InitDevice() (*Device, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, ErrBackendUnavailable
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, ErrNoAdapters
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("open device: %w", err)
	}

	blitpass.Logger().Info("native: GPU device opened", slog.String("adapter", selected.Info.Name))

	return &Device{
		instance: instance,
		device:   openDev.Device,
		queue:    openDev.Queue,
		name:     selected.Info.Name,
	}, nil
}

// HAL returns the underlying HAL device and queue.
func (d *Device) HAL() (hal.Device, hal.Queue) {
	return d.device, d.queue
}

// AdapterName returns the name of the selected adapter.
func (d *Device) AdapterName() string {
	return d.name
}

// NewBlitter creates a Blitter on this device.
func (d *Device) NewBlitter() (*Blitter, error) {
	return NewBlitter(d.device, d.queue)
}

// Close destroys the device and instance. Any Blitter created from this
// device must be destroyed first.
func (d *Device) Close() {
	if d.device != nil {
		d.device.Destroy()
		d.device = nil
		d.queue = nil
	}
	if d.instance != nil {
		d.instance.Destroy()
		d.instance = nil
	}
}

// halProvider is the structural interface gogpu device providers expose
// for sharing their HAL handles.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// NewBlitterFromProvider creates a Blitter on the device owned by a
// gogpu windowing context. The provider must expose HalDevice() and
// HalQueue() returning hal.Device and hal.Queue; the provider retains
// ownership of both.
//
// Use this to blit into surface textures of a window that gogpu manages.
func NewBlitterFromProvider(provider gpucontext.DeviceProvider) (*Blitter, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrInvalidProvider
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, ErrInvalidProvider
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, ErrInvalidProvider
	}
	return NewBlitter(device, queue)
}
