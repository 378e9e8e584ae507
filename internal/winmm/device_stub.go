// ABOUTME: Non-Windows stub for the winmm device layer
// ABOUTME: Every operation reports ErrUnsupported
//go:build !windows

package winmm

import (
	"errors"

	"github.com/sounddev/winsound-go/pkg/audio"
	"github.com/sounddev/winsound-go/pkg/wave"
)

// ErrUnsupported is returned by every operation on platforms without
// winmm.dll.
var ErrUnsupported = errors.New("winmm: not supported on this platform")

// Device is a placeholder so callers can compile everywhere; use the oto
// device layer off Windows.
type Device struct{}

var _ wave.DeviceLayer = (*Device)(nil)

// New returns the stub device.
func New() *Device { return &Device{} }

func (d *Device) Open(format audio.Format) (wave.Handle, error) { return 0, ErrUnsupported }

func (d *Device) PrepareHeader(h wave.Handle, hdr *wave.Header) error { return ErrUnsupported }

func (d *Device) Write(h wave.Handle, hdr *wave.Header) error { return ErrUnsupported }

func (d *Device) ReleaseHeader(h wave.Handle, hdr *wave.Header) (bool, error) {
	return false, ErrUnsupported
}

func (d *Device) Close(h wave.Handle) error { return ErrUnsupported }

func (d *Device) CountDevices(class wave.DeviceClass) (int, error) { return 0, ErrUnsupported }

func (d *Device) Beep(frequencyHz, durationMs int) error { return ErrUnsupported }

func (d *Device) PlaySound(name string, flags wave.SoundFlags) error { return ErrUnsupported }

func (d *Device) OutputVolume() (uint32, error) { return 0, ErrUnsupported }

func (d *Device) SetOutputVolume(volume uint32) error { return ErrUnsupported }
