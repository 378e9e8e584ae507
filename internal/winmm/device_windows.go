// ABOUTME: Windows device layer over winmm.dll and kernel32 Beep
// ABOUTME: Lazy-loaded procs, one pinned WAVEHDR per open session
//go:build windows

package winmm

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/sounddev/winsound-go/pkg/audio"
	"github.com/sounddev/winsound-go/pkg/wave"
)

var (
	winmmDLL = windows.NewLazySystemDLL("winmm.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procWaveOutOpen            = winmmDLL.NewProc("waveOutOpen")
	procWaveOutPrepareHeader   = winmmDLL.NewProc("waveOutPrepareHeader")
	procWaveOutWrite           = winmmDLL.NewProc("waveOutWrite")
	procWaveOutUnprepareHeader = winmmDLL.NewProc("waveOutUnprepareHeader")
	procWaveOutClose           = winmmDLL.NewProc("waveOutClose")
	procWaveOutGetVolume       = winmmDLL.NewProc("waveOutGetVolume")
	procWaveOutSetVolume       = winmmDLL.NewProc("waveOutSetVolume")
	procWaveOutGetNumDevs      = winmmDLL.NewProc("waveOutGetNumDevs")
	procWaveInGetNumDevs       = winmmDLL.NewProc("waveInGetNumDevs")
	procMidiOutGetNumDevs      = winmmDLL.NewProc("midiOutGetNumDevs")
	procMidiInGetNumDevs       = winmmDLL.NewProc("midiInGetNumDevs")
	procAuxGetNumDevs          = winmmDLL.NewProc("auxGetNumDevs")
	procMixerGetNumDevs        = winmmDLL.NewProc("mixerGetNumDevs")
	procPlaySoundW             = winmmDLL.NewProc("PlaySoundW")
	procBeep                   = kernel32.NewProc("Beep")
)

// preparedHeader pins the native WAVEHDR and its sample data for as long as
// the device may touch them.
type preparedHeader struct {
	native *WAVEHDR
	data   []byte
}

// Device is the winmm-backed wave.DeviceLayer. Distinct handles may be
// driven concurrently; the map of prepared headers is the only shared
// state.
type Device struct {
	mu       sync.Mutex
	prepared map[wave.Handle]*preparedHeader
}

var _ wave.DeviceLayer = (*Device)(nil)

// New returns a device layer over the default wave-mapper output device.
func New() *Device {
	return &Device{prepared: map[wave.Handle]*preparedHeader{}}
}

func (d *Device) Open(format audio.Format) (wave.Handle, error) {
	wfx := WAVEFORMATEX{
		WFormatTag:      WAVE_FORMAT_PCM,
		NChannels:       format.Channels,
		NSamplesPerSec:  format.SampleRate,
		NAvgBytesPerSec: format.BytesPerSecond,
		NBlockAlign:     format.BlockAlign,
		WBitsPerSample:  format.BitsPerSample,
	}

	var h HWAVEOUT
	r, _, _ := procWaveOutOpen.Call(
		uintptr(unsafe.Pointer(&h)),
		WAVE_MAPPER,
		uintptr(unsafe.Pointer(&wfx)),
		0, 0,
		CALLBACK_NULL,
	)
	if r != 0 {
		return 0, &wave.StatusError{Op: "waveOutOpen", Code: uint32(r)}
	}
	return wave.Handle(h), nil
}

func (d *Device) PrepareHeader(h wave.Handle, hdr *wave.Header) error {
	p := &preparedHeader{data: hdr.Data}
	p.native = &WAVEHDR{
		DwBufferLength: uint32(len(p.data)),
		DwFlags:        hdr.Flags,
		DwLoops:        hdr.Loops,
	}
	if len(p.data) > 0 {
		p.native.LpData = uintptr(unsafe.Pointer(&p.data[0]))
	}

	r, _, _ := procWaveOutPrepareHeader.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(p.native)),
		unsafe.Sizeof(*p.native),
	)
	if r != 0 {
		return &wave.StatusError{Op: "waveOutPrepareHeader", Code: uint32(r)}
	}

	d.mu.Lock()
	d.prepared[h] = p
	d.mu.Unlock()
	return nil
}

func (d *Device) Write(h wave.Handle, hdr *wave.Header) error {
	d.mu.Lock()
	p := d.prepared[h]
	d.mu.Unlock()
	if p == nil {
		return fmt.Errorf("winmm: write without prepared header on handle %#x", uintptr(h))
	}

	r, _, _ := procWaveOutWrite.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(p.native)),
		unsafe.Sizeof(*p.native),
	)
	if r != 0 {
		return &wave.StatusError{Op: "waveOutWrite", Code: uint32(r)}
	}
	return nil
}

func (d *Device) ReleaseHeader(h wave.Handle, hdr *wave.Header) (bool, error) {
	d.mu.Lock()
	p := d.prepared[h]
	d.mu.Unlock()
	if p == nil {
		return false, fmt.Errorf("winmm: release without prepared header on handle %#x", uintptr(h))
	}

	r, _, _ := procWaveOutUnprepareHeader.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(p.native)),
		unsafe.Sizeof(*p.native),
	)
	if r == WAVERR_STILLPLAYING {
		return true, nil
	}
	if r != 0 {
		return false, &wave.StatusError{Op: "waveOutUnprepareHeader", Code: uint32(r)}
	}

	d.mu.Lock()
	delete(d.prepared, h)
	d.mu.Unlock()
	return false, nil
}

func (d *Device) Close(h wave.Handle) error {
	r, _, _ := procWaveOutClose.Call(uintptr(h))

	d.mu.Lock()
	delete(d.prepared, h)
	d.mu.Unlock()

	if r != 0 {
		return &wave.StatusError{Op: "waveOutClose", Code: uint32(r)}
	}
	return nil
}

func (d *Device) CountDevices(class wave.DeviceClass) (int, error) {
	var proc *windows.LazyProc
	switch class {
	case wave.WaveOutDevices:
		proc = procWaveOutGetNumDevs
	case wave.WaveInDevices:
		proc = procWaveInGetNumDevs
	case wave.MidiOutDevices:
		proc = procMidiOutGetNumDevs
	case wave.MidiInDevices:
		proc = procMidiInGetNumDevs
	case wave.AuxDevices:
		proc = procAuxGetNumDevs
	case wave.MixerDevices:
		proc = procMixerGetNumDevs
	default:
		return 0, fmt.Errorf("winmm: unknown device class %d", class)
	}

	r, _, _ := proc.Call()
	return int(r), nil
}

func (d *Device) Beep(frequencyHz, durationMs int) error {
	r, _, lastErr := procBeep.Call(uintptr(frequencyHz), uintptr(durationMs))
	if r == 0 {
		return fmt.Errorf("winmm: Beep: %w", lastErr)
	}
	return nil
}

func (d *Device) PlaySound(name string, flags wave.SoundFlags) error {
	var namePtr uintptr
	if name != "" {
		p, err := windows.UTF16PtrFromString(name)
		if err != nil {
			return fmt.Errorf("winmm: sound name: %w", err)
		}
		namePtr = uintptr(unsafe.Pointer(p))
	}

	r, _, _ := procPlaySoundW.Call(namePtr, 0, uintptr(flags))
	if r == 0 {
		return fmt.Errorf("winmm: PlaySound %q failed", name)
	}
	return nil
}

func (d *Device) OutputVolume() (uint32, error) {
	var volume uint32
	r, _, _ := procWaveOutGetVolume.Call(WAVE_MAPPER, uintptr(unsafe.Pointer(&volume)))
	if r != 0 {
		return 0, &wave.StatusError{Op: "waveOutGetVolume", Code: uint32(r)}
	}
	return volume, nil
}

func (d *Device) SetOutputVolume(volume uint32) error {
	r, _, _ := procWaveOutSetVolume.Call(WAVE_MAPPER, uintptr(volume))
	if r != 0 {
		return &wave.StatusError{Op: "waveOutSetVolume", Code: uint32(r)}
	}
	return nil
}
