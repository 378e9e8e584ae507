// ABOUTME: winmm structures and constants
// ABOUTME: WAVEFORMATEX, WAVEHDR, and the status values the backend checks
//go:build windows

package winmm

import "golang.org/x/sys/windows"

const (
	// WAVE_FORMAT_PCM identifies uncompressed PCM in WAVEFORMATEX.
	WAVE_FORMAT_PCM = uint16(0x0001)

	// WAVE_MAPPER addresses the system default wave device.
	WAVE_MAPPER = uintptr(0xFFFFFFFF)

	// WAVERR_STILLPLAYING is returned by waveOutUnprepareHeader while the
	// device is still playing from the buffer.
	WAVERR_STILLPLAYING = uintptr(33)

	// CALLBACK_NULL requests no completion callback from waveOutOpen.
	CALLBACK_NULL = uintptr(0)
)

// HWAVEOUT is a handle for a waveform output device.
type HWAVEOUT windows.Handle

// WAVEFORMATEX describes a wave stream format.
type WAVEFORMATEX struct {
	WFormatTag      uint16
	NChannels       uint16
	NSamplesPerSec  uint32
	NAvgBytesPerSec uint32
	NBlockAlign     uint16
	WBitsPerSample  uint16
	CbSize          uint16
}

// WAVEHDR describes a buffer of wave data handed to the device.
type WAVEHDR struct {
	LpData          uintptr
	DwBufferLength  uint32
	DwBytesRecorded uint32
	DwUser          uintptr
	DwFlags         uint32
	DwLoops         uint32
	LpNext          uintptr
	Reserved        uintptr
}
