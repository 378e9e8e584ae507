// ABOUTME: DeviceLayer boundary definition
// ABOUTME: Narrow capability set implemented per platform and faked in tests
package wave

import "github.com/sounddev/winsound-go/pkg/audio"

// Handle identifies one open device stream. Opaque to this package; only
// the DeviceLayer that issued it may interpret it.
type Handle uintptr

// Header is the buffer descriptor handed to the device layer: the encoded
// sample data plus the flag and loop words the device expects. The device
// owns the descriptor from PrepareHeader until ReleaseHeader reports
// not-busy.
type Header struct {
	Data  []byte
	Flags uint32
	Loops uint32
}

// ByteLength is the encoded size of the descriptor's data.
func (h *Header) ByteLength() int { return len(h.Data) }

// DeviceClass selects which device population a count query targets.
type DeviceClass int

const (
	WaveOutDevices DeviceClass = iota
	WaveInDevices
	MidiOutDevices
	MidiInDevices
	AuxDevices
	MixerDevices
)

// SoundFlags is the playback-mode bitmask for named system sounds. Values
// match the platform SND_* constants.
type SoundFlags uint32

const (
	SoundSync      SoundFlags = 0x0000
	SoundAsync     SoundFlags = 0x0001
	SoundNoDefault SoundFlags = 0x0002
	SoundLoop      SoundFlags = 0x0008
	SoundNoStop    SoundFlags = 0x0010
	SoundPurge     SoundFlags = 0x0040
	SoundAlias     SoundFlags = 0x00010000
	SoundFilename  SoundFlags = 0x00020000
)

// DeviceLayer is the capability set the platform audio subsystem must
// provide. Open/PrepareHeader/Write/ReleaseHeader/Close form the playback
// lifecycle; the rest are one-call passthroughs. Implementations must be
// safe for concurrent use with distinct handles.
type DeviceLayer interface {
	// Open acquires a stream on the default output device for the format.
	Open(format audio.Format) (Handle, error)
	// PrepareHeader registers the descriptor with the device.
	PrepareHeader(h Handle, hdr *Header) error
	// Write submits the prepared descriptor for playback.
	Write(h Handle, hdr *Header) error
	// ReleaseHeader unregisters the descriptor. busy means the device is
	// still playing from it and the caller should retry.
	ReleaseHeader(h Handle, hdr *Header) (busy bool, err error)
	// Close releases the stream handle.
	Close(h Handle) error

	// CountDevices returns how many devices of the class are present.
	CountDevices(class DeviceClass) (int, error)
	// Beep emits the system beep at the given pitch and length.
	Beep(frequencyHz, durationMs int) error
	// PlaySound triggers a named or aliased system sound; an empty name
	// addresses the currently playing sound (used with SoundPurge to stop).
	PlaySound(name string, flags SoundFlags) error
	// OutputVolume returns the packed stereo volume word.
	OutputVolume() (uint32, error)
	// SetOutputVolume sets the packed stereo volume word.
	SetOutputVolume(volume uint32) error
}
