// ABOUTME: Passthrough surface of the multimedia API
// ABOUTME: Device counts, system beep, named sounds, packed stereo volume
package wave

import "github.com/sounddev/winsound-go/pkg/audio"

// PackVolume packs two 16-bit channel levels into the device's 32-bit
// volume word: right channel in the high word, left in the low. Values
// above 0xFFFF are clamped.
func PackVolume(left, right uint32) uint32 {
	if left > 0xFFFF {
		left = 0xFFFF
	}
	if right > 0xFFFF {
		right = 0xFFFF
	}
	return right<<16 | left
}

// UnpackVolume splits a packed volume word into (left, right).
func UnpackVolume(packed uint32) (left, right uint16) {
	return uint16(packed & 0xFFFF), uint16(packed >> 16)
}

// System exposes the one-call passthrough operations of the device layer.
// Volume and the playing state are process-wide; concurrent callers
// interleave with whatever ordering the device layer gives them.
type System struct {
	dev DeviceLayer
}

// NewSystem wraps a device layer.
func NewSystem(dev DeviceLayer) *System {
	return &System{dev: dev}
}

// DeviceCount returns how many devices of the class are installed.
func (s *System) DeviceCount(class DeviceClass) (int, error) {
	n, err := s.dev.CountDevices(class)
	if err != nil {
		return 0, stageErr(ErrEnumeration, err)
	}
	return n, nil
}

// Beep emits the system beep. Frequency and duration are validated against
// the same ranges as tone synthesis before the device is touched.
func (s *System) Beep(frequencyHz, durationMs int) error {
	if !audio.ValidFrequency(float64(frequencyHz)) {
		return &audio.ArgumentError{Name: "frequency", Value: float64(frequencyHz)}
	}
	if !audio.ValidDuration(durationMs) {
		return &audio.ArgumentError{Name: "duration", Value: float64(durationMs)}
	}
	return s.dev.Beep(frequencyHz, durationMs)
}

// PlaySound triggers a named or aliased system sound with the given
// playback-mode flags.
func (s *System) PlaySound(name string, flags SoundFlags) error {
	return s.dev.PlaySound(name, flags)
}

// Stop halts the currently playing sound, including looped ones.
func (s *System) Stop() error {
	return s.dev.PlaySound("", SoundPurge)
}

// Volume returns the output volume as (left, right) channel levels.
func (s *System) Volume() (left, right uint16, err error) {
	packed, err := s.dev.OutputVolume()
	if err != nil {
		return 0, 0, err
	}
	left, right = UnpackVolume(packed)
	return left, right, nil
}

// SetVolume sets the output volume from a packed 32-bit word.
func (s *System) SetVolume(packed uint32) error {
	return s.dev.SetOutputVolume(packed)
}

// SetChannelVolume sets the output volume from separate channel levels.
func (s *System) SetChannelVolume(left, right uint32) error {
	return s.dev.SetOutputVolume(PackVolume(left, right))
}
