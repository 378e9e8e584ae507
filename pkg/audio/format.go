// ABOUTME: PCM format and buffer definitions
// ABOUTME: Derived format fields are computed by the constructor, never set directly
package audio

import "encoding/binary"

// Default format values for synthesized tones.
const (
	DefaultSampleRate    = 44100
	DefaultBitsPerSample = 16
	DefaultChannels      = 1
)

// Format describes a PCM stream format. BlockAlign and BytesPerSecond are
// derived from the three source fields; use NewFormat so they are filled in
// atomically and never go stale.
type Format struct {
	SampleRate    uint32
	BitsPerSample uint16
	Channels      uint16

	BlockAlign     uint16
	BytesPerSecond uint32
}

// NewFormat builds a Format and computes the derived fields.
func NewFormat(sampleRate uint32, bitsPerSample, channels uint16) Format {
	f := Format{
		SampleRate:    sampleRate,
		BitsPerSample: bitsPerSample,
		Channels:      channels,
	}
	f.BlockAlign = (bitsPerSample / 8) * channels
	f.BytesPerSecond = uint32(f.BlockAlign) * sampleRate
	return f
}

// DefaultFormat returns 44100 Hz, 16-bit, mono.
func DefaultFormat() Format {
	return NewFormat(DefaultSampleRate, DefaultBitsPerSample, DefaultChannels)
}

// Buffer holds a finite run of signed PCM samples. Samples are stored as
// int32 so out-of-range values from over-driven amplitudes survive intact
// until the 16-bit encoding at the device boundary.
//
// A Buffer belongs to the call that created it. While a device holds it for
// playback it must not be mutated.
type Buffer struct {
	Samples []int32
	Format  Format
}

// ByteLength is the encoded size of the buffer: sample count times the
// format's sample width.
func (b *Buffer) ByteLength() int {
	return len(b.Samples) * int(b.Format.BitsPerSample) / 8
}

// Bytes encodes the samples as little-endian signed 16-bit PCM, the layout
// the device layer consumes. Values outside the int16 range wrap, matching
// the raw-cast behavior of the device wire format.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, len(b.Samples)*2)
	for i, s := range b.Samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(int16(s)))
	}
	return out
}
