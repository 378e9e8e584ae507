// ABOUTME: Sine tone synthesizer producing PCM buffers
// ABOUTME: Applies a linear fade ramp at both ends to avoid clicks
// Package tone synthesizes sine-wave tones as signed 16-bit PCM.
package tone

import (
	"log"
	"math"

	"github.com/sounddev/winsound-go/pkg/audio"
)

// rampSamples is the length of the linear fade applied at each end of a
// synthesized buffer, in samples.
const rampSamples = 200

// Synthesize renders a sine tone at the default format (44100 Hz, 16-bit,
// mono). Frequency must lie in (37, 32767] Hz, duration in [0, 5000] ms.
// Amplitude is a fraction of full scale; magnitudes above 1.0 are accepted
// but produce clipped output and log a warning.
//
// The sample count follows the historical formula floor(rate/2 * ms/1000),
// so at 44100 Hz the audible duration is half the nominal one.
func Synthesize(frequencyHz float64, durationMs int, amplitude float64) (*audio.Buffer, error) {
	return SynthesizeFormat(audio.DefaultFormat(), frequencyHz, durationMs, amplitude)
}

// SynthesizeFormat is Synthesize with an explicit format. Only the format's
// sample rate affects the rendered samples; output is always one sample per
// frame.
func SynthesizeFormat(format audio.Format, frequencyHz float64, durationMs int, amplitude float64) (*audio.Buffer, error) {
	if !audio.ValidFrequency(frequencyHz) {
		return nil, &audio.ArgumentError{Name: "frequency", Value: frequencyHz}
	}
	if !audio.ValidDuration(durationMs) {
		return nil, &audio.ArgumentError{Name: "duration", Value: float64(durationMs)}
	}
	if math.Abs(amplitude) > 1.0 {
		log.Printf("tone: amplitude %.3f exceeds full scale, output will clip", amplitude)
	}

	seconds := float64(durationMs) / 1000
	sampleCount := int(math.Floor(float64(format.SampleRate) / 2 * seconds))

	samples := make([]int32, sampleCount)
	for i := 0; i < sampleCount; i++ {
		angle := 2 * math.Pi * frequencyHz * (float64(i) / float64(sampleCount)) * seconds
		value := 32768 * math.Sin(angle) * amplitude

		// Linear fade at both ends so playback starts and stops without a click.
		if i < rampSamples {
			value *= float64(i) / rampSamples
		}
		if sampleCount-i < rampSamples {
			value *= float64(sampleCount-i) / rampSamples
		}

		samples[i] = int32(math.Floor(value))
	}

	return &audio.Buffer{Samples: samples, Format: format}, nil
}
