// ABOUTME: Shared parameter ranges and argument errors
// ABOUTME: Frequency and duration limits used by synthesis and the system beep
package audio

import "fmt"

// Hardware-safe parameter ranges. Frequency is exclusive at the lower bound,
// inclusive at the upper; duration bounds a single in-memory buffer.
const (
	MinFrequencyHz = 37
	MaxFrequencyHz = 32767
	MaxDurationMs  = 5000
)

// ArgumentError reports a parameter outside its allowed range. It is
// returned before any device interaction takes place.
type ArgumentError struct {
	Name  string
	Value float64
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("audio: %s out of range: %v", e.Name, e.Value)
}

// ValidFrequency reports whether f lies in (37, 32767].
func ValidFrequency(f float64) bool {
	return f > MinFrequencyHz && f <= MaxFrequencyHz
}

// ValidDuration reports whether d lies in [0, 5000] milliseconds.
func ValidDuration(d int) bool {
	return d >= 0 && d <= MaxDurationMs
}
