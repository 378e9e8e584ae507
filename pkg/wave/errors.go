// ABOUTME: Typed playback errors wrapping platform status codes
// ABOUTME: One sentinel per lifecycle stage, matchable with errors.Is
package wave

import (
	"errors"
	"fmt"
)

// Sentinel errors for each stage of the playback lifecycle. Errors returned
// by Player and System wrap one of these plus the device layer's own error,
// which carries the platform status code.
var (
	ErrDeviceOpen    = errors.New("wave: device open failed")
	ErrHeaderPrepare = errors.New("wave: header prepare failed")
	ErrWrite         = errors.New("wave: buffer write failed")
	ErrHeaderRelease = errors.New("wave: header release failed")
	ErrDeviceClose   = errors.New("wave: device close failed")
	ErrEnumeration   = errors.New("wave: device enumeration failed")
)

// StatusError carries a raw platform status code from the device layer.
type StatusError struct {
	Op   string
	Code uint32
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Op, e.Code)
}

func stageErr(sentinel error, cause error) error {
	return fmt.Errorf("%w: %w", sentinel, cause)
}
