// ABOUTME: Playback session state machine
// ABOUTME: Enforces the strictly sequential device lifecycle
package wave

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sounddev/winsound-go/pkg/audio"
)

// SessionState is one phase of the device lifecycle.
type SessionState int

const (
	StateClosed SessionState = iota
	StateOpened
	StateHeaderPrepared
	StateWriting
	StateCompleted
)

func (s SessionState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpened:
		return "opened"
	case StateHeaderPrepared:
		return "header-prepared"
	case StateWriting:
		return "writing"
	case StateCompleted:
		return "completed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// session is one open device stream. Created fresh for every play request
// and never reused.
type session struct {
	id     uuid.UUID
	handle Handle
	format audio.Format
	state  SessionState
}

func newSession(format audio.Format) *session {
	return &session{
		id:     uuid.New(),
		format: format,
		state:  StateClosed,
	}
}

// advance moves the session to the next state. The success path is strictly
// sequential; the only shortcut is back to closed, taken by the abort paths
// that still have to release the device handle.
func (s *session) advance(to SessionState) error {
	ok := false
	switch s.state {
	case StateClosed:
		ok = to == StateOpened
	case StateOpened:
		ok = to == StateHeaderPrepared || to == StateClosed
	case StateHeaderPrepared:
		ok = to == StateWriting || to == StateClosed
	case StateWriting:
		ok = to == StateCompleted || to == StateClosed
	case StateCompleted:
		ok = to == StateClosed
	}
	if !ok {
		return fmt.Errorf("wave: invalid session transition %s -> %s", s.state, to)
	}
	s.state = to
	return nil
}
