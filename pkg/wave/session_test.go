// ABOUTME: Tests for the session state machine
// ABOUTME: Verifies the sequential path and rejection of skipped states
package wave

import (
	"testing"

	"github.com/sounddev/winsound-go/pkg/audio"
)

func TestSessionSequentialPath(t *testing.T) {
	s := newSession(audio.DefaultFormat())
	if s.state != StateClosed {
		t.Fatalf("initial state = %v, want closed", s.state)
	}

	path := []SessionState{StateOpened, StateHeaderPrepared, StateWriting, StateCompleted, StateClosed}
	for _, next := range path {
		if err := s.advance(next); err != nil {
			t.Fatalf("advance to %v: %v", next, err)
		}
	}
}

func TestSessionRejectsSkippedStates(t *testing.T) {
	tests := []struct {
		name string
		walk []SessionState
		bad  SessionState
	}{
		{"closed to prepared", nil, StateHeaderPrepared},
		{"closed to writing", nil, StateWriting},
		{"opened to writing", []SessionState{StateOpened}, StateWriting},
		{"opened to completed", []SessionState{StateOpened}, StateCompleted},
		{"prepared to completed", []SessionState{StateOpened, StateHeaderPrepared}, StateCompleted},
		{"completed to writing", []SessionState{StateOpened, StateHeaderPrepared, StateWriting, StateCompleted}, StateWriting},
	}

	for _, tt := range tests {
		s := newSession(audio.DefaultFormat())
		for _, st := range tt.walk {
			if err := s.advance(st); err != nil {
				t.Fatalf("%s: setup advance to %v: %v", tt.name, st, err)
			}
		}
		if err := s.advance(tt.bad); err == nil {
			t.Errorf("%s: transition to %v allowed", tt.name, tt.bad)
		}
	}
}

func TestSessionAbortPathsClose(t *testing.T) {
	for _, from := range [][]SessionState{
		{StateOpened},
		{StateOpened, StateHeaderPrepared},
		{StateOpened, StateHeaderPrepared, StateWriting},
	} {
		s := newSession(audio.DefaultFormat())
		for _, st := range from {
			if err := s.advance(st); err != nil {
				t.Fatalf("setup: %v", err)
			}
		}
		if err := s.advance(StateClosed); err != nil {
			t.Errorf("abort close from %v rejected: %v", from[len(from)-1], err)
		}
	}
}

func TestSessionIDsUnique(t *testing.T) {
	a := newSession(audio.DefaultFormat())
	b := newSession(audio.DefaultFormat())
	if a.id == b.id {
		t.Error("two sessions share an id")
	}
}
