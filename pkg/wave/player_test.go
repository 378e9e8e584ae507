// ABOUTME: Tests for the playback lifecycle
// ABOUTME: Verifies ordering, busy retries, abort cleanup, and typed errors
package wave

import (
	"errors"
	"reflect"
	"testing"

	"github.com/sounddev/winsound-go/pkg/audio"
	"github.com/sounddev/winsound-go/pkg/tone"
)

func testBuffer(t *testing.T) *audio.Buffer {
	t.Helper()
	buf, err := tone.Synthesize(440, 10, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	return buf
}

func TestPlayFullLifecycle(t *testing.T) {
	dev := newMockDevice()
	player := NewPlayer(PlayerConfig{Device: dev})
	buf := testBuffer(t)

	if err := player.Play(buf.Format, buf, false); err != nil {
		t.Fatalf("Play: %v", err)
	}

	want := []string{"open", "prepare", "write", "release", "close"}
	if got := dev.callLog(); !reflect.DeepEqual(got, want) {
		t.Errorf("call order %v, want %v", got, want)
	}
}

func TestPlayRetriesBusyRelease(t *testing.T) {
	dev := newMockDevice()
	dev.busyCount = 2
	player := NewPlayer(PlayerConfig{Device: dev})
	buf := testBuffer(t)

	if err := player.Play(buf.Format, buf, false); err != nil {
		t.Fatalf("Play: %v", err)
	}

	want := []string{"open", "prepare", "write", "release", "release", "release", "close"}
	if got := dev.callLog(); !reflect.DeepEqual(got, want) {
		t.Errorf("call order %v, want %v", got, want)
	}
}

func TestPlayOpenFailure(t *testing.T) {
	dev := newMockDevice()
	dev.openErr = &StatusError{Op: "waveOutOpen", Code: 4}
	player := NewPlayer(PlayerConfig{Device: dev})
	buf := testBuffer(t)

	err := player.Play(buf.Format, buf, false)
	if !errors.Is(err, ErrDeviceOpen) {
		t.Fatalf("error = %v, want ErrDeviceOpen", err)
	}
	var status *StatusError
	if !errors.As(err, &status) || status.Code != 4 {
		t.Errorf("platform status not carried: %v", err)
	}

	// No handle was ever acquired, so no cleanup happens before open.
	want := []string{"open"}
	if got := dev.callLog(); !reflect.DeepEqual(got, want) {
		t.Errorf("call order %v, want %v", got, want)
	}
}

func TestPlayPrepareFailureStillCloses(t *testing.T) {
	dev := newMockDevice()
	dev.prepareErr = &StatusError{Op: "waveOutPrepareHeader", Code: 7}
	player := NewPlayer(PlayerConfig{Device: dev})
	buf := testBuffer(t)

	err := player.Play(buf.Format, buf, false)
	if !errors.Is(err, ErrHeaderPrepare) {
		t.Fatalf("error = %v, want ErrHeaderPrepare", err)
	}

	want := []string{"open", "prepare", "close"}
	if got := dev.callLog(); !reflect.DeepEqual(got, want) {
		t.Errorf("call order %v, want %v", got, want)
	}
}

func TestPlayWriteFailureStillCloses(t *testing.T) {
	dev := newMockDevice()
	dev.writeErr = &StatusError{Op: "waveOutWrite", Code: 5}
	player := NewPlayer(PlayerConfig{Device: dev})
	buf := testBuffer(t)

	err := player.Play(buf.Format, buf, false)
	if !errors.Is(err, ErrWrite) {
		t.Fatalf("error = %v, want ErrWrite", err)
	}

	want := []string{"open", "prepare", "write", "close"}
	if got := dev.callLog(); !reflect.DeepEqual(got, want) {
		t.Errorf("call order %v, want %v", got, want)
	}
}

func TestPlayCloseFailure(t *testing.T) {
	dev := newMockDevice()
	dev.closeErr = &StatusError{Op: "waveOutClose", Code: 5}
	player := NewPlayer(PlayerConfig{Device: dev})
	buf := testBuffer(t)

	err := player.Play(buf.Format, buf, false)
	if !errors.Is(err, ErrDeviceClose) {
		t.Fatalf("error = %v, want ErrDeviceClose", err)
	}
}

func TestPlayReleaseFailureStillCloses(t *testing.T) {
	dev := newMockDevice()
	dev.releaseErr = &StatusError{Op: "waveOutUnprepareHeader", Code: 6}
	player := NewPlayer(PlayerConfig{Device: dev})
	buf := testBuffer(t)

	err := player.Play(buf.Format, buf, false)
	if !errors.Is(err, ErrHeaderRelease) {
		t.Fatalf("error = %v, want ErrHeaderRelease", err)
	}

	want := []string{"open", "prepare", "write", "release", "close"}
	if got := dev.callLog(); !reflect.DeepEqual(got, want) {
		t.Errorf("call order %v, want %v", got, want)
	}
}

func TestPlayTonesSynchronized(t *testing.T) {
	dev := newMockDevice()

	if err := PlayTones(dev, []float64{440, 550, 660}, 10, 0.5); err != nil {
		t.Fatalf("PlayTones: %v", err)
	}

	calls := dev.callLog()
	counts := map[string]int{}
	lastPrepare, firstWrite := -1, len(calls)
	for i, c := range calls {
		counts[c]++
		if c == "prepare" && i > lastPrepare {
			lastPrepare = i
		}
		if c == "write" && i < firstWrite {
			firstWrite = i
		}
	}

	for _, op := range []string{"open", "prepare", "write", "release", "close"} {
		if counts[op] != 3 {
			t.Errorf("%s called %d times, want 3", op, counts[op])
		}
	}
	// All voices park at the gate after preparing, so every prepare must
	// precede every write.
	if lastPrepare > firstWrite {
		t.Errorf("write at %d before prepare at %d: gate not honored", firstWrite, lastPrepare)
	}
}

func TestPlayTonesPropagatesSynthesisError(t *testing.T) {
	dev := newMockDevice()

	err := PlayTones(dev, []float64{440, 10}, 10, 0.5)
	var argErr *audio.ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("error = %v, want *audio.ArgumentError", err)
	}
}

func TestPlayTonesEmpty(t *testing.T) {
	if err := PlayTones(newMockDevice(), nil, 10, 0.5); err != nil {
		t.Fatalf("PlayTones with no frequencies: %v", err)
	}
}
