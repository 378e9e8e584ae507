// ABOUTME: Single-shot playback orchestration against a DeviceLayer
// ABOUTME: Drives open, prepare, write, poll-release, close with typed errors
package wave

import (
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/sounddev/winsound-go/pkg/audio"
	"github.com/sounddev/winsound-go/pkg/tone"
)

// releaseRetryInterval is the backoff between header-release attempts while
// the device still reports busy.
const releaseRetryInterval = 100 * time.Millisecond

// PlayerConfig holds playback configuration.
type PlayerConfig struct {
	// Device is the platform audio boundary. Required.
	Device DeviceLayer

	// Gate, when set, is waited on by synchronized plays before the buffer
	// is submitted to the device.
	Gate *StartGate

	// StartDelay is slept after the gate releases and before submission,
	// letting a caller stagger voices within a synchronized group.
	StartDelay time.Duration
}

// Player runs single-shot playback sessions. Each Play call opens its own
// session and owns its own buffer; a Player may be shared by concurrent
// callers.
type Player struct {
	dev        DeviceLayer
	gate       *StartGate
	startDelay time.Duration
}

// NewPlayer creates a player over the given device layer.
func NewPlayer(cfg PlayerConfig) *Player {
	return &Player{
		dev:        cfg.Device,
		gate:       cfg.Gate,
		startDelay: cfg.StartDelay,
	}
}

// Play renders the buffer through one full device session and blocks until
// the device has finished with it. With synchronizeStart set and a gate
// configured, the call parks after preparing its header until the gate
// releases; otherwise it only yields once so sibling plays can catch up.
//
// A failure after open still closes the session before returning. A failure
// at open returns before any handle exists, so nothing is cleaned up. The
// header-release retry has no upper bound: a device that reports busy
// forever blocks teardown indefinitely.
func (p *Player) Play(format audio.Format, buf *audio.Buffer, synchronizeStart bool) error {
	sess := newSession(format)

	handle, err := p.dev.Open(format)
	if err != nil {
		return stageErr(ErrDeviceOpen, err)
	}
	sess.handle = handle
	if err := sess.advance(StateOpened); err != nil {
		return err
	}

	hdr := &Header{Data: buf.Bytes(), Loops: 1}
	if err := p.dev.PrepareHeader(handle, hdr); err != nil {
		p.closeSession(sess)
		return stageErr(ErrHeaderPrepare, err)
	}
	if err := sess.advance(StateHeaderPrepared); err != nil {
		return err
	}

	if synchronizeStart && p.gate != nil {
		p.gate.Wait()
		if p.startDelay > 0 {
			time.Sleep(p.startDelay)
		}
	} else {
		// Best-effort fairness point: give sibling plays a chance to reach
		// submission before we do.
		runtime.Gosched()
	}

	if err := p.dev.Write(handle, hdr); err != nil {
		p.closeSession(sess)
		return stageErr(ErrWrite, err)
	}
	if err := sess.advance(StateWriting); err != nil {
		return err
	}

	// The device reports busy until playback drains; retry until it lets
	// go of the header.
	for {
		busy, err := p.dev.ReleaseHeader(handle, hdr)
		if err != nil {
			p.closeSession(sess)
			return stageErr(ErrHeaderRelease, err)
		}
		if !busy {
			break
		}
		time.Sleep(releaseRetryInterval)
	}
	if err := sess.advance(StateCompleted); err != nil {
		return err
	}

	if err := p.dev.Close(handle); err != nil {
		return stageErr(ErrDeviceClose, err)
	}
	return sess.advance(StateClosed)
}

// closeSession releases the device handle on an abort path. The close
// error is logged but not returned; the lifecycle failure that triggered
// the abort is the one the caller needs.
func (p *Player) closeSession(sess *session) {
	if err := p.dev.Close(sess.handle); err != nil {
		log.Printf("wave: session %s: close after failure: %v", sess.id, err)
	}
	_ = sess.advance(StateClosed)
}

// PlayTones synthesizes one tone per frequency and plays them through the
// device in lockstep: every session prepares its buffer, all park at a
// shared gate, and the gate releases once the whole group has arrived. The
// first error from any voice is returned.
func PlayTones(dev DeviceLayer, frequencies []float64, durationMs int, amplitude float64) error {
	if len(frequencies) == 0 {
		return nil
	}

	gate := NewStartGate()
	player := NewPlayer(PlayerConfig{Device: dev, Gate: gate})

	var wg sync.WaitGroup
	errs := make([]error, len(frequencies))
	for i, freq := range frequencies {
		wg.Add(1)
		go func(i int, freq float64) {
			defer wg.Done()
			buf, err := tone.Synthesize(freq, durationMs, amplitude)
			if err != nil {
				errs[i] = err
				gate.Wait() // still arrive so the group is not held up
				return
			}
			errs[i] = player.Play(buf.Format, buf, true)
		}(i, freq)
	}

	gate.AwaitArrivals(len(frequencies))
	gate.Release()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
