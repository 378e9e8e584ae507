// ABOUTME: Start gate for synchronized playback
// ABOUTME: Explicit rendezvous releasing all waiting players at once
package wave

import "sync"

// StartGate lets independently prepared playback sessions begin in
// lockstep. Each participant calls Wait after its buffer is prepared; a
// coordinator calls Release to let every waiter proceed together.
// Alignment is best effort via the scheduler, not sample-accurate.
type StartGate struct {
	mu       sync.Mutex
	arrived  int
	ping     chan struct{}
	release  chan struct{}
	released sync.Once
}

// NewStartGate creates a gate with no registered participants.
func NewStartGate() *StartGate {
	return &StartGate{
		ping:    make(chan struct{}, 1),
		release: make(chan struct{}),
	}
}

// Wait records the caller's arrival and blocks until Release.
func (g *StartGate) Wait() {
	g.mu.Lock()
	g.arrived++
	g.mu.Unlock()

	select {
	case g.ping <- struct{}{}:
	default:
	}

	<-g.release
}

// AwaitArrivals blocks until at least n participants are waiting.
func (g *StartGate) AwaitArrivals(n int) {
	for {
		g.mu.Lock()
		arrived := g.arrived
		g.mu.Unlock()
		if arrived >= n {
			return
		}
		<-g.ping
	}
}

// Arrived returns the number of participants that have reached the gate.
func (g *StartGate) Arrived() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.arrived
}

// Release opens the gate. Safe to call more than once; later calls are
// no-ops, and participants arriving after Release pass straight through.
func (g *StartGate) Release() {
	g.released.Do(func() { close(g.release) })
}
