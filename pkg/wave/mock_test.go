// ABOUTME: In-package fake device layer for lifecycle tests
// ABOUTME: Tracks per-handle phase and rejects skipped or reordered calls
package wave

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sounddev/winsound-go/pkg/audio"
)

type devPhase int

const (
	phaseOpened devPhase = iota
	phasePrepared
	phaseWritten
	phaseReleased
	phaseClosed
)

type soundCall struct {
	name  string
	flags SoundFlags
}

// mockDevice implements DeviceLayer and enforces the lifecycle ordering the
// real device requires: prepare needs an open handle, write a prepared one,
// release a written one. Any violation surfaces as an error from the call.
type mockDevice struct {
	mu         sync.Mutex
	nextHandle Handle
	phases     map[Handle]devPhase
	calls      []string

	openErr    error
	prepareErr error
	writeErr   error
	releaseErr error
	closeErr   error

	// busyCount release attempts report busy before one succeeds
	busyCount int

	counts   map[DeviceClass]int
	countErr error
	volume   uint32
	beeps    [][2]int
	sounds   []soundCall
}

func newMockDevice() *mockDevice {
	return &mockDevice{phases: map[Handle]devPhase{}}
}

func (m *mockDevice) record(call string) {
	m.calls = append(m.calls, call)
}

func (m *mockDevice) Open(format audio.Format) (Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("open")
	if m.openErr != nil {
		return 0, m.openErr
	}
	m.nextHandle++
	h := m.nextHandle
	m.phases[h] = phaseOpened
	return h, nil
}

func (m *mockDevice) PrepareHeader(h Handle, hdr *Header) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("prepare")
	if m.phases[h] != phaseOpened {
		return fmt.Errorf("prepare on handle in phase %d", m.phases[h])
	}
	if m.prepareErr != nil {
		return m.prepareErr
	}
	m.phases[h] = phasePrepared
	return nil
}

func (m *mockDevice) Write(h Handle, hdr *Header) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("write")
	if m.phases[h] != phasePrepared {
		return fmt.Errorf("write on handle in phase %d", m.phases[h])
	}
	if m.writeErr != nil {
		return m.writeErr
	}
	m.phases[h] = phaseWritten
	return nil
}

func (m *mockDevice) ReleaseHeader(h Handle, hdr *Header) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("release")
	if m.phases[h] != phaseWritten {
		return false, fmt.Errorf("release on handle in phase %d", m.phases[h])
	}
	if m.releaseErr != nil {
		return false, m.releaseErr
	}
	if m.busyCount > 0 {
		m.busyCount--
		return true, nil
	}
	m.phases[h] = phaseReleased
	return false, nil
}

func (m *mockDevice) Close(h Handle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("close")
	if _, ok := m.phases[h]; !ok {
		return errors.New("close on unknown handle")
	}
	if m.closeErr != nil {
		return m.closeErr
	}
	m.phases[h] = phaseClosed
	return nil
}

func (m *mockDevice) CountDevices(class DeviceClass) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.counts[class], nil
}

func (m *mockDevice) Beep(frequencyHz, durationMs int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.beeps = append(m.beeps, [2]int{frequencyHz, durationMs})
	return nil
}

func (m *mockDevice) PlaySound(name string, flags SoundFlags) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sounds = append(m.sounds, soundCall{name: name, flags: flags})
	return nil
}

func (m *mockDevice) OutputVolume() (uint32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume, nil
}

func (m *mockDevice) SetOutputVolume(volume uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = volume
	return nil
}

func (m *mockDevice) callLog() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}
