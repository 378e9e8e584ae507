// ABOUTME: Portable device layer over the oto playback library
// ABOUTME: One shared oto context, one oto player per open session
// Package otodev implements wave.DeviceLayer on top of oto so the library
// and its demos run on any platform oto supports. Volume is applied in
// software per player; named system sounds do not exist here, only the
// purge control is honored.
package otodev

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/sounddev/winsound-go/pkg/audio"
	"github.com/sounddev/winsound-go/pkg/tone"
	"github.com/sounddev/winsound-go/pkg/wave"
)

// session is one open stream: the prepared data between PrepareHeader and
// Write, then the live oto player until Close.
type session struct {
	data   []byte
	player *oto.Player
}

// Device is the oto-backed wave.DeviceLayer. oto permits a single context
// per process, so the first Open fixes the stream format; later opens with
// another format fail.
type Device struct {
	mu       sync.Mutex
	ctx      *oto.Context
	format   audio.Format
	next     wave.Handle
	sessions map[wave.Handle]*session
	volume   uint32
}

var _ wave.DeviceLayer = (*Device)(nil)

// New returns an uninitialized device; the oto context is created on the
// first Open.
func New() *Device {
	return &Device{
		sessions: map[wave.Handle]*session{},
		volume:   0xFFFFFFFF,
	}
}

func (d *Device) Open(format audio.Format) (wave.Handle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.ctx == nil {
		if format.BitsPerSample != 16 {
			return 0, fmt.Errorf("otodev: only 16-bit formats are supported, got %d", format.BitsPerSample)
		}
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   int(format.SampleRate),
			ChannelCount: int(format.Channels),
			Format:       oto.FormatSignedInt16LE,
		})
		if err != nil {
			return 0, fmt.Errorf("otodev: context: %w", err)
		}
		<-ready
		d.ctx = ctx
		d.format = format
	} else if format != d.format {
		return 0, fmt.Errorf("otodev: context already opened at %d Hz/%d ch",
			d.format.SampleRate, d.format.Channels)
	}

	d.next++
	h := d.next
	d.sessions[h] = &session{}
	return h, nil
}

func (d *Device) PrepareHeader(h wave.Handle, hdr *wave.Header) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := d.sessions[h]
	if s == nil {
		return fmt.Errorf("otodev: prepare on unknown handle %d", h)
	}
	s.data = hdr.Data
	return nil
}

func (d *Device) Write(h wave.Handle, hdr *wave.Header) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := d.sessions[h]
	if s == nil {
		return fmt.Errorf("otodev: write on unknown handle %d", h)
	}
	if s.data == nil {
		return fmt.Errorf("otodev: write before prepare on handle %d", h)
	}

	p := d.ctx.NewPlayer(bytes.NewReader(s.data))
	p.SetVolume(d.volumeMultiplier())
	p.Play()
	s.player = p
	return nil
}

func (d *Device) ReleaseHeader(h wave.Handle, hdr *wave.Header) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := d.sessions[h]
	if s == nil {
		return false, fmt.Errorf("otodev: release on unknown handle %d", h)
	}
	if s.player != nil && s.player.IsPlaying() {
		return true, nil
	}
	s.data = nil
	return false, nil
}

func (d *Device) Close(h wave.Handle) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := d.sessions[h]
	if s == nil {
		return fmt.Errorf("otodev: close on unknown handle %d", h)
	}
	delete(d.sessions, h)
	if s.player != nil {
		return s.player.Close()
	}
	return nil
}

func (d *Device) CountDevices(class wave.DeviceClass) (int, error) {
	// oto exposes exactly one logical output and nothing else.
	if class == wave.WaveOutDevices {
		return 1, nil
	}
	return 0, nil
}

// Beep renders the tone in software and drives it through a full session,
// the same shape the hardware beep call has on Windows.
func (d *Device) Beep(frequencyHz, durationMs int) error {
	buf, err := tone.Synthesize(float64(frequencyHz), durationMs, 0.8)
	if err != nil {
		return err
	}

	h, err := d.Open(buf.Format)
	if err != nil {
		return err
	}
	defer d.Close(h)

	hdr := &wave.Header{Data: buf.Bytes(), Loops: 1}
	if err := d.PrepareHeader(h, hdr); err != nil {
		return err
	}
	if err := d.Write(h, hdr); err != nil {
		return err
	}
	for {
		busy, err := d.ReleaseHeader(h, hdr)
		if err != nil {
			return err
		}
		if !busy {
			return nil
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func (d *Device) PlaySound(name string, flags wave.SoundFlags) error {
	if name == "" && flags&wave.SoundPurge != 0 {
		d.mu.Lock()
		defer d.mu.Unlock()
		for _, s := range d.sessions {
			if s.player != nil {
				s.player.Pause()
			}
		}
		return nil
	}
	return fmt.Errorf("otodev: named system sounds are not available")
}

func (d *Device) OutputVolume() (uint32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.volume, nil
}

func (d *Device) SetOutputVolume(volume uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.volume = volume
	for _, s := range d.sessions {
		if s.player != nil {
			s.player.SetVolume(d.volumeMultiplier())
		}
	}
	return nil
}

// volumeMultiplier maps the packed stereo word to oto's scalar volume by
// averaging the two channel levels. Callers must hold d.mu.
func (d *Device) volumeMultiplier() float64 {
	left := float64(d.volume & 0xFFFF)
	right := float64(d.volume >> 16)
	return (left + right) / 2 / 0xFFFF
}
