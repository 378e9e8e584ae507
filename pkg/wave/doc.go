// ABOUTME: Waveform playback package public documentation
// ABOUTME: Describes the DeviceLayer boundary and the Player lifecycle
// Package wave drives single-shot PCM playback through a waveform audio
// device and exposes the simple passthrough surface of the underlying
// multimedia API (device counts, system beep, named sounds, volume).
//
// The device itself sits behind the DeviceLayer interface: one
// implementation per platform (winmm on Windows, oto elsewhere) plus an
// in-test fake. Player owns the session lifecycle against that boundary:
// open, prepare header, write, poll-release, close.
//
// Example:
//
//	buf, _ := tone.Synthesize(440, 1000, 0.8)
//	player := wave.NewPlayer(wave.PlayerConfig{Device: dev})
//	err := player.Play(buf.Format, buf, false)
//
// Several tones can be started in lockstep through a StartGate:
//
//	err := wave.PlayTones(dev, []float64{440, 550, 660}, 1000, 0.6)
package wave
