// ABOUTME: Device selection for the demo binary on Windows
// ABOUTME: Uses the winmm waveform device layer
//go:build windows

package main

import (
	"github.com/sounddev/winsound-go/internal/winmm"
	"github.com/sounddev/winsound-go/pkg/wave"
)

func newDevice() wave.DeviceLayer {
	return winmm.New()
}
