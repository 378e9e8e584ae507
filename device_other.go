// ABOUTME: Device selection for the demo binary off Windows
// ABOUTME: Uses the portable oto device layer
//go:build !windows

package main

import (
	"github.com/sounddev/winsound-go/internal/otodev"
	"github.com/sounddev/winsound-go/pkg/wave"
)

func newDevice() wave.DeviceLayer {
	return otodev.New()
}
