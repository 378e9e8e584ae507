// ABOUTME: winmm package documentation
// ABOUTME: Windows waveform-audio implementation of the device layer
// Package winmm implements wave.DeviceLayer over the Windows multimedia
// API (winmm.dll waveOut* family plus kernel32 Beep). On other platforms
// every operation returns ErrUnsupported; use the oto-backed device there.
package winmm
