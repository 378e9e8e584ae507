// ABOUTME: Audio fundamentals package providing core types
// ABOUTME: Defines Format and Buffer used by synthesis and playback
// Package audio provides the fundamental audio types shared by tone
// synthesis and waveform playback.
//
// This package defines:
//   - Format: PCM stream format with derived block-align/byte-rate fields
//   - Buffer: a finite run of signed PCM samples plus its byte length
//
// Formats are built through NewFormat (or DefaultFormat) so that the
// derived fields are always consistent with the source fields.
//
// Example:
//
//	format := audio.DefaultFormat()          // 44100 Hz, 16-bit, mono
//	custom := audio.NewFormat(22050, 16, 2)  // derived fields filled in
package audio
