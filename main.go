// ABOUTME: Entry point for the winsound demo binary
// ABOUTME: Plays tones, chords, beeps, and queries the device layer from flags
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/sounddev/winsound-go/internal/ui"
	"github.com/sounddev/winsound-go/pkg/tone"
	"github.com/sounddev/winsound-go/pkg/wave"
)

var (
	freq        = flag.Float64("freq", 440, "Tone frequency in Hz (37 < f <= 32767)")
	durationMs  = flag.Int("dur", 1000, "Tone duration in milliseconds (0-5000)")
	amplitude   = flag.Float64("amp", 0.8, "Amplitude as a fraction of full scale")
	chord       = flag.String("chord", "", "Comma-separated frequencies started in lockstep")
	counts      = flag.Bool("counts", false, "Print device counts and exit")
	showVolume  = flag.Bool("volume", false, "Print the output volume and exit")
	setVolume   = flag.String("set-volume", "", "Set output volume as left,right (0-65535)")
	useBeep     = flag.Bool("beep", false, "Use the system beep instead of PCM playback")
	soundName   = flag.String("sound", "", "Play a named or aliased system sound and exit")
	stopSounds  = flag.Bool("stop", false, "Stop the currently playing sound and exit")
	interactive = flag.Bool("interactive", false, "Run the interactive tone pad")
)

func main() {
	flag.Parse()

	dev := newDevice()
	sys := wave.NewSystem(dev)

	switch {
	case *interactive:
		if err := ui.Run(dev); err != nil {
			log.Fatalf("Tone pad failed: %v", err)
		}

	case *counts:
		printCounts(sys)

	case *showVolume:
		left, right, err := sys.Volume()
		if err != nil {
			log.Fatalf("Volume query failed: %v", err)
		}
		fmt.Printf("left=%d right=%d\n", left, right)

	case *setVolume != "":
		left, right, err := parsePair(*setVolume)
		if err != nil {
			log.Fatalf("Bad -set-volume value: %v", err)
		}
		if err := sys.SetChannelVolume(left, right); err != nil {
			log.Fatalf("Volume set failed: %v", err)
		}

	case *soundName != "":
		if err := sys.PlaySound(*soundName, wave.SoundAlias); err != nil {
			log.Fatalf("PlaySound failed: %v", err)
		}

	case *stopSounds:
		if err := sys.Stop(); err != nil {
			log.Fatalf("Stop failed: %v", err)
		}

	case *useBeep:
		if err := sys.Beep(int(*freq), *durationMs); err != nil {
			log.Fatalf("Beep failed: %v", err)
		}

	case *chord != "":
		freqs, err := parseChord(*chord)
		if err != nil {
			log.Fatalf("Bad -chord value: %v", err)
		}
		log.Printf("Playing %d voices for %dms", len(freqs), *durationMs)
		if err := wave.PlayTones(dev, freqs, *durationMs, *amplitude); err != nil {
			log.Fatalf("Chord playback failed: %v", err)
		}

	default:
		buf, err := tone.Synthesize(*freq, *durationMs, *amplitude)
		if err != nil {
			log.Fatalf("Synthesis failed: %v", err)
		}
		log.Printf("Playing %.2f Hz for %dms (%d samples)", *freq, *durationMs, len(buf.Samples))
		player := wave.NewPlayer(wave.PlayerConfig{Device: dev})
		if err := player.Play(buf.Format, buf, false); err != nil {
			log.Fatalf("Playback failed: %v", err)
		}
	}
}

func printCounts(sys *wave.System) {
	classes := []struct {
		name  string
		class wave.DeviceClass
	}{
		{"wave out", wave.WaveOutDevices},
		{"wave in", wave.WaveInDevices},
		{"midi out", wave.MidiOutDevices},
		{"midi in", wave.MidiInDevices},
		{"aux", wave.AuxDevices},
		{"mixer", wave.MixerDevices},
	}
	for _, c := range classes {
		n, err := sys.DeviceCount(c.class)
		if err != nil {
			log.Fatalf("Counting %s devices failed: %v", c.name, err)
		}
		fmt.Printf("%-8s %d\n", c.name, n)
	}
}

func parseChord(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	freqs := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("frequency %q: %w", p, err)
		}
		freqs = append(freqs, f)
	}
	return freqs, nil
}

func parsePair(s string) (left, right uint32, err error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want left,right got %q", s)
	}
	l, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 32)
	if err != nil {
		return 0, 0, err
	}
	r, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 32)
	if err != nil {
		return 0, 0, err
	}
	return uint32(l), uint32(r), nil
}
