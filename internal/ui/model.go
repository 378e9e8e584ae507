// ABOUTME: Bubbletea model for the interactive tone pad
// ABOUTME: Maps keyboard rows to notes, one chord key, quit handling
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sounddev/winsound-go/pkg/tone"
	"github.com/sounddev/winsound-go/pkg/wave"
)

// noteDurationMs is the length of one pad tone. The synthesizer's
// historical half-rate formula makes the audible tone half of this.
const noteDurationMs = 600

var noteKeys = map[string]struct {
	name string
	freq float64
}{
	"a": {"C4", 261.63},
	"s": {"D4", 293.66},
	"d": {"E4", 329.63},
	"f": {"F4", 349.23},
	"g": {"G4", 392.00},
	"h": {"A4", 440.00},
	"j": {"B4", 493.88},
	"k": {"C5", 523.25},
}

// chordFreqs is the C major triad played by the chord key through the
// start gate.
var chordFreqs = []float64{261.63, 329.63, 392.00}

// playedMsg reports a finished (or failed) playback back to the model.
type playedMsg struct {
	label string
	err   error
}

// Model is the tone pad state.
type Model struct {
	dev     wave.DeviceLayer
	player  *wave.Player
	last    string
	playing int
	err     error
}

// New creates the pad over a device layer.
func New(dev wave.DeviceLayer) Model {
	return Model{
		dev:    dev,
		player: wave.NewPlayer(wave.PlayerConfig{Device: dev}),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "c":
			m.playing++
			m.last = "C major"
			return m, m.playChord()
		default:
			if note, ok := noteKeys[key]; ok {
				m.playing++
				m.last = note.name
				return m, m.playNote(note.name, note.freq)
			}
		}

	case playedMsg:
		m.playing--
		m.err = msg.err
	}

	return m, nil
}

// playNote synthesizes and plays one tone off the UI goroutine.
func (m Model) playNote(name string, freq float64) tea.Cmd {
	player := m.player
	return func() tea.Msg {
		buf, err := tone.Synthesize(freq, noteDurationMs, 0.8)
		if err != nil {
			return playedMsg{label: name, err: err}
		}
		return playedMsg{label: name, err: player.Play(buf.Format, buf, false)}
	}
}

// playChord starts the triad voices in lockstep.
func (m Model) playChord() tea.Cmd {
	dev := m.dev
	return func() tea.Msg {
		return playedMsg{label: "chord", err: wave.PlayTones(dev, chordFreqs, noteDurationMs, 0.6)}
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString("winsound tone pad\n\n")
	b.WriteString("  a  s  d  f  g  h  j  k\n")
	b.WriteString("  C4 D4 E4 F4 G4 A4 B4 C5\n\n")
	b.WriteString("  c: C major chord    q: quit\n\n")

	if m.last != "" {
		b.WriteString(fmt.Sprintf("  last: %s", m.last))
		if m.playing > 0 {
			b.WriteString("  (playing)")
		}
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  error: %v\n", m.err))
	}

	return b.String()
}
