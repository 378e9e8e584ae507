// ABOUTME: Bubbletea program wrapper for the tone pad
// ABOUTME: Runs the pad until the user quits
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sounddev/winsound-go/pkg/wave"
)

// Run starts the tone pad and blocks until the user quits.
func Run(dev wave.DeviceLayer) error {
	_, err := tea.NewProgram(New(dev)).Run()
	return err
}
