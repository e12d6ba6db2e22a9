// ABOUTME: TUI initialization and control channels
// ABOUTME: Wraps the bubbletea program and the command surface
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Action identifies a player command issued from the TUI.
type Action int

const (
	ActionTogglePlay Action = iota
	ActionToggleReverse
	ActionRewind
	ActionSetLoop
	ActionSetTempo
	ActionSetVolume
	ActionLoad
)

// Command carries one control change from the TUI to the player.
type Command struct {
	Action Action
	Path   string  // ActionLoad
	Value  float64 // ActionSetTempo, ActionSetVolume
	On     bool    // ActionSetLoop
}

// Control holds the channels the TUI uses to talk to the player.
type Control struct {
	Commands chan Command
	Quit     chan struct{}
}

// NewControl creates the control channel set.
func NewControl() *Control {
	return &Control{
		Commands: make(chan Command, 16),
		Quit:     make(chan struct{}, 1),
	}
}

// Run starts the TUI program.
func Run(ctrl *Control) (*tea.Program, error) {
	p := tea.NewProgram(NewModel(ctrl), tea.WithAltScreen())
	return p, nil
}
