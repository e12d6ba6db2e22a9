// ABOUTME: Bubbletea model for the player TUI
// ABOUTME: Renders playback status and maps keys to engine commands
package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	tempoMin  = 0.5
	tempoMax  = 2.0
	tempoStep = 0.1
	volStep   = 0.05
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Model represents the TUI state
type Model struct {
	ctrl *Control

	// Playback status
	fileName string
	playing  bool
	reverse  bool
	loop     bool
	tempo    float64
	volume   float64
	position time.Duration
	duration time.Duration
	loadErr  string

	// Load prompt
	prompting bool
	pathInput textinput.Model

	width  int
	height int
}

// StatusMsg updates the TUI from the player.
type StatusMsg struct {
	FileName string
	Playing  bool
	Reverse  bool
	Loop     bool
	Tempo    float64
	Volume   float64
	Position time.Duration
	Duration time.Duration
	LoadErr  string
}

// NewModel creates a new TUI model
func NewModel(ctrl *Control) Model {
	ti := textinput.New()
	ti.Placeholder = "path/to/audio.{wav,mp3,flac,ogg}"
	ti.CharLimit = 512

	return Model{
		ctrl:      ctrl,
		loop:      true,
		tempo:     1.0,
		volume:    1.0,
		pathInput: ti,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case StatusMsg:
		m.applyStatus(msg)
	}

	return m, nil
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompting {
		return m.handlePromptKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		select {
		case m.ctrl.Quit <- struct{}{}:
		default:
		}
		return m, tea.Quit

	case " ":
		m.playing = !m.playing
		m.send(Command{Action: ActionTogglePlay})

	case "r":
		m.reverse = !m.reverse
		m.send(Command{Action: ActionToggleReverse})

	case "w":
		m.send(Command{Action: ActionRewind})

	case "l":
		m.loop = !m.loop
		m.send(Command{Action: ActionSetLoop, On: m.loop})

	case "right":
		m.tempo = clamp(m.tempo+tempoStep, tempoMin, tempoMax)
		m.send(Command{Action: ActionSetTempo, Value: m.tempo})

	case "left":
		m.tempo = clamp(m.tempo-tempoStep, tempoMin, tempoMax)
		m.send(Command{Action: ActionSetTempo, Value: m.tempo})

	case "up":
		m.volume = clamp(m.volume+volStep, 0, 1)
		m.send(Command{Action: ActionSetVolume, Value: m.volume})

	case "down":
		m.volume = clamp(m.volume-volStep, 0, 1)
		m.send(Command{Action: ActionSetVolume, Value: m.volume})

	case "o":
		m.prompting = true
		m.pathInput.SetValue("")
		m.pathInput.Focus()
	}

	return m, nil
}

// handlePromptKey drives the load-path prompt
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		path := m.pathInput.Value()
		m.prompting = false
		m.pathInput.Blur()
		if path != "" {
			m.send(Command{Action: ActionLoad, Path: path})
		}
		return m, nil

	case "esc":
		m.prompting = false
		m.pathInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

// send delivers a command without ever blocking the UI loop
func (m Model) send(cmd Command) {
	select {
	case m.ctrl.Commands <- cmd:
	default:
	}
}

// applyStatus updates model from a player status message
func (m *Model) applyStatus(msg StatusMsg) {
	m.fileName = msg.FileName
	m.playing = msg.Playing
	m.reverse = msg.Reverse
	m.loop = msg.Loop
	m.tempo = msg.Tempo
	m.volume = msg.Volume
	m.position = msg.Position
	m.duration = msg.Duration
	m.loadErr = msg.LoadErr
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	s := titleStyle.Render("NovaAudio") + "\n\n"
	s += m.renderFile()
	s += m.renderTransport()
	s += m.renderSliders()

	if m.prompting {
		s += "\nLoad file: " + m.pathInput.View() + "\n"
	}

	if m.loadErr != "" {
		s += "\n" + errStyle.Render("Error: "+m.loadErr) + "\n"
	}

	s += "\n" + dimStyle.Render(
		"space:play/pause  r:reverse  w:rewind  l:loop  ←/→:tempo  ↑/↓:volume  o:load  q:quit")

	return s
}

// renderFile renders the loaded file line
func (m Model) renderFile() string {
	name := m.fileName
	if name == "" {
		name = "(no file loaded)"
	}

	pos := ""
	if m.duration > 0 {
		pos = fmt.Sprintf("  %s / %s",
			formatDuration(m.position), formatDuration(m.duration))
	}

	return fmt.Sprintf("│ File:  %s%s\n", truncate(name, 48), pos)
}

// renderTransport renders the playback state line
func (m Model) renderTransport() string {
	state := "Paused"
	if m.playing {
		state = "Playing"
	}

	dir := "forward"
	if m.reverse {
		dir = "reverse"
	}

	loop := "off"
	if m.loop {
		loop = "on"
	}

	return fmt.Sprintf("│ State: %s  [%s]  loop: %s\n", state, dir, loop)
}

// renderSliders renders tempo and volume bars
func (m Model) renderSliders() string {
	tempoPct := int((m.tempo - tempoMin) / (tempoMax - tempoMin) * 100)
	volPct := int(m.volume * 100)

	return fmt.Sprintf("│ Tempo:  [%s] %.2fx\n│ Volume: [%s] %d%%\n",
		renderBar(tempoPct, 100, 12), m.tempo,
		renderBar(volPct, 100, 12), volPct)
}

// Utility functions
func renderBar(value, max, width int) string {
	if value < 0 {
		value = 0
	}
	if value > max {
		value = max
	}
	filled := (value * width) / max
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
