// ABOUTME: Main player application orchestration
// ABOUTME: Wires the engine, audio device and TUI together
package app

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sylwesterdigital/novaaudio-poc/internal/engine"
	"github.com/sylwesterdigital/novaaudio-poc/internal/ui"
	"github.com/sylwesterdigital/novaaudio-poc/pkg/audio"
	"github.com/sylwesterdigital/novaaudio-poc/pkg/audio/output"
)

// statusInterval is how often playback status is pushed to the TUI.
const statusInterval = 200 * time.Millisecond

// Config holds player configuration
type Config struct {
	FilePath string
	Backend  string
	Loop     bool
	Tempo    float64
	Volume   float64
	UseTUI   bool

	// Device overrides the backend selection; used by tests.
	Device output.Device
}

// Player represents the main player application
type Player struct {
	config  Config
	engine  *engine.Engine
	device  output.Device
	ctrl    *ui.Control
	tuiProg *tea.Program
	loadErr string
	ctx     context.Context
	cancel  context.CancelFunc
}

// New creates a new player
func New(config Config) *Player {
	ctx, cancel := context.WithCancel(context.Background())

	return &Player{
		config: config,
		engine: engine.New(engine.Config{}),
		ctrl:   ui.NewControl(),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start opens the audio device, loads the initial file and starts the
// TUI and control loop. A device failure is returned to the caller;
// without an output device there is nothing to play.
func (p *Player) Start() error {
	dev := p.config.Device
	if dev == nil {
		var err error
		dev, err = output.New(p.config.Backend)
		if err != nil {
			return err
		}
	}

	if err := dev.Start(audio.SampleRate, audio.Channels, p.engine.Render); err != nil {
		return fmt.Errorf("audio device start failed: %w", err)
	}
	p.device = dev

	controls := p.engine.Controls()
	controls.SetLoop(p.config.Loop)
	if p.config.Tempo > 0 {
		controls.SetTempo(p.config.Tempo)
	}
	controls.SetVolume(p.config.Volume)

	if p.config.FilePath != "" {
		p.load(p.config.FilePath)
	}

	if p.config.UseTUI {
		prog, err := ui.Run(p.ctrl)
		if err != nil {
			return fmt.Errorf("failed to start TUI: %w", err)
		}
		p.tuiProg = prog

		go func() {
			if _, err := prog.Run(); err != nil {
				log.Printf("TUI error: %v", err)
			}
			p.cancel()
		}()
	}

	go p.controlLoop()

	return nil
}

// Done is closed when the player has been asked to quit.
func (p *Player) Done() <-chan struct{} {
	return p.ctx.Done()
}

// controlLoop is the single control goroutine: it applies TUI commands
// to the engine and ships periodic status back.
func (p *Player) controlLoop() {
	ticker := time.NewTicker(statusInterval)
	defer ticker.Stop()

	for {
		select {
		case cmd := <-p.ctrl.Commands:
			p.handleCommand(cmd)

		case <-ticker.C:
			p.sendStatus()

		case <-p.ctrl.Quit:
			p.cancel()
			return

		case <-p.ctx.Done():
			return
		}
	}
}

// handleCommand applies one TUI command to the engine
func (p *Player) handleCommand(cmd ui.Command) {
	controls := p.engine.Controls()

	switch cmd.Action {
	case ui.ActionTogglePlay:
		on := controls.TogglePlaying()
		log.Printf("Playing: %v", on)

	case ui.ActionToggleReverse:
		on := controls.ToggleReverse()
		log.Printf("Reverse: %v", on)

	case ui.ActionRewind:
		p.engine.Rewind()
		log.Printf("Rewound")

	case ui.ActionSetLoop:
		controls.SetLoop(cmd.On)
		log.Printf("Loop: %v", cmd.On)

	case ui.ActionSetTempo:
		controls.SetTempo(cmd.Value)

	case ui.ActionSetVolume:
		controls.SetVolume(cmd.Value)

	case ui.ActionLoad:
		p.load(cmd.Path)
	}
}

// load decodes a file into the engine and starts playback on success
func (p *Player) load(path string) {
	if err := p.engine.Load(path); err != nil {
		log.Printf("Load failed: %v", err)
		p.loadErr = err.Error()
		return
	}
	p.loadErr = ""
	p.engine.Controls().SetPlaying(true)
}

// sendStatus pushes current playback state to the TUI
func (p *Player) sendStatus() {
	if p.tuiProg == nil {
		return
	}

	fileName := p.engine.LoadedFile()
	if fileName != "" {
		fileName = filepath.Base(fileName)
	}

	p.tuiProg.Send(ui.StatusMsg{
		FileName: fileName,
		Playing:  p.engine.IsPlaying(),
		Reverse:  p.engine.IsReverse(),
		Loop:     p.engine.IsLoop(),
		Tempo:    p.engine.CurrentTempo(),
		Volume:   p.engine.CurrentVolume(),
		Position: p.engine.Position(),
		Duration: p.engine.Duration(),
		LoadErr:  p.loadErr,
	})
}

// Stop shuts the player down: engine first so the audio thread settles
// on silence, then the device, then the TUI.
func (p *Player) Stop() {
	p.cancel()

	p.engine.Shutdown()

	if p.device != nil {
		if err := p.device.Close(); err != nil {
			log.Printf("Error closing audio device: %v", err)
		}
	}

	if p.tuiProg != nil {
		p.tuiProg.Quit()
	}
}
