// ABOUTME: Entry point for the NovaAudio player
// ABOUTME: Parses CLI flags, sets up logging and runs the application
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sylwesterdigital/novaaudio-poc/internal/app"
)

var (
	filePath = flag.String("file", "", "Audio file to load at startup (wav/mp3/flac/ogg)")
	backend  = flag.String("output", "malgo", "Audio output backend (malgo, oto)")
	loop     = flag.Bool("loop", true, "Loop playback at the buffer boundary")
	tempo    = flag.Float64("tempo", 1.0, "Initial tempo factor")
	volume   = flag.Float64("volume", 1.0, "Initial volume (0..1)")
	logFile  = flag.String("log-file", "novaaudio.log", "Log file path")
	noTUI    = flag.Bool("no-tui", false, "Disable TUI, use streaming logs instead")
)

func main() {
	flag.Parse()

	useTUI := !*noTUI

	// Set up logging
	f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer func() { _ = f.Close() }()

	if useTUI {
		// TUI mode: log only to file, the terminal belongs to the TUI
		log.SetOutput(f)
	} else {
		multiWriter := io.MultiWriter(os.Stdout, f)
		log.SetOutput(multiWriter)
	}

	log.Printf("Starting NovaAudio (backend=%s)", *backend)

	player := app.New(app.Config{
		FilePath: *filePath,
		Backend:  *backend,
		Loop:     *loop,
		Tempo:    *tempo,
		Volume:   *volume,
		UseTUI:   useTUI,
	})

	// No output device means no playback at all
	if err := player.Start(); err != nil {
		log.Fatalf("Failed to start player: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-player.Done():
		log.Printf("Quit requested")
	case <-sigChan:
		log.Printf("Shutdown signal received")
	}

	player.Stop()
	log.Printf("Player stopped")
}
