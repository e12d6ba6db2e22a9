// ABOUTME: Audio output interface definition
// ABOUTME: Common pull-based interface for playback backends
package output

import "fmt"

// RenderFunc fills out with interleaved s16 samples. It is invoked on
// the device's audio thread with len(out) = frames*channels and must
// fully populate the slice on every call without blocking.
type RenderFunc func(out []int16)

// Device represents a pull-based audio playback device.
type Device interface {
	// Start opens the device and begins invoking render
	Start(sampleRate, channels int, render RenderFunc) error

	// Close stops playback and releases device resources
	Close() error
}

// New creates a playback device by backend name.
func New(backend string) (Device, error) {
	switch backend {
	case "", "malgo", "miniaudio":
		return NewMalgo(), nil
	case "oto":
		return NewOto(), nil
	default:
		return nil, fmt.Errorf("unknown audio backend: %s (supported: malgo, oto)", backend)
	}
}
