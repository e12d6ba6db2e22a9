// ABOUTME: Audio output package for pull-based playback
// ABOUTME: Provides the Device interface with malgo and oto backends
// Package output drives playback devices that pull audio on demand.
//
// A Device invokes the supplied render callback from its own real-time
// audio goroutine; the callback must fully populate the requested
// frames on every call and must not block.
//
// Backends: malgo (miniaudio) and oto.
//
// Example:
//
//	dev, err := output.New("malgo")
//	err = dev.Start(48000, 2, engine.Render)
package output
