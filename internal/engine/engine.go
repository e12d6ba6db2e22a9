// ABOUTME: Playback engine lifecycle and real-time render callback
// ABOUTME: Coordinates buffer loading, tempo stream and output rendering
package engine

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/sylwesterdigital/novaaudio-poc/pkg/audio"
	"github.com/sylwesterdigital/novaaudio-poc/pkg/audio/decode"
)

// ScratchFrames caps how many dry frames one render pass pulls from the
// buffer before handing them to the tempo stream.
const ScratchFrames = 2048

// DecodeFunc loads a file into the engine PCM format.
type DecodeFunc func(path string) (*audio.Buffer, error)

// Config customizes engine collaborators; zero values select the real
// file decoder and the built-in tempo processor.
type Config struct {
	Decode       DecodeFunc
	NewStretcher StretcherFactory
}

// Engine is the playback core. Control methods (Load, Rewind, Shutdown,
// the setters) belong to a single control goroutine; Render is invoked
// concurrently by the audio device. The two sides meet only through the
// atomic Controls fields and the atomic session pointer.
type Engine struct {
	controls     *Controls
	session      atomic.Pointer[session]
	decode       DecodeFunc
	newStretcher StretcherFactory

	// dry-frame scratch, touched only by the audio thread
	scratch []int16

	// control-thread-only state
	fileName string
}

// New creates an engine with no buffer loaded.
func New(cfg Config) *Engine {
	if cfg.Decode == nil {
		cfg.Decode = decode.File
	}
	if cfg.NewStretcher == nil {
		cfg.NewStretcher = newDefaultStretcher
	}

	return &Engine{
		controls:     newControls(),
		decode:       cfg.Decode,
		newStretcher: cfg.NewStretcher,
		scratch:      make([]int16, ScratchFrames*audio.Channels),
	}
}

// Controls exposes the shared playback parameters.
func (e *Engine) Controls() *Controls { return e.controls }

// Load replaces the current buffer with a freshly decoded file and a
// new tempo stream. Playback is forced off for the whole swap window;
// the audio thread renders silence until a complete session is visible.
// On failure the engine is left empty and paused.
func (e *Engine) Load(path string) error {
	e.controls.SetPlaying(false)
	e.session.Store(nil)
	e.fileName = ""

	buf, err := e.decode(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	stream, err := e.newStretcher(buf.SampleRate, buf.Channels)
	if err != nil {
		return fmt.Errorf("load %s: create tempo stream: %w", path, err)
	}

	e.session.Store(newSession(buf, stream))
	e.fileName = path

	log.Printf("Loaded %s: %d frames, %.2fs", path, buf.Frames, buf.Duration().Seconds())
	return nil
}

// Rewind moves the cursor to the start position for the current
// direction and flushes buffered stretched audio so playback resumes
// cleanly at the new position.
func (e *Engine) Rewind() {
	sess := e.session.Load()
	if sess == nil {
		return
	}
	sess.rewind(e.controls.Reverse())
}

// Shutdown stops playback and releases the buffer and tempo stream.
func (e *Engine) Shutdown() {
	e.controls.SetPlaying(false)
	e.session.Store(nil)
	e.fileName = ""
}

// Render is the real-time audio callback. It fully populates out
// (len = frames*channels) on every invocation: stretched audio where
// available, silence elsewhere. It never blocks and allocates nothing.
func (e *Engine) Render(out []int16) {
	frames := len(out) / audio.Channels

	sess := e.session.Load()
	if sess == nil || !e.controls.Playing() {
		silence(out)
		return
	}

	want := frames
	if want > ScratchFrames {
		want = ScratchFrames
	}

	got := sess.scan(e.scratch[:want*audio.Channels], e.controls.Reverse(), e.controls.Loop())
	if got == 0 {
		// Source exhausted under non-loop playback: terminal, not an error
		silence(out)
		e.controls.SetPlaying(false)
		return
	}

	sess.stream.SetSpeed(e.controls.EffectiveTempo())
	sess.stream.SetVolume(e.controls.EffectiveVolume())
	sess.stream.WriteFrames(e.scratch, got)

	written := 0
	for written < frames {
		n := sess.stream.ReadFrames(out[written*audio.Channels:], frames-written)
		if n <= 0 {
			break
		}
		written += n
	}

	// Shortfall is expected stretch latency; pad with silence
	silence(out[written*audio.Channels:])
}

// IsPlaying reports whether playback is enabled.
func (e *Engine) IsPlaying() bool { return e.controls.Playing() }

// IsReverse reports the playback direction.
func (e *Engine) IsReverse() bool { return e.controls.Reverse() }

// IsLoop reports whether playback wraps at the boundary.
func (e *Engine) IsLoop() bool { return e.controls.Loop() }

// CurrentTempo returns the tempo as last written.
func (e *Engine) CurrentTempo() float64 { return e.controls.Tempo() }

// CurrentVolume returns the volume as last written.
func (e *Engine) CurrentVolume() float64 { return e.controls.Volume() }

// Loaded reports whether a buffer is currently loaded.
func (e *Engine) Loaded() bool { return e.session.Load() != nil }

// LoadedFile returns the path of the loaded file, if any.
func (e *Engine) LoadedFile() string { return e.fileName }

// Position returns the cursor position within the loaded buffer.
func (e *Engine) Position() time.Duration {
	sess := e.session.Load()
	if sess == nil || sess.buf.Empty() {
		return 0
	}
	pos := sess.cursorPos()
	if pos < 0 {
		pos = 0
	}
	return time.Duration(pos / float64(sess.buf.SampleRate) * float64(time.Second))
}

// Duration returns the length of the loaded buffer.
func (e *Engine) Duration() time.Duration {
	sess := e.session.Load()
	if sess == nil {
		return 0
	}
	return sess.buf.Duration()
}

func silence(out []int16) {
	for i := range out {
		out[i] = 0
	}
}
