// ABOUTME: Lock-free playback control state
// ABOUTME: Atomic parameters shared between the control and audio threads
package engine

import (
	"math"
	"sync/atomic"
)

// minTempo is the floor applied to the tempo before it reaches the
// stretch processor.
const minTempo = 0.1

// Controls holds the playback parameters written by the control thread
// and read every callback by the audio thread. Each field is atomic on
// its own; no ordering is guaranteed between fields. Raw values are
// stored as written and clamped at the point of use.
type Controls struct {
	playing atomic.Bool
	reverse atomic.Bool
	loop    atomic.Bool
	tempo   atomic.Uint64 // float64 bits
	volume  atomic.Uint64 // float64 bits
}

func newControls() *Controls {
	c := &Controls{}
	c.loop.Store(true)
	c.SetTempo(1.0)
	c.SetVolume(1.0)
	return c
}

// Playing reports whether playback is enabled.
func (c *Controls) Playing() bool { return c.playing.Load() }

// SetPlaying sets the playback flag.
func (c *Controls) SetPlaying(on bool) { c.playing.Store(on) }

// TogglePlaying flips the playback flag and returns the new state.
func (c *Controls) TogglePlaying() bool {
	on := !c.playing.Load()
	c.playing.Store(on)
	return on
}

// Reverse reports whether playback runs backwards.
func (c *Controls) Reverse() bool { return c.reverse.Load() }

// SetReverse sets the playback direction.
func (c *Controls) SetReverse(on bool) { c.reverse.Store(on) }

// ToggleReverse flips the direction and returns the new state.
func (c *Controls) ToggleReverse() bool {
	on := !c.reverse.Load()
	c.reverse.Store(on)
	return on
}

// Loop reports whether playback wraps at the buffer boundary.
func (c *Controls) Loop() bool { return c.loop.Load() }

// SetLoop sets the loop flag.
func (c *Controls) SetLoop(on bool) { c.loop.Store(on) }

// Tempo returns the tempo factor as written, unclamped.
func (c *Controls) Tempo() float64 {
	return math.Float64frombits(c.tempo.Load())
}

// SetTempo stores the tempo factor without clamping.
func (c *Controls) SetTempo(tempo float64) {
	c.tempo.Store(math.Float64bits(tempo))
}

// EffectiveTempo returns the tempo floored to the processor minimum.
func (c *Controls) EffectiveTempo() float64 {
	tempo := c.Tempo()
	if tempo < minTempo {
		return minTempo
	}
	return tempo
}

// Volume returns the volume as written, unclamped.
func (c *Controls) Volume() float64 {
	return math.Float64frombits(c.volume.Load())
}

// SetVolume stores the volume without clamping.
func (c *Controls) SetVolume(volume float64) {
	c.volume.Store(math.Float64bits(volume))
}

// EffectiveVolume returns the volume clamped to [0, 1].
func (c *Controls) EffectiveVolume() float64 {
	volume := c.Volume()
	if volume < 0 {
		return 0
	}
	if volume > 1 {
		return 1
	}
	return volume
}
