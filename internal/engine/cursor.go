// ABOUTME: Playback session and cursor scanner
// ABOUTME: Scans the sample buffer forward or backward with loop policy
package engine

import (
	"math"
	"sync/atomic"

	"github.com/sylwesterdigital/novaaudio-poc/pkg/audio"
)

// session bundles the sample buffer, its tempo stream and the read
// cursor. Buffer and stream are acquired and released as a unit: the
// engine swaps whole sessions through an atomic pointer so the audio
// thread never observes a half-initialized pair.
type session struct {
	buf    *audio.Buffer
	stream Stretcher

	// fractional frame position, stored as float64 bits. Written by the
	// audio thread while scanning and by the control thread on rewind;
	// last writer wins, which matches the soft-flag model of the rest
	// of the control surface.
	cursor atomic.Uint64
}

func newSession(buf *audio.Buffer, stream Stretcher) *session {
	s := &session{buf: buf, stream: stream}
	s.setCursor(0)
	return s
}

func (s *session) cursorPos() float64 {
	return math.Float64frombits(s.cursor.Load())
}

func (s *session) setCursor(pos float64) {
	s.cursor.Store(math.Float64bits(pos))
}

// lastFrame returns the highest valid frame position.
func (s *session) lastFrame() float64 {
	if s.buf.Empty() {
		return 0
	}
	return float64(s.buf.Frames - 1)
}

// scan copies up to len(dst)/channels whole frames from the buffer into
// dst, advancing the cursor one frame per slot in the current direction.
//
// Boundary policy: without loop, forward scanning stops once the cursor
// reaches the final frame (so the final frame itself is never emitted,
// and a one-frame buffer emits nothing), while reverse scanning stops
// only after frame zero has been emitted. With loop, the wrap happens
// past the boundary, so a full cycle visits every frame exactly once in
// both directions.
//
// Returns the number of frames produced; zero means the source is
// exhausted (or empty).
func (s *session) scan(dst []int16, reverse, loop bool) int {
	if s.buf.Empty() {
		return 0
	}

	want := len(dst) / audio.Channels
	last := s.lastFrame()
	pos := s.cursorPos()
	produced := 0

	for produced < want {
		if !reverse {
			if loop {
				if pos > last {
					pos = 0
				}
			} else if pos >= last {
				break
			}
		} else {
			if pos < 0 {
				if !loop {
					break
				}
				pos = last
			}
		}

		idx := int(pos) * audio.Channels
		dst[produced*audio.Channels] = s.buf.PCM[idx]
		dst[produced*audio.Channels+1] = s.buf.PCM[idx+1]

		if reverse {
			pos -= 1.0
		} else {
			pos += 1.0
		}
		produced++
	}

	s.setCursor(pos)
	return produced
}

// rewind moves the cursor to the start position for the given direction
// and discards any audio buffered in the tempo stream.
func (s *session) rewind(reverse bool) {
	if reverse {
		s.setCursor(s.lastFrame())
	} else {
		s.setCursor(0)
	}
	s.stream.Flush()
}
