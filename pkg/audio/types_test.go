// ABOUTME: Tests for shared audio types
// ABOUTME: Verifies buffer emptiness, duration and sample clamping
package audio

import (
	"testing"
	"time"
)

func TestBufferEmpty(t *testing.T) {
	var nilBuf *Buffer
	if !nilBuf.Empty() {
		t.Error("nil buffer should be empty")
	}

	empty := &Buffer{Channels: Channels, SampleRate: SampleRate}
	if !empty.Empty() {
		t.Error("zero-frame buffer should be empty")
	}

	full := &Buffer{
		PCM:        make([]int16, 10*Channels),
		Frames:     10,
		Channels:   Channels,
		SampleRate: SampleRate,
	}
	if full.Empty() {
		t.Error("10-frame buffer should not be empty")
	}
}

func TestBufferDuration(t *testing.T) {
	buf := &Buffer{
		PCM:        make([]int16, SampleRate*Channels),
		Frames:     SampleRate,
		Channels:   Channels,
		SampleRate: SampleRate,
	}

	if got := buf.Duration(); got != time.Second {
		t.Errorf("expected 1s duration, got %v", got)
	}

	var nilBuf *Buffer
	if got := nilBuf.Duration(); got != 0 {
		t.Errorf("expected 0 duration for nil buffer, got %v", got)
	}
}

func TestClampSample(t *testing.T) {
	cases := []struct {
		in   int
		want int16
	}{
		{0, 0},
		{32767, 32767},
		{32768, 32767},
		{100000, 32767},
		{-32768, -32768},
		{-32769, -32768},
		{-100000, -32768},
		{1234, 1234},
	}

	for _, c := range cases {
		if got := ClampSample(c.in); got != c.want {
			t.Errorf("ClampSample(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
