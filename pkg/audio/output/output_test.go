// ABOUTME: Audio output interface tests
// ABOUTME: Verifies backend construction and the oto reader adapter
package output

import (
	"testing"
)

func TestMalgoImplementsDevice(t *testing.T) {
	var _ Device = (*Malgo)(nil)
}

func TestOtoImplementsDevice(t *testing.T) {
	var _ Device = (*Oto)(nil)
}

func TestNewBackendSelection(t *testing.T) {
	if _, err := New("malgo"); err != nil {
		t.Errorf("malgo backend failed: %v", err)
	}
	if _, err := New(""); err != nil {
		t.Errorf("default backend failed: %v", err)
	}
	if _, err := New("oto"); err != nil {
		t.Errorf("oto backend failed: %v", err)
	}
	if _, err := New("pulseaudio"); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestRenderReaderFillsWholeFrames(t *testing.T) {
	r := &renderReader{
		channels: 2,
		render: func(out []int16) {
			for i := range out {
				out[i] = int16(i + 1)
			}
		},
	}

	// 10 stereo frames plus 3 trailing bytes that don't fit a frame
	p := make([]byte, 10*4+3)
	n, err := r.Read(p)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if n != 10*4 {
		t.Fatalf("expected %d bytes read, got %d", 10*4, n)
	}

	// First sample is 1 little-endian
	if p[0] != 1 || p[1] != 0 {
		t.Errorf("expected first sample 1, got bytes %d %d", p[0], p[1])
	}
}

func TestRenderReaderUndersizedRequest(t *testing.T) {
	called := false
	r := &renderReader{
		channels: 2,
		render:   func(out []int16) { called = true },
	}

	p := []byte{0xFF, 0xFF}
	n, err := r.Read(p)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 bytes served, got %d", n)
	}
	if called {
		t.Error("render should not run for a sub-frame request")
	}
	if p[0] != 0 || p[1] != 0 {
		t.Error("expected silence for sub-frame request")
	}
}
