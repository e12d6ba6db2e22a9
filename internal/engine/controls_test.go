// ABOUTME: Tests for the atomic control state
// ABOUTME: Verifies defaults, clamping policy and concurrent access
package engine

import (
	"sync"
	"testing"
)

func TestControlsDefaults(t *testing.T) {
	c := newControls()

	if c.Playing() {
		t.Error("playing should default to false")
	}
	if c.Reverse() {
		t.Error("reverse should default to false")
	}
	if !c.Loop() {
		t.Error("loop should default to true")
	}
	if c.Tempo() != 1.0 {
		t.Errorf("tempo should default to 1.0, got %f", c.Tempo())
	}
	if c.Volume() != 1.0 {
		t.Errorf("volume should default to 1.0, got %f", c.Volume())
	}
}

func TestTempoClampedAtUseNotWrite(t *testing.T) {
	c := newControls()

	c.SetTempo(0.0)
	if c.Tempo() != 0.0 {
		t.Errorf("stored tempo should be raw 0.0, got %f", c.Tempo())
	}
	if c.EffectiveTempo() != 0.1 {
		t.Errorf("effective tempo should floor to 0.1, got %f", c.EffectiveTempo())
	}

	c.SetTempo(-3.0)
	if c.EffectiveTempo() != 0.1 {
		t.Errorf("negative tempo should floor to 0.1, got %f", c.EffectiveTempo())
	}

	// Only the floor is enforced
	c.SetTempo(5.0)
	if c.EffectiveTempo() != 5.0 {
		t.Errorf("tempo 5.0 should pass unclamped, got %f", c.EffectiveTempo())
	}
}

func TestVolumeClampedAtUse(t *testing.T) {
	c := newControls()

	c.SetVolume(-1.0)
	if c.EffectiveVolume() != 0.0 {
		t.Errorf("volume -1 should clamp to 0, got %f", c.EffectiveVolume())
	}

	c.SetVolume(2.0)
	if c.EffectiveVolume() != 1.0 {
		t.Errorf("volume 2 should clamp to 1, got %f", c.EffectiveVolume())
	}

	c.SetVolume(0.25)
	if c.EffectiveVolume() != 0.25 {
		t.Errorf("in-range volume should pass through, got %f", c.EffectiveVolume())
	}
}

func TestToggles(t *testing.T) {
	c := newControls()

	if on := c.TogglePlaying(); !on {
		t.Error("first toggle should turn playing on")
	}
	if on := c.TogglePlaying(); on {
		t.Error("second toggle should turn playing off")
	}

	if on := c.ToggleReverse(); !on {
		t.Error("first toggle should turn reverse on")
	}
	if !c.Reverse() {
		t.Error("reverse should read back as on")
	}
}

func TestFieldsAreIndependent(t *testing.T) {
	c := newControls()

	c.SetPlaying(true)
	c.SetTempo(1.5)
	c.SetVolume(0.5)
	c.SetLoop(false)
	c.SetReverse(true)

	if !c.Playing() || c.Tempo() != 1.5 || c.Volume() != 0.5 || c.Loop() || !c.Reverse() {
		t.Error("fields should hold independent values")
	}
}

func TestConcurrentReadWrite(t *testing.T) {
	c := newControls()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 10000; i++ {
			c.SetTempo(float64(i%20) / 10.0)
			c.SetVolume(float64(i%10) / 10.0)
			c.SetPlaying(i%2 == 0)
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 10000; i++ {
			tempo := c.EffectiveTempo()
			if tempo < 0.1 {
				t.Errorf("effective tempo below floor: %f", tempo)
				return
			}
			vol := c.EffectiveVolume()
			if vol < 0 || vol > 1 {
				t.Errorf("effective volume out of range: %f", vol)
				return
			}
			c.Playing()
		}
	}()

	wg.Wait()
}
