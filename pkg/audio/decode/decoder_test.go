// ABOUTME: Tests for the file decoder dispatch
// ABOUTME: Round-trips synthesized WAV files and checks error paths
package decode

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/sylwesterdigital/novaaudio-poc/pkg/audio"
)

// writeWAV synthesizes a 16-bit PCM WAV test file.
func writeWAV(t *testing.T, path string, sampleRate, channels, frames int) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)

	data := make([]int, frames*channels)
	for i := 0; i < frames; i++ {
		v := int(10000 * math.Sin(2*math.Pi*440*float64(i)/float64(sampleRate)))
		for c := 0; c < channels; c++ {
			data[i*channels+c] = v
		}
	}

	buf := &goaudio.IntBuffer{
		Data:           data,
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("failed to write WAV data: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("failed to close encoder: %v", err)
	}
}

func TestFileDecodesNativeFormatWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	writeWAV(t, path, 48000, 2, 4800)

	buf, err := File(path)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if buf.SampleRate != audio.SampleRate {
		t.Errorf("expected sample rate %d, got %d", audio.SampleRate, buf.SampleRate)
	}
	if buf.Channels != audio.Channels {
		t.Errorf("expected %d channels, got %d", audio.Channels, buf.Channels)
	}
	if buf.Frames != 4800 {
		t.Errorf("expected 4800 frames, got %d", buf.Frames)
	}
	if uint64(len(buf.PCM)) != buf.Frames*audio.Channels {
		t.Errorf("PCM length %d does not match frames*channels %d",
			len(buf.PCM), buf.Frames*audio.Channels)
	}
}

func TestFileNormalizesMonoLowRateWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono24k.wav")
	writeWAV(t, path, 24000, 1, 2400)

	buf, err := File(path)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if buf.Channels != 2 {
		t.Errorf("expected stereo output, got %d channels", buf.Channels)
	}
	// 2400 frames at 24 kHz is 100ms, so about 4800 frames at 48 kHz
	if buf.Frames < 4700 || buf.Frames > 4800 {
		t.Errorf("expected ~4800 frames after resampling, got %d", buf.Frames)
	}

	// Mono duplication: both channels of a frame must match
	for i := uint64(0); i < buf.Frames; i++ {
		if buf.PCM[i*2] != buf.PCM[i*2+1] {
			t.Fatalf("frame %d: channels differ after mono upmix", i)
		}
	}
}

func TestFileRejectsUnsupportedExtension(t *testing.T) {
	_, err := File("song.xyz")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestFileRejectsEmptyWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.wav")
	writeWAV(t, path, 48000, 2, 0)

	_, err := File(path)
	if !errors.Is(err, ErrNoAudio) {
		t.Errorf("expected ErrNoAudio, got %v", err)
	}
}

func TestFileReportsMissingFile(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "missing.wav"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestToStereo(t *testing.T) {
	mono := []int16{1, 2, 3}
	out := toStereo(mono, 1)
	want := []int16{1, 1, 2, 2, 3, 3}
	if len(out) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(out))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("sample %d: expected %d, got %d", i, want[i], out[i])
		}
	}

	quad := []int16{1, 2, 3, 4, 5, 6, 7, 8}
	out = toStereo(quad, 4)
	want = []int16{1, 2, 5, 6}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("quad sample %d: expected %d, got %d", i, want[i], out[i])
		}
	}
}
