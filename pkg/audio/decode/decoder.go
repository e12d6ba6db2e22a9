// ABOUTME: File decoder dispatch and format normalization
// ABOUTME: Routes by extension and converts to s16 stereo 48 kHz
package decode

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sylwesterdigital/novaaudio-poc/pkg/audio"
	"github.com/sylwesterdigital/novaaudio-poc/pkg/audio/resample"
)

// chunkFrames bounds each read from a source decoder.
const chunkFrames = 4096

// File decodes an audio file into the engine format: interleaved s16
// stereo PCM at 48000 Hz, fully buffered. A file that decodes to zero
// frames is an error.
func File(path string) (*audio.Buffer, error) {
	var (
		samples    []int16
		sampleRate int
		channels   int
		err        error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		samples, sampleRate, channels, err = decodeWAV(path)
	case ".mp3":
		samples, sampleRate, channels, err = decodeMP3(path)
	case ".flac":
		samples, sampleRate, channels, err = decodeFLAC(path)
	case ".ogg", ".oga":
		samples, sampleRate, channels, err = decodeVorbis(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	if len(samples) == 0 || channels <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoAudio, path)
	}

	samples = toStereo(samples, channels)
	samples = resample.Apply(samples, sampleRate, audio.SampleRate, audio.Channels)

	frames := uint64(len(samples) / audio.Channels)
	if frames == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoAudio, path)
	}

	return &audio.Buffer{
		PCM:        samples[:frames*audio.Channels],
		Frames:     frames,
		Channels:   audio.Channels,
		SampleRate: audio.SampleRate,
	}, nil
}

// toStereo normalizes the channel count to 2: mono is duplicated into
// both channels, anything above stereo keeps the first two channels.
func toStereo(samples []int16, channels int) []int16 {
	switch {
	case channels == audio.Channels:
		return samples

	case channels == 1:
		out := make([]int16, len(samples)*2)
		for i, s := range samples {
			out[i*2] = s
			out[i*2+1] = s
		}
		return out

	default:
		frames := len(samples) / channels
		out := make([]int16, frames*2)
		for i := 0; i < frames; i++ {
			out[i*2] = samples[i*channels]
			out[i*2+1] = samples[i*channels+1]
		}
		return out
	}
}
