// ABOUTME: WAV file decoder
// ABOUTME: Decodes PCM WAV files via go-audio/wav
package decode

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// decodeWAV reads a WAV file into interleaved int16 samples at its
// native channel count and sample rate.
func decodeWAV(path string) ([]int16, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, 0, fmt.Errorf("invalid WAV file: %s", path)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, 0, 0, fmt.Errorf("failed to seek to PCM data: %w", err)
	}

	sampleRate := int(dec.SampleRate)
	channels := int(dec.NumChans)
	bitDepth := int(dec.BitDepth)

	intBuf := &goaudio.IntBuffer{
		Data: make([]int, chunkFrames*channels),
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
	}

	var samples []int16
	for {
		n, err := dec.PCMBuffer(intBuf)
		if err != nil && err != io.EOF {
			return nil, 0, 0, fmt.Errorf("failed to read PCM buffer: %w", err)
		}
		if n == 0 {
			break
		}

		for i := 0; i < n; i++ {
			samples = append(samples, sampleToS16(intBuf.Data[i], bitDepth))
		}
	}

	return samples, sampleRate, channels, nil
}

// sampleToS16 rescales a native-depth integer sample to 16 bits.
func sampleToS16(v, bitDepth int) int16 {
	switch {
	case bitDepth == 16:
		return int16(v)
	case bitDepth < 16:
		return int16(v << (16 - bitDepth))
	default:
		return int16(v >> (bitDepth - 16))
	}
}
