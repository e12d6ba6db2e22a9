// ABOUTME: Ogg Vorbis file decoder
// ABOUTME: Decodes Vorbis streams via jfreymuth/oggvorbis
package decode

import (
	"fmt"
	"io"
	"os"

	"github.com/jfreymuth/oggvorbis"

	"github.com/sylwesterdigital/novaaudio-poc/pkg/audio"
)

// decodeVorbis reads an Ogg Vorbis file into interleaved int16 samples
// at its native channel count and sample rate.
func decodeVorbis(path string) ([]int16, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	dec, err := oggvorbis.NewReader(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to create Vorbis decoder: %w", err)
	}

	channels := dec.Channels()
	buf := make([]float32, chunkFrames*channels)

	var samples []int16
	for {
		n, err := dec.Read(buf)
		for i := 0; i < n; i++ {
			samples = append(samples, audio.ClampSample(int(buf[i]*32767)))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, 0, fmt.Errorf("failed to read Vorbis data: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return samples, dec.SampleRate(), channels, nil
}
