// ABOUTME: FLAC file decoder
// ABOUTME: Decodes FLAC files frame by frame via mewkiz/flac
package decode

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"
)

// decodeFLAC reads a FLAC file into interleaved int16 samples at its
// native channel count and sample rate.
func decodeFLAC(path string) ([]int16, int, int, error) {
	stream, err := flac.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to open FLAC stream: %w", err)
	}
	defer stream.Close()

	sampleRate := int(stream.Info.SampleRate)
	channels := int(stream.Info.NChannels)

	var samples []int16
	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, 0, fmt.Errorf("failed to parse FLAC frame: %w", err)
		}

		bits := int(frame.BitsPerSample)
		frameLen := len(frame.Subframes[0].Samples)

		// Subframes are planar per channel; interleave while rescaling
		for i := 0; i < frameLen; i++ {
			for _, sub := range frame.Subframes {
				samples = append(samples, sampleToS16(int(sub.Samples[i]), bits))
			}
		}
	}

	return samples, sampleRate, channels, nil
}
