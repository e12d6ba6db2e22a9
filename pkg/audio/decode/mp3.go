// ABOUTME: MP3 file decoder
// ABOUTME: Decodes MP3 files via hajimehoshi/go-mp3
package decode

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	mp3 "github.com/hajimehoshi/go-mp3"
)

// decodeMP3 reads an MP3 file into interleaved int16 samples. go-mp3
// always outputs 16-bit interleaved stereo at the source sample rate.
func decodeMP3(path string) ([]int16, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to create MP3 decoder: %w", err)
	}

	// 4 bytes per stereo frame
	buf := make([]byte, chunkFrames*4)

	var samples []int16
	for {
		n, err := dec.Read(buf)
		if n > 0 {
			for i := 0; i+1 < n; i += 2 {
				samples = append(samples, int16(binary.LittleEndian.Uint16(buf[i:])))
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, 0, fmt.Errorf("failed to read MP3 data: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return samples, dec.SampleRate(), 2, nil
}
