// ABOUTME: Decoder error definitions
// ABOUTME: Sentinel errors shared by all format decoders
package decode

import "errors"

var (
	// ErrUnsupportedFormat means the file extension maps to no decoder.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrNoAudio means the file decoded to zero frames.
	ErrNoAudio = errors.New("decoded zero audio frames")
)
