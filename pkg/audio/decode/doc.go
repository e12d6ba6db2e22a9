// ABOUTME: Audio file decoder package for multiple formats
// ABOUTME: Decodes WAV, MP3, FLAC and Ogg Vorbis to the engine PCM format
// Package decode loads audio files into the fixed engine format.
//
// Supports: WAV, MP3, FLAC, Ogg Vorbis.
//
// Whatever the source format, channel count or sample rate, File returns
// interleaved signed 16-bit stereo PCM at 48000 Hz, fully buffered in
// memory. Sources are read in bounded chunks and the output grows
// geometrically.
//
// Example:
//
//	buf, err := decode.File("track.mp3")
package decode
