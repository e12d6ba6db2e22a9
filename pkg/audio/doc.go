// ABOUTME: Shared audio types and constants
// ABOUTME: Defines the engine PCM format and the decoded sample buffer
// Package audio defines the PCM format shared by the playback engine.
//
// Everything downstream of the decoders works on interleaved signed
// 16-bit stereo samples at 48000 Hz. A Frame is one sample per channel
// at a single time instant.
package audio
