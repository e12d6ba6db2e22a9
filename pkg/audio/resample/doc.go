// ABOUTME: Sample-rate conversion package
// ABOUTME: Linear interpolation resampler used by the file decoders
// Package resample provides a linear-interpolation sample-rate converter.
//
// The decoders use it to bring arbitrary source rates to the fixed
// 48 kHz engine rate at load time. Linear interpolation is cheap and
// good enough for this purpose; it is not a mastering-grade SRC.
package resample
