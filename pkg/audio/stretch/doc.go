// ABOUTME: Streaming pitch-preserving time-stretch package
// ABOUTME: Provides a push/pull tempo processor for the playback engine
// Package stretch implements a streaming time-domain tempo processor.
//
// Dry samples are pushed in with WriteFrames and stretched samples are
// pulled out with ReadFrames. Speed changes alter tempo without shifting
// pitch: the processor detects the dominant pitch period of the input
// and removes periods (speed up) or repeats them (slow down), crossfading
// at the splice points with an overlap-add.
//
// Example:
//
//	st, err := stretch.NewStream(48000, 2)
//	st.SetSpeed(1.5)
//	st.WriteFrames(dry, frames)
//	n := st.ReadFrames(out, wanted)
package stretch
