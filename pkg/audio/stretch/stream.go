// ABOUTME: Streaming time-domain tempo processor
// ABOUTME: Pitch-period skip/insert with overlap-add crossfades
package stretch

import (
	"fmt"
	"sync"
)

const (
	// minPitch and maxPitch bound the pitch-period search in Hz.
	minPitch = 65
	maxPitch = 400

	// amdfFreq is the effective search resolution used at quality 0;
	// higher qualities search every candidate period.
	amdfFreq = 4000

	// initialCapFrames sizes the internal queues up front so steady-state
	// playback does not allocate on the audio thread.
	initialCapFrames = 16384
)

// Stream is a streaming tempo processor bound to a fixed sample rate and
// channel count. One goroutine may push/pull while another adjusts speed,
// volume or flushes; all methods are mutex-guarded.
type Stream struct {
	mu sync.Mutex

	sampleRate int
	channels   int

	speed   float64
	volume  float64
	quality int

	minPeriod int
	maxPeriod int

	in  []int16 // pending dry samples, interleaved
	out []int16 // processed samples awaiting read, interleaved

	// frames still to be copied through unmodified after a skip/insert
	remainingToCopy int

	pitchBuf []int16 // mono scratch for the period search
}

// NewStream creates a tempo processor for the given format.
func NewStream(sampleRate, channels int) (*Stream, error) {
	if sampleRate <= 0 || channels <= 0 {
		return nil, fmt.Errorf("invalid stream format: %d Hz, %d channels", sampleRate, channels)
	}

	maxPeriod := sampleRate / minPitch

	return &Stream{
		sampleRate: sampleRate,
		channels:   channels,
		speed:      1.0,
		volume:     1.0,
		quality:    0,
		minPeriod:  sampleRate / maxPitch,
		maxPeriod:  maxPeriod,
		in:         make([]int16, 0, initialCapFrames*channels),
		out:        make([]int16, 0, initialCapFrames*channels),
		pitchBuf:   make([]int16, 2*maxPeriod),
	}, nil
}

// SetSpeed sets the tempo factor. 1.0 is unchanged, 2.0 plays twice as
// fast. Values <= 0 are ignored.
func (s *Stream) SetSpeed(speed float64) {
	if speed <= 0 {
		return
	}
	s.mu.Lock()
	s.speed = speed
	s.mu.Unlock()
}

// Speed returns the current tempo factor.
func (s *Stream) Speed() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speed
}

// SetVolume sets the output gain in [0, 1], applied when samples are read.
func (s *Stream) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	s.mu.Lock()
	s.volume = volume
	s.mu.Unlock()
}

// SetQuality selects the pitch-search effort. 0 searches coarsely,
// anything higher searches every candidate period.
func (s *Stream) SetQuality(quality int) {
	s.mu.Lock()
	s.quality = quality
	s.mu.Unlock()
}

// WriteFrames feeds dry frames into the processor. Samples must hold at
// least frames*channels values.
func (s *Stream) WriteFrames(samples []int16, frames int) {
	if frames <= 0 {
		return
	}
	s.mu.Lock()
	s.in = append(s.in, samples[:frames*s.channels]...)
	s.processInput()
	s.mu.Unlock()
}

// ReadFrames drains up to maxFrames processed frames into out, applying
// the current volume. Returns the number of frames written, which may be
// zero when nothing is buffered.
func (s *Stream) ReadFrames(out []int16, maxFrames int) int {
	if maxFrames <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	frames := len(s.out) / s.channels
	if frames > maxFrames {
		frames = maxFrames
	}
	if frames == 0 {
		return 0
	}

	n := frames * s.channels
	if s.volume == 1.0 {
		copy(out, s.out[:n])
	} else {
		for i := 0; i < n; i++ {
			out[i] = scaleSample(s.out[i], s.volume)
		}
	}

	s.out = s.out[:copy(s.out, s.out[n:])]
	return frames
}

// BufferedFrames returns the number of processed frames awaiting read.
func (s *Stream) BufferedFrames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.out) / s.channels
}

// Flush discards all internally buffered state, dry and processed. Used
// when the playback position jumps so stale audio does not leak through.
func (s *Stream) Flush() {
	s.mu.Lock()
	s.in = s.in[:0]
	s.out = s.out[:0]
	s.remainingToCopy = 0
	s.mu.Unlock()
}

// processInput consumes pending input while enough samples remain for a
// full period analysis window. Must be called with s.mu held.
func (s *Stream) processInput() {
	speed := s.speed

	// Near-unity speed is a straight copy
	if speed > 0.99999 && speed < 1.00001 {
		s.out = append(s.out, s.in...)
		s.in = s.in[:0]
		s.remainingToCopy = 0
		return
	}

	frames := len(s.in) / s.channels
	pos := 0

	for frames-pos >= 2*s.maxPeriod {
		if s.remainingToCopy > 0 {
			n := s.remainingToCopy
			if n > frames-pos {
				n = frames - pos
			}
			s.appendOutput(s.inFrames(pos), n)
			s.remainingToCopy -= n
			pos += n
			continue
		}

		period := s.findPitchPeriod(pos)
		if speed > 1.0 {
			pos += period + s.skipPitchPeriod(pos, period, speed)
		} else {
			pos += s.insertPitchPeriod(pos, period, speed)
		}
	}

	s.dropInput(pos)
}

// skipPitchPeriod removes one pitch period, crossfading across the
// splice. Returns the frames of crossfaded output generated, which is
// also the input consumed beyond the removed period.
func (s *Stream) skipPitchPeriod(pos, period int, speed float64) int {
	var newFrames int
	if speed >= 2.0 {
		newFrames = int(float64(period) / (speed - 1.0))
	} else {
		newFrames = period
		s.remainingToCopy = int(float64(period) * (2.0 - speed) / (speed - 1.0))
	}
	if newFrames < 1 {
		newFrames = 1
	}

	s.overlapAdd(newFrames, s.inFrames(pos), s.inFrames(pos+period))
	return newFrames
}

// insertPitchPeriod repeats one pitch period, crossfading the repeat.
// Returns the input frames consumed.
func (s *Stream) insertPitchPeriod(pos, period int, speed float64) int {
	var newFrames int
	if speed < 0.5 {
		newFrames = int(float64(period) * speed / (1.0 - speed))
	} else {
		newFrames = period
		s.remainingToCopy = int(float64(period) * (2.0*speed - 1.0) / (1.0 - speed))
	}
	if newFrames < 1 {
		newFrames = 1
	}

	s.appendOutput(s.inFrames(pos), period)
	s.overlapAdd(newFrames, s.inFrames(pos+period), s.inFrames(pos))
	return newFrames
}

// findPitchPeriod locates the dominant pitch period of the input at pos
// using the average magnitude difference over [minPeriod, maxPeriod].
// Must have at least 2*maxPeriod frames available.
func (s *Stream) findPitchPeriod(pos int) int {
	n := 2 * s.maxPeriod

	// Mix to mono for the search
	for i := 0; i < n; i++ {
		base := (pos + i) * s.channels
		sum := 0
		for c := 0; c < s.channels; c++ {
			sum += int(s.in[base+c])
		}
		s.pitchBuf[i] = int16(sum / s.channels)
	}

	step := 1
	if s.quality == 0 && s.sampleRate > amdfFreq {
		step = s.sampleRate / amdfFreq
	}

	bestPeriod := s.minPeriod
	bestScore := -1.0

	for period := s.minPeriod; period <= s.maxPeriod; period += step {
		var diff uint64
		for i := 0; i < period; i++ {
			d := int(s.pitchBuf[i]) - int(s.pitchBuf[i+period])
			if d < 0 {
				d = -d
			}
			diff += uint64(d)
		}

		score := float64(diff) / float64(period)
		if bestScore < 0 || score < bestScore {
			bestScore = score
			bestPeriod = period
		}
	}

	return bestPeriod
}

// overlapAdd appends frames of crossfade to the output: down fades out
// linearly while up fades in.
func (s *Stream) overlapAdd(frames int, down, up []int16) {
	start := len(s.out)
	s.out = append(s.out, make([]int16, frames*s.channels)...)

	for i := 0; i < frames; i++ {
		for c := 0; c < s.channels; c++ {
			d := int(down[i*s.channels+c])
			u := int(up[i*s.channels+c])
			s.out[start+i*s.channels+c] = int16((d*(frames-i) + u*i) / frames)
		}
	}
}

// appendOutput copies frames of input verbatim to the output queue.
func (s *Stream) appendOutput(src []int16, frames int) {
	s.out = append(s.out, src[:frames*s.channels]...)
}

// inFrames returns the input slice starting at the given frame offset.
func (s *Stream) inFrames(pos int) []int16 {
	return s.in[pos*s.channels:]
}

// dropInput discards the first consumed frames of pending input.
func (s *Stream) dropInput(frames int) {
	if frames <= 0 {
		return
	}
	s.in = s.in[:copy(s.in, s.in[frames*s.channels:])]
}

func scaleSample(v int16, volume float64) int16 {
	scaled := int(float64(v) * volume)
	if scaled > 32767 {
		return 32767
	}
	if scaled < -32768 {
		return -32768
	}
	return int16(scaled)
}
