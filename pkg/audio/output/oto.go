// ABOUTME: Oto-based audio output implementation
// ABOUTME: Adapts the render callback to oto's io.Reader pull model
package output

import (
	"fmt"
	"log"

	"github.com/ebitengine/oto/v3"
)

// Oto output implementation using the oto library
type Oto struct {
	otoCtx *oto.Context
	player *oto.Player
}

// NewOto creates a new Oto output
func NewOto() Device {
	return &Oto{}
}

// Start opens the oto context and begins pulling audio from render
func (o *Oto) Start(sampleRate, channels int, render RenderFunc) error {
	if o.otoCtx != nil {
		return fmt.Errorf("device already started")
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("failed to create oto context: %w", err)
	}

	<-readyChan

	o.otoCtx = ctx
	o.player = ctx.NewPlayer(&renderReader{render: render, channels: channels})
	o.player.Play()

	log.Printf("Audio output started: %dHz, %d channels (oto)", sampleRate, channels)
	return nil
}

// Close stops playback and releases resources
func (o *Oto) Close() error {
	if o.player != nil {
		if err := o.player.Close(); err != nil {
			log.Printf("Warning: oto player close error: %v", err)
		}
		o.player = nil
	}
	if o.otoCtx != nil {
		o.otoCtx.Suspend()
		o.otoCtx = nil
	}
	return nil
}

// renderReader adapts a RenderFunc to the io.Reader oto pulls from.
// oto reads on its own playback goroutine, which serves as the audio
// thread in this backend.
type renderReader struct {
	render   RenderFunc
	channels int
	scratch  []int16
}

func (r *renderReader) Read(p []byte) (int, error) {
	frameBytes := r.channels * 2
	frames := len(p) / frameBytes
	if frames == 0 {
		// Undersized request, serve silence so playback never stalls
		for i := range p {
			p[i] = 0
		}
		return len(p), nil
	}

	samples := frames * r.channels
	if cap(r.scratch) < samples {
		r.scratch = make([]int16, samples)
	}
	buf := r.scratch[:samples]

	r.render(buf)

	for i, s := range buf {
		p[i*2] = byte(s)
		p[i*2+1] = byte(s >> 8)
	}

	return samples * 2, nil
}
