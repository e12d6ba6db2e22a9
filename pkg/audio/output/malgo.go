// ABOUTME: Malgo-based audio output implementation
// ABOUTME: Pulls samples through the render callback via miniaudio
package output

import (
	"fmt"
	"log"

	"github.com/gen2brain/malgo"
)

// Malgo output implementation using the malgo/miniaudio library
type Malgo struct {
	malgoCtx *malgo.AllocatedContext
	device   *malgo.Device
	channels int
	render   RenderFunc
	scratch  []int16
}

// NewMalgo creates a new Malgo output
func NewMalgo() Device {
	return &Malgo{}
}

// Start opens a playback device and begins pulling audio from render
func (m *Malgo) Start(sampleRate, channels int, render RenderFunc) error {
	if m.device != nil {
		return fmt.Errorf("device already started")
	}

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return fmt.Errorf("failed to initialize malgo context: %w", err)
	}
	m.malgoCtx = ctx
	m.channels = channels
	m.render = render

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Playback)
	deviceConfig.Playback.Format = malgo.FormatS16
	deviceConfig.Playback.Channels = uint32(channels)
	deviceConfig.SampleRate = uint32(sampleRate)
	deviceConfig.Alsa.NoMMap = 1

	deviceCallbacks := malgo.DeviceCallbacks{
		Data: func(pOutput, pInput []byte, frameCount uint32) {
			m.dataCallback(pOutput, frameCount)
		},
	}

	device, err := malgo.InitDevice(m.malgoCtx.Context, deviceConfig, deviceCallbacks)
	if err != nil {
		m.teardownContext()
		return fmt.Errorf("failed to initialize playback device: %w", err)
	}

	if err := device.Start(); err != nil {
		device.Uninit()
		m.teardownContext()
		return fmt.Errorf("failed to start device: %w", err)
	}

	m.device = device

	log.Printf("Audio output started: %dHz, %d channels (malgo)", sampleRate, channels)
	return nil
}

// dataCallback is called by malgo on its audio thread to fill the
// output buffer. The scratch buffer only grows when miniaudio asks for
// more frames than ever before.
func (m *Malgo) dataCallback(pOutput []byte, frameCount uint32) {
	samples := int(frameCount) * m.channels
	if cap(m.scratch) < samples {
		m.scratch = make([]int16, samples)
	}
	buf := m.scratch[:samples]

	m.render(buf)

	for i, s := range buf {
		pOutput[i*2] = byte(s)
		pOutput[i*2+1] = byte(s >> 8)
	}
}

// Close stops the device and releases resources
func (m *Malgo) Close() error {
	if m.device != nil {
		if err := m.device.Stop(); err != nil {
			log.Printf("Warning: device stop error: %v", err)
		}
		m.device.Uninit()
		m.device = nil
	}
	m.teardownContext()
	return nil
}

func (m *Malgo) teardownContext() {
	if m.malgoCtx != nil {
		if err := m.malgoCtx.Uninit(); err != nil {
			log.Printf("Warning: malgo context uninit error: %v", err)
		}
		m.malgoCtx.Free()
		m.malgoCtx = nil
	}
}
