// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"
)

// Window gives access to decoded samples by time.
type Window interface {
	// Limit returns the interleaved samples of the half-open window
	// [from, to) in seconds. A window outside the media yields no samples.
	Limit(from, to float64) ([]float32, error)
}

// Buffer is a fully decoded sound held in memory.
type Buffer struct {
	rate     int
	channels int
	data     []float32
}

// NewBuffer wraps interleaved samples.
func NewBuffer(rate, channels int, data []float32) (*Buffer, error) {
	if rate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}

	// Drop a trailing partial frame.
	data = data[:len(data)-len(data)%channels]

	return &Buffer{rate: rate, channels: channels, data: data}, nil
}

// ReadAll drains src into a Buffer. It does not close src.
func ReadAll(src Source) (*Buffer, error) {
	size := src.BufSize()
	if size <= 0 {
		size = 4096
	}

	var data []float32
	buf := make([]float32, size)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			data = append(data, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}

		if n == 0 {
			// A source that makes no progress without EOF is done.
			break
		}
	}

	return NewBuffer(src.SampleRate(), src.Channels(), data)
}

func (b *Buffer) SampleRate() int { return b.rate }
func (b *Buffer) Channels() int   { return b.channels }

// Frames is the length of the buffer in sample frames.
func (b *Buffer) Frames() int { return len(b.data) / b.channels }

// Duration is the length of the buffer in seconds.
func (b *Buffer) Duration() float64 {
	return float64(b.Frames()) / float64(b.rate)
}

// Limit implements Window. The returned slice aliases the buffer and must
// not be modified.
func (b *Buffer) Limit(from, to float64) ([]float32, error) {
	start := b.frameAt(from)
	end := b.frameAt(to)

	if start >= end {
		return nil, nil
	}

	return b.data[start*b.channels : end*b.channels], nil
}

// frameAt converts seconds to a frame index clamped to the buffer.
func (b *Buffer) frameAt(seconds float64) int {
	if math.IsNaN(seconds) || seconds <= 0 {
		return 0
	}

	f := math.Floor(seconds * float64(b.rate))
	if f >= float64(b.Frames()) {
		return b.Frames()
	}

	return int(f)
}

type scaled struct {
	w    Window
	gain float32
}

// Scaled returns a window whose samples are multiplied by gain.
func Scaled(w Window, gain float64) Window {
	if gain == 1 {
		return w
	}

	return &scaled{w: w, gain: float32(gain)}
}

func (s *scaled) Limit(from, to float64) ([]float32, error) {
	samples, err := s.w.Limit(from, to)
	if err != nil || len(samples) == 0 {
		return samples, err
	}

	out := make([]float32, len(samples))
	for i, v := range samples {
		out[i] = v * s.gain
	}

	return out, nil
}

// Empty is a window with no samples.
var Empty Window = emptyWindow{}

type emptyWindow struct{}

func (emptyWindow) Limit(float64, float64) ([]float32, error) { return nil, nil }
