// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds test doubles for the audio layer. Nothing here
// imports the audio package, so any package's tests can use it.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates interleaved samples from a waveform function.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // frames to generate
	generated    int // frames generated so far
	waveform     func(frame int, channel int) float32
	err          error
}

// NewMockSource creates a source of totalSamples frames.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSineSource creates a full-scale sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewRampSource creates a mono source whose frame i has value i/totalSamples.
func NewRampSource(sampleRate, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, 1, totalSamples, func(frame int, _ int) float32 {
		return float32(frame) / float32(totalSamples)
	})
}

// FailAfter makes the source return err once its samples are exhausted
// instead of io.EOF.
func (m *MockSource) FailAfter(err error) *MockSource {
	m.err = err
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 256 }
func (m *MockSource) Close() error    { return nil }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		if m.err != nil {
			return 0, m.err
		}
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)
	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += frames

	return frames * m.channels, nil
}

// Call records one window request.
type Call struct {
	From, To float64
}

// Response is what a ScriptedWindow answers to one request.
type Response struct {
	Samples []float32
	Err     error
}

// ScriptedWindow answers window requests from a fixed script and records
// them. Once the script runs out it keeps answering with Fallback.
type ScriptedWindow struct {
	Script   []Response
	Fallback Response
	Calls    []Call
}

// NewScriptedWindow answers every request with samples.
func NewScriptedWindow(samples ...float32) *ScriptedWindow {
	return &ScriptedWindow{Fallback: Response{Samples: samples}}
}

func (w *ScriptedWindow) Limit(from, to float64) ([]float32, error) {
	w.Calls = append(w.Calls, Call{From: from, To: to})

	if n := len(w.Calls) - 1; n < len(w.Script) {
		return w.Script[n].Samples, w.Script[n].Err
	}

	return w.Fallback.Samples, w.Fallback.Err
}
