// SPDX-License-Identifier: EPL-2.0

// Package sampler computes the volume meter value: the gain-weighted sum of
// the peak amplitudes of every audible clip at a frame.
package sampler

import (
	"github.com/ik5/peakvol/audio"
	"github.com/ik5/peakvol/fade"
	"github.com/ik5/peakvol/timeline"
	"go.uber.org/zap"
)

// EvalContext resolves a clip's sound to the waveform that plays, with
// sound-level effects applied.
type EvalContext interface {
	Evaluated(s *timeline.Sound) audio.Window
}

// Sampler reads peak amplitudes from a project snapshot. It keeps no state
// between calls.
type Sampler struct {
	project  *timeline.Project
	ctx      EvalContext
	resolver *fade.Resolver
	log      *zap.Logger
}

type Option func(*Sampler)

func WithLogger(l *zap.Logger) Option {
	return func(s *Sampler) {
		if l != nil {
			s.log = l
		}
	}
}

// WithResolver replaces the fade resolver built over the project.
func WithResolver(r *fade.Resolver) Option {
	return func(s *Sampler) {
		if r != nil {
			s.resolver = r
		}
	}
}

func New(p *timeline.Project, ctx EvalContext, opts ...Option) *Sampler {
	s := &Sampler{
		project:  p,
		ctx:      ctx,
		resolver: fade.NewResolver(p),
		log:      zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Sampler) Project() *timeline.Project { return s.project }

// SampleCurrent samples the project's current frame using live static gains.
func (s *Sampler) SampleCurrent() float64 {
	if s.project == nil {
		return 0
	}

	return s.Sample(s.project.CurrentFrame, false)
}

// Sample returns the summed peak × gain of every audible clip at frame.
//
// With evaluateGain set the gain comes from the clip's fade curve when it
// has one; otherwise, and without the flag, the static volume is used. The
// result is not clamped. Missing data never fails: no editing context gives
// 0 and a clip whose audio cannot be read contributes 0.
func (s *Sampler) Sample(frame int, evaluateGain bool) float64 {
	if s.project.Empty() {
		return 0
	}

	rate := s.project.Rate
	if !rate.Valid() {
		s.log.Warn("invalid frame rate",
			zap.Float64("num", rate.Num),
			zap.Float64("den", rate.Den))
		return 0
	}

	var total float64
	for _, clip := range s.project.Editor.Clips {
		if !clip.Audible(frame) {
			continue
		}

		peak := s.clipPeak(clip, frame, rate)
		total += peak * s.gain(clip, frame, evaluateGain)
	}

	return total
}

// clipPeak reads the one-frame window ending at frame, widening it once to
// two frames when the decoder returns nothing.
func (s *Sampler) clipPeak(clip *timeline.Clip, frame int, rate timeline.FrameRate) float64 {
	w := s.window(clip)
	offset := float64(frame - clip.SourceStart)
	to := rate.FrameToTime(offset)

	samples := s.read(w, clip, rate.FrameToTime(offset-1), to)
	if len(samples) == 0 {
		samples = s.read(w, clip, rate.FrameToTime(offset-2), to)
	}

	if len(samples) == 0 {
		s.log.Debug("no samples in window",
			zap.String("clip", clip.Name),
			zap.Int("frame", frame))
		return 0
	}

	return Peak(samples)
}

func (s *Sampler) window(clip *timeline.Clip) audio.Window {
	if clip.Sound == nil || s.ctx == nil {
		return audio.Empty
	}

	if w := s.ctx.Evaluated(clip.Sound); w != nil {
		return w
	}

	return audio.Empty
}

func (s *Sampler) read(w audio.Window, clip *timeline.Clip, from, to float64) []float32 {
	samples, err := w.Limit(from, to)
	if err != nil {
		s.log.Debug("decode window",
			zap.String("clip", clip.Name),
			zap.Float64("from", from),
			zap.Float64("to", to),
			zap.Error(err))
		return nil
	}

	return samples
}

func (s *Sampler) gain(clip *timeline.Clip, frame int, evaluate bool) float64 {
	if evaluate {
		if c := s.resolver.Resolve(clip, false); c != nil {
			return c.Evaluate(float64(frame))
		}
	}

	return clip.Volume
}
