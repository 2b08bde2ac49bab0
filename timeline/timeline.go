// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"math"

	"github.com/ik5/peakvol/fcurve"
)

// FrameRate is frames per second expressed as Num/Den.
type FrameRate struct {
	Num float64
	Den float64
}

func (r FrameRate) FPS() float64 { return r.Num / r.Den }

// Valid reports whether the rate can convert frames to seconds.
func (r FrameRate) Valid() bool {
	fps := r.FPS()
	return r.Num > 0 && r.Den > 0 && !math.IsInf(fps, 0) && !math.IsNaN(fps)
}

// FrameToTime converts a frame offset to seconds.
func (r FrameRate) FrameToTime(frames float64) float64 {
	return frames / r.FPS()
}

// Timeline is the ordered set of clips of an editing context.
type Timeline struct {
	Clips []*Clip
}

// Clip returns the first clip named name.
func (t *Timeline) Clip(name string) (*Clip, bool) {
	for _, c := range t.Clips {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

func (t *Timeline) Add(c *Clip) {
	t.Clips = append(t.Clips, c)
}

// Remove drops the clip named name. Fade curves bound to it are left in
// place; see fcurve.Action.Prune.
func (t *Timeline) Remove(name string) bool {
	for i, c := range t.Clips {
		if c.Name == name {
			t.Clips = append(t.Clips[:i], t.Clips[i+1:]...)
			return true
		}
	}
	return false
}

// Names lists clip names in timeline order.
func (t *Timeline) Names() []string {
	names := make([]string, 0, len(t.Clips))
	for _, c := range t.Clips {
		names = append(names, c.Name)
	}
	return names
}

// Project is a snapshot of everything the meter needs from the host.
type Project struct {
	// Editor is nil when the project has no editing context.
	Editor       *Timeline
	Rate         FrameRate
	CurrentFrame int
	// Animation is nil until the first curve is created.
	Animation *fcurve.AnimationData
}

// Empty reports whether there is nothing to sample.
func (p *Project) Empty() bool {
	return p == nil || p.Editor == nil || len(p.Editor.Clips) == 0
}
