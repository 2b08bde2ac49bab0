// SPDX-License-Identifier: EPL-2.0

// Package fade finds (and optionally seeds) the curve that animates a
// clip's gain.
package fade

import (
	"github.com/ik5/peakvol/fcurve"
	"github.com/ik5/peakvol/timeline"
)

// Resolver looks fade curves up in a project's animation container.
type Resolver struct {
	Project *timeline.Project
}

func NewResolver(p *timeline.Project) *Resolver {
	return &Resolver{Project: p}
}

// KeyFor returns the curve key of clip's gain property.
func KeyFor(clip *timeline.Clip) fcurve.Key {
	return fcurve.Key{
		Clip:     clip.Name,
		Property: timeline.PropertyFor(clip.Kind).String(),
	}
}

// Resolve returns the fade curve of clip, or nil when there is none.
//
// With create set a missing curve is made, creating the animation container
// and action on the way if needed, and seeded with one keyframe holding the
// clip's static gain at its start frame. An existing curve is returned as
// is. Resolve never fails: absence is reported as nil.
func (r *Resolver) Resolve(clip *timeline.Clip, create bool) *fcurve.Curve {
	if r == nil || r.Project == nil || clip == nil {
		return nil
	}

	anim := r.Project.Animation
	if anim == nil {
		if !create {
			return nil
		}
		anim = &fcurve.AnimationData{}
		r.Project.Animation = anim
	}

	if anim.Action == nil {
		if !create {
			return nil
		}
		anim.Action = fcurve.NewAction(clip.Name + "Action")
	}

	key := KeyFor(clip)
	if c, ok := anim.Action.Find(key); ok {
		return c
	}

	if !create {
		return nil
	}

	c, err := anim.Action.New(key)
	if err != nil {
		return nil
	}

	// An empty curve hides the clip's waveform in the host.
	c.Insert(float64(clip.Start), clip.StaticGain())

	return c
}

// Gain returns the value of clip's gain at frame: the fade curve when one
// exists, the static gain otherwise.
func (r *Resolver) Gain(clip *timeline.Clip, frame int) float64 {
	if c := r.Resolve(clip, false); c != nil {
		return c.Evaluate(float64(frame))
	}

	return clip.StaticGain()
}
