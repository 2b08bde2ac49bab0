// SPDX-License-Identifier: EPL-2.0

// Package fcurve is the animation store fade curves live in.
package fcurve

import (
	"fmt"
	"math"
	"sort"

	"github.com/ik5/peakvol/utils"
)

// Interpolation selects how the segment starting at a keyframe is evaluated.
type Interpolation int

const (
	Linear Interpolation = iota
	Constant
	Cubic
)

func (i Interpolation) String() string {
	switch i {
	case Constant:
		return "constant"
	case Cubic:
		return "cubic"
	default:
		return "linear"
	}
}

func ParseInterpolation(s string) (Interpolation, error) {
	switch s {
	case "", "linear":
		return Linear, nil
	case "constant":
		return Constant, nil
	case "cubic", "bezier":
		return Cubic, nil
	default:
		return Linear, fmt.Errorf("%w: %q", ErrUnknownInterpolation, s)
	}
}

// Keyframe is a single (frame, value) control point.
type Keyframe struct {
	Frame         float64
	Value         float64
	Interpolation Interpolation
}

// Key identifies the property a curve animates: a clip by name and one of
// its properties. Renaming the clip leaves the curve behind.
type Key struct {
	Clip     string
	Property string
}

// DataPath renders the key the way the host's animation system names it.
func (k Key) DataPath() string {
	return fmt.Sprintf("sequence_editor.sequences_all[%q].%s", k.Clip, k.Property)
}

// Curve maps a continuous frame position to a value.
type Curve struct {
	key    Key
	points []Keyframe
}

func newCurve(key Key) *Curve {
	return &Curve{key: key}
}

func (c *Curve) Key() Key { return c.key }
func (c *Curve) Len() int { return len(c.points) }

// Points returns a copy of the keyframes in frame order.
func (c *Curve) Points() []Keyframe {
	out := make([]Keyframe, len(c.points))
	copy(out, c.points)

	return out
}

// Insert adds a linear keyframe, replacing any point already at frame.
func (c *Curve) Insert(frame, value float64) {
	c.InsertKeyframe(Keyframe{Frame: frame, Value: value})
}

// InsertKeyframe adds k keeping points ordered by frame.
func (c *Curve) InsertKeyframe(k Keyframe) {
	i := sort.Search(len(c.points), func(i int) bool {
		return c.points[i].Frame >= k.Frame
	})
	if i < len(c.points) && c.points[i].Frame == k.Frame {
		c.points[i] = k
		return
	}

	c.points = append(c.points, Keyframe{})
	copy(c.points[i+1:], c.points[i:])
	c.points[i] = k
}

// Evaluate returns the curve value at frame. Values are held constant
// before the first and after the last keyframe; an empty curve is 0 and a
// NaN frame reads the first keyframe.
func (c *Curve) Evaluate(frame float64) float64 {
	n := len(c.points)
	if n == 0 {
		return 0
	}

	if frame <= c.points[0].Frame || math.IsNaN(frame) {
		return c.points[0].Value
	}

	if frame >= c.points[n-1].Frame {
		return c.points[n-1].Value
	}

	// First point strictly after frame; always in 1..n-1 here.
	i := sort.Search(n, func(i int) bool {
		return c.points[i].Frame > frame
	})
	a, b := c.points[i-1], c.points[i]
	x := (frame - a.Frame) / (b.Frame - a.Frame)

	switch a.Interpolation {
	case Constant:
		return a.Value
	case Cubic:
		y0 := a.Value
		if i-2 >= 0 {
			y0 = c.points[i-2].Value
		}

		y3 := b.Value
		if i+1 < n {
			y3 = c.points[i+1].Value
		}

		return utils.CubicInterpolate(y0, a.Value, b.Value, y3, x)
	default:
		return utils.Lerp(a.Value, b.Value, x)
	}
}
