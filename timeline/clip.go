// SPDX-License-Identifier: EPL-2.0

package timeline

import "strings"

// Kind tags what a clip carries.
type Kind int

const (
	Visual Kind = iota
	Audio
)

func (k Kind) String() string {
	if k == Audio {
		return "SOUND"
	}
	return "VISUAL"
}

// ParseKind accepts "sound" and "audio" (any case) for audio clips.
// Anything else is a visual clip.
func ParseKind(s string) Kind {
	switch strings.ToLower(s) {
	case "sound", "audio":
		return Audio
	default:
		return Visual
	}
}

// Property names the gain a fade curve animates.
type Property int

const (
	Volume Property = iota
	BlendAlpha
)

func (p Property) String() string {
	if p == BlendAlpha {
		return "blend_alpha"
	}
	return "volume"
}

// ParseProperty is the inverse of Property.String.
func ParseProperty(s string) (Property, bool) {
	switch s {
	case "volume":
		return Volume, true
	case "blend_alpha":
		return BlendAlpha, true
	default:
		return Volume, false
	}
}

// PropertyFor returns the gain property faded on clips of kind k.
func PropertyFor(k Kind) Property {
	if k == Audio {
		return Volume
	}
	return BlendAlpha
}

// Sound is the media an audio clip plays.
type Sound struct {
	ID   string
	Path string
	// Volume is a sound-level gain applied when the sound is evaluated.
	Volume float64
}

// Clip is a placed media reference on the timeline.
type Clip struct {
	ID   string
	Name string
	Kind Kind

	// Start is the first frame the clip occupies, End the first frame
	// after it.
	Start int
	End   int
	// SourceStart is the frame at which the clip's media begins. It equals
	// Start unless the clip has been trimmed.
	SourceStart int

	Mute       bool
	Volume     float64
	BlendAlpha float64

	Sound *Sound
}

// Gain returns the static (non-animated) value of p.
func (c *Clip) Gain(p Property) float64 {
	if p == BlendAlpha {
		return c.BlendAlpha
	}
	return c.Volume
}

// StaticGain returns the static value of the property this clip fades.
func (c *Clip) StaticGain() float64 {
	return c.Gain(PropertyFor(c.Kind))
}

// Active reports whether frame lies strictly inside the clip.
func (c *Clip) Active(frame int) bool {
	return c.Start < frame && frame < c.End
}

// Audible reports whether the clip contributes sound at frame.
func (c *Clip) Audible(frame int) bool {
	return c.Kind == Audio && !c.Mute && c.Active(frame)
}
