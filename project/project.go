// SPDX-License-Identifier: EPL-2.0

// Package project reads and writes the JSON project files the command line
// tool works on.
package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/ik5/peakvol/fcurve"
	"github.com/ik5/peakvol/timeline"
)

type fileSound struct {
	ID     string   `json:"id,omitempty"`
	Path   string   `json:"path"`
	Volume *float64 `json:"volume,omitempty"`
}

type fileClip struct {
	ID         string     `json:"id,omitempty"`
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	FrameStart *int       `json:"frame_start,omitempty"`
	Start      int        `json:"frame_final_start"`
	End        int        `json:"frame_final_end"`
	Mute       bool       `json:"mute,omitempty"`
	Volume     *float64   `json:"volume,omitempty"`
	BlendAlpha *float64   `json:"blend_alpha,omitempty"`
	Sound      *fileSound `json:"sound,omitempty"`
}

type fileKeyframe struct {
	Frame         float64 `json:"frame"`
	Value         float64 `json:"value"`
	Interpolation string  `json:"interpolation,omitempty"`
}

type fileFade struct {
	Clip      string         `json:"clip"`
	Property  string         `json:"property"`
	Keyframes []fileKeyframe `json:"keyframes"`
}

type file struct {
	FPS          float64     `json:"fps"`
	FPSBase      float64     `json:"fps_base,omitempty"`
	FrameCurrent int         `json:"frame_current"`
	Editor       *bool       `json:"editor,omitempty"`
	Clips        []*fileClip `json:"clips,omitempty"`
	Action       string      `json:"action,omitempty"`
	Fades        []fileFade  `json:"fades,omitempty"`
}

// Load reads the project file at path.
func Load(path string) (*timeline.Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening project: %w", err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Decode builds a project from its JSON form. Clips without an id get a
// fresh UUID; missing gains default to 1.
func Decode(r io.Reader) (*timeline.Project, error) {
	var doc file
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding project: %w", err)
	}

	base := doc.FPSBase
	if base == 0 {
		base = 1
	}

	p := &timeline.Project{
		Rate:         timeline.FrameRate{Num: doc.FPS, Den: base},
		CurrentFrame: doc.FrameCurrent,
	}
	if !p.Rate.Valid() {
		return nil, fmt.Errorf("%w: %v/%v", ErrInvalidFrameRate, doc.FPS, base)
	}

	hasEditor := doc.Clips != nil
	if doc.Editor != nil {
		hasEditor = *doc.Editor
	}

	if hasEditor {
		p.Editor = &timeline.Timeline{}
		for i, fc := range doc.Clips {
			c, err := decodeClip(fc)
			if err != nil {
				return nil, fmt.Errorf("clip %d: %w", i, err)
			}
			p.Editor.Add(c)
		}
	}

	if len(doc.Fades) > 0 || doc.Action != "" {
		action, err := decodeAction(doc.Action, doc.Fades)
		if err != nil {
			return nil, err
		}
		p.Animation = &fcurve.AnimationData{Action: action}
	}

	return p, nil
}

func decodeClip(fc *fileClip) (*timeline.Clip, error) {
	if fc == nil || fc.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidClip)
	}
	if fc.End < fc.Start {
		return nil, fmt.Errorf("%w: %q ends at %d before it starts at %d", ErrInvalidClip, fc.Name, fc.End, fc.Start)
	}

	c := &timeline.Clip{
		ID:          fc.ID,
		Name:        fc.Name,
		Kind:        timeline.ParseKind(fc.Type),
		Start:       fc.Start,
		End:         fc.End,
		SourceStart: fc.Start,
		Mute:        fc.Mute,
		Volume:      orOne(fc.Volume),
		BlendAlpha:  orOne(fc.BlendAlpha),
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if fc.FrameStart != nil {
		c.SourceStart = *fc.FrameStart
	}

	if fc.Sound != nil {
		c.Sound = &timeline.Sound{
			ID:     fc.Sound.ID,
			Path:   fc.Sound.Path,
			Volume: orOne(fc.Sound.Volume),
		}
		if c.Sound.ID == "" {
			c.Sound.ID = uuid.NewString()
		}
	}

	return c, nil
}

func decodeAction(name string, fades []fileFade) (*fcurve.Action, error) {
	if name == "" {
		name = "Action"
	}
	action := fcurve.NewAction(name)

	for _, ff := range fades {
		if _, ok := timeline.ParseProperty(ff.Property); !ok || ff.Clip == "" {
			return nil, fmt.Errorf("%w: %q.%q", ErrInvalidFade, ff.Clip, ff.Property)
		}

		c, err := action.New(fcurve.Key{Clip: ff.Clip, Property: ff.Property})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFade, err)
		}

		for _, k := range ff.Keyframes {
			interp, err := fcurve.ParseInterpolation(k.Interpolation)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidFade, err)
			}
			c.InsertKeyframe(fcurve.Keyframe{Frame: k.Frame, Value: k.Value, Interpolation: interp})
		}
	}

	return action, nil
}

func orOne(v *float64) float64 {
	if v == nil {
		return 1
	}
	return *v
}

// Encode writes p as indented JSON.
func Encode(w io.Writer, p *timeline.Project) error {
	doc := file{
		FPS:          p.Rate.Num,
		FPSBase:      p.Rate.Den,
		FrameCurrent: p.CurrentFrame,
	}

	hasEditor := p.Editor != nil
	doc.Editor = &hasEditor
	if hasEditor {
		doc.Clips = make([]*fileClip, 0, len(p.Editor.Clips))
		for _, c := range p.Editor.Clips {
			doc.Clips = append(doc.Clips, encodeClip(c))
		}
	}

	if p.Animation != nil && p.Animation.Action != nil {
		doc.Action = p.Animation.Action.Name
		for _, c := range p.Animation.Action.Curves() {
			ff := fileFade{Clip: c.Key().Clip, Property: c.Key().Property}
			for _, k := range c.Points() {
				ff.Keyframes = append(ff.Keyframes, fileKeyframe{
					Frame:         k.Frame,
					Value:         k.Value,
					Interpolation: k.Interpolation.String(),
				})
			}
			doc.Fades = append(doc.Fades, ff)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding project: %w", err)
	}

	return nil
}

func encodeClip(c *timeline.Clip) *fileClip {
	volume, alpha, sourceStart := c.Volume, c.BlendAlpha, c.SourceStart
	fc := &fileClip{
		ID:         c.ID,
		Name:       c.Name,
		Type:       c.Kind.String(),
		FrameStart: &sourceStart,
		Start:      c.Start,
		End:        c.End,
		Mute:       c.Mute,
		Volume:     &volume,
		BlendAlpha: &alpha,
	}

	if c.Sound != nil {
		sv := c.Sound.Volume
		fc.Sound = &fileSound{ID: c.Sound.ID, Path: c.Sound.Path, Volume: &sv}
	}

	return fc
}

// Save writes p to path, replacing the file only once encoding succeeded.
func Save(path string, p *timeline.Project) error {
	var buf bytes.Buffer
	if err := Encode(&buf, p); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing project: %w", err)
	}

	return nil
}
