// SPDX-License-Identifier: EPL-2.0

package peakvol

import (
	"fmt"
	"path/filepath"

	"github.com/ik5/peakvol/audio"
	"github.com/ik5/peakvol/fade"
	"github.com/ik5/peakvol/fcurve"
	"github.com/ik5/peakvol/media"
	"github.com/ik5/peakvol/project"
	"github.com/ik5/peakvol/sampler"
	"github.com/ik5/peakvol/timeline"
	"go.uber.org/zap"
)

// Session is an opened project file together with the sounds it plays and
// the meter state of one display.
type Session struct {
	Path    string
	Project *timeline.Project
	Library *media.Library
	Meter   sampler.Meter

	sampler  *sampler.Sampler
	log      *zap.Logger
	root     string
	registry *audio.Registry
}

type Option func(*Session)

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMediaRoot resolves relative sound paths against dir instead of the
// project file's directory.
func WithMediaRoot(dir string) Option {
	return func(s *Session) {
		if dir != "" {
			s.root = dir
		}
	}
}

// WithRegistry replaces the decoders used to load sounds.
func WithRegistry(r *audio.Registry) Option {
	return func(s *Session) {
		if r != nil {
			s.registry = r
		}
	}
}

// Open loads the project file at path.
func Open(path string, opts ...Option) (*Session, error) {
	s := &Session{
		Path: path,
		root: filepath.Dir(path),
		log:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.Library = media.NewLibrary(s.registry, s.root, s.log)

	if err := s.Reload(); err != nil {
		return nil, err
	}

	return s, nil
}

// Reload reads the project file again. Decoded sounds stay cached and the
// meter keeps its last frame, so an unchanged playhead does not repaint.
func (s *Session) Reload() error {
	p, err := project.Load(s.Path)
	if err != nil {
		return fmt.Errorf("loading project: %w", err)
	}

	s.Project = p
	s.sampler = sampler.New(p, s.Library, sampler.WithLogger(s.log))

	s.log.Debug("project loaded",
		zap.String("path", s.Path),
		zap.Int("frame", p.CurrentFrame),
		zap.Bool("editor", p.Editor != nil))

	return nil
}

// Save writes the project back to its file.
func (s *Session) Save() error {
	return project.Save(s.Path, s.Project)
}

func (s *Session) Sampler() *sampler.Sampler { return s.sampler }

// Sample returns the meter value at frame. See sampler.Sampler.Sample.
func (s *Session) Sample(frame int, evaluateGain bool) float64 {
	return s.sampler.Sample(frame, evaluateGain)
}

// Current returns the live value at the project's current frame.
func (s *Session) Current() float64 {
	return s.sampler.SampleCurrent()
}

// Update feeds a frame-change event to the meter and reports whether the
// display must be repainted.
func (s *Session) Update(frame int) bool {
	return s.Meter.Update(s.sampler, frame)
}

// Invalidate drops the cached decode of a sound file. When the file was in
// use the next Update samples again even on the same frame.
func (s *Session) Invalidate(path string) bool {
	if !s.Library.Invalidate(path) {
		return false
	}
	s.Meter.Evaluated = false

	return true
}

// Clip looks a clip up by name.
func (s *Session) Clip(name string) (*timeline.Clip, error) {
	if s.Project.Editor == nil {
		return nil, ErrNoEditor
	}

	c, ok := s.Project.Editor.Clip(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClip, name)
	}

	return c, nil
}

// Fade returns the fade curve of the named clip, creating it when create
// is set. A nil curve without an error means the clip has no fade.
func (s *Session) Fade(name string, create bool) (*fcurve.Curve, error) {
	c, err := s.Clip(name)
	if err != nil {
		return nil, err
	}

	return fade.NewResolver(s.Project).Resolve(c, create), nil
}

// Prune removes fade curves whose clip no longer exists, such as those
// left behind by a rename, and returns how many went.
func (s *Session) Prune() int {
	if s.Project.Animation == nil || s.Project.Animation.Action == nil {
		return 0
	}

	var names []string
	if s.Project.Editor != nil {
		names = s.Project.Editor.Names()
	}

	n := s.Project.Animation.Action.Prune(names)
	if n > 0 {
		s.log.Info("pruned orphaned fade curves", zap.Int("count", n))
	}

	return n
}
