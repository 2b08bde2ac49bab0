// SPDX-License-Identifier: EPL-2.0

// Package media loads the sounds clips play and hands them to the sampler
// as time-addressable windows.
package media

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ik5/peakvol/audio"
	"github.com/ik5/peakvol/formats/aiff"
	"github.com/ik5/peakvol/formats/mp3"
	"github.com/ik5/peakvol/formats/vorbis"
	"github.com/ik5/peakvol/formats/wav"
	"github.com/ik5/peakvol/timeline"
	"go.uber.org/zap"
)

// DefaultRegistry knows every supported format.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("vorbis", vorbis.Decoder{})

	return r
}

// Library decodes sound files on first use and keeps them in memory. A
// failed load is remembered too, so a broken sound is reported once and not
// read again until it is invalidated.
type Library struct {
	registry *audio.Registry
	root     string
	log      *zap.Logger

	mtx      sync.Mutex
	buffers  map[string]*audio.Buffer
	failures map[string]error
}

// NewLibrary resolves relative sound paths against root.
func NewLibrary(registry *audio.Registry, root string, log *zap.Logger) *Library {
	if registry == nil {
		registry = DefaultRegistry()
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Library{
		registry: registry,
		root:     root,
		log:      log,
		buffers:  make(map[string]*audio.Buffer),
		failures: make(map[string]error),
	}
}

// Path returns the file a sound is read from.
func (l *Library) Path(s *timeline.Sound) string {
	if filepath.IsAbs(s.Path) || l.root == "" {
		return filepath.Clean(s.Path)
	}

	return filepath.Join(l.root, s.Path)
}

// Evaluated returns the sound's waveform with its volume applied. A sound
// that cannot be loaded yields an empty window.
func (l *Library) Evaluated(s *timeline.Sound) audio.Window {
	if s == nil || s.Path == "" {
		return audio.Empty
	}

	buf, fresh, err := l.load(l.Path(s))
	if err != nil {
		if fresh {
			l.log.Warn("load sound",
				zap.String("sound", s.ID),
				zap.String("path", s.Path),
				zap.Error(err))
		}
		return audio.Empty
	}

	return audio.Scaled(buf, s.Volume)
}

// Load decodes the file at path, or returns the cached buffer or the
// cached failure.
func (l *Library) Load(path string) (*audio.Buffer, error) {
	buf, _, err := l.load(path)
	return buf, err
}

// load reports fresh when the result came from reading the file now.
func (l *Library) load(path string) (*audio.Buffer, bool, error) {
	path = filepath.Clean(path)

	l.mtx.Lock()
	defer l.mtx.Unlock()

	if buf, ok := l.buffers[path]; ok {
		return buf, false, nil
	}
	if err, ok := l.failures[path]; ok {
		return nil, false, err
	}

	buf, err := l.decode(path)
	if err != nil {
		l.failures[path] = err
		return nil, true, err
	}

	l.buffers[path] = buf
	l.log.Debug("sound loaded",
		zap.String("path", path),
		zap.Int("rate", buf.SampleRate()),
		zap.Int("channels", buf.Channels()),
		zap.Float64("seconds", buf.Duration()))

	return buf, true, nil
}

func (l *Library) decode(path string) (*audio.Buffer, error) {
	dec, ok := l.registry.ForPath(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sound: %w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	return audio.ReadAll(src)
}

// Invalidate forgets the cached buffer or load failure for path and
// reports whether there was one.
func (l *Library) Invalidate(path string) bool {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	path = filepath.Clean(path)
	_, cached := l.buffers[path]
	_, failed := l.failures[path]
	delete(l.buffers, path)
	delete(l.failures, path)

	return cached || failed
}

// Reset forgets every cached buffer and load failure.
func (l *Library) Reset() {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	clear(l.buffers)
	clear(l.failures)
}
