// SPDX-License-Identifier: EPL-2.0

package media

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/peakvol/timeline"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// writeWAV writes a 100 Hz mono 16-bit file to dir/name.
func writeWAV(t *testing.T, dir, name string, samples []int) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	defer f.Close()

	enc := gowav.NewEncoder(f, 100, 16, 1, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: 100},
		Data:           samples,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close encoder: %v", err)
	}

	return path
}

func halfScale(n int) []int {
	samples := make([]int, n)
	for i := range samples {
		samples[i] = 16384
		if i%2 == 1 {
			samples[i] = -8192
		}
	}

	return samples
}

func TestLibrary_Evaluated(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeWAV(t, dir, "dialog.wav", halfScale(100))

	lib := NewLibrary(nil, dir, nil)
	w := lib.Evaluated(&timeline.Sound{ID: "s1", Path: "dialog.wav", Volume: 1})

	got, err := w.Limit(0.1, 0.2)
	if err != nil {
		t.Fatalf("Limit() error = %v", err)
	}

	if len(got) != 10 {
		t.Fatalf("len(Limit()) = %d, want 10", len(got))
	}
	if got[0] != 0.5 || got[1] != -0.25 {
		t.Errorf("samples = %v..., want [0.5 -0.25 ...]", got[:2])
	}
}

func TestLibrary_SoundVolume(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeWAV(t, dir, "music.wav", halfScale(10))

	lib := NewLibrary(nil, dir, nil)
	w := lib.Evaluated(&timeline.Sound{Path: "music.wav", Volume: 0.5})

	got, _ := w.Limit(0, 0.02)
	if len(got) != 2 || got[0] != 0.25 || got[1] != -0.125 {
		t.Errorf("samples = %v, want [0.25 -0.125]", got)
	}
}

func TestLibrary_Caches(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeWAV(t, dir, "dialog.wav", halfScale(10))
	lib := NewLibrary(nil, "", nil)

	first, err := lib.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove fixture: %v", err)
	}

	second, err := lib.Load(path)
	if err != nil {
		t.Fatalf("cached Load() error = %v", err)
	}
	if first != second {
		t.Error("Load() decoded the file twice")
	}

	if !lib.Invalidate(path) {
		t.Error("Invalidate() of a cached file = false")
	}
	if lib.Invalidate(path) {
		t.Error("second Invalidate() = true")
	}
	if _, err := lib.Load(path); err == nil {
		t.Error("Load() after Invalidate() served a deleted file")
	}
}

func TestLibrary_UnknownFormat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "score.flac")
	if err := os.WriteFile(path, []byte("fLaC"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	lib := NewLibrary(nil, dir, nil)
	if _, err := lib.Load(path); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Load() error = %v, want ErrUnknownFormat", err)
	}
}

func TestLibrary_BrokenSoundsAreEmpty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.wav"), []byte("garbage"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	core, logs := observer.New(zap.WarnLevel)
	lib := NewLibrary(nil, dir, zap.New(core))

	sounds := []*timeline.Sound{
		nil,
		{Path: ""},
		{ID: "missing", Path: "missing.wav", Volume: 1},
		{ID: "broken", Path: "broken.wav", Volume: 1},
	}

	for _, s := range sounds {
		got, err := lib.Evaluated(s).Limit(0, 10)
		if err != nil || len(got) != 0 {
			t.Errorf("Evaluated(%+v).Limit() = %v, %v, want no samples", s, got, err)
		}
	}

	if n := logs.FilterMessage("load sound").Len(); n != 2 {
		t.Errorf("logged %d load failures, want 2", n)
	}
}

func TestLibrary_FailureWarnsOnce(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	core, logs := observer.New(zap.WarnLevel)
	lib := NewLibrary(nil, dir, zap.New(core))

	sound := &timeline.Sound{ID: "late", Path: "late.wav", Volume: 1}
	for range 100 {
		lib.Evaluated(sound)
	}

	if n := logs.FilterMessage("load sound").Len(); n != 1 {
		t.Fatalf("logged %d load failures over 100 calls, want 1", n)
	}
	if _, err := lib.Load(lib.Path(sound)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("cached Load() error = %v, want os.ErrNotExist", err)
	}

	// The file appears; the cached failure holds until invalidated.
	path := writeWAV(t, dir, "late.wav", halfScale(100))
	if got, _ := lib.Evaluated(sound).Limit(0, 1); len(got) != 0 {
		t.Errorf("Evaluated() before Invalidate() = %d samples, want 0", len(got))
	}

	if !lib.Invalidate(path) {
		t.Fatal("Invalidate() of a cached failure = false")
	}
	if got, _ := lib.Evaluated(sound).Limit(0, 1); len(got) != 100 {
		t.Errorf("Evaluated() after Invalidate() = %d samples, want 100", len(got))
	}
	if n := logs.FilterMessage("load sound").Len(); n != 1 {
		t.Errorf("logged %d load failures, want 1", n)
	}
}

func TestLibrary_ResetClearsFailures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	core, logs := observer.New(zap.WarnLevel)
	lib := NewLibrary(nil, dir, zap.New(core))

	sound := &timeline.Sound{Path: "gone.wav", Volume: 1}
	lib.Evaluated(sound)
	lib.Reset()
	lib.Evaluated(sound)

	if n := logs.FilterMessage("load sound").Len(); n != 2 {
		t.Errorf("logged %d load failures, want 2 (one per reset)", n)
	}
}

func TestLibrary_Path(t *testing.T) {
	t.Parallel()

	lib := NewLibrary(nil, "/projects/film", nil)

	if got := lib.Path(&timeline.Sound{Path: "audio/a.wav"}); got != filepath.Join("/projects/film", "audio/a.wav") {
		t.Errorf("relative Path() = %q", got)
	}

	if got := lib.Path(&timeline.Sound{Path: "/media/b.wav"}); got != "/media/b.wav" {
		t.Errorf("absolute Path() = %q", got)
	}
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	for _, name := range []string{"a.wav", "b.aiff", "c.mp3", "d.ogg"} {
		if _, ok := r.ForPath(name); !ok {
			t.Errorf("no decoder for %s", name)
		}
	}
}
