// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"

	"github.com/ik5/peakvol/internal/audiotest"
)

func TestNewBuffer_Validation(t *testing.T) {
	t.Parallel()

	if _, err := NewBuffer(0, 1, nil); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("NewBuffer(rate=0) error = %v, want ErrInvalidSampleRate", err)
	}

	if _, err := NewBuffer(8000, 0, nil); !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("NewBuffer(channels=0) error = %v, want ErrInvalidChannels", err)
	}

	b, err := NewBuffer(8000, 2, []float32{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}
	if b.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2 (partial frame dropped)", b.Frames())
	}
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(8000, 2, 1000, 440)

	b, err := ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if b.SampleRate() != 8000 || b.Channels() != 2 {
		t.Errorf("format = %d Hz x%d, want 8000 Hz x2", b.SampleRate(), b.Channels())
	}

	if b.Frames() != 1000 {
		t.Errorf("Frames() = %d, want 1000", b.Frames())
	}

	if d := b.Duration(); d != 0.125 {
		t.Errorf("Duration() = %v, want 0.125", d)
	}
}

func TestReadAll_PropagatesErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("corrupt frame")
	src := audiotest.NewRampSource(8000, 10).FailAfter(boom)

	if _, err := ReadAll(src); !errors.Is(err, boom) {
		t.Errorf("ReadAll() error = %v, want wrapped %v", err, boom)
	}
}

func TestBuffer_Limit(t *testing.T) {
	t.Parallel()

	// 100 mono frames at 100 Hz: frame i holds i/100, one frame per 10ms.
	b, err := ReadAll(audiotest.NewRampSource(100, 100))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	tests := []struct {
		name      string
		from, to  float64
		wantLen   int
		wantFirst float32
	}{
		{name: "first tenth", from: 0, to: 0.105, wantLen: 10, wantFirst: 0},
		{name: "middle", from: 0.505, to: 0.545, wantLen: 4, wantFirst: 0.5},
		{name: "negative start clamps", from: -0.2, to: 0.035, wantLen: 3, wantFirst: 0},
		{name: "past the end clamps", from: 0.955, to: 2, wantLen: 5, wantFirst: 0.95},
		{name: "beyond the media", from: 1.5, to: 2, wantLen: 0},
		{name: "inverted", from: 0.5, to: 0.4, wantLen: 0},
		{name: "sub-frame window", from: 0.101, to: 0.105, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := b.Limit(tt.from, tt.to)
			if err != nil {
				t.Fatalf("Limit() error = %v", err)
			}

			if len(got) != tt.wantLen {
				t.Fatalf("len(Limit(%v, %v)) = %d, want %d", tt.from, tt.to, len(got), tt.wantLen)
			}

			if tt.wantLen > 0 && got[0] != tt.wantFirst {
				t.Errorf("first sample = %v, want %v", got[0], tt.wantFirst)
			}
		})
	}
}

func TestBuffer_LimitKeepsFramesWhole(t *testing.T) {
	t.Parallel()

	b, err := NewBuffer(10, 2, []float32{0, 0, 1, -1, 2, -2, 3, -3})
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}

	got, _ := b.Limit(0.15, 0.35)
	want := []float32{1, -1, 2, -2}

	if len(got) != len(want) {
		t.Fatalf("Limit() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Limit()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScaled(t *testing.T) {
	t.Parallel()

	w := audiotest.NewScriptedWindow(0.5, -0.25)

	if Scaled(w, 1) != Window(w) {
		t.Error("Scaled(w, 1) should return w unchanged")
	}

	got, err := Scaled(w, 2).Limit(0, 1)
	if err != nil {
		t.Fatalf("Limit() error = %v", err)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != -0.5 {
		t.Errorf("Scaled(w, 2).Limit() = %v, want [1 -0.5]", got)
	}

	if got, _ := Scaled(Empty, 2).Limit(0, 1); len(got) != 0 {
		t.Errorf("Scaled(Empty).Limit() = %v, want no samples", got)
	}
}
