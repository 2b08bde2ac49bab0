// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

type fakeReader struct {
	format  *goaudio.Format
	samples []int
	offset  int
	err     error
}

func (f *fakeReader) Format() *goaudio.Format { return f.format }

func (f *fakeReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.err != nil {
		return 0, f.err
	}

	n := copy(buf.Data, f.samples[f.offset:])
	f.offset += n

	return n, nil
}

func mono(rate int, samples ...int) *fakeReader {
	return &fakeReader{
		format:  &goaudio.Format{NumChannels: 1, SampleRate: rate},
		samples: samples,
	}
}

func TestFullScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		depth   int
		want    float32
		wantErr bool
	}{
		{depth: 16, want: 32768},
		{depth: 24, want: 8388608},
		{depth: 32, want: 2147483648},
		{depth: 8, wantErr: true},
		{depth: 12, wantErr: true},
	}

	for _, tt := range tests {
		got, err := FullScale(tt.depth)
		if tt.wantErr {
			if !errors.Is(err, ErrUnsupportedBitDepth) {
				t.Errorf("FullScale(%d) error = %v, want ErrUnsupportedBitDepth", tt.depth, err)
			}
			continue
		}

		if err != nil || got != tt.want {
			t.Errorf("FullScale(%d) = %v, %v, want %v", tt.depth, got, err, tt.want)
		}
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src, err := NewSource(mono(8000, 0, 16384, -16384, -32768, 32767), 16)
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}

	dst := make([]float32, 3)

	n, err := src.ReadSamples(dst)
	if n != 3 || err != nil {
		t.Fatalf("first ReadSamples() = %d, %v, want 3, nil", n, err)
	}
	if dst[0] != 0 || dst[1] != 0.5 || dst[2] != -0.5 {
		t.Errorf("first read = %v, want [0 0.5 -0.5]", dst)
	}

	n, err = src.ReadSamples(dst)
	if n != 2 || err != nil {
		t.Fatalf("second ReadSamples() = %d, %v, want 2, nil", n, err)
	}
	if dst[0] != -1 {
		t.Errorf("full-scale negative = %v, want -1", dst[0])
	}

	if n, err = src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("final ReadSamples() = %d, %v, want 0, io.EOF", n, err)
	}
}

func TestSource_24Bit(t *testing.T) {
	t.Parallel()

	src, err := NewSource(mono(48000, 1<<22, -(1<<23)), 24)
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}

	dst := make([]float32, 4)
	n, _ := src.ReadSamples(dst)

	if n != 2 || dst[0] != 0.5 || dst[1] != -1 {
		t.Errorf("ReadSamples() = %d %v, want 2 [0.5 -1]", n, dst[:n])
	}
}

func TestSource_Errors(t *testing.T) {
	t.Parallel()

	if _, err := NewSource(mono(8000), 8); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("NewSource(8 bit) error = %v", err)
	}

	if _, err := NewSource(&fakeReader{}, 16); err == nil {
		t.Error("NewSource() without format succeeded")
	}

	boom := errors.New("bad chunk")
	r := mono(8000, 1, 2, 3)
	r.err = boom

	src, err := NewSource(r, 16)
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}
