// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts go-audio integer PCM readers to audio.Source.
package pcm

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

var ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")

// Reader is the part of the go-audio WAV and AIFF decoders a Source needs.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// FullScale returns the magnitude of the most negative sample at depth.
func FullScale(bitDepth int) (float32, error) {
	switch bitDepth {
	case 16:
		return 1 << 15, nil
	case 24:
		return 1 << 23, nil
	case 32:
		return 1 << 31, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}

// Source streams normalised samples from a go-audio decoder.
type Source struct {
	dec      Reader
	rate     int
	channels int
	scale    float32
	ints     *goaudio.IntBuffer
	done     bool
}

// NewSource wraps dec. The format must already have been read.
func NewSource(dec Reader, bitDepth int) (*Source, error) {
	scale, err := FullScale(bitDepth)
	if err != nil {
		return nil, err
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: missing format", io.ErrUnexpectedEOF)
	}

	return &Source{
		dec:      dec,
		rate:     format.SampleRate,
		channels: format.NumChannels,
		scale:    scale,
		ints:     &goaudio.IntBuffer{Format: format, SourceBitDepth: bitDepth},
	}, nil
}

func (s *Source) SampleRate() int { return s.rate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }
func (s *Source) BufSize() int    { return 4096 * s.channels }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.done {
		return 0, io.EOF
	}

	if cap(s.ints.Data) < len(dst) {
		s.ints.Data = make([]int, len(dst))
	}
	s.ints.Data = s.ints.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.ints)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("reading pcm: %w", err)
	}

	for i, v := range s.ints.Data[:n] {
		dst[i] = float32(v) / s.scale
	}

	// go-audio reports the end of data with a short read.
	if n < len(dst) || err == io.EOF {
		s.done = true
		if n == 0 {
			return 0, io.EOF
		}
	}

	return n, nil
}
