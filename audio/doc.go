// SPDX-License-Identifier: EPL-2.0

// Package audio provides access to decoded waveforms.
//
// Format decoders (see the formats subpackages) produce a streaming Source.
// The volume meter needs random access by time instead, so a Source is
// drained once into a Buffer, which answers window requests:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	buf, _ := audio.ReadAll(src)
//	samples, _ := buf.Limit(1.20, 1.24) // one 25 fps frame
//
// # Format Registry
//
// The registry maps format keys to decoders, and file names to format keys:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.ForPath("dialog.wav")
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0], interleaved by channel. Windows are
// addressed in seconds and always contain whole frames.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. A window that falls
// outside the media is not an error; it simply holds no samples.
package audio
