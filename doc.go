// SPDX-License-Identifier: EPL-2.0

// Package peakvol measures how loud a video editing timeline is at a given
// frame, the value a volume meter widget displays.
//
// The meter value is the sum, over every audible sound clip under the
// playhead, of the clip's peak amplitude in the one-frame window ending at
// that frame multiplied by the clip's gain. The gain is either the clip's
// static volume or, when a fade has been keyframed, the value of its fade
// curve.
//
// # Quick Start
//
// A Session wires a project file, the sound files it references and a
// meter together:
//
//	s, err := peakvol.Open("edit.json", peakvol.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//
//	fmt.Println(s.Sample(120, true)) // faded volume at frame 120
//
//	if s.Update(121) {
//	    fmt.Println(s.Meter.Display(), s.Meter.Loud())
//	}
//
// # Packages
//
// The work is split over subpackages that can be used on their own:
//   - timeline: clips, sounds, frame rate and the project snapshot
//   - fcurve: keyframed curves and the actions holding them
//   - fade: finds or seeds the fade curve of a clip
//   - sampler: the peak sampler and the caller-held meter state
//   - audio: decoded waveforms addressable by time window
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis: decoders
//   - media: loads and caches the sounds a project plays
//   - project: JSON project files
//
// Nothing in the sampling path returns an error. A frame outside every
// clip, a missing editor or a sound that fails to decode all read as
// silence; failures are logged.
package peakvol
