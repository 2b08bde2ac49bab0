// SPDX-License-Identifier: EPL-2.0

// Package timeline holds the editing model the volume meter reads from.
//
// A Project owns an optional Timeline (the editing context), the project
// frame rate, the current playback frame and the animation container that
// stores fade curves. Clip boundaries are integer frames; waveforms are
// addressed in seconds, so every conversion goes through FrameRate:
//
//	rate := timeline.FrameRate{Num: 30000, Den: 1001}
//	seconds := rate.FrameToTime(48) // ~1.6 seconds
//
// A clip is active at frame f when Start < f < End. Both ends are
// exclusive, so a clip starting or ending exactly at f does not count.
package timeline
