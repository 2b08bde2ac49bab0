// SPDX-License-Identifier: EPL-2.0

package sampler

// DisplayMax is the top of the meter's slider range.
const DisplayMax = 2.0

// Meter is the display state a host keeps between frame-change events.
type Meter struct {
	LastFrame int
	Volume    float64
	// Evaluated is false until the first Update.
	Evaluated bool
}

// Update samples frame when it differs from the last evaluated frame and
// reports whether the displayed value needs a repaint.
func (m *Meter) Update(s *Sampler, frame int) bool {
	if m.Evaluated && frame == m.LastFrame {
		return false
	}

	m.Volume = s.Sample(frame, true)
	m.LastFrame = frame
	m.Evaluated = true

	return true
}

// Display is the volume clamped to the slider range.
func (m *Meter) Display() float64 {
	return min(max(m.Volume, 0), DisplayMax)
}

// Loud reports a volume above unity.
func (m *Meter) Loud() bool {
	return m.Volume > 1
}
