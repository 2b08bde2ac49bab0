// SPDX-License-Identifier: EPL-2.0

package sampler

import "math"

// Peak returns the larger magnitude of the window's signed extremes,
// max(|min|, |max|). An empty window has no peak and yields 0.
func Peak(samples []float32) float64 {
	if len(samples) == 0 {
		return 0
	}

	lo, hi := samples[0], samples[0]
	for _, v := range samples[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return math.Max(math.Abs(float64(lo)), math.Abs(float64(hi)))
}
