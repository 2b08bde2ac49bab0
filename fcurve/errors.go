// SPDX-License-Identifier: EPL-2.0

package fcurve

import "errors"

var (
	ErrCurveExists          = errors.New("curve already exists")
	ErrUnknownInterpolation = errors.New("unknown interpolation")
)
