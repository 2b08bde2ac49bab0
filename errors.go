// SPDX-License-Identifier: EPL-2.0

package peakvol

import "errors"

var (
	ErrNoEditor    = errors.New("project has no sequence editor")
	ErrUnknownClip = errors.New("unknown clip")
)
