// SPDX-License-Identifier: EPL-2.0

package project

import "errors"

var (
	ErrInvalidFrameRate = errors.New("invalid frame rate")
	ErrInvalidClip      = errors.New("invalid clip")
	ErrInvalidFade      = errors.New("invalid fade curve")
)
