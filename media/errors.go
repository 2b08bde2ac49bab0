// SPDX-License-Identifier: EPL-2.0

package media

import "errors"

var ErrUnknownFormat = errors.New("no decoder for media format")
