// SPDX-License-Identifier: EPL-2.0

package tonelab

import "errors"

var (
	ErrUnknownChord  = errors.New("unknown chord code")
	ErrUnknownFormat = errors.New("unknown audio format")
)
