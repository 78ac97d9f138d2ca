// SPDX-License-Identifier: EPL-2.0

package envelope

import "errors"

var (
	ErrUnknownFadeMode = errors.New("unknown fade mode")
	ErrFadeTooLong     = errors.New("fade length exceeds clip length")
	ErrOverlapTooLong  = errors.New("crossfade overlap exceeds clip length")
)
