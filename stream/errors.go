// SPDX-License-Identifier: EPL-2.0

package stream

import "errors"

var (
	ErrStreamActive      = errors.New("stream already active")
	ErrStreamIdle        = errors.New("stream not active")
	ErrDriverNotStarted  = errors.New("driver not started")
	ErrDeviceEnumeration = errors.New("device enumeration requires the portaudio backend")
)
