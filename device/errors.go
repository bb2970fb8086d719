// SPDX-License-Identifier: EPL-2.0

package device

import "errors"

var (
	ErrNoPlaybackDevice = errors.New("no playback device available")
	ErrDeviceInit       = errors.New("audio device initialization failed")
	ErrSessionClosed    = errors.New("playback session is closed")
	ErrBufferOverrun    = errors.New("write exceeds free session buffer space")
	ErrUnalignedWrite   = errors.New("sample count must be a multiple of channels")
)
