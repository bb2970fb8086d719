// SPDX-License-Identifier: EPL-2.0

package device

import "time"

// Encoding of samples the output endpoint works in.
type Encoding int

const (
	EncodingPCM Encoding = iota + 1
	EncodingFloat
	EncodingOther
)

// Format describes the native format of an output endpoint. It is queried
// once per run and read-only afterwards.
type Format struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
	// FrameAlign is the byte size of one frame (all channels of one sample
	// instant) at the endpoint's bit depth.
	FrameAlign int
	Encoding   Encoding
}

// Session is one exclusive playback stream bound to the default output
// device. A session is opened immediately before streaming, never pooled or
// reused, and must be closed on every exit path.
//
// The device consumes queued frames on its own clock. Capacity and Queued
// describe the session's fixed frame buffer; WaitReady blocks until the
// device has consumed data (freeing buffer space) or the timeout elapses.
// A timeout is a scheduling hint, not an error: callers re-poll.
type Session interface {
	// Capacity returns the fixed size of the session buffer in frames.
	Capacity() int
	// Queued returns the number of frames written but not yet consumed by
	// the device.
	Queued() (int, error)
	// WriteFrames appends interleaved samples to the session buffer. The
	// write must fit into Capacity() - Queued() frames.
	WriteFrames(frames []float32) error
	// WaitReady blocks until the device signals that buffer space was
	// freed, or timeout elapses. Returns false on timeout.
	WaitReady(timeout time.Duration) (bool, error)
	// Close stops the stream and releases all device resources.
	Close() error
}
