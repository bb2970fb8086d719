// SPDX-License-Identifier: EPL-2.0

package minply

import "time"

// Config collects the playback tunables. Zero values are not usable; start
// from DefaultConfig and override fields as needed.
type Config struct {
	// LeadIn is the length of synthesized silence played before the
	// payload. It gives wireless receivers with aggressive power saving
	// time to wake up, so the start of the payload is not swallowed.
	LeadIn time.Duration

	// Fade is the length of the linear fade-in and fade-out applied to the
	// payload edges, suppressing clicks from non-zero boundary samples.
	Fade time.Duration

	// BufferFrames is the capacity of the playback session queue, in
	// frames.
	BufferFrames int

	// BufferWait bounds one wait for device buffer space while streaming.
	BufferWait time.Duration

	// DrainPoll is the interval between queue checks while waiting for the
	// device to finish.
	DrainPoll time.Duration

	// Settle is the extra wait after the queue empties before playback is
	// considered complete.
	Settle time.Duration
}

// DefaultConfig returns the stock tunables.
func DefaultConfig() Config {
	return Config{
		LeadIn:       700 * time.Millisecond,
		Fade:         10 * time.Millisecond,
		BufferFrames: 4096,
		BufferWait:   100 * time.Millisecond,
		DrainPoll:    10 * time.Millisecond,
		Settle:       150 * time.Millisecond,
	}
}
