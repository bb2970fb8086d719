// SPDX-License-Identifier: EPL-2.0

package player

import (
	"fmt"
	"time"

	"github.com/aviscaerulea/minply/device"
)

// Config holds the pacing parameters of the streaming loop.
type Config struct {
	// BufferWait bounds one wait for the device readiness signal. A timeout
	// is not an error; the loop re-polls.
	BufferWait time.Duration
	// DrainPoll is the interval between queued-frame checks while draining.
	DrainPoll time.Duration
	// Settle is the extra wait after the queue empties, covering downstream
	// encode/transmission latency the local queue count cannot see.
	Settle time.Duration
}

// Engine streams decoded audio through one playback session. It writes a
// lead-in buffer and the payload back to back within the same session; an
// intervening session gap would let a power-saving receiver fall back to
// sleep and defeat the lead-in.
type Engine struct {
	sess     device.Session
	channels int
	cfg      Config
}

func New(sess device.Session, channels int, cfg Config) *Engine {
	return &Engine{
		sess:     sess,
		channels: channels,
		cfg:      cfg,
	}
}

// Play streams leadIn, then payload, then blocks until the device has
// emitted everything. Both buffers are interleaved at the engine's channel
// count; either may be empty. The session stays open across both sources
// and is left for the caller to close.
func (e *Engine) Play(leadIn, payload []float32) error {
	for _, src := range [2][]float32{leadIn, payload} {
		if err := e.stream(src); err != nil {
			return err
		}
	}

	return e.drain()
}

// stream writes all frames of buf, pacing on the device readiness signal
// and never exceeding the free buffer space.
func (e *Engine) stream(buf []float32) error {
	if len(buf) == 0 {
		return nil
	}

	total := len(buf) / e.channels
	written := 0

	for written < total {
		ok, err := e.sess.WaitReady(e.cfg.BufferWait)
		if err != nil {
			return fmt.Errorf("waiting for device buffer: %w", err)
		}
		if !ok {
			continue
		}

		queued, err := e.sess.Queued()
		if err != nil {
			return fmt.Errorf("querying queued frames: %w", err)
		}

		avail := e.sess.Capacity() - queued
		if avail <= 0 {
			continue
		}

		n := min(avail, total-written)
		chunk := buf[written*e.channels : (written+n)*e.channels]
		if err := e.sess.WriteFrames(chunk); err != nil {
			return fmt.Errorf("writing device buffer: %w", err)
		}

		written += n
	}

	return nil
}

// drain polls until the device queue is empty, then waits the settle
// interval before returning.
func (e *Engine) drain() error {
	for {
		queued, err := e.sess.Queued()
		if err != nil {
			return fmt.Errorf("querying queued frames: %w", err)
		}
		if queued == 0 {
			break
		}

		time.Sleep(e.cfg.DrainPoll)
	}

	time.Sleep(e.cfg.Settle)
	return nil
}
