// Package player streams decoded audio buffers into a device session.
//
// The Engine implements a paced, event-driven write loop over the
// device.Session buffer model: wait for the readiness signal with a bounded
// timeout, read the queued-frame count, and write at most the free space
// (capacity minus queued). After the last frame it drains the queue and
// waits a settle interval so downstream receivers finish emitting before
// the session stops.
//
//	engine := player.New(sess, format.Channels, player.Config{
//	    BufferWait: 100 * time.Millisecond,
//	    DrainPoll:  10 * time.Millisecond,
//	    Settle:     150 * time.Millisecond,
//	})
//	err := engine.Play(leadIn, payload)
//
// The engine is single-threaded and runs to completion or first error;
// there is no pause, seek or cancellation surface.
package player
