// SPDX-License-Identifier: EPL-2.0

// Package device queries the default audio output endpoint and opens
// playback sessions on it.
//
// The package is built on github.com/gen2brain/malgo (miniaudio), which
// fronts the platform audio services (WASAPI, CoreAudio, ALSA/PulseAudio).
//
// # Format Query
//
// DefaultOutputFormat enumerates playback endpoints, picks the system
// default and reports its native shared-mode format:
//
//	format, err := device.DefaultOutputFormat()
//	if err != nil {
//	    // no usable output device
//	}
//
// The query holds its backend context only for the duration of the call.
//
// # Playback Sessions
//
// OpenSession opens and starts one stream at a fixed format. The session
// exposes the device buffer model needed for paced streaming: a fixed frame
// capacity, a queued-frame count, and a readiness signal the device raises
// each time it consumes a period:
//
//	sess, err := device.OpenSession(format, 4096)
//	if err != nil {
//	    // session init failed
//	}
//	defer sess.Close()
//
//	for framesRemain {
//	    ok, _ := sess.WaitReady(100 * time.Millisecond)
//	    if !ok {
//	        continue // timeout, re-poll
//	    }
//	    queued, _ := sess.Queued()
//	    // write up to Capacity()-queued frames
//	}
//
// A session underruns silently (the stream keeps running on zeros), is
// never reused after Close, and supports exactly one writer.
package device
