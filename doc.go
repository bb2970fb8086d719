// SPDX-License-Identifier: EPL-2.0

// Package minply plays a single audio file to the default output device.
//
// It exists for one job done carefully: fire-and-forget playback of short
// clips (notifications, prompts, test tones) on systems where the output
// path is a wireless receiver with power saving. Playback is preceded by a
// configurable stretch of silence so the receiver is awake before the
// clip starts, and the clip edges are faded to suppress clicks.
//
// The pipeline is: query the device's native format, decode the file into
// that format (bit-exact when the source already matches, via resampling
// and channel mixing otherwise), condition the samples, then stream them
// through one uninterrupted playback session.
//
//	err := minply.PlayFile("chime.wav", minply.DefaultConfig())
//
// The subpackages are usable on their own: decode for file-to-buffer
// decoding, device for output device access, player for the streaming
// loop, audio for the source abstractions, and formats/* for the
// individual codecs.
package minply
