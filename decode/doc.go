// SPDX-License-Identifier: EPL-2.0

// Package decode turns an audio file into one contiguous buffer of
// interleaved float32 samples at a caller-chosen rate and channel count.
//
// Two strategies run in order, first match wins:
//
//  1. Fast path: WAV sources whose stored encoding (integer PCM at 16, 24
//     or 32 bit, or 32-bit IEEE float) and stored rate/channel layout
//     already match the target are read directly. No resampler or mixer
//     touches the data, so the output is a bit-exact scaling of the stored
//     samples.
//  2. Generic path: everything else goes through the format registry
//     (WAV, MP3, Ogg Vorbis, FLAC, AIFF by default), with cubic
//     resampling and channel mixing applied as needed.
//
// The fast path declining a source is not an error; the cascade falls
// through silently. Real failures surface as ErrOpenFailed,
// ErrFormatNegotiation or ErrEmptyOutput.
//
//	samples, err := decode.File("clip.wav", decode.Target{
//	    SampleRate: 48000,
//	    Channels:   2,
//	}, minply.DefaultRegistry())
package decode
