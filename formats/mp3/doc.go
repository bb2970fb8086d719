// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio streams into normalized float32 samples.
//
// The decoder is built on github.com/hajimehoshi/go-mp3 and always produces
// interleaved stereo output regardless of the source channel layout; use
// audio.ChannelMixer when another layout is required.
//
// # Usage
//
//	decoder := mp3.Decoder{}
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // handle error
//	}
//	defer source.Close()
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Notes
//
//   - Output is always stereo (2 channels)
//   - Samples are normalized 16-bit values; the underlying decoder works at
//     16-bit precision
//   - The source sample rate is whatever the MP3 stream declares (commonly
//     44100 or 48000 Hz)
package mp3
