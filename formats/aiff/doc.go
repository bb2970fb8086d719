// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio files into normalized float32 samples.
//
// The decoder is built on github.com/go-audio/aiff and supports signed PCM
// at 8, 16, 24 and 32 bits.
//
// # Usage
//
//	decoder := aiff.Decoder{}
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // handle error
//	}
//	defer source.Close()
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// AIFF decoding requires seeking; when the input is not an io.ReadSeeker
// the whole stream is buffered in memory first.
package aiff
