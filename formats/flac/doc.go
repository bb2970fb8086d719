// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC audio streams into normalized float32 samples.
//
// The decoder is built on github.com/mewkiz/flac. FLAC frames store each
// channel as a separate subframe; the source interleaves them and scales by
// the stream's bit depth, so 16- and 24-bit material both normalize to
// [-1, 1].
//
// # Usage
//
//	decoder := flac.Decoder{}
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // handle error
//	}
//	defer source.Close()
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
package flac
