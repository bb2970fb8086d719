// Package vorbis decodes Ogg Vorbis audio streams into normalized float32
// samples.
//
// The decoder is built on github.com/jfreymuth/oggvorbis, which produces
// float output natively, so samples pass through without quantization.
//
// # Usage
//
//	decoder := vorbis.Decoder{}
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // handle error
//	}
//	defer source.Close()
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The source reports the sample rate and channel count declared by the
// Vorbis stream.
package vorbis
