// SPDX-License-Identifier: EPL-2.0

// Package wav decodes RIFF/WAVE files into normalized float32 samples.
//
// The decoder is built on github.com/go-audio/wav and supports integer PCM
// at 8, 16, 24 and 32 bits as well as 32-bit IEEE float. Chunk layout is
// handled by go-audio, so files with LIST, fact or other metadata chunks
// decode correctly.
//
// # Usage
//
//	decoder := wav.Decoder{}
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // handle error
//	}
//	defer source.Close()
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The returned audio.Source also implements wav.Source, which reports the
// stored encoding and bit depth:
//
//	if ws, ok := source.(wav.Source); ok {
//	    fmt.Println(ws.Encoding(), ws.BitDepth())
//	}
//
// Callers that need loss-free access to sample data (no resampling, no
// remixing) can use these to check whether the file already matches their
// target format.
//
// # Sample Normalization
//
// Integer samples are scaled to [-1, 1] by the full range of their bit
// depth (32768 for 16-bit, 8388608 for 24-bit, 2147483648 for 32-bit);
// 8-bit samples are unsigned and re-centered before scaling. Float samples
// are passed through verbatim.
//
// # Errors
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE stream
//   - ErrUnsupportedEncoding: a compression format other than PCM or IEEE float
//   - ErrUnsupportedBitDepth: a bit depth outside the supported set
package wav
