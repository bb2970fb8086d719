// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio processing primitives.
//
// This package contains the core building blocks of the playback pipeline:
//   - Source interface for decoded audio input
//   - Resampler for sample rate conversion
//   - ChannelMixer for channel layout conversion
//   - Silence and ApplyEdgeFades for signal conditioning
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// All audio decoders and processors implement this interface, allowing
// them to be chained together in processing pipelines.
//
// # Resampling
//
// The Resampler changes the sample rate of audio using cubic interpolation:
//
//	resampler := audio.NewResampler(source, 48000)
//	buf := make([]float32, 4096)
//	n, err := resampler.ReadSamples(buf)
//
// Resampling works for both upsampling and downsampling.
//
// # Channel Mixing
//
// The ChannelMixer adapts a source to a fixed output channel count.
// Downmixing averages channels, upmixing from mono duplicates the channel:
//
//	stereo := audio.NewChannelMixer(source, 2)
//	buf := make([]float32, 4096)
//	n, err := stereo.ReadSamples(buf)
//
// # Signal Conditioning
//
// Silence synthesizes a zero-valued lead-in block, and ApplyEdgeFades ramps
// the first and last moments of a buffer to suppress edge clicks:
//
//	lead := audio.Silence(48000, 2, 700*time.Millisecond)
//	audio.ApplyEdgeFades(payload, 48000, 2, 10*time.Millisecond)
//
// Both operate on plain []float32 buffers, not Sources; they condition fully
// decoded audio just before playback.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// This normalized format makes it easy to process audio without worrying
// about bit depths and ensures no clipping during intermediate processing.
//
// # Error Handling
//
// Audio processing functions return io.EOF when no more data is available.
// Other errors indicate problems with the source or processing:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
