// SPDX-License-Identifier: EPL-2.0

package audio

import "time"

// Silence returns a buffer of zero-valued interleaved samples covering d at
// the given rate and channel count. The sample count is rounded down to whole
// frames. Streaming such a block ahead of real audio gives power-saving
// wireless receivers time to wake before audible content arrives.
func Silence(rate, channels int, d time.Duration) []float32 {
	if rate <= 0 || channels <= 0 || d <= 0 {
		return nil
	}

	frames := int(float64(rate) * d.Seconds())
	return make([]float32, frames*channels)
}

// ApplyEdgeFades scales the head of buf with a linear ramp from 0 to 1 and
// the tail with a linear ramp from 1 to 0, removing the click caused by a
// waveform discontinuity at the buffer edges. Each ramp covers
// floor(rate*fade) frames; the gain of a frame applies to all its channels.
//
// When the buffer holds fewer than two full fade windows the call is a no-op:
// overlapping ramps would attenuate the whole signal instead of its edges.
func ApplyEdgeFades(buf []float32, rate, channels int, fade time.Duration) {
	if rate <= 0 || channels <= 0 || fade <= 0 {
		return
	}

	fadeFrames := int(float64(rate) * fade.Seconds())
	if fadeFrames == 0 {
		return
	}

	totalFrames := len(buf) / channels
	if totalFrames < 2*fadeFrames {
		return
	}

	for i := 0; i < fadeFrames; i++ {
		gain := float32(i) / float32(fadeFrames)
		base := i * channels
		for c := 0; c < channels; c++ {
			buf[base+c] *= gain
		}
	}

	tail := totalFrames - fadeFrames
	for i := 0; i < fadeFrames; i++ {
		gain := float32(fadeFrames-i) / float32(fadeFrames)
		base := (tail + i) * channels
		for c := 0; c < channels; c++ {
			buf[base+c] *= gain
		}
	}
}
