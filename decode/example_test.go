// SPDX-License-Identifier: EPL-2.0

package decode_test

import (
	"bytes"
	"fmt"

	"github.com/aviscaerulea/minply/audio"
	"github.com/aviscaerulea/minply/decode"
	"github.com/aviscaerulea/minply/formats/wav"
	"github.com/aviscaerulea/minply/internal/audiotest"
)

// Example demonstrates decoding into a device format. The source here
// already matches the target, so the samples come back bit-exact.
func Example() {
	wavData := audiotest.PCM16WAV(48000, 2, []int16{0, 16384, -16384, 32767})

	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})

	samples, err := decode.Decode(bytes.NewReader(wavData), "wav", decode.Target{
		SampleRate: 48000,
		Channels:   2,
	}, reg)
	if err != nil {
		fmt.Printf("decode error: %v\n", err)
		return
	}

	fmt.Printf("Decoded %d samples\n", len(samples))
	fmt.Printf("First: %+.3f\n", samples[0])
	fmt.Printf("Second: %+.3f\n", samples[1])
	// Output:
	// Decoded 4 samples
	// First: +0.000
	// Second: +0.500
}
