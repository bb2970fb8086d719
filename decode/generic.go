// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"fmt"
	"io"

	"github.com/aviscaerulea/minply/audio"
)

// generic decodes through the registry and conforms the result to the
// target format: resampling when the rate differs, channel mixing when the
// layout differs. Quality is codec-dependent; unlike the fast path, the
// output is not guaranteed bit-exact.
func generic(r io.Reader, ext string, target Target, reg *audio.Registry) ([]float32, error) {
	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: no decoder for %q", ErrOpenFailed, ext)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}
	defer src.Close()

	out := audio.Source(src)
	if out.SampleRate() != target.SampleRate {
		out = audio.NewResampler(out, target.SampleRate)
	}
	if out.Channels() != target.Channels {
		out = audio.NewChannelMixer(out, target.Channels)
	}

	buf, err := drain(out)
	if err != nil {
		return nil, err
	}
	if len(buf) == 0 {
		return nil, ErrEmptyOutput
	}

	return buf, nil
}
