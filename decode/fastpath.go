// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"io"

	"github.com/aviscaerulea/minply/formats/wav"
)

// fastPath reads an uncompressed source directly into normalized floats,
// with no resampling and no remixing, so sample values stay bit-exact
// scalings of the stored data. It applies only when all of these hold:
//
//   - the source is a WAV container
//   - samples are integer PCM (16, 24 or 32 bit) or 32-bit IEEE float
//   - the stored sample rate equals the target rate
//   - the stored channel count equals the target channel count
//
// Any disqualifying condition, including a source that fails to parse,
// yields ErrNotApplicable so the caller falls through to the generic
// strategy; the fast path itself never produces a terminal failure.
func fastPath(rs io.ReadSeeker, ext string, target Target) ([]float32, error) {
	switch ext {
	case "wav", "wave":
	default:
		return nil, ErrNotApplicable
	}

	src, err := wav.Decoder{}.Decode(rs)
	if err != nil {
		return nil, ErrNotApplicable
	}
	defer src.Close()

	ws, ok := src.(wav.Source)
	if !ok {
		return nil, ErrNotApplicable
	}

	if src.SampleRate() != target.SampleRate || src.Channels() != target.Channels {
		return nil, ErrNotApplicable
	}

	// 8-bit WAV is unsigned and needs re-centering, not a pure gain; leave
	// it to the generic path.
	if ws.Encoding() == wav.EncodingPCM && ws.BitDepth() == 8 {
		return nil, ErrNotApplicable
	}

	buf, err := drain(src)
	if err != nil || len(buf) == 0 {
		return nil, ErrNotApplicable
	}

	return buf, nil
}
