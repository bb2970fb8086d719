// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aviscaerulea/minply/audio"
)

// Target is the output format a decode must produce: interleaved float32
// samples at this rate and channel count.
type Target struct {
	SampleRate int
	Channels   int
}

// File decodes the audio file at path into one contiguous buffer of
// interleaved float32 samples at the target rate and channel count.
//
// Two strategies run in order, first match wins. The fast path reads
// uncompressed sources bit-exactly when their stored format already equals
// the target; everything else goes through the registry decoders with
// resampling and channel mixing as needed. Decoding either yields the
// complete buffer or fails; there is no partial result.
func File(path string, target Target, reg *audio.Registry) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}
	defer f.Close()

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	return Decode(f, ext, target, reg)
}

// Decode runs the strategy cascade over an already opened source. ext is
// the format key without the leading dot (e.g. "wav", "mp3").
func Decode(rs io.ReadSeeker, ext string, target Target, reg *audio.Registry) ([]float32, error) {
	if target.SampleRate < 1 || target.Channels < 1 {
		return nil, fmt.Errorf("%w: %d Hz / %d ch", ErrFormatNegotiation, target.SampleRate, target.Channels)
	}

	buf, err := fastPath(rs, ext, target)
	if err == nil {
		return buf, nil
	}
	if !errors.Is(err, ErrNotApplicable) {
		return nil, err
	}

	// The fast path consumed part of the stream while probing
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}

	return generic(rs, ext, target, reg)
}

// drain reads a source to exhaustion into one contiguous buffer.
func drain(src audio.Source) ([]float32, error) {
	var out []float32
	buf := make([]float32, 4096)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return out, nil
}
