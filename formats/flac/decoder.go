package flac

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"

	"github.com/aviscaerulea/minply/audio"
)

type source struct {
	stream     *flac.Stream
	sampleRate int
	channels   int
	scale      float32

	// Interleaved samples of the current frame not yet handed out
	pending []float32
	offset  int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }

func (s *source) Close() error {
	err := s.stream.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// fillPending decodes the next FLAC frame and interleaves its subframes.
func (s *source) fillPending() error {
	frame, err := s.stream.ParseNext()
	if err != nil {
		return err
	}

	blockSize := len(frame.Subframes[0].Samples)
	needed := blockSize * s.channels
	if cap(s.pending) < needed {
		s.pending = make([]float32, needed)
	}
	s.pending = s.pending[:needed]

	// FLAC frames carry one subframe per channel; interleave them
	for ch := 0; ch < s.channels; ch++ {
		samples := frame.Subframes[ch].Samples
		for i := 0; i < blockSize; i++ {
			s.pending[i*s.channels+ch] = float32(samples[i]) / s.scale
		}
	}

	s.offset = 0
	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.offset >= len(s.pending) {
		err := s.fillPending()
		if err == io.EOF {
			return 0, io.EOF
		}
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
	}

	n := copy(dst, s.pending[s.offset:])
	s.offset += n
	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	info := stream.Info
	if info == nil {
		return nil, ErrMissingStreamInfo
	}

	return &source{
		stream:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		scale:      float32(int64(1) << (info.BitsPerSample - 1)),
	}, nil
}
