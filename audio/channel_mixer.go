package audio

import "fmt"

// ChannelMixer converts a source to a fixed output channel count.
// Downmixing averages the source channels; upmixing from mono duplicates
// the single channel. Other layout changes go through a mono intermediate.
type ChannelMixer struct {
	src Source
	out int
	tmp []float32
}

func NewChannelMixer(src Source, outChannels int) *ChannelMixer {
	if outChannels < 1 {
		outChannels = 1
	}
	return &ChannelMixer{
		src: src,
		out: outChannels,
		tmp: make([]float32, 4096),
	}
}

func (m *ChannelMixer) SampleRate() int { return m.src.SampleRate() }
func (m *ChannelMixer) Channels() int   { return m.out }
func (m *ChannelMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (m *ChannelMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%m.out != 0 {
		return 0, ErrInvalidDstSize
	}

	in := m.src.Channels()
	if in == m.out {
		// Pass-through: layouts already match
		return m.src.ReadSamples(dst)
	}

	maxFrames := len(dst) / m.out
	samplesNeeded := maxFrames * in

	// Grow tmp buffer if needed (but don't shrink to avoid thrashing)
	if cap(m.tmp) < samplesNeeded {
		newCap := samplesNeeded
		if newCap < 8192 {
			newCap = 8192
		}
		m.tmp = make([]float32, newCap)
	}
	m.tmp = m.tmp[:samplesNeeded]

	n, err := m.src.ReadSamples(m.tmp[:samplesNeeded])
	if n == 0 {
		return 0, err
	}
	frames := n / in

	switch {
	case in == 1:
		// Mono upmix: duplicate across all output channels
		for f := 0; f < frames; f++ {
			v := m.tmp[f]
			base := f * m.out
			for c := 0; c < m.out; c++ {
				dst[base+c] = v
			}
		}
	case m.out == 1 && in == 2:
		// Stereo downmix (most common)
		for f := 0; f < frames; f++ {
			idx := f << 1
			dst[f] = (m.tmp[idx] + m.tmp[idx+1]) * 0.5
		}
	case m.out == 1:
		// Generic downmix to mono
		inv := float32(1.0) / float32(in)
		for f := 0; f < frames; f++ {
			sum := float32(0)
			base := f * in
			for c := 0; c < in; c++ {
				sum += m.tmp[base+c]
			}
			dst[f] = sum * inv
		}
	default:
		// General N->M: average to mono, then duplicate
		inv := float32(1.0) / float32(in)
		for f := 0; f < frames; f++ {
			sum := float32(0)
			base := f * in
			for c := 0; c < in; c++ {
				sum += m.tmp[base+c]
			}
			v := sum * inv
			outBase := f * m.out
			for c := 0; c < m.out; c++ {
				dst[outBase+c] = v
			}
		}
	}

	return frames * m.out, err
}
