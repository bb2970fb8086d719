package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/aviscaerulea/minply/audio"
)

// Encoding of the samples stored in a WAV file.
type Encoding int

const (
	EncodingPCM Encoding = iota + 1
	EncodingFloat
)

// Source extends audio.Source with the stored encoding and bit depth, so
// callers can tell whether a loss-free direct read is possible.
type Source interface {
	audio.Source
	Encoding() Encoding
	BitDepth() int
}

// intSource wraps go-audio's wav.Decoder for integer PCM files.
type intSource struct {
	dec        *gowav.Decoder
	sampleRate int
	channels   int
	bitDepth   int
	intBuf     *goaudio.IntBuffer
}

func (s *intSource) SampleRate() int    { return s.sampleRate }
func (s *intSource) Channels() int      { return s.channels }
func (s *intSource) BitDepth() int      { return s.bitDepth }
func (s *intSource) Encoding() Encoding { return EncodingPCM }
func (s *intSource) Close() error       { return nil }

func (s *intSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	switch s.bitDepth {
	case 8:
		// 8-bit WAV is unsigned, centered at 128
		for i := 0; i < n; i++ {
			dst[i] = (float32(s.intBuf.Data[i]) - 128.0) / 128.0
		}
	case 16:
		for i := 0; i < n; i++ {
			dst[i] = float32(s.intBuf.Data[i]) / 32768.0
		}
	case 24:
		for i := 0; i < n; i++ {
			dst[i] = float32(s.intBuf.Data[i]) / 8388608.0
		}
	case 32:
		for i := 0; i < n; i++ {
			dst[i] = float32(s.intBuf.Data[i]) / 2147483648.0
		}
	}

	// Short read with no error means the data chunk is exhausted
	if n < len(dst) && err == nil {
		return n, io.EOF
	}

	return n, err
}

// floatSource streams the raw data chunk of a 32-bit IEEE float file.
type floatSource struct {
	r          io.Reader
	sampleRate int
	channels   int
	buf        []byte
}

func (s *floatSource) SampleRate() int    { return s.sampleRate }
func (s *floatSource) Channels() int      { return s.channels }
func (s *floatSource) BitDepth() int      { return 32 }
func (s *floatSource) Encoding() Encoding { return EncodingFloat }
func (s *floatSource) Close() error       { return nil }

func (s *floatSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if len(s.buf) < len(dst)*4 {
		s.buf = make([]byte, len(dst)*4)
	}

	n, err := io.ReadFull(s.r, s.buf[:len(dst)*4])
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, fmt.Errorf("%w", err)
	}

	samples := n / 4
	for i := 0; i < samples; i++ {
		bits := binary.LittleEndian.Uint32(s.buf[4*i : 4*i+4])
		dst[i] = math.Float32frombits(bits)
	}

	if samples == 0 && (err == io.EOF || err == io.ErrUnexpectedEOF) {
		return 0, io.EOF
	}
	return samples, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio requires seeking; buffer non-seekable input
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = &readSeeker{data: data}
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrNotWavFile
	}

	switch dec.WavAudioFormat {
	case 1: // integer PCM
		switch dec.BitDepth {
		case 8, 16, 24, 32:
		default:
			return nil, ErrUnsupportedBitDepth
		}

		return &intSource{
			dec:        dec,
			sampleRate: format.SampleRate,
			channels:   format.NumChannels,
			bitDepth:   int(dec.BitDepth),
		}, nil

	case 3: // IEEE float
		if dec.BitDepth != 32 {
			return nil, ErrUnsupportedBitDepth
		}

		if err := dec.FwdToPCM(); err != nil {
			return nil, fmt.Errorf("seeking wav data chunk: %w", err)
		}

		return &floatSource{
			r:          dec.PCMChunk,
			sampleRate: format.SampleRate,
			channels:   format.NumChannels,
			buf:        make([]byte, 4096),
		}, nil

	default:
		return nil, ErrUnsupportedEncoding
	}
}

// readSeeker implements io.ReadSeeker for in-memory data
type readSeeker struct {
	data   []byte
	offset int64
}

func (rs *readSeeker) Read(p []byte) (n int, err error) {
	if rs.offset >= int64(len(rs.data)) {
		return 0, io.EOF
	}
	n = copy(p, rs.data[rs.offset:])
	rs.offset += int64(n)
	return n, nil
}

func (rs *readSeeker) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = rs.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(rs.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}

	rs.offset = newOffset
	return newOffset, nil
}
