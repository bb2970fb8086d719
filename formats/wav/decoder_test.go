// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/aviscaerulea/minply/internal/audiotest"
)

func TestDecoder_PCM16Metadata(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, 200, -100, -200, 0}
	data := audiotest.PCM16WAV(8000, 1, samples)

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}
	defer src.Close()

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	ws, ok := src.(Source)
	if !ok {
		t.Fatal("Decode() source does not expose encoding info")
	}
	if ws.Encoding() != EncodingPCM {
		t.Errorf("Encoding() = %v, want EncodingPCM", ws.Encoding())
	}
	if ws.BitDepth() != 16 {
		t.Errorf("BitDepth() = %d, want 16", ws.BitDepth())
	}
}

func TestDecoder_PCM16Normalization(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, 32767, -32768}
	data := audiotest.PCM16WAV(44100, 1, samples)

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	got := readAll(t, src)
	want := []float32{0, 0.5, -0.5, 32767.0 / 32768.0, -1.0}

	if len(got) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecoder_PCM24Normalization(t *testing.T) {
	t.Parallel()

	samples := []int32{0, 4194304, -4194304, 8388607}
	data := audiotest.PCM24WAV(48000, 1, samples)

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	ws := src.(Source)
	if ws.BitDepth() != 24 {
		t.Fatalf("BitDepth() = %d, want 24", ws.BitDepth())
	}

	got := readAll(t, src)
	want := []float32{0, 0.5, -0.5, 8388607.0 / 8388608.0}

	if len(got) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecoder_PCM32Normalization(t *testing.T) {
	t.Parallel()

	samples := []int32{0, 1 << 30, -(1 << 30)}
	data := audiotest.PCM32WAV(48000, 1, samples)

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	got := readAll(t, src)
	want := []float32{0, 0.5, -0.5}

	if len(got) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecoder_Float32Verbatim(t *testing.T) {
	t.Parallel()

	samples := []float32{0, 0.25, -0.25, 1.0, -1.0, 0.123456}
	data := audiotest.FloatWAV(48000, 2, samples)

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	ws := src.(Source)
	if ws.Encoding() != EncodingFloat {
		t.Fatalf("Encoding() = %v, want EncodingFloat", ws.Encoding())
	}
	if ws.BitDepth() != 32 {
		t.Fatalf("BitDepth() = %d, want 32", ws.BitDepth())
	}

	got := readAll(t, src)
	if len(got) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(samples))
	}

	// Float data must come through bit for bit
	for i := range samples {
		if got[i] != samples[i] {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], samples[i])
		}
	}
}

func TestDecoder_Stereo(t *testing.T) {
	t.Parallel()

	samples := []int16{100, 200, 300, 400, 500, 600}
	data := audiotest.PCM16WAV(44100, 2, samples)

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
}

func TestDecoder_ExtraChunkSkipped(t *testing.T) {
	t.Parallel()

	// A LIST chunk between fmt and data must not confuse the decoder
	samples := []int16{1000, 2000, 3000, 4000}
	data := audiotest.WAVWithChunk(8000, 1, samples, "LIST", []byte("INFOsome metadata"))

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	got := readAll(t, src)
	if len(got) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(samples))
	}
	for i, s := range samples {
		want := float32(s) / 32768.0
		if math.Abs(float64(got[i]-want)) > 1e-6 {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	samples := []int16{1, 2, 3, 4}
	data := audiotest.PCM16WAV(8000, 1, samples)

	// Strip the Seeker; the decoder has to buffer
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	got := readAll(t, src)
	if len(got) != len(samples) {
		t.Errorf("decoded %d samples, want %d", len(got), len(samples))
	}
}

func TestDecoder_NotWAVFile(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("NOT A WAV FILE DATA")))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

func TestDecoder_UnsupportedEncoding(t *testing.T) {
	t.Parallel()

	// Format code 6 is A-law
	data := buildWAV(6, 8000, 1, 8, []byte{0x55, 0x55, 0x55, 0x55})

	_, err := Decoder{}.Decode(bytes.NewReader(data))
	if !errors.Is(err, ErrUnsupportedEncoding) {
		t.Errorf("Decode() error = %v, want ErrUnsupportedEncoding", err)
	}
}

func TestDecoder_UnsupportedFloatDepth(t *testing.T) {
	t.Parallel()

	// 64-bit float is not supported
	data := buildWAV(3, 8000, 1, 64, make([]byte, 16))

	_, err := Decoder{}.Decode(bytes.NewReader(data))
	if !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("Decode() error = %v, want ErrUnsupportedBitDepth", err)
	}
}

func TestDecoder_EightBitRecentered(t *testing.T) {
	t.Parallel()

	// 8-bit WAV stores unsigned samples centered at 128
	data := buildWAV(1, 8000, 1, 8, []byte{128, 255, 0, 192})

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	got := readAll(t, src)
	want := []float32{0, 127.0 / 128.0, -1.0, 0.5}

	if len(got) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// buildWAV assembles a WAV file with an arbitrary format code, for
// encodings the audiotest builders do not cover.
func buildWAV(format, rate, channels, bits int, data []byte) []byte {
	buf := new(bytes.Buffer)
	blockAlign := channels * bits / 8
	byteRate := rate * blockAlign

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+len(data)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(format))
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(rate))
	binary.Write(buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(bits))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)

	return buf.Bytes()
}

// readAll drains a source into one buffer.
func readAll(t *testing.T, src interface {
	ReadSamples(dst []float32) (int, error)
}) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, 64)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}
