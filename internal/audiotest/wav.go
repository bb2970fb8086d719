// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
)

const (
	wavFormatPCM   = 1
	wavFormatFloat = 3
)

// wavHeader writes a canonical RIFF/WAVE header for a data chunk of dataSize bytes.
func wavHeader(buf *bytes.Buffer, format, rate, channels, bits, dataSize int) {
	blockAlign := channels * bits / 8
	byteRate := rate * blockAlign

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+dataSize))
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
	binary.Write(buf, binary.LittleEndian, uint32(dataSize))
}

// PCM16WAV builds an in-memory 16-bit PCM WAV file from interleaved samples.
func PCM16WAV(rate, channels int, samples []int16) []byte {
	buf := new(bytes.Buffer)
	wavHeader(buf, wavFormatPCM, rate, channels, 16, len(samples)*2)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}
	return buf.Bytes()
}

// PCM24WAV builds an in-memory 24-bit PCM WAV file. Samples must fit in 24 bits.
func PCM24WAV(rate, channels int, samples []int32) []byte {
	buf := new(bytes.Buffer)
	wavHeader(buf, wavFormatPCM, rate, channels, 24, len(samples)*3)
	for _, s := range samples {
		buf.WriteByte(byte(s))
		buf.WriteByte(byte(s >> 8))
		buf.WriteByte(byte(s >> 16))
	}
	return buf.Bytes()
}

// PCM32WAV builds an in-memory 32-bit PCM WAV file.
func PCM32WAV(rate, channels int, samples []int32) []byte {
	buf := new(bytes.Buffer)
	wavHeader(buf, wavFormatPCM, rate, channels, 32, len(samples)*4)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}
	return buf.Bytes()
}

// FloatWAV builds an in-memory 32-bit IEEE float WAV file.
func FloatWAV(rate, channels int, samples []float32) []byte {
	buf := new(bytes.Buffer)
	wavHeader(buf, wavFormatFloat, rate, channels, 32, len(samples)*4)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, math.Float32bits(s))
	}
	return buf.Bytes()
}

// WAVWithChunk builds a 16-bit PCM WAV file with an extra chunk (id must be
// 4 bytes) inserted between the fmt and data chunks, for exercising chunk
// walking in decoders.
func WAVWithChunk(rate, channels int, samples []int16, id string, payload []byte) []byte {
	data := new(bytes.Buffer)
	for _, s := range samples {
		binary.Write(data, binary.LittleEndian, s)
	}

	extra := len(payload)
	if extra%2 != 0 {
		extra++ // chunk padding byte
	}

	buf := new(bytes.Buffer)
	blockAlign := channels * 2
	byteRate := rate * blockAlign

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+8+extra+data.Len()))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(wavFormatPCM))
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(rate))
	binary.Write(buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(16))

	buf.WriteString(id)
	binary.Write(buf, binary.LittleEndian, uint32(len(payload)))
	buf.Write(payload)
	if len(payload)%2 != 0 {
		buf.WriteByte(0)
	}

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(data.Len()))
	buf.Write(data.Bytes())

	return buf.Bytes()
}
