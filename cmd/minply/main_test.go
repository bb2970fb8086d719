// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aviscaerulea/minply/device"
)

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	if code := run(nil); code != exitUsage {
		t.Errorf("run() = %d, want %d", code, exitUsage)
	}
}

func TestRun_TooManyArgs(t *testing.T) {
	t.Parallel()

	if code := run([]string{"a.wav", "b.wav"}); code != exitUsage {
		t.Errorf("run() = %d, want %d", code, exitUsage)
	}
}

func TestRun_MissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.wav")
	if code := run([]string{path}); code != exitFile {
		t.Errorf("run() = %d, want %d", code, exitFile)
	}
}

func TestRun_DeviceQueryFailure(t *testing.T) {
	orig := outputFormat
	outputFormat = func() (device.Format, error) {
		return device.Format{}, errors.New("no playback endpoint")
	}
	defer func() { outputFormat = orig }()

	path := filepath.Join(t.TempDir(), "clip.wav")
	if err := os.WriteFile(path, []byte("RIFFgarbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	if code := run([]string{path}); code != exitDevice {
		t.Errorf("run() = %d, want %d", code, exitDevice)
	}
}

func TestRun_DecodeFailure(t *testing.T) {
	orig := outputFormat
	outputFormat = func() (device.Format, error) {
		return device.Format{
			SampleRate:    44100,
			Channels:      2,
			BitsPerSample: 16,
			FrameAlign:    4,
			Encoding:      device.EncodingPCM,
		}, nil
	}
	defer func() { outputFormat = orig }()

	path := filepath.Join(t.TempDir(), "clip.wav")
	if err := os.WriteFile(path, []byte("RIFFgarbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	if code := run([]string{path}); code != exitDecode {
		t.Errorf("run() = %d, want %d", code, exitDecode)
	}
}
