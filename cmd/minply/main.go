// SPDX-License-Identifier: EPL-2.0

// Command minply plays one audio file to the default output device and
// exits. The exit code identifies the failing stage:
//
//	0  played to completion
//	1  usage error
//	2  file not found or unreadable
//	3  decode failure
//	4  device or session setup failure
//	5  playback failure
package main

import (
	"fmt"
	"os"

	"github.com/aviscaerulea/minply"
	"github.com/aviscaerulea/minply/audio"
	"github.com/aviscaerulea/minply/decode"
	"github.com/aviscaerulea/minply/device"
	"github.com/aviscaerulea/minply/player"
)

const (
	exitOK = iota
	exitUsage
	exitFile
	exitDecode
	exitDevice
	exitPlayback
)

// outputFormat is swapped in tests so the stages past the device query can
// run without audio hardware.
var outputFormat = device.DefaultOutputFormat

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: minply <audio file path>")
		return exitUsage
	}
	path := args[0]

	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot access %s: %v\n", path, err)
		return exitFile
	}

	cfg := minply.DefaultConfig()

	format, err := outputFormat()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: querying output device: %v\n", err)
		return exitDevice
	}

	samples, err := decode.File(path, decode.Target{
		SampleRate: format.SampleRate,
		Channels:   format.Channels,
	}, minply.DefaultRegistry())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: decoding %s: %v\n", path, err)
		return exitDecode
	}

	audio.ApplyEdgeFades(samples, format.SampleRate, format.Channels, cfg.Fade)
	leadIn := audio.Silence(format.SampleRate, format.Channels, cfg.LeadIn)

	sess, err := device.OpenSession(format, cfg.BufferFrames)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: opening playback session: %v\n", err)
		return exitDevice
	}
	defer sess.Close()

	eng := player.New(sess, format.Channels, player.Config{
		BufferWait: cfg.BufferWait,
		DrainPoll:  cfg.DrainPoll,
		Settle:     cfg.Settle,
	})

	if err := eng.Play(leadIn, samples); err != nil {
		fmt.Fprintf(os.Stderr, "Error: playback: %v\n", err)
		return exitPlayback
	}

	return exitOK
}
