// SPDX-License-Identifier: EPL-2.0

package minply

import (
	"fmt"

	"github.com/aviscaerulea/minply/audio"
	"github.com/aviscaerulea/minply/decode"
	"github.com/aviscaerulea/minply/device"
	"github.com/aviscaerulea/minply/formats/aiff"
	"github.com/aviscaerulea/minply/formats/flac"
	"github.com/aviscaerulea/minply/formats/mp3"
	"github.com/aviscaerulea/minply/formats/vorbis"
	"github.com/aviscaerulea/minply/formats/wav"
	"github.com/aviscaerulea/minply/player"
)

// DefaultRegistry returns a registry with every bundled format decoder
// registered under its usual file extensions.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("flac", flac.Decoder{})

	return reg
}

// PlayFile decodes the audio file at path, conditions it, and plays it to
// the default output device in that device's native format, blocking until
// playback has fully drained.
func PlayFile(path string, cfg Config) error {
	format, err := device.DefaultOutputFormat()
	if err != nil {
		return fmt.Errorf("querying output device: %w", err)
	}

	samples, err := decode.File(path, decode.Target{
		SampleRate: format.SampleRate,
		Channels:   format.Channels,
	}, DefaultRegistry())
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	audio.ApplyEdgeFades(samples, format.SampleRate, format.Channels, cfg.Fade)
	leadIn := audio.Silence(format.SampleRate, format.Channels, cfg.LeadIn)

	sess, err := device.OpenSession(format, cfg.BufferFrames)
	if err != nil {
		return fmt.Errorf("opening playback session: %w", err)
	}
	defer sess.Close()

	eng := player.New(sess, format.Channels, player.Config{
		BufferWait: cfg.BufferWait,
		DrainPoll:  cfg.DrainPoll,
		Settle:     cfg.Settle,
	})

	if err := eng.Play(leadIn, samples); err != nil {
		return fmt.Errorf("playing %s: %w", path, err)
	}

	return nil
}
