package device

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gen2brain/malgo"

	"github.com/aviscaerulea/minply/utils"
)

// DefaultOutputFormat queries the native shared-mode format of the default
// playback endpoint. The miniaudio context acquired for the query is
// released before returning, on success and failure alike.
//
// Device absence is not transient within a single run, so there is no retry.
func DefaultOutputFormat() (Format, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return Format{}, fmt.Errorf("%w: %v", ErrDeviceInit, err)
	}
	defer func() {
		_ = ctx.Uninit()
		ctx.Free()
	}()

	infos, err := ctx.Devices(malgo.Playback)
	if err != nil {
		return Format{}, fmt.Errorf("%w: %v", ErrDeviceInit, err)
	}
	if len(infos) == 0 {
		return Format{}, ErrNoPlaybackDevice
	}

	chosen := infos[0]
	for _, info := range infos {
		if info.IsDefault != 0 {
			chosen = info
			break
		}
	}

	// The enumeration list carries IDs only; the detailed query fills in
	// the endpoint's native data formats.
	full, err := ctx.DeviceInfo(malgo.Playback, chosen.ID, malgo.Shared)
	if err != nil {
		full = chosen
	}

	// Shared-mode default of miniaudio when the backend reports nothing
	f := Format{
		SampleRate:    48000,
		Channels:      2,
		BitsPerSample: 32,
		Encoding:      EncodingFloat,
	}

	if full.FormatCount > 0 {
		native := full.Formats[0]
		if native.SampleRate > 0 {
			f.SampleRate = int(native.SampleRate)
		}
		if native.Channels > 0 {
			f.Channels = int(native.Channels)
		}
		switch native.Format {
		case malgo.FormatF32:
			f.BitsPerSample = 32
			f.Encoding = EncodingFloat
		case malgo.FormatS32:
			f.BitsPerSample = 32
			f.Encoding = EncodingPCM
		case malgo.FormatS24:
			f.BitsPerSample = 24
			f.Encoding = EncodingPCM
		case malgo.FormatS16:
			f.BitsPerSample = 16
			f.Encoding = EncodingPCM
		case malgo.FormatU8:
			f.BitsPerSample = 8
			f.Encoding = EncodingOther
		default:
			f.Encoding = EncodingOther
		}
	}

	f.FrameAlign = f.Channels * f.BitsPerSample / 8
	return f, nil
}

// malgoSession is a started shared-mode playback stream. The device data
// callback drains an internal frame queue and zero-fills on underrun, so
// gaps never stop the stream clock; it also signals readiness after every
// period, which backs WaitReady.
type malgoSession struct {
	ctx      *malgo.AllocatedContext
	dev      *malgo.Device
	channels int
	capacity int

	// encode writes one float32 sample into dst and returns the byte width
	encode func(dst []byte, v float32) int

	mtx    sync.Mutex
	queue  []float32
	closed bool

	ready chan struct{}
}

// OpenSession opens and starts a playback session on the default output
// device at format f, with a buffer of capacityFrames frames. The device
// transport is 16-bit integer when the endpoint is 16-bit PCM, otherwise
// 32-bit float; miniaudio converts to the endpoint format past that point.
func OpenSession(f Format, capacityFrames int) (Session, error) {
	if f.SampleRate < 1 || f.Channels < 1 {
		return nil, fmt.Errorf("%w: invalid format %d Hz / %d ch", ErrDeviceInit, f.SampleRate, f.Channels)
	}
	if capacityFrames < 1 {
		capacityFrames = 4096
	}

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceInit, err)
	}

	s := &malgoSession{
		ctx:      ctx,
		channels: f.Channels,
		capacity: capacityFrames,
		queue:    make([]float32, 0, capacityFrames*f.Channels),
		ready:    make(chan struct{}, 1),
	}

	cfg := malgo.DefaultDeviceConfig(malgo.Playback)
	cfg.SampleRate = uint32(f.SampleRate)
	cfg.Playback.Channels = uint32(f.Channels)
	if f.Encoding == EncodingPCM && f.BitsPerSample == 16 {
		cfg.Playback.Format = malgo.FormatS16
		s.encode = func(dst []byte, v float32) int {
			binary.LittleEndian.PutUint16(dst, uint16(utils.Float32ToInt16(v)))
			return 2
		}
	} else {
		cfg.Playback.Format = malgo.FormatF32
		s.encode = func(dst []byte, v float32) int {
			binary.LittleEndian.PutUint32(dst, math.Float32bits(v))
			return 4
		}
	}

	callbacks := malgo.DeviceCallbacks{
		Data: s.onData,
	}

	dev, err := malgo.InitDevice(ctx.Context, cfg, callbacks)
	if err != nil {
		_ = ctx.Uninit()
		ctx.Free()
		return nil, fmt.Errorf("%w: %v", ErrDeviceInit, err)
	}
	s.dev = dev

	if err := dev.Start(); err != nil {
		dev.Uninit()
		_ = ctx.Uninit()
		ctx.Free()
		return nil, fmt.Errorf("%w: %v", ErrDeviceInit, err)
	}

	// Buffer space is available from the start. The callback may already
	// have run during Start and signalled; the send must not block then.
	s.signalReady()

	return s, nil
}

// onData runs on the device thread once per period.
func (s *malgoSession) onData(out, _ []byte, frameCount uint32) {
	s.mtx.Lock()
	want := int(frameCount) * s.channels
	have := len(s.queue)
	if have > want {
		have = want
	}

	pos := 0
	for i := 0; i < have; i++ {
		pos += s.encode(out[pos:], s.queue[i])
	}
	s.queue = s.queue[:copy(s.queue, s.queue[have:])]
	s.mtx.Unlock()

	// Underrun (or normal tail) plays silence
	for i := pos; i < len(out); i++ {
		out[i] = 0
	}

	s.signalReady()
}

// signalReady marks buffer space available. The signal coalesces; a send
// while one is already pending is dropped rather than blocked on.
func (s *malgoSession) signalReady() {
	select {
	case s.ready <- struct{}{}:
	default:
	}
}

func (s *malgoSession) Capacity() int { return s.capacity }

func (s *malgoSession) Queued() (int, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.closed {
		return 0, ErrSessionClosed
	}
	return len(s.queue) / s.channels, nil
}

func (s *malgoSession) WriteFrames(frames []float32) error {
	if len(frames)%s.channels != 0 {
		return ErrUnalignedWrite
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if (len(s.queue)+len(frames))/s.channels > s.capacity {
		return ErrBufferOverrun
	}

	s.queue = append(s.queue, frames...)
	return nil
}

func (s *malgoSession) WaitReady(timeout time.Duration) (bool, error) {
	s.mtx.Lock()
	closed := s.closed
	s.mtx.Unlock()
	if closed {
		return false, ErrSessionClosed
	}

	select {
	case <-s.ready:
		return true, nil
	case <-time.After(timeout):
		return false, nil
	}
}

func (s *malgoSession) Close() error {
	s.mtx.Lock()
	if s.closed {
		s.mtx.Unlock()
		return nil
	}
	s.closed = true
	s.mtx.Unlock()

	err := s.dev.Stop()
	s.dev.Uninit()
	_ = s.ctx.Uninit()
	s.ctx.Free()

	return err
}
