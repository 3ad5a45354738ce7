package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/oerror"
	"github.com/oomph-ac/parkour/player"
	"github.com/oomph-ac/parkour/settings"
	"github.com/sirupsen/logrus"
	"github.com/vmihailenco/msgpack/v5"
)

// CurrentRecordingVer is the version of the recording format written by a Recorder.
const CurrentRecordingVer = 1

// Header is written at the start of every recording.
type Header struct {
	Version int `msgpack:"v"`
	// Fingerprint is the fingerprint of the settings the recording was made with. Replays refuse to run
	// with settings that do not match.
	Fingerprint uint64     `msgpack:"fp"`
	Map         string     `msgpack:"map"`
	Start       mgl32.Vec3 `msgpack:"start"`
	Created     int64      `msgpack:"created"`
}

// Frame is the input of a single recorded frame.
type Frame struct {
	Delta  float32           `msgpack:"dt"`
	Input  player.InputState `msgpack:"in"`
	Camera player.Camera     `msgpack:"cam"`
}

// Recording is a decoded recording.
type Recording struct {
	Header
	Frames []Frame
}

// Recorder writes frames to a recording in the background.
type Recorder struct {
	log *logrus.Logger
	w   io.Writer

	frames chan Frame
	done   chan struct{}
	err    error

	closed bool
}

// NewRecorder writes the recording header to w and returns a recorder appending frames after it.
// Close must be called to flush the recording.
func NewRecorder(log *logrus.Logger, w io.Writer, s settings.Settings, mapName string) (*Recorder, error) {
	h := Header{
		Version:     CurrentRecordingVer,
		Fingerprint: s.Fingerprint(),
		Map:         mapName,
		Start:       s.Player.StartPos.Vec3(),
		Created:     time.Now().UnixNano(),
	}
	if err := msgpack.NewEncoder(w).Encode(&h); err != nil {
		return nil, fmt.Errorf("unable to write recording header: %w", err)
	}

	r := &Recorder{
		log:    log,
		w:      w,
		frames: make(chan Frame, 128),
		done:   make(chan struct{}),
	}
	go r.handleRecording()
	return r, nil
}

// Record queues a frame to be written.
func (r *Recorder) Record(f Frame) {
	if r.closed {
		r.log.Warnf("frame recorded after the recording was closed")
		return
	}
	r.frames <- f
}

// Close writes every queued frame and stops the recorder.
func (r *Recorder) Close() error {
	if r.closed {
		return r.err
	}
	r.closed = true
	close(r.frames)

	select {
	case <-r.done:
		return r.err
	case <-time.After(time.Second * 5):
		return oerror.New("unable to stop recording")
	}
}

func (r *Recorder) handleRecording() {
	defer close(r.done)

	enc := msgpack.NewEncoder(r.w)
	for f := range r.frames {
		if r.err != nil {
			continue
		}
		if err := enc.Encode(&f); err != nil {
			r.err = fmt.Errorf("unable to write recorded frame: %w", err)
			r.log.Errorf("recording stopped: %v", err)
		}
	}
}

// DecodeRecording decodes a recording. It returns an error if the recording could not be parsed or if
// its version is not supported.
func DecodeRecording(rd io.Reader) (*Recording, error) {
	dec := msgpack.NewDecoder(rd)

	rec := &Recording{}
	if err := dec.Decode(&rec.Header); err != nil {
		return nil, fmt.Errorf("unable to decode recording header: %w", err)
	}
	if rec.Version != CurrentRecordingVer {
		return nil, oerror.New("unsupported recording version: %d", rec.Version)
	}

	for {
		var f Frame
		if err := dec.Decode(&f); errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("unable to decode frame %d: %w", len(rec.Frames), err)
		}
		rec.Frames = append(rec.Frames, f)
	}
	return rec, nil
}

// LoadRecording reads and decodes a recording file.
func LoadRecording(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open recording file: %w", err)
	}
	defer f.Close()
	return DecodeRecording(f)
}

// Replay plays back the frames of a recording.
type Replay struct {
	rec  *Recording
	next int
}

// NewReplay returns a replay of rec. Replays must run with the settings the recording was made with.
func NewReplay(rec *Recording, s settings.Settings) (*Replay, error) {
	if fp := s.Fingerprint(); fp != rec.Fingerprint {
		return nil, oerror.New("settings fingerprint %x does not match recording fingerprint %x", fp, rec.Fingerprint)
	}
	return &Replay{rec: rec}, nil
}

// NextFrame returns the next recorded frame. The delta passed is ignored in favour of the recorded one.
// It returns false once every frame was played.
func (r *Replay) NextFrame(float32) (Frame, bool) {
	if r.next >= len(r.rec.Frames) {
		return Frame{}, false
	}
	f := r.rec.Frames[r.next]
	r.next++
	return f, true
}

// Done returns true once every frame was played.
func (r *Replay) Done() bool {
	return r.next >= len(r.rec.Frames)
}

// Len returns the amount of frames in the replay.
func (r *Replay) Len() int {
	return len(r.rec.Frames)
}
