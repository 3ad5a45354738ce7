package event

import (
	"io"
	"sync"
	"time"

	"github.com/disgoorg/json"
	"github.com/oomph-ac/parkour/internal"
	"github.com/oomph-ac/parkour/worker"
	"github.com/sirupsen/logrus"
)

// Sink receives the telemetry emitted during a frame. HandleEvent is called synchronously from the
// frame loop and must not block.
type Sink interface {
	HandleEvent(e Event)
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) HandleEvent(Event) {}

// MultiSink forwards every event to each of its sinks in order.
type MultiSink []Sink

func (m MultiSink) HandleEvent(e Event) {
	for _, s := range m {
		s.HandleEvent(e)
	}
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(e Event)

func (f SinkFunc) HandleEvent(e Event) { f(e) }

// LogSink writes events to a logrus logger.
type LogSink struct {
	log   *logrus.Logger
	level logrus.Level
}

// NewLogSink returns a sink that logs every event at the given level.
func NewLogSink(log *logrus.Logger, level logrus.Level) *LogSink {
	return &LogSink{log: log, level: level}
}

func (s *LogSink) HandleEvent(e Event) {
	if !s.log.IsLevelEnabled(s.level) {
		return
	}
	s.log.WithField("event", e.ID()).Logf(s.level, "%+v", e)
}

// JSONSink writes every event as a line of JSON. Encoding happens on the frame loop, writing happens
// on a background queue.
type JSONSink struct {
	w     io.Writer
	queue *worker.Queue
	log   *logrus.Logger
	start time.Time

	closeOnce sync.Once
}

type envelope struct {
	ID   string  `json:"id"`
	Time float64 `json:"time"`
	Data Event   `json:"data"`
}

// NewJSONSink returns a sink writing JSON lines to w. Close must be called to flush pending events.
func NewJSONSink(w io.Writer, log *logrus.Logger) *JSONSink {
	return &JSONSink{
		w:     w,
		queue: worker.New(256),
		log:   log,
		start: time.Now(),
	}
}

func (s *JSONSink) HandleEvent(e Event) {
	data, err := json.Marshal(envelope{
		ID:   e.ID(),
		Time: time.Since(s.start).Seconds(),
		Data: e,
	})
	if err != nil {
		s.log.Errorf("unable to encode %s event: %v", e.ID(), err)
		return
	}

	buf := internal.GetBuffer()
	buf.Write(data)
	buf.WriteByte('\n')
	if !s.queue.TrySubmit(func() {
		defer internal.PutBuffer(buf)
		if _, err := s.w.Write(buf.Bytes()); err != nil {
			s.log.Errorf("unable to write %s event: %v", e.ID(), err)
		}
	}) {
		internal.PutBuffer(buf)
		s.log.Warnf("telemetry queue full, dropped %s event", e.ID())
	}
}

// Close waits for every queued event to be written.
func (s *JSONSink) Close() error {
	s.closeOnce.Do(s.queue.Close)
	return nil
}
