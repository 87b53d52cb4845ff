// notify/notify.go
package notify

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
)

// Sink receives the notification lines emitted by party members.
type Sink interface {
	Emit(line string)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(line string)

func (f SinkFunc) Emit(line string) {
	f(line)
}

// WriterSink writes one line per emission to w.
type WriterSink struct {
	w     io.Writer
	mutex sync.Mutex
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Stdout is the conventional notification channel.
func Stdout() *WriterSink {
	return NewWriterSink(os.Stdout)
}

func (s *WriterSink) Emit(line string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	// 写失败时没有可以回报的调用方
	_, _ = fmt.Fprintln(s.w, line)
}

// LogSink routes lines into a zap logger instead of a raw stream.
type LogSink struct {
	log *zap.SugaredLogger
}

func NewLogSink(log *zap.SugaredLogger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Emit(line string) {
	s.log.Info(line)
}

// Recorder keeps every line in memory. Used by tests in place of stdout.
type Recorder struct {
	lines []string
	mutex sync.Mutex
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Emit(line string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.lines = append(r.lines, line)
}

// Lines returns a copy of the recorded lines.
func (r *Recorder) Lines() []string {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	lines := make([]string, len(r.lines))
	copy(lines, r.lines)
	return lines
}

func (r *Recorder) Reset() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.lines = nil
}

type multiSink []Sink

// Multi fans a line out to every sink in order.
func Multi(sinks ...Sink) Sink {
	return multiSink(sinks)
}

func (m multiSink) Emit(line string) {
	for _, s := range m {
		s.Emit(line)
	}
}
