package trace

import (
	"errors"
	"io"
	"sync"
)

// Stream writes each recorded event to an io.Writer immediately.
type Stream struct {
	mu     sync.Mutex
	w      io.Writer
	level  Level
	format Format
	buf    []byte
	err    error
}

// NewStream creates a Stream writing events of level or coarser.
func NewStream(w io.Writer, level Level, format Format) *Stream {
	return &Stream{w: w, level: level, format: format}
}

// Emit пишет событие; после первой ошибки записи поток замолкает, ошибку отдаёт Flush.
func (s *Stream) Emit(ev Event) {
	if !s.level.accepts(&ev) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return
	}
	s.buf = ev.append(s.buf[:0], s.format)
	_, s.err = s.w.Write(s.buf)
}

func (s *Stream) Level() Level { return s.level }

// Flush returns the first write error, then flushes a buffering writer.
func (s *Stream) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if f, ok := s.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Ring keeps the most recent events in memory, for dumping after a failure.
type Ring struct {
	mu      sync.Mutex
	level   Level
	events  []Event
	next    int
	wrapped bool
}

// NewRing creates a Ring holding up to size events.
func NewRing(size int, level Level) *Ring {
	if size <= 0 {
		size = DefaultRingSize
	}
	return &Ring{level: level, events: make([]Event, size)}
}

func (r *Ring) Emit(ev Event) {
	if !r.level.accepts(&ev) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[r.next] = ev
	r.next++
	if r.next == len(r.events) {
		r.next, r.wrapped = 0, true
	}
}

func (r *Ring) Level() Level { return r.level }

func (r *Ring) Flush() error { return nil }

// Len returns the number of stored events.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.wrapped {
		return len(r.events)
	}
	return r.next
}

// Events returns the stored events, oldest first.
func (r *Ring) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.wrapped {
		return append([]Event(nil), r.events[:r.next]...)
	}
	out := make([]Event, 0, len(r.events))
	out = append(out, r.events[r.next:]...)
	return append(out, r.events[:r.next]...)
}

// Dump writes the stored events to w.
func (r *Ring) Dump(w io.Writer, format Format) error {
	var buf []byte
	for _, ev := range r.Events() {
		buf = ev.append(buf, format)
	}
	_, err := w.Write(buf)
	return err
}

// RingOf finds the Ring behind t, also inside a tracer built with ModeBoth.
func RingOf(t Tracer) (*Ring, bool) {
	switch t := t.(type) {
	case *Ring:
		return t, true
	case tee:
		for _, sub := range t {
			if r, ok := RingOf(sub); ok {
				return r, true
			}
		}
	}
	return nil, false
}

// tee раздаёт событие нескольким трейсерам.
type tee []Tracer

func (t tee) Emit(ev Event) {
	for _, sub := range t {
		sub.Emit(ev)
	}
}

func (t tee) Level() Level {
	var l Level
	for _, sub := range t {
		l = max(l, sub.Level())
	}
	return l
}

func (t tee) Flush() error {
	var errs []error
	for _, sub := range t {
		errs = append(errs, sub.Flush())
	}
	return errors.Join(errs...)
}
