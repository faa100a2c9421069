package trace

import (
	"context"
	"slices"
	"sync/atomic"
	"time"
)

var (
	seq     atomic.Uint64
	spanIDs atomic.Uint64
)

// Seq и Time проставляются здесь, поэтому все приёмники tee видят одинаковые номера.
func emit(t Tracer, ev Event) {
	ev.Seq = seq.Add(1)
	ev.Time = time.Now()
	t.Emit(ev)
}

// Span is an open begin/end pair. The nil *Span ignores every call.
type Span struct {
	tracer Tracer
	id     uint64
	parent uint64
	scope  Scope
	name   string
	start  time.Time
	fields []Field
}

// ID returns the span id, 0 for the nil span.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

// Add attaches fields to the end event.
func (s *Span) Add(fields ...Field) *Span {
	if s != nil {
		s.fields = append(s.fields, fields...)
	}
	return s
}

// End emits the end event with the collected fields plus the elapsed
// milliseconds, and returns the elapsed time.
func (s *Span) End(detail string) time.Duration {
	if s == nil {
		return 0
	}
	d := time.Since(s.start)
	emit(s.tracer, Event{
		Kind:   KindEnd,
		Scope:  s.scope,
		Span:   s.id,
		Parent: s.parent,
		Name:   s.name,
		Detail: detail,
		Fields: append(s.fields, Millis("ms", d)),
	})
	return d
}

type (
	tracerKey struct{}
	spanKey   struct{}
)

// WithTracer returns ctx carrying t. A nil t installs Nop.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, tracerKey{}, t)
}

// FromContext returns the tracer carried by ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx != nil {
		if t, ok := ctx.Value(tracerKey{}).(Tracer); ok {
			return t
		}
	}
	return Nop
}

func parentOf(ctx context.Context) uint64 {
	if ctx == nil {
		return 0
	}
	sp, _ := ctx.Value(spanKey{}).(*Span)
	return sp.ID()
}

// Start opens a span under the span already carried by ctx and returns a
// context carrying the new one. fields go on the begin event and are
// repeated on the end event.
// When scope is not recorded the span is nil and ctx is returned unchanged.
func Start(ctx context.Context, scope Scope, name string, fields ...Field) (context.Context, *Span) {
	t := FromContext(ctx)
	if !t.Level().Records(scope) {
		return ctx, nil
	}
	sp := &Span{
		tracer: t,
		id:     spanIDs.Add(1),
		parent: parentOf(ctx),
		scope:  scope,
		name:   name,
		start:  time.Now(),
		fields: slices.Clip(fields),
	}
	emit(t, Event{Kind: KindBegin, Scope: scope, Span: sp.id, Parent: sp.parent, Name: name, Fields: fields})
	return context.WithValue(ctx, spanKey{}, sp), sp
}

// Point records an instant event under the span carried by ctx.
func Point(ctx context.Context, scope Scope, name string, fields ...Field) {
	t := FromContext(ctx)
	if !t.Level().Records(scope) {
		return
	}
	emit(t, Event{Kind: KindPoint, Scope: scope, Parent: parentOf(ctx), Name: name, Fields: fields})
}

// Error records err under the span carried by ctx. Errors are recorded at
// every level but off, whatever their scope.
func Error(ctx context.Context, scope Scope, name string, err error, fields ...Field) {
	t := FromContext(ctx)
	if err == nil || !Enabled(t) {
		return
	}
	emit(t, Event{Kind: KindError, Scope: scope, Parent: parentOf(ctx), Name: name, Detail: err.Error(), Fields: fields})
}
