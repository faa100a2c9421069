package trace

import (
	"fmt"
	"strconv"
	"time"
)

// Kind says what an Event marks.
type Kind uint8

const (
	KindBegin Kind = iota + 1
	KindEnd
	KindPoint
	KindError
)

var kindNames = [...]string{KindBegin: "begin", KindEnd: "end", KindPoint: "point", KindError: "error"}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Scope is the granularity of an event. Smaller values are coarser.
type Scope uint8

const (
	ScopeBatch Scope = iota + 1 // many units at once
	ScopeUnit                   // one source unit
	ScopePhase                  // lex, cache or group step of a unit
	ScopeToken                  // a single token or lexical error
)

var scopeNames = [...]string{ScopeBatch: "batch", ScopeUnit: "unit", ScopePhase: "phase", ScopeToken: "token"}

func (s Scope) String() string {
	if int(s) < len(scopeNames) && scopeNames[s] != "" {
		return scopeNames[s]
	}
	return fmt.Sprintf("scope(%d)", s)
}

// Field is a key/value pair attached to an event. Order is kept.
type Field struct {
	Key string
	Val string
}

// Str makes a string field.
func Str(key, val string) Field { return Field{Key: key, Val: val} }

// Int makes an integer field.
func Int(key string, n int) Field { return Field{Key: key, Val: strconv.Itoa(n)} }

// Bool makes a boolean field.
func Bool(key string, b bool) Field { return Field{Key: key, Val: strconv.FormatBool(b)} }

// Millis makes a duration field in milliseconds with two decimals.
func Millis(key string, d time.Duration) Field {
	return Field{Key: key, Val: strconv.FormatFloat(float64(d.Microseconds())/1000, 'f', 2, 64)}
}

// Event is one trace record.
// For begin/end events Span is the span's own id; points and errors
// have Span 0 and hang under Parent.
type Event struct {
	Seq    uint64
	Time   time.Time
	Kind   Kind
	Scope  Scope
	Span   uint64
	Parent uint64
	Name   string
	Detail string
	Fields []Field
}

// Get returns the value of the first field named key.
func (ev *Event) Get(key string) (string, bool) {
	for _, f := range ev.Fields {
		if f.Key == key {
			return f.Val, true
		}
	}
	return "", false
}
