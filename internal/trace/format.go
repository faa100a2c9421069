package trace

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format selects how events are serialized.
type Format uint8

const (
	FormatText Format = iota
	FormatNDJSON
)

func (f Format) String() string {
	if f == FormatNDJSON {
		return "ndjson"
	}
	return "text"
}

// ParseFormat принимает text|ndjson; пустая строка даёт text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "ndjson":
		return FormatNDJSON, nil
	}
	return FormatText, fmt.Errorf("invalid trace format %q (expected text|ndjson)", s)
}

var kindMarks = [...]string{KindBegin: "→", KindEnd: "←", KindPoint: "·", KindError: "✗"}

// AppendText appends the one-line text form of ev, indented by scope depth:
//
//	[    12] phase      ← lex (ok) tokens=14 errors=0 ms=0.03
func (ev *Event) AppendText(b []byte) []byte {
	b = fmt.Appendf(b, "[%6d] %-6s ", ev.Seq, ev.Scope)
	if ev.Scope > ScopeBatch {
		b = append(b, strings.Repeat("  ", int(ev.Scope-ScopeBatch))...)
	}
	if int(ev.Kind) < len(kindMarks) {
		b = append(b, kindMarks[ev.Kind]...)
		b = append(b, ' ')
	}
	b = append(b, ev.Name...)
	if ev.Detail != "" {
		b = fmt.Appendf(b, " (%s)", ev.Detail)
	}
	for _, f := range ev.Fields {
		b = fmt.Appendf(b, " %s=%s", f.Key, f.Val)
	}
	return append(b, '\n')
}

type jsonEvent struct {
	Seq    uint64            `json:"seq"`
	Time   string            `json:"time"`
	Kind   string            `json:"kind"`
	Scope  string            `json:"scope"`
	Span   uint64            `json:"span,omitempty"`
	Parent uint64            `json:"parent,omitempty"`
	Name   string            `json:"name"`
	Detail string            `json:"detail,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// AppendJSON appends ev as one NDJSON line. Fields become an object,
// so a repeated key keeps its last value.
func (ev *Event) AppendJSON(b []byte) []byte {
	j := jsonEvent{
		Seq:    ev.Seq,
		Time:   ev.Time.UTC().Format(time.RFC3339Nano),
		Kind:   ev.Kind.String(),
		Scope:  ev.Scope.String(),
		Span:   ev.Span,
		Parent: ev.Parent,
		Name:   ev.Name,
		Detail: ev.Detail,
	}
	if len(ev.Fields) > 0 {
		j.Fields = make(map[string]string, len(ev.Fields))
		for _, f := range ev.Fields {
			j.Fields[f.Key] = f.Val
		}
	}
	data, err := json.Marshal(j)
	if err != nil {
		data = fmt.Appendf(nil, `{"seq":%d,"name":%q,"error":%q}`, ev.Seq, ev.Name, err.Error())
	}
	b = append(b, data...)
	return append(b, '\n')
}

func (ev *Event) append(b []byte, f Format) []byte {
	if f == FormatNDJSON {
		return ev.AppendJSON(b)
	}
	return ev.AppendText(b)
}
