package trace

import (
	"fmt"
	"io"
	"strings"
)

// Tracer receives events. Emit must be safe for concurrent use.
type Tracer interface {
	Emit(ev Event)
	Level() Level
	// Flush reports the first delivery error, if any.
	Flush() error
}

// Enabled reports whether t records anything at all.
func Enabled(t Tracer) bool {
	return t != nil && t.Level() > LevelOff
}

type nop struct{}

func (nop) Emit(Event)   {}
func (nop) Level() Level { return LevelOff }
func (nop) Flush() error { return nil }

// Nop drops every event.
var Nop Tracer = nop{}

// Mode selects where a tracer built by New keeps events.
type Mode uint8

const (
	ModeStream Mode = iota + 1 // write to Config.Output as events arrive
	ModeRing                   // keep the last Config.RingSize events in memory
	ModeBoth
)

var modeNames = [...]string{ModeStream: "stream", ModeRing: "ring", ModeBoth: "both"}

func (m Mode) String() string {
	if int(m) < len(modeNames) && modeNames[m] != "" {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", m)
}

// ParseMode принимает stream|ring|both без учёта регистра.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range modeNames {
		if name != "" && name == s {
			return Mode(m), nil
		}
	}
	return ModeStream, fmt.Errorf("invalid trace mode %q (expected stream|ring|both)", s)
}

// DefaultRingSize is used when Config.RingSize is not positive.
const DefaultRingSize = 4096

// Config describes the tracer New builds.
type Config struct {
	Level    Level
	Mode     Mode
	Format   Format
	Output   io.Writer // required by ModeStream and ModeBoth
	RingSize int
}

// New builds a tracer from cfg. LevelOff always yields Nop.
// Trace output goes to cfg.Output only: New opens no files.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	if cfg.RingSize <= 0 {
		cfg.RingSize = DefaultRingSize
	}
	if (cfg.Mode == ModeStream || cfg.Mode == ModeBoth) && cfg.Output == nil {
		return nil, fmt.Errorf("trace mode %s needs an output writer", cfg.Mode)
	}
	switch cfg.Mode {
	case ModeStream:
		return NewStream(cfg.Output, cfg.Level, cfg.Format), nil
	case ModeRing:
		return NewRing(cfg.RingSize, cfg.Level), nil
	case ModeBoth:
		return tee{NewStream(cfg.Output, cfg.Level, cfg.Format), NewRing(cfg.RingSize, cfg.Level)}, nil
	}
	return nil, fmt.Errorf("unknown trace mode %v", cfg.Mode)
}
