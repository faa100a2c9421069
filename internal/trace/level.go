package trace

import (
	"fmt"
	"strings"
)

// Level is the finest Scope a tracer records.
type Level uint8

const (
	LevelOff Level = iota
	LevelError
	LevelUnit
	LevelPhase
	LevelToken
)

var levelNames = [...]string{"off", "error", "unit", "phase", "token"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("level(%d)", l)
}

// ParseLevel разбирает имя уровня без учёта регистра; пустая строка даёт off.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return LevelOff, nil
	}
	for i, name := range levelNames {
		if name == s {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level %q (expected %s)", s, strings.Join(levelNames[:], "|"))
}

// Records reports whether spans and points of scope are recorded at l.
// Уровни от unit и выше совпадают по номеру с самой мелкой записываемой областью.
func (l Level) Records(scope Scope) bool {
	return l >= LevelUnit && scope <= Scope(l)
}

// accepts also lets Error events through at every level but off.
func (l Level) accepts(ev *Event) bool {
	if ev.Kind == KindError {
		return l > LevelOff
	}
	return l.Records(ev.Scope)
}
