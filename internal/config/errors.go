package config

import (
	"errors"
	"fmt"

	"dicer/internal/diag"
)

var (
	ErrInvalidValue = errors.New("invalid configuration value")
	ErrUnknownKey   = errors.New("unknown configuration key")
)

// Error describes one rejected key.
type Error struct {
	Code diag.Code // CfgInvalidValue или CfgUnknownKey
	Key  string    // dotted path, e.g. "trace.level"
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %s", e.Code.ID(), e.Key)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code.ID(), e.Key, e.Msg)
}

func (e *Error) Unwrap() error {
	switch e.Code {
	case diag.CfgUnknownKey:
		return ErrUnknownKey
	case diag.CfgInvalidValue:
		return ErrInvalidValue
	}
	return nil
}

func invalidValue(key, msg string) *Error {
	return &Error{Code: diag.CfgInvalidValue, Key: key, Msg: msg}
}

func unknownKey(key string) *Error {
	return &Error{Code: diag.CfgUnknownKey, Key: key, Msg: "not recognized"}
}
