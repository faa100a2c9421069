package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"

	"dicer/internal/diagfmt"
	"dicer/internal/lexer"
	"dicer/internal/trace"
)

//go:embed default.toml
var defaultTOML string

// Config mirrors dicer.toml.
type Config struct {
	Lexer       LexerSection       `toml:"lexer"`
	Diagnostics DiagnosticsSection `toml:"diagnostics"`
	Trace       TraceSection       `toml:"trace"`
	Driver      DriverSection      `toml:"driver"`
}

type LexerSection struct {
	SkipTrivia     bool `toml:"skip_trivia"`
	MaxTokenLength int  `toml:"max_token_length"`
}

type DiagnosticsSection struct {
	Max     int    `toml:"max"`
	Color   string `toml:"color"`
	Context int    `toml:"context"`
}

type TraceSection struct {
	Level    string `toml:"level"`
	Format   string `toml:"format"`
	Mode     string `toml:"mode"`
	RingSize int    `toml:"ring_size"`
}

type DriverSection struct {
	Jobs  int  `toml:"jobs"`
	Cache bool `toml:"cache"`
}

// Default returns the embedded defaults.
func Default() *Config {
	var cfg Config
	if _, err := toml.Decode(defaultTOML, &cfg); err != nil {
		panic(fmt.Sprintf("config: broken default.toml: %v", err))
	}
	return &cfg
}

// Parse decodes data over the defaults and validates every key it defines.
// All problems are returned at once, joined; each is a *Error.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	var errs []error
	for _, key := range meta.Undecoded() {
		errs = append(errs, unknownKey(key.String()))
	}
	errs = append(errs, cfg.validate(meta)...)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

func (c *Config) validate(meta toml.MetaData) []error {
	var errs []error
	check := func(section, key string, bad bool, format string, args ...any) {
		if meta.IsDefined(section, key) && bad {
			errs = append(errs, invalidValue(section+"."+key, fmt.Sprintf(format, args...)))
		}
	}
	parses := func(section, key, value string, parse func(string) error) {
		if !meta.IsDefined(section, key) {
			return
		}
		if err := parse(value); err != nil {
			errs = append(errs, invalidValue(section+"."+key, err.Error()))
		}
	}

	check("lexer", "max_token_length", c.Lexer.MaxTokenLength <= 0,
		"must be positive, got %d", c.Lexer.MaxTokenLength)

	check("diagnostics", "max", c.Diagnostics.Max < 0,
		"must not be negative, got %d", c.Diagnostics.Max)
	check("diagnostics", "context", c.Diagnostics.Context < 0,
		"must not be negative, got %d", c.Diagnostics.Context)
	parses("diagnostics", "color", c.Diagnostics.Color, func(s string) error {
		_, err := diagfmt.ParseColorMode(s)
		return err
	})

	parses("trace", "level", c.Trace.Level, func(s string) error {
		_, err := trace.ParseLevel(s)
		return err
	})
	parses("trace", "format", c.Trace.Format, func(s string) error {
		_, err := trace.ParseFormat(s)
		return err
	})
	parses("trace", "mode", c.Trace.Mode, func(s string) error {
		_, err := trace.ParseMode(s)
		return err
	})
	check("trace", "ring_size", c.Trace.RingSize <= 0,
		"must be positive, got %d", c.Trace.RingSize)

	check("driver", "jobs", c.Driver.Jobs < 0,
		"must not be negative, got %d", c.Driver.Jobs)
	return errs
}

// LexerOptions builds lexer options from the [lexer] section.
func (c *Config) LexerOptions() lexer.Options {
	return lexer.Options{
		SkipTrivia:     c.Lexer.SkipTrivia,
		MaxTokenLength: c.Lexer.MaxTokenLength,
	}
}

// TraceConfig builds a tracer configuration writing the stream to w.
// Значения уже проверены Parse, поэтому ошибки разбора здесь игнорируются.
func (c *Config) TraceConfig(w io.Writer) trace.Config {
	level, _ := trace.ParseLevel(c.Trace.Level)
	format, _ := trace.ParseFormat(c.Trace.Format)
	mode, err := trace.ParseMode(c.Trace.Mode)
	if err != nil {
		mode = trace.ModeStream
	}
	return trace.Config{
		Level:    level,
		Mode:     mode,
		Format:   format,
		Output:   w,
		RingSize: c.Trace.RingSize,
	}
}

// PrettyOpts builds pretty-printer options from the [diagnostics] section.
func (c *Config) PrettyOpts() diagfmt.PrettyOpts {
	color, _ := diagfmt.ParseColorMode(c.Diagnostics.Color)
	return diagfmt.PrettyOpts{
		Color:     color,
		Context:   c.Diagnostics.Context,
		ShowNotes: true,
		ShowFixes: true,
	}
}

// Jobs returns the worker count for the driver; 0 means GOMAXPROCS.
func (c *Config) Jobs() int {
	if c.Driver.Jobs > 0 {
		return c.Driver.Jobs
	}
	return runtime.GOMAXPROCS(0)
}

// String renders the effective configuration back to TOML.
func (c *Config) String() string {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		return err.Error()
	}
	return b.String()
}
