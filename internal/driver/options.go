package driver

import (
	"runtime"

	"dicer/internal/config"
	"dicer/internal/diag"
	"dicer/internal/lexer"
	"dicer/internal/tokcache"
)

// DefaultMaxDiagnostics applies when Options.MaxDiagnostics is not positive.
const DefaultMaxDiagnostics = 100

// Options controls a driver run.
type Options struct {
	Lexer          lexer.Options
	MaxDiagnostics int             // лимит Bag на юнит
	Jobs           int             // 0 → GOMAXPROCS
	Cache          *tokcache.Cache // nil отключает кэш
	Group          bool            // строить дерево пар через parser.Group
	Timings        bool            // добавлять OBS6001 с таймингами в Bag юнита
}

// OptionsFrom builds driver options from a loaded configuration.
func OptionsFrom(cfg *config.Config) Options {
	opts := Options{
		Lexer:          cfg.LexerOptions(),
		MaxDiagnostics: cfg.Diagnostics.Max,
		Jobs:           cfg.Jobs(),
	}
	if cfg.Driver.Cache {
		opts.Cache = tokcache.New(0)
	}
	return opts
}

func (o Options) newBag() *diag.Bag {
	if o.MaxDiagnostics <= 0 {
		return diag.NewBag(DefaultMaxDiagnostics)
	}
	return diag.NewBag(o.MaxDiagnostics)
}

func (o Options) jobs(units int) int {
	jobs := o.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return max(1, min(jobs, units))
}
