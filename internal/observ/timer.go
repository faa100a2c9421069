package observ

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
)

// Timer accumulates stage durations by name. Safe for concurrent use.
type Timer struct {
	mu  sync.Mutex
	agg aggregate
	now func() time.Time
}

func NewTimer() *Timer { return &Timer{now: time.Now} }

// Track starts a stage and returns the function that ends it.
//
//	done := timer.Track("lex")
//	defer done("")
func (t *Timer) Track(name string) func(note string) {
	start := t.now()
	return func(note string) {
		d := t.now().Sub(start)
		t.mu.Lock()
		defer t.mu.Unlock()
		t.agg.total += millis(d)
		t.agg.add(PhaseReport{Name: name, Count: 1, DurationMS: millis(d), Note: note})
	}
}

// Report returns what has been tracked so far.
func (t *Timer) Report() Report {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.agg.report()
}

// PhaseReport сводка по одноимённым стадиям (например, lex по каждому юниту).
type PhaseReport struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report lists stages in first-seen order.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Merge sums reports stage by stage, keeping first-seen order.
func Merge(reports ...Report) Report {
	var agg aggregate
	for _, r := range reports {
		agg.total += r.TotalMS
		for _, ph := range r.Phases {
			agg.add(ph)
		}
	}
	return agg.report()
}

// String renders the report as an aligned table.
func (r Report) String() string {
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, p := range r.Phases {
		fmt.Fprintf(&b, "  %-20s %7.2f ms", p.Name, p.DurationMS)
		if p.Count > 1 {
			fmt.Fprintf(&b, "  x%d", p.Count)
		}
		if p.Note != "" {
			b.WriteString("  // " + p.Note)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-20s %7.2f ms\n", "total", r.TotalMS)
	return b.String()
}

// aggregate складывает стадии по имени; note остаётся от последней непустой.
type aggregate struct {
	total  float64
	phases []PhaseReport
	index  map[string]int
}

func (a *aggregate) add(p PhaseReport) {
	i, ok := a.index[p.Name]
	if !ok {
		if a.index == nil {
			a.index = make(map[string]int)
		}
		i = len(a.phases)
		a.index[p.Name] = i
		a.phases = append(a.phases, PhaseReport{Name: p.Name})
	}
	dst := &a.phases[i]
	dst.Count += p.Count
	dst.DurationMS += p.DurationMS
	if p.Note != "" {
		dst.Note = p.Note
	}
}

func (a *aggregate) report() Report {
	return Report{TotalMS: a.total, Phases: slices.Clone(a.phases)}
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
