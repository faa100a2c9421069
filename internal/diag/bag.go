package diag

import (
	"cmp"
	"slices"
)

// Bag collects diagnostics up to a limit. Diagnostics past the limit are
// counted, not kept.
type Bag struct {
	items   []Diagnostic
	limit   int
	dropped int
}

// NewBag creates a Bag keeping at most limit diagnostics.
func NewBag(limit int) *Bag {
	return &Bag{limit: max(limit, 0)}
}

// Add stores d and reports whether it fit under the limit.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= b.limit {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Report implements Reporter. The nil Bag discards everything.
func (b *Bag) Report(d Diagnostic) {
	if b != nil {
		b.Add(d)
	}
}

func (b *Bag) Len() int { return len(b.items) }

// Dropped returns how many diagnostics did not fit.
func (b *Bag) Dropped() int { return b.dropped }

// Items returns the stored diagnostics. The slice is shared with the Bag.
func (b *Bag) Items() []Diagnostic { return b.items }

// HasErrors reports whether any stored diagnostic is an error.
func (b *Bag) HasErrors() bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool { return d.Severity >= SevError })
}

// Merge appends all of other, raising the limit so nothing is lost.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.limit = max(b.limit, len(b.items)+len(other.items))
	b.items = append(b.items, other.items...)
}

// Sort orders by unit and primary span; at equal spans the worse severity
// comes first, then the lower code. The sort is stable.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Primary.Start.Off, y.Primary.Start.Off),
			cmp.Compare(x.Primary.Stop.Off, y.Primary.Stop.Off),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}
