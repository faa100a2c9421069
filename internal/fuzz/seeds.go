package fuzztests

import (
	"io/fs"
	"os"
	"testing"
)

// maxInput ограничивает и сиды, и входы фаззера.
const maxInput = 64 << 10

// inlineSeeds покрывают каждую ветку сканера хотя бы раз.
var inlineSeeds = []string{
	"",
	" \t\r\n",
	"12.5 12. 0 007",
	`"abc" "a\tb\\c\"d" "bad \q" "open`,
	"\"\"\"multi\nline\"\"\" \"\"\"open",
	"'a\\\nb' '''c\\\nd'''",
	"`a\nb` `open",
	"(a, b) [c] {d} <: e :>",
	"((] }) :>",
	"<~ line comment\n<~~ block ~~> <~~ open",
	"имя café x _ ~a ^b",
	"a | b \\ c \"\\é\"",
	"12abc 1.5x",
	"\xff\xfe\x00",
}

// addCorpusSeeds adds the inline seeds and every testdata/units/*.dcr file.
func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	units := os.DirFS("../../testdata/units")
	names, err := fs.Glob(units, "*.dcr")
	if err != nil {
		f.Fatalf("testdata seeds: %v", err)
	}
	for _, name := range names {
		src, err := fs.ReadFile(units, name)
		if err != nil {
			f.Fatalf("seed %s: %v", name, err)
		}
		f.Add(clamp(src))
	}
}

// clamp returns a private copy of at most maxInput bytes.
func clamp(b []byte) []byte {
	return append([]byte(nil), b[:min(len(b), maxInput)]...)
}
