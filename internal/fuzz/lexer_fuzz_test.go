package fuzztests

import (
	"testing"

	"dicer/internal/diag"
	"dicer/internal/lexer"
	"dicer/internal/source"
	"dicer/internal/testkit"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clamp(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.dcr", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		toks, err := lexer.Drain(lexer.New(file, lexer.Options{Reporter: bag}))
		if err := testkit.CheckTokenInvariants(fs, fileID, toks); err != nil {
			t.Fatalf("invariant broken on %q: %v", input, err)
		}
		if (err != nil) != bag.HasErrors() {
			t.Fatalf("lexer error %v disagrees with reported diagnostics %v", err, bag.Items())
		}

		// второй лексер над тем же файлом даёт тот же поток
		again, _ := lexer.TokenizeAll(file, lexer.Options{})
		if len(again) != len(toks) {
			t.Fatalf("second run produced %d tokens, first %d", len(again), len(toks))
		}
		for i := range toks {
			if again[i] != toks[i] {
				t.Fatalf("token %d differs: %v vs %v", i, again[i], toks[i])
			}
		}
	})
}

func FuzzLexerRegion(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s), uint8(0), uint8(1))
	}
	f.Fuzz(func(t *testing.T, input []byte, from, to uint8) {
		input = clamp(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.dcr", input)
		sp := fs.Rows(fileID, uint32(from), uint32(to))

		toks, _ := lexer.Drain(lexer.NewRegion(fs.Get(fileID), sp, lexer.Options{}))
		last := toks[len(toks)-1]
		if !last.Kind.IsEOF() || last.Span.Stop != sp.Stop {
			t.Fatalf("region %v: stream ends with %v", sp, last)
		}
		for _, tok := range toks {
			if !sp.Contains(tok.Span) {
				t.Fatalf("token %v escapes region %v", tok, sp)
			}
		}
	})
}
