package testkit_test

import (
	"strings"
	"testing"

	"dicer/internal/ast"
	"dicer/internal/diag"
	"dicer/internal/lexer"
	"dicer/internal/parser"
	"dicer/internal/source"
	"dicer/internal/testkit"
)

func TestTokenInvariantsHold(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("ok.dcr", []byte("rule (a, \"b\\n\")\n<~ done\n12.5 `raw` |"))
	toks, _ := lexer.TokenizeAll(fs.Get(id), lexer.Options{})
	if err := testkit.CheckTokenInvariants(fs, id, toks); err != nil {
		t.Fatal(err)
	}
}

func TestTokenInvariantsCatchGaps(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("gap.dcr", []byte("a b"))
	toks, _ := lexer.TokenizeAll(fs.Get(id), lexer.Options{SkipTrivia: true})
	err := testkit.CheckTokenInvariants(fs, id, toks)
	if err == nil || !strings.Contains(err.Error(), "previous stopped") {
		t.Fatalf("expected a gap error, got %v", err)
	}

	if err := testkit.CheckTokenInvariants(fs, id, toks[:1]); err == nil {
		t.Error("a stream without EOF must fail")
	}
}

func TestNodeInvariants(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("tree.dcr", []byte("<: a [b {c}] :> (d"))
	file := fs.Get(id)

	root := parser.Group(parser.NewStream(lexer.New(file, lexer.Options{})), diag.NewBag(4))
	if err := testkit.CheckNodeInvariants(file, root); err != nil {
		t.Fatal(err)
	}

	// узел из чужого файла
	other := fs.AddVirtual("other.dcr", []byte("xyz"))
	bad := ast.Leaf("Identifier", fs.SpanOf(other, 0, 1))
	if err := testkit.CheckNodeInvariants(file, bad); err == nil {
		t.Error("foreign span must fail")
	}
}
