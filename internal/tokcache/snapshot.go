package tokcache

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"dicer/internal/lexer"
	"dicer/internal/source"
	"dicer/internal/token"
)

// Current schema version - increment when the snapshot layout changes
const schemaVersion uint16 = 1

// ErrSchemaMismatch is returned by Decode for snapshots of another layout.
var ErrSchemaMismatch = errors.New("tokcache: snapshot schema mismatch")

type point struct {
	_msgpack struct{} `msgpack:",as_array"`
	Off      uint32
	Row      uint32
	Col      uint32
}

type tokenRecord struct {
	_msgpack struct{} `msgpack:",as_array"`
	Kind     uint8
	Start    point
	Stop     point
	HasValue bool
	Value    string
}

type errorRecord struct {
	_msgpack struct{} `msgpack:",as_array"`
	Kind     uint8
	Start    point
	Stop     point
	Msg      string
}

type payload struct {
	Schema uint16
	Hash   [32]byte
	Tokens []tokenRecord
	Errors []errorRecord
}

// Entry is a decoded token stream together with the lexer errors met on the way.
type Entry struct {
	Tokens []token.Token
	Errors []*lexer.LexError
}

func toPoint(p source.Point) point { return point{Off: p.Off, Row: p.Row, Col: p.Col} }

func (p point) sourcePoint() source.Point { return source.Point{Off: p.Off, Row: p.Row, Col: p.Col} }

// Encode serializes an entry lexed from file.
func Encode(file *source.File, e Entry) ([]byte, error) {
	pl := payload{
		Schema: schemaVersion,
		Hash:   file.Hash,
		Tokens: make([]tokenRecord, len(e.Tokens)),
		Errors: make([]errorRecord, len(e.Errors)),
	}
	for i, tok := range e.Tokens {
		rec := tokenRecord{
			Kind:  uint8(tok.Kind),
			Start: toPoint(tok.Span.Start),
			Stop:  toPoint(tok.Span.Stop),
		}
		if tok.Value != tok.Text {
			rec.HasValue = true
			rec.Value = tok.Value
		}
		pl.Tokens[i] = rec
	}
	for i, err := range e.Errors {
		pl.Errors[i] = errorRecord{
			Kind:  uint8(err.Kind),
			Start: toPoint(err.Span.Start),
			Stop:  toPoint(err.Span.Stop),
			Msg:   err.Msg,
		}
	}
	return msgpack.Marshal(&pl)
}

// Decode restores an entry against file. The file content must hash to the
// value the snapshot was taken from.
func Decode(file *source.File, data []byte) (Entry, error) {
	var pl payload
	if err := msgpack.Unmarshal(data, &pl); err != nil {
		return Entry{}, fmt.Errorf("tokcache: decode: %w", err)
	}
	if pl.Schema != schemaVersion {
		return Entry{}, fmt.Errorf("%w: got %d, want %d", ErrSchemaMismatch, pl.Schema, schemaVersion)
	}
	if pl.Hash != file.Hash {
		return Entry{}, fmt.Errorf("tokcache: snapshot belongs to other content than %s", file.Path)
	}

	size, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return Entry{}, fmt.Errorf("tokcache: %s is too large: %w", file.Path, err)
	}
	span := func(start, stop point) (source.Span, error) {
		sp := source.Span{File: file.ID, Start: start.sourcePoint(), Stop: stop.sourcePoint()}
		if !sp.Valid() || sp.Stop.Off > size {
			return source.Span{}, fmt.Errorf("tokcache: span %d..%d out of range", start.Off, stop.Off)
		}
		return sp, nil
	}

	e := Entry{Tokens: make([]token.Token, len(pl.Tokens))}
	for i, rec := range pl.Tokens {
		sp, err := span(rec.Start, rec.Stop)
		if err != nil {
			return Entry{}, err
		}
		text := file.Text(sp)
		value := text
		if rec.HasValue {
			value = rec.Value
		}
		e.Tokens[i] = token.New(token.Kind(rec.Kind), sp, text, value)
	}
	if len(pl.Errors) > 0 {
		e.Errors = make([]*lexer.LexError, len(pl.Errors))
	}
	for i, rec := range pl.Errors {
		sp, err := span(rec.Start, rec.Stop)
		if err != nil {
			return Entry{}, err
		}
		e.Errors[i] = &lexer.LexError{Kind: lexer.ErrorKind(rec.Kind), Span: sp, Msg: rec.Msg}
	}
	return e, nil
}
