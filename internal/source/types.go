package source

type (
	// FileID uniquely identifies a source unit within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about a source unit.
	FileFlags uint8 // метаданные
)

const (
	// FileVirtual indicates the unit was added from memory (test, stdin, generated).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single source unit.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of every '\n' in Content
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source unit.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

// Point is a position inside a source unit.
// Row and Col are 0-based, Col counts bytes from the start of the row.
// Off is the absolute byte offset and always agrees with Row/Col.
type Point struct {
	Off uint32
	Row uint32
	Col uint32
}

// Compare orders points row-major, then column-major.
// Returns -1, 0 or +1.
func (p Point) Compare(q Point) int {
	switch {
	case p.Row < q.Row:
		return -1
	case p.Row > q.Row:
		return 1
	case p.Col < q.Col:
		return -1
	case p.Col > q.Col:
		return 1
	}
	return 0
}

// Less reports whether p comes strictly before q.
func (p Point) Less(q Point) bool { return p.Compare(q) < 0 }

// LineCol converts the point to its 1-based display form.
func (p Point) LineCol() LineCol {
	return LineCol{Line: p.Row + 1, Col: p.Col + 1}
}
