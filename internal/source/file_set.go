package source

import "crypto/sha256"

// FileSet owns the source units of one run. IDs are dense and never reused:
// adding a path again registers a new version and leaves the old one readable.
type FileSet struct {
	files  []File
	latest map[string]FileID
}

func NewFileSet() *FileSet {
	return &FileSet{latest: make(map[string]FileID)}
}

// Add registers content under path and returns its new FileID.
// Content is stored as given: no BOM or CRLF rewriting happens here.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	id := FileID(offset(len(fileSet.files)))
	path = normalizePath(path)
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    path,
		Content: content,
		LineIdx: newlines(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	fileSet.latest[path] = id
	return id
}

// AddVirtual adds an in-memory unit with the FileVirtual flag.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.Add(name, content, FileVirtual)
}

// AddNormalized runs Normalize over content before adding it;
// the flags record what was rewritten.
func (fileSet *FileSet) AddNormalized(name string, content []byte) FileID {
	content, flags := Normalize(content)
	return fileSet.Add(name, content, flags|FileVirtual)
}

// Get returns the unit metadata for the given ID.
// id must come from this FileSet; use Lookup for untrusted IDs.
func (fileSet *FileSet) Get(id FileID) *File {
	return &fileSet.files[id]
}

// Lookup is the bounds-checked variant of Get.
func (fileSet *FileSet) Lookup(id FileID) (*File, bool) {
	if int(id) >= len(fileSet.files) {
		return nil, false
	}
	return &fileSet.files[id], true
}

func (fileSet *FileSet) Len() int { return len(fileSet.files) }

// GetLatest returns the newest FileID registered under path.
func (fileSet *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fileSet.latest[normalizePath(path)]
	return id, ok
}

// Resolve converts a span into 1-based line and column positions.
// A span of an unknown unit resolves to zero LineCol values.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f, ok := fileSet.Lookup(span.File)
	if !ok {
		return LineCol{}, LineCol{}
	}
	return f.Point(span.Start.Off).LineCol(), f.Point(span.Stop.Off).LineCol()
}

// PointAt recomputes the Point of a byte offset from the line index.
// Для неизвестного id возвращается нулевая Point.
func (fileSet *FileSet) PointAt(id FileID, off uint32) Point {
	f, ok := fileSet.Lookup(id)
	if !ok {
		return Point{}
	}
	return f.Point(off)
}

// SpanOf builds a span for the byte range [start, stop) of a unit.
// An unknown id yields the empty span Span{File: id}.
func (fileSet *FileSet) SpanOf(id FileID, start, stop uint32) Span {
	f, ok := fileSet.Lookup(id)
	if !ok {
		return Span{File: id}
	}
	return Span{File: id, Start: f.Point(start), Stop: f.Point(stop)}
}

// Rows returns the span covering rows [fromRow, toRow) of a unit (0-based).
// Rows past the last one clamp to the end of content, so an out-of-range
// fromRow gives an empty span there. An unknown id gives Span{File: id}.
func (fileSet *FileSet) Rows(id FileID, fromRow, toRow uint32) Span {
	f, ok := fileSet.Lookup(id)
	if !ok {
		return Span{File: id}
	}
	start := f.rowStart(fromRow)
	stop := start
	if toRow > fromRow {
		stop = f.rowStart(toRow)
	}
	return Span{File: id, Start: f.Point(start), Stop: f.Point(stop)}
}
