package source

import (
	"bytes"
	"path/filepath"
)

var (
	bom  = []byte{0xEF, 0xBB, 0xBF}
	crlf = []byte("\r\n")
)

// Normalize removes a leading UTF-8 BOM and replaces every CRLF with LF.
// Lone '\r' bytes are kept. The returned flags describe which rewrites happened.
func Normalize(content []byte) ([]byte, FileFlags) {
	var flags FileFlags
	if rest, ok := bytes.CutPrefix(content, bom); ok {
		content = rest
		flags |= FileHadBOM
	}
	if bytes.Contains(content, crlf) {
		content = bytes.ReplaceAll(content, crlf, []byte{'\n'})
		flags |= FileNormalizedCRLF
	}
	return content, flags
}

// единый вид путей в кроссплатформенных дифах
func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}
