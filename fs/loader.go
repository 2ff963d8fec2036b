// Package fs loads pages from the local filesystem.
package fs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/scrapebench"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

// Ensure DocumentLoader implements scrapebench.DocumentLoader at compile time.
var _ scrapebench.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader reads pages from the operating system or from an fs.FS.
type DocumentLoader struct {
	fsys fs.FS
}

// NewDocumentLoader creates a DocumentLoader that reads from the working
// directory. Absolute paths are read as-is.
func NewDocumentLoader() *DocumentLoader {
	return &DocumentLoader{}
}

// NewDocumentLoaderFS creates a DocumentLoader that reads from fsys.
func NewDocumentLoaderFS(fsys fs.FS) *DocumentLoader {
	return &DocumentLoader{fsys: fsys}
}

// LoadDocument reads the page at path fully into memory, decodes it to
// UTF-8 and lower-cases it.
func (l *DocumentLoader) LoadDocument(ctx context.Context, path string) (*scrapebench.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if path == "" {
		return nil, scrapebench.Errorf(scrapebench.EINVALID, "page path required")
	}

	raw, err := l.read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, scrapebench.Errorf(scrapebench.ENOTFOUND, "page %q not found", path)
	} else if err != nil {
		return nil, err
	}

	doc := scrapebench.NewDocument(path, decode(raw))
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func (l *DocumentLoader) read(path string) ([]byte, error) {
	if l.fsys == nil {
		return os.ReadFile(path)
	}
	return fs.ReadFile(l.fsys, path)
}

// decode converts raw to UTF-8. Valid UTF-8 is returned as-is. Otherwise
// the charset is detected and, if it cannot be decoded, raw is kept.
func decode(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}

	result, err := chardet.NewHtmlDetector().DetectBest(raw)
	if err != nil || result == nil {
		return string(raw)
	}
	r, err := charset.NewReaderLabel(strings.ToLower(result.Charset), bytes.NewReader(raw))
	if err != nil {
		return string(raw)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}
