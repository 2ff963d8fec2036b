package scrapebench

import (
	"context"
	"strings"
)

// Document is the case-normalized markup of a single page.
// It is shared read-only by every extractor and never mutated.
type Document struct {
	Path    string
	Content string
}

// NewDocument returns a Document holding the lower-cased raw markup.
func NewDocument(path, raw string) *Document {
	return &Document{
		Path:    path,
		Content: strings.ToLower(raw),
	}
}

// Validate returns an error if the document has no content.
func (d *Document) Validate() error {
	if strings.TrimSpace(d.Content) == "" {
		return Errorf(EINVALID, "document %q is empty", d.Path)
	}
	return nil
}

// DocumentLoader loads a page from storage.
type DocumentLoader interface {
	// LoadDocument reads the page at path and returns it case-normalized.
	// Returns ENOTFOUND if the page does not exist.
	LoadDocument(ctx context.Context, path string) (*Document, error)
}
