package mock

import (
	"context"

	"github.com/fwojciec/scrapebench"
)

var _ scrapebench.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader is a mock implementation of scrapebench.DocumentLoader.
type DocumentLoader struct {
	LoadDocumentFn func(ctx context.Context, path string) (*scrapebench.Document, error)
}

func (l *DocumentLoader) LoadDocument(ctx context.Context, path string) (*scrapebench.Document, error) {
	return l.LoadDocumentFn(ctx, path)
}
