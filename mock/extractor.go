package mock

import "github.com/fwojciec/scrapebench"

var _ scrapebench.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of scrapebench.Extractor.
type Extractor struct {
	NameFn    func() string
	ExtractFn func() (scrapebench.Result, error)
}

func (e *Extractor) Name() string {
	return e.NameFn()
}

func (e *Extractor) Extract() (scrapebench.Result, error) {
	return e.ExtractFn()
}
