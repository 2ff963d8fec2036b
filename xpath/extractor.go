// Package xpath implements scrapebench.Extractor through a Selector that
// wraps the github.com/antchfx/xpath engine. It evaluates the same
// positional paths as the htmlquery package, but every query result is
// serialized to strings before it leaves the Selector.
package xpath

import (
	"sync"

	"github.com/antchfx/xpath"
	"github.com/fwojciec/scrapebench"
)

// Ensure Extractor implements scrapebench.Extractor at compile time.
var _ scrapebench.Extractor = (*Extractor)(nil)

// Extractor finds fields by running compiled XPath expressions through a Selector.
type Extractor struct {
	doc    *scrapebench.Document
	fields []scrapebench.Field
	paths  map[scrapebench.Field]string
	exprs  map[scrapebench.Field]*xpath.Expr
	reuse  bool

	once   sync.Once
	sel    *Selector
	selErr error
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithFields sets the order in which fields are queried.
// Defaults to scrapebench.Fields().
func WithFields(fields ...scrapebench.Field) Option {
	return func(e *Extractor) {
		e.fields = fields
	}
}

// WithPaths overrides the XPath expression used for each field.
// Defaults to scrapebench.PagePaths().
func WithPaths(paths map[scrapebench.Field]string) Option {
	return func(e *Extractor) {
		e.paths = paths
	}
}

// WithTreeReuse builds the Selector once and reuses it on every
// extraction. By default the document is parsed on each call.
func WithTreeReuse() Option {
	return func(e *Extractor) {
		e.reuse = true
	}
}

// NewExtractor creates an Extractor bound to doc and compiles its paths.
// Returns EINVALID if any configured path fails to compile.
func NewExtractor(doc *scrapebench.Document, opts ...Option) (*Extractor, error) {
	e := &Extractor{
		doc:    doc,
		fields: scrapebench.Fields(),
		paths:  scrapebench.PagePaths(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := scrapebench.ValidateFields(e.fields); err != nil {
		return nil, err
	}

	e.exprs = make(map[scrapebench.Field]*xpath.Expr, len(e.fields))
	for _, f := range e.fields {
		path, ok := e.paths[f]
		if !ok {
			return nil, scrapebench.Errorf(scrapebench.EINVALID, "no path for field %s", f)
		}
		expr, err := xpath.Compile(path)
		if err != nil {
			return nil, scrapebench.Errorf(scrapebench.EINVALID, "invalid path for %s: %v", f, err)
		}
		e.exprs[f] = expr
	}
	return e, nil
}

// Name returns the strategy identifier.
func (e *Extractor) Name() string {
	return "xpath"
}

// Patterns returns the compiled expression for each field.
func (e *Extractor) Patterns() map[scrapebench.Field]*xpath.Expr {
	return e.exprs
}

// Extract builds a Selector over the document and extracts each field's path.
// A field is found when its path yields at least one string.
func (e *Extractor) Extract() (scrapebench.Result, error) {
	sel, err := e.selector()
	if err != nil {
		return nil, err
	}
	return scrapebench.Collect(e.fields, func(f scrapebench.Field) (scrapebench.Value, error) {
		values := sel.XPath(e.exprs[f]).Extract()
		if len(values) == 0 {
			return scrapebench.Value{}, scrapebench.Errorf(scrapebench.ENOTFOUND, "no matches at %s", e.paths[f])
		}
		return scrapebench.StringsValue(f, values), nil
	})
}

func (e *Extractor) selector() (*Selector, error) {
	if !e.reuse {
		return NewSelector(e.doc.Content)
	}
	e.once.Do(func() {
		e.sel, e.selErr = NewSelector(e.doc.Content)
	})
	return e.sel, e.selErr
}
