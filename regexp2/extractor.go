// Package regexp2 implements scrapebench.Extractor with backtracking regular
// expressions from github.com/dlclark/regexp2.
//
// Matches are returned whole: the value for a field is the full matched
// substring (group 0), not the captured group. Two fields anchored on the
// same "posted by:" text therefore produce different values even though
// they capture from the same region.
package regexp2

import (
	"github.com/dlclark/regexp2"
	"github.com/fwojciec/scrapebench"
)

// Ensure Extractor implements scrapebench.Extractor at compile time.
var _ scrapebench.Extractor = (*Extractor)(nil)

// Patterns returns the source of the pattern used for each field.
func Patterns() map[scrapebench.Field]string {
	return map[scrapebench.Field]string{
		scrapebench.FieldTitle:          `<h1 class="title-link">(.*?)</h1>`,
		scrapebench.FieldPostingDate:    `date:</strong>\s*(.+)</div>`,
		scrapebench.FieldPostingUser:    `posted by:\s*</strong>\s*<a href=".*?">(.*)</a>`,
		scrapebench.FieldPostingUserURL: `posted by:\s*</strong>\s*<a href="(.*?)">`,
	}
}

// compiled holds the patterns compiled once per process.
var compiled = compile(Patterns())

func compile(sources map[scrapebench.Field]string) map[scrapebench.Field]*regexp2.Regexp {
	m := make(map[scrapebench.Field]*regexp2.Regexp, len(sources))
	for f, src := range sources {
		m[f] = regexp2.MustCompile(src, regexp2.None)
	}
	return m
}

// Extractor finds fields by searching the raw document text.
type Extractor struct {
	doc    *scrapebench.Document
	fields []scrapebench.Field
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithFields sets the order in which fields are searched.
// Defaults to scrapebench.Fields().
func WithFields(fields ...scrapebench.Field) Option {
	return func(e *Extractor) {
		e.fields = fields
	}
}

// NewExtractor creates an Extractor bound to doc.
func NewExtractor(doc *scrapebench.Document, opts ...Option) (*Extractor, error) {
	e := &Extractor{
		doc:    doc,
		fields: scrapebench.Fields(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := scrapebench.ValidateFields(e.fields); err != nil {
		return nil, err
	}
	return e, nil
}

// Name returns the strategy identifier.
func (e *Extractor) Name() string {
	return "regex"
}

// Patterns returns the compiled pattern for each field.
func (e *Extractor) Patterns() map[scrapebench.Field]*regexp2.Regexp {
	return compiled
}

// Extract searches the document for the first match of each field's pattern.
func (e *Extractor) Extract() (scrapebench.Result, error) {
	patterns := e.Patterns()
	return scrapebench.Collect(e.fields, func(f scrapebench.Field) (scrapebench.Value, error) {
		m, err := patterns[f].FindStringMatch(e.doc.Content)
		if err != nil {
			return scrapebench.Value{}, scrapebench.Errorf(scrapebench.EINTERNAL, "match %s: %v", f, err)
		}
		if m == nil {
			return scrapebench.Value{}, scrapebench.Errorf(scrapebench.ENOTFOUND, "no match for %s", f)
		}
		return scrapebench.TextValue(f, m.String()), nil
	})
}
