// Package goquery implements scrapebench.Extractor on top of the tolerant
// HTML5 parser wrapped by github.com/PuerkitoBio/goquery. Fields are found
// by tag name and class, so the extractor survives layout changes that
// leave those landmarks intact.
package goquery

import (
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/scrapebench"
)

// Ensure Extractor implements scrapebench.Extractor at compile time.
var _ scrapebench.Extractor = (*Extractor)(nil)

// Landmark selectors.
const (
	TitleSelector  = "h1.title-link"
	DateSelector   = "div.post-date"
	AuthorSelector = "div.author"
	AnchorSelector = "a"
)

var (
	titleMatcher  = cascadia.MustCompile(TitleSelector)
	dateMatcher   = cascadia.MustCompile(DateSelector)
	authorMatcher = cascadia.MustCompile(AuthorSelector)
	anchorMatcher = cascadia.MustCompile(AnchorSelector)
)

// Extractor finds fields by looking up landmark elements in a parsed tree.
type Extractor struct {
	doc    *scrapebench.Document
	fields []scrapebench.Field
	reuse  bool

	once    sync.Once
	tree    *goquery.Document
	treeErr error
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithFields sets the order in which fields are looked up.
// Defaults to scrapebench.Fields().
func WithFields(fields ...scrapebench.Field) Option {
	return func(e *Extractor) {
		e.fields = fields
	}
}

// WithTreeReuse parses the document once and reuses the tree on every
// extraction. By default the document is parsed on each call.
func WithTreeReuse() Option {
	return func(e *Extractor) {
		e.reuse = true
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
	return "goquery"
}

// Extract parses the document and looks up each field's landmark.
func (e *Extractor) Extract() (scrapebench.Result, error) {
	tree, err := e.parse()
	if err != nil {
		return nil, err
	}
	patterns := Patterns(tree)
	return scrapebench.Collect(e.fields, func(f scrapebench.Field) (scrapebench.Value, error) {
		return patterns[f]()
	})
}

func (e *Extractor) parse() (*goquery.Document, error) {
	if !e.reuse {
		return newTree(e.doc.Content)
	}
	e.once.Do(func() {
		e.tree, e.treeErr = newTree(e.doc.Content)
	})
	return e.tree, e.treeErr
}

func newTree(content string) (*goquery.Document, error) {
	tree, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, scrapebench.Errorf(scrapebench.EINVALID, "failed to parse HTML: %v", err)
	}
	return tree, nil
}

// Patterns returns the lookup for each field against tree.
func Patterns(tree *goquery.Document) map[scrapebench.Field]func() (scrapebench.Value, error) {
	return map[scrapebench.Field]func() (scrapebench.Value, error){
		scrapebench.FieldTitle: func() (scrapebench.Value, error) {
			return findNode(tree.Selection, scrapebench.FieldTitle, titleMatcher, TitleSelector)
		},
		scrapebench.FieldPostingDate: func() (scrapebench.Value, error) {
			return findNode(tree.Selection, scrapebench.FieldPostingDate, dateMatcher, DateSelector)
		},
		scrapebench.FieldPostingUser: func() (scrapebench.Value, error) {
			return findNode(tree.Selection, scrapebench.FieldPostingUser, authorMatcher, AuthorSelector)
		},
		scrapebench.FieldPostingUserURL: func() (scrapebench.Value, error) {
			return authorURL(tree.Selection)
		},
	}
}

func findNode(sel *goquery.Selection, f scrapebench.Field, m goquery.Matcher, selector string) (scrapebench.Value, error) {
	found := sel.FindMatcher(m).First()
	if found.Length() == 0 {
		return scrapebench.Value{}, scrapebench.Errorf(scrapebench.ENOTFOUND, "element not found: %s", selector)
	}
	return scrapebench.NodeValue(f, &Node{sel: found}), nil
}

// authorURL returns the href of the first anchor inside the author block.
// Each step fails with ENOTFOUND rather than descending into a missing parent.
func authorURL(sel *goquery.Selection) (scrapebench.Value, error) {
	author := sel.FindMatcher(authorMatcher).First()
	if author.Length() == 0 {
		return scrapebench.Value{}, scrapebench.Errorf(scrapebench.ENOTFOUND, "element not found: %s", AuthorSelector)
	}
	anchor := author.FindMatcher(anchorMatcher).First()
	if anchor.Length() == 0 {
		return scrapebench.Value{}, scrapebench.Errorf(scrapebench.ENOTFOUND, "element not found: %s %s", AuthorSelector, AnchorSelector)
	}
	href, ok := anchor.Attr("href")
	if !ok {
		return scrapebench.Value{}, scrapebench.Errorf(scrapebench.ENOTFOUND, "attribute not found: %s %s[href]", AuthorSelector, AnchorSelector)
	}
	return scrapebench.AttrValue(scrapebench.FieldPostingUserURL, href), nil
}

// Ensure Node implements scrapebench.Node at compile time.
var _ scrapebench.Node = (*Node)(nil)

// Node is a live reference to an element in a goquery tree.
type Node struct {
	sel *goquery.Selection
}

// Selection returns the underlying goquery selection.
func (n *Node) Selection() *goquery.Selection {
	return n.sel
}

// Text returns the combined text of the element and its descendants.
func (n *Node) Text() string {
	return n.sel.Text()
}

// HTML returns the outer HTML of the element.
func (n *Node) HTML() string {
	html, err := goquery.OuterHtml(n.sel)
	if err != nil {
		return ""
	}
	return html
}
