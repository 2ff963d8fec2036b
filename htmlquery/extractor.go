// Package htmlquery implements scrapebench.Extractor with absolute XPath
// queries over a native html.Node tree, using github.com/antchfx/htmlquery.
//
// The queries are the positional addresses from scrapebench.PagePaths.
// They pin each field to a fixed chain of child indexes, so any change to
// the page's div nesting breaks them even when the fields themselves are
// still present. That brittleness is part of what this strategy measures.
package htmlquery

import (
	"strings"
	"sync"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"github.com/fwojciec/scrapebench"
	"golang.org/x/net/html"
)

// Ensure Extractor implements scrapebench.Extractor at compile time.
var _ scrapebench.Extractor = (*Extractor)(nil)

// Extractor finds fields by evaluating XPath expressions against a parsed tree.
type Extractor struct {
	doc    *scrapebench.Document
	fields []scrapebench.Field
	paths  map[scrapebench.Field]string
	reuse  bool

	once    sync.Once
	tree    *html.Node
	treeErr error
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

// WithTreeReuse parses the document once and reuses the tree on every
// extraction. By default the document is parsed on each call.
func WithTreeReuse() Option {
	return func(e *Extractor) {
		e.reuse = true
	}
}

// NewExtractor creates an Extractor bound to doc.
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
	for _, f := range e.fields {
		path, ok := e.paths[f]
		if !ok {
			return nil, scrapebench.Errorf(scrapebench.EINVALID, "no path for field %s", f)
		}
		if _, err := xpath.Compile(path); err != nil {
			return nil, scrapebench.Errorf(scrapebench.EINVALID, "invalid path for %s: %v", f, err)
		}
	}
	return e, nil
}

// Name returns the strategy identifier.
func (e *Extractor) Name() string {
	return "htmlquery"
}

// Patterns returns the XPath expression used for each field.
func (e *Extractor) Patterns() map[scrapebench.Field]string {
	return e.paths
}

// Extract parses the document and evaluates each field's path.
// A field is found when its path matches at least one node.
func (e *Extractor) Extract() (scrapebench.Result, error) {
	tree, err := e.parse()
	if err != nil {
		return nil, err
	}
	return scrapebench.Collect(e.fields, func(f scrapebench.Field) (scrapebench.Value, error) {
		matches, err := htmlquery.QueryAll(tree, e.paths[f])
		if err != nil {
			return scrapebench.Value{}, scrapebench.Errorf(scrapebench.EINVALID, "query %s: %v", f, err)
		}
		if len(matches) == 0 {
			return scrapebench.Value{}, scrapebench.Errorf(scrapebench.ENOTFOUND, "no nodes at %s", e.paths[f])
		}
		nodes := make([]scrapebench.Node, len(matches))
		for i, n := range matches {
			nodes[i] = &Node{n: n}
		}
		return scrapebench.NodesValue(f, nodes), nil
	})
}

func (e *Extractor) parse() (*html.Node, error) {
	if !e.reuse {
		return newTree(e.doc.Content)
	}
	e.once.Do(func() {
		e.tree, e.treeErr = newTree(e.doc.Content)
	})
	return e.tree, e.treeErr
}

func newTree(content string) (*html.Node, error) {
	tree, err := htmlquery.Parse(strings.NewReader(content))
	if err != nil {
		return nil, scrapebench.Errorf(scrapebench.EINVALID, "failed to parse HTML: %v", err)
	}
	return tree, nil
}

// Ensure Node implements scrapebench.Node at compile time.
var _ scrapebench.Node = (*Node)(nil)

// Node is a node matched by an XPath query: an element, a text node or an
// attribute.
type Node struct {
	n *html.Node
}

// HTMLNode returns the underlying node.
func (n *Node) HTMLNode() *html.Node {
	return n.n
}

// IsAttr reports whether the node is an attribute selected with @name.
// htmlquery returns attributes as detached elements named after the
// attribute, so they are the only element nodes without a parent.
func (n *Node) IsAttr() bool {
	return n.n.Type == html.ElementNode && n.n.Parent == nil
}

// Text returns the node's text: the value for text and attribute nodes,
// the combined descendant text for elements.
func (n *Node) Text() string {
	return htmlquery.InnerText(n.n)
}

// HTML returns the outer HTML of an element. Text and attribute nodes have
// no markup of their own and return their text.
func (n *Node) HTML() string {
	if n.n.Type == html.TextNode || n.IsAttr() {
		return n.Text()
	}
	return htmlquery.OutputHTML(n.n, true)
}
