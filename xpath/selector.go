package xpath

import (
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"github.com/fwojciec/scrapebench"
	"golang.org/x/net/html"
)

// Selector evaluates XPath expressions against a parsed HTML tree and
// hands results back as serialized strings, never as live nodes.
type Selector struct {
	root *html.Node
}

// NewSelector parses text and returns a Selector over the resulting tree.
func NewSelector(text string) (*Selector, error) {
	root, err := htmlquery.Parse(strings.NewReader(text))
	if err != nil {
		return nil, scrapebench.Errorf(scrapebench.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Selector{root: root}, nil
}

// XPath evaluates expr and returns the matches. The list is empty, not
// nil, when nothing matches.
func (s *Selector) XPath(expr *xpath.Expr) List {
	list := List{}
	iter := expr.Select(htmlquery.CreateXPathNavigator(s.root))
	for iter.MoveNext() {
		nav := iter.Current()
		list = append(list, serialize(nav))
	}
	return list
}

// serialize renders the navigator's current position. Elements render as
// outer HTML; text, attribute and other nodes render as their value.
func serialize(nav xpath.NodeNavigator) string {
	if nav.NodeType() == xpath.ElementNode {
		if hn, ok := nav.(*htmlquery.NodeNavigator); ok {
			return htmlquery.OutputHTML(hn.Current(), true)
		}
	}
	return nav.Value()
}

// List is the serialized result of an XPath query.
type List []string

// Extract returns the serialized matches.
func (l List) Extract() []string {
	out := make([]string, len(l))
	copy(out, l)
	return out
}
