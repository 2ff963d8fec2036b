package scrapebench

import "strings"

// ValueKind identifies how an extractor represents a found value.
type ValueKind int

// ValueKind constants.
const (
	KindText    ValueKind = iota + 1 // raw matched substring
	KindAttr                         // attribute value
	KindNode                         // reference into a parse tree
	KindNodes                        // multi-valued query result
	KindStrings                      // multi-valued serialized query result
)

// String returns the name of the kind.
func (k ValueKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindAttr:
		return "attr"
	case KindNode:
		return "node"
	case KindNodes:
		return "nodes"
	case KindStrings:
		return "strings"
	}
	return "unknown"
}

// Node is a reference into an extractor's parse tree.
type Node interface {
	// Text returns the text content of the node and its descendants.
	Text() string

	// HTML returns the outer markup of the node.
	HTML() string
}

// Value is a single extracted field. Which payload field is set depends
// on Kind: Text for KindText and KindAttr, Node for KindNode, Nodes for
// KindNodes and Strings for KindStrings.
type Value struct {
	Field Field
	Kind  ValueKind

	Text    string
	Node    Node
	Nodes   []Node
	Strings []string
}

// TextValue returns a KindText value.
func TextValue(f Field, s string) Value {
	return Value{Field: f, Kind: KindText, Text: s}
}

// AttrValue returns a KindAttr value.
func AttrValue(f Field, s string) Value {
	return Value{Field: f, Kind: KindAttr, Text: s}
}

// NodeValue returns a KindNode value.
func NodeValue(f Field, n Node) Value {
	return Value{Field: f, Kind: KindNode, Node: n}
}

// NodesValue returns a KindNodes value.
func NodesValue(f Field, nodes []Node) Value {
	return Value{Field: f, Kind: KindNodes, Nodes: nodes}
}

// StringsValue returns a KindStrings value.
func StringsValue(f Field, ss []string) Value {
	return Value{Field: f, Kind: KindStrings, Strings: ss}
}

// String returns the text form of the value.
func (v Value) String() string {
	switch v.Kind {
	case KindNode:
		if v.Node == nil {
			return ""
		}
		return v.Node.Text()
	case KindNodes:
		var b strings.Builder
		for _, n := range v.Nodes {
			b.WriteString(n.Text())
		}
		return b.String()
	case KindStrings:
		return strings.Join(v.Strings, "")
	}
	return v.Text
}

// Markup returns the markup form of the value: the raw substring for
// text, the value for attributes and the outer HTML for nodes.
func (v Value) Markup() string {
	switch v.Kind {
	case KindNode:
		if v.Node == nil {
			return ""
		}
		return v.Node.HTML()
	case KindNodes:
		var b strings.Builder
		for _, n := range v.Nodes {
			b.WriteString(n.HTML())
		}
		return b.String()
	}
	return v.String()
}

// Result is the ordered sequence of values found by one extraction.
// Fields that were not found are absent rather than empty.
type Result []Value

// Fields returns the field of each value, in order.
func (r Result) Fields() []Field {
	fields := make([]Field, len(r))
	for i, v := range r {
		fields[i] = v.Field
	}
	return fields
}

// Strings returns the text form of each value, in order.
func (r Result) Strings() []string {
	ss := make([]string, len(r))
	for i, v := range r {
		ss[i] = v.String()
	}
	return ss
}
