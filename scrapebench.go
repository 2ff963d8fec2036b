// Package scrapebench compares ways of extracting a fixed set of fields
// from a single HTML page. It times a regex matcher, a tolerant DOM
// parser, a native DOM/XPath parser and an XPath selector abstraction
// against the same document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmlquery/, regexp2/).
package scrapebench
