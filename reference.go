package scrapebench

import "embed"

// ReferencePagePath is the path of the reference page inside ReferencePages.
const ReferencePagePath = "testdata/page.html"

// ReferencePages holds the page benchmarked when no other page is given.
//
//go:embed testdata/page.html
var ReferencePages embed.FS
