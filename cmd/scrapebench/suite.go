package main

import (
	"log/slog"

	"github.com/fwojciec/scrapebench"
	"github.com/fwojciec/scrapebench/goquery"
	"github.com/fwojciec/scrapebench/htmlquery"
	"github.com/fwojciec/scrapebench/regexp2"
	scrapeslog "github.com/fwojciec/scrapebench/slog"
	"github.com/fwojciec/scrapebench/xpath"
)

// Suite is the set of extractors compared in one run.
// Reference and Candidate are also members of Extractors.
type Suite struct {
	Extractors []scrapebench.Extractor
	Reference  scrapebench.Extractor
	Candidate  scrapebench.Extractor
}

// SuiteOptions configures the extractors built by NewSuite.
type SuiteOptions struct {
	// ReuseTree makes the DOM strategies parse the page once.
	ReuseTree bool

	// Logger, when set, wraps every extractor with extraction logging.
	Logger *slog.Logger
}

// NewSuite builds the regex, goquery, htmlquery and xpath extractors, in
// that order. The regex extractor is the reference and goquery the candidate.
func NewSuite(doc *scrapebench.Document, opts SuiteOptions) (*Suite, error) {
	re, err := regexp2.NewExtractor(doc)
	if err != nil {
		return nil, err
	}

	var (
		gqOpts []goquery.Option
		hqOpts []htmlquery.Option
		xpOpts []xpath.Option
	)
	if opts.ReuseTree {
		gqOpts = append(gqOpts, goquery.WithTreeReuse())
		hqOpts = append(hqOpts, htmlquery.WithTreeReuse())
		xpOpts = append(xpOpts, xpath.WithTreeReuse())
	}

	gq, err := goquery.NewExtractor(doc, gqOpts...)
	if err != nil {
		return nil, err
	}
	hq, err := htmlquery.NewExtractor(doc, hqOpts...)
	if err != nil {
		return nil, err
	}
	xp, err := xpath.NewExtractor(doc, xpOpts...)
	if err != nil {
		return nil, err
	}

	extractors := []scrapebench.Extractor{re, gq, hq, xp}
	if opts.Logger != nil {
		for i, e := range extractors {
			extractors[i] = scrapeslog.NewLoggingExtractor(e, opts.Logger)
		}
	}

	return &Suite{
		Extractors: extractors,
		Reference:  extractors[0],
		Candidate:  extractors[1],
	}, nil
}
