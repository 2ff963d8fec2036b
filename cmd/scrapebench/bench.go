package main

import (
	"fmt"
	"strconv"

	"github.com/fwojciec/scrapebench/bench"
)

// Run executes the benchmark. It prints one line of elapsed seconds per
// strategy, then fails if the reference and candidate results disagree.
func (c *BenchCmd) Run(deps *Dependencies) error {
	doc, err := deps.Loader.LoadDocument(deps.Ctx, c.Page)
	if err != nil {
		return err
	}

	suite, err := deps.NewSuite(doc)
	if err != nil {
		return err
	}

	for _, e := range suite.Extractors {
		timing, err := deps.Harness.Time(deps.Ctx, e)
		if err != nil {
			return fmt.Errorf("%s: %w", e.Name(), err)
		}
		deps.Logger.Info("timing",
			"strategy", timing.Name,
			"iterations", timing.Iterations,
			"elapsed", timing.Elapsed,
		)
		fmt.Fprintln(deps.Stdout, strconv.FormatFloat(timing.Elapsed.Seconds(), 'f', -1, 64))
	}

	reference, err := bench.Run(suite.Reference)
	if err != nil {
		return err
	}
	candidate, err := bench.Run(suite.Candidate)
	if err != nil {
		return err
	}
	if err := bench.Agree(reference, candidate); err != nil {
		return fmt.Errorf("%s and %s disagree: %w", suite.Reference.Name(), suite.Candidate.Name(), err)
	}
	deps.Logger.Info("agreement",
		"reference", suite.Reference.Name(),
		"candidate", suite.Candidate.Name(),
	)

	return nil
}
