// Package bench times extractors and checks their results.
package bench

import (
	"context"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/scrapebench"
)

// ExpectedCount is the number of values every extractor must find on the
// reference page.
const ExpectedCount = 4

// DefaultIterations is the number of extractions timed per extractor.
const DefaultIterations = 100

// Run extracts once and enforces the result-count invariant.
// Returns ECONFLICT if the result does not hold exactly ExpectedCount values.
func Run(e scrapebench.Extractor) (scrapebench.Result, error) {
	result, err := e.Extract()
	if err != nil {
		return nil, err
	}
	if len(result) != ExpectedCount {
		return nil, scrapebench.Errorf(scrapebench.ECONFLICT, "%s: found %d values, want %d", e.Name(), len(result), ExpectedCount)
	}
	return result, nil
}

// Timing is the aggregate cost of running one extractor repeatedly.
type Timing struct {
	Name        string
	Iterations  int
	Elapsed     time.Duration
	Fingerprint uint64
}

// Harness runs extractors in a tight loop and measures wall-clock time.
type Harness struct {
	iterations int
}

// Option configures a Harness.
type Option func(*Harness)

// WithIterations sets the number of extractions per extractor.
// Defaults to DefaultIterations.
func WithIterations(n int) Option {
	return func(h *Harness) {
		h.iterations = n
	}
}

// NewHarness creates a Harness. Returns EINVALID if the iteration count
// is less than one.
func NewHarness(opts ...Option) (*Harness, error) {
	h := &Harness{
		iterations: DefaultIterations,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.iterations < 1 {
		return nil, scrapebench.Errorf(scrapebench.EINVALID, "iterations must be at least 1, got %d", h.iterations)
	}
	return h, nil
}

// Iterations returns the number of extractions per extractor.
func (h *Harness) Iterations() int {
	return h.iterations
}

// Time invokes Run on e once per iteration and returns the total elapsed
// time. It stops at the first failing iteration. Results are fingerprinted
// after the clock stops; any iteration that differs from the first fails
// with ECONFLICT.
func (h *Harness) Time(ctx context.Context, e scrapebench.Extractor) (*Timing, error) {
	results := make([]scrapebench.Result, h.iterations)

	begin := time.Now()
	for i := range results {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result, err := Run(e)
		if err != nil {
			return nil, err
		}
		results[i] = result
	}
	elapsed := time.Since(begin)

	fingerprint := Fingerprint(results[0])
	for i, result := range results[1:] {
		if Fingerprint(result) != fingerprint {
			return nil, scrapebench.Errorf(scrapebench.ECONFLICT, "%s: iteration %d differs from iteration 0", e.Name(), i+1)
		}
	}

	return &Timing{
		Name:        e.Name(),
		Iterations:  h.iterations,
		Elapsed:     elapsed,
		Fingerprint: fingerprint,
	}, nil
}

// Fingerprint hashes the field and markup of every value in order.
// Results from different parses of the same document hash equally.
func Fingerprint(r scrapebench.Result) uint64 {
	d := xxhash.New()
	for _, v := range r {
		_, _ = d.WriteString(string(v.Field))
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(v.Markup())
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

// Agree reports whether candidate found the same values as reference. The
// results must have equal length and the same field at each position.
// Values are compared on whitespace-collapsed markup, depending on the
// candidate's kind:
//
//   - KindAttr: the reference must contain the attribute value quoted.
//   - KindNode, KindNodes: the candidate's outer HTML must contain the
//     reference.
//   - otherwise: the two must be equal.
//
// This lets a raw regex match agree with the element or attribute a DOM
// parser returns for the same field. Returns ECONFLICT describing the first
// disagreement.
func Agree(reference, candidate scrapebench.Result) error {
	if len(reference) != len(candidate) {
		return scrapebench.Errorf(scrapebench.ECONFLICT, "result lengths differ: %d != %d", len(reference), len(candidate))
	}
	for i := range reference {
		ref, cand := reference[i], candidate[i]
		if ref.Field != cand.Field {
			return scrapebench.Errorf(scrapebench.ECONFLICT, "position %d: field %s != %s", i, ref.Field, cand.Field)
		}
		if !matches(ref, cand) {
			return scrapebench.Errorf(scrapebench.ECONFLICT, "field %s: %q does not match %q", ref.Field, ref.Markup(), cand.Markup())
		}
	}
	return nil
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func matches(ref, cand scrapebench.Value) bool {
	r, c := collapse(ref.Markup()), collapse(cand.Markup())
	if r == "" || c == "" {
		return r == c
	}
	switch cand.Kind {
	case scrapebench.KindAttr:
		return strings.Contains(r, `"`+c+`"`)
	case scrapebench.KindNode, scrapebench.KindNodes:
		return strings.Contains(c, r)
	}
	return r == c
}
