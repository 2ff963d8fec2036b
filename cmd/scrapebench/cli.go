package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/scrapebench"
	"github.com/fwojciec/scrapebench/bench"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Loader   scrapebench.DocumentLoader
	Harness  *bench.Harness
	NewSuite func(doc *scrapebench.Document) (*Suite, error)
}

// BenchCmd times every strategy and checks the reference pair agrees.
type BenchCmd struct {
	Page string
}
