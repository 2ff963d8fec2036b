package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/scrapebench"
	"github.com/fwojciec/scrapebench/bench"
	"github.com/fwojciec/scrapebench/fs"
	"github.com/fwojciec/scrapebench/http"
	scrapeslog "github.com/fwojciec/scrapebench/slog"
	"github.com/google/uuid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("scrapebench"),
		kong.Description("Time four field extraction strategies against one HTML page"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	harness, err := bench.NewHarness(bench.WithIterations(cli.Iterations))
	if err != nil {
		return err
	}

	// Logging is off unless asked for so it cannot skew the timings.
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	page := cli.Page
	var loader scrapebench.DocumentLoader
	switch {
	case page == "":
		page = scrapebench.ReferencePagePath
		loader = fs.NewDocumentLoaderFS(scrapebench.ReferencePages)
	case http.IsURL(page):
		loader = http.NewDocumentLoader(http.WithTimeout(cli.Timeout))
	default:
		loader = fs.NewDocumentLoader()
	}
	suiteOpts := SuiteOptions{ReuseTree: cli.ReuseTree}
	if cli.Verbose {
		handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		logger = slog.New(handler).With("run", uuid.NewString())
		loader = scrapeslog.NewLoggingLoader(loader, logger)
		suiteOpts.Logger = logger
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  logger,
		Loader:  loader,
		Harness: harness,
		NewSuite: func(doc *scrapebench.Document) (*Suite, error) {
			return NewSuite(doc, suiteOpts)
		},
	}

	cmd := &BenchCmd{
		Page: page,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Page       string        `short:"p" help:"HTML page to extract from, a file path or an http(s) URL (default: built-in reference page)"`
	Iterations int           `short:"n" default:"100" help:"Extractions timed per strategy"`
	ReuseTree  bool          `help:"Parse the page once per strategy instead of on every extraction"`
	Timeout    time.Duration `default:"10s" help:"Timeout for fetching a page URL"`
	Verbose    bool          `short:"v" help:"Log every extraction to stderr"`
}
