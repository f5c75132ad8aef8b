package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/is3ka1/camdict"
	"github.com/is3ka1/camdict/goquery"
	camhttp "github.com/is3ka1/camdict/http"
	"github.com/is3ka1/camdict/lookup"
	"github.com/is3ka1/camdict/lru"
	camslog "github.com/is3ka1/camdict/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read for words when none are given as arguments.
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("camdict"),
		kong.Description("Look up words in the Cambridge English-Chinese (Traditional) dictionary"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags. Positional args are words, so "help" is looked up.
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	// Wire dependencies
	logger := newLogger(stderr, cli.Verbose)

	baseURL := cli.BaseURL
	if baseURL == "" {
		baseURL = camhttp.DefaultBaseURL
	}
	var fetcher camdict.Fetcher = camhttp.NewFetcher(
		camhttp.WithTimeout(cli.Timeout),
		camhttp.WithBaseURL(baseURL),
		camhttp.WithRateLimit(cli.Rate),
	)
	fetcher = camslog.NewLoggingFetcher(fetcher, logger)

	cached, err := lru.NewFetcher(fetcher, cli.CacheSize)
	if err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}

	svc := &lookup.Service{
		Fetcher:     cached,
		Entries:     goquery.NewEntryParser(),
		Suggestions: goquery.NewSuggestionParser(),
	}

	deps := &Dependencies{
		Ctx:        ctx,
		Stdin:      m.Stdin,
		Stdout:     stdout,
		Stderr:     stderr,
		Dictionary: camslog.NewLoggingDictionary(svc, logger),
	}

	cmd := &QueryCmd{
		Words:       cli.Words,
		JSON:        cli.JSON,
		Concurrency: cli.Concurrency,
	}

	return cmd.Run(deps)
}

// newLogger logs to stderr at debug level when verbose, and nowhere otherwise.
func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
