package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/miner"
	"github.com/fwojciec/miner/bluemonday"
	"github.com/fwojciec/miner/extract"
	"github.com/fwojciec/miner/goquery"
	minerhtml "github.com/fwojciec/miner/html"
	"github.com/fwojciec/miner/htmltomarkdown"
	minerhttp "github.com/fwojciec/miner/http"
	"github.com/fwojciec/miner/publicsuffix"
	"github.com/fwojciec/miner/rod"
	minerslog "github.com/fwojciec/miner/slog"
	"github.com/fwojciec/miner/sqlite"
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
	// Database path. Set before calling Run().
	DBPath string

	// Stdin is read for the "-" extract target.
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RecordService miner.RecordService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.DiscardHandler),
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("miner"),
		kong.Description("Extract title, author, keywords, description and image from web pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'miner --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	if cli.Verbose {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Open database for history commands and saved extractions
	if cmd != "extract" || cli.Extract.Save {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set MINER_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.RecordService = sqlite.NewRecordService(m.DB)
		deps.DB = m.DB
		deps.Records = minerslog.NewLoggingRecordService(m.RecordService, deps.Logger)
	}

	if cmd == "extract" {
		closeFetcher, err := wireExtract(&cli.Extract, deps)
		if err != nil {
			return err
		}
		defer closeFetcher()
	}

	return kongCtx.Run(deps)
}

// wireExtract builds the extraction pipeline for the extract command. The
// returned func releases the fetcher.
func wireExtract(c *ExtractCmd, deps *Dependencies) (func(), error) {
	if c.Retries < 0 {
		return nil, miner.Errorf(miner.EINVALID, "retries must not be negative, got %d", c.Retries)
	}

	strategy, err := miner.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, err
	}

	cfg := miner.DefaultConfig()
	cfg.Strategy = strategy
	cfg.StripMarkup = c.Strip
	cfg.Markdown = c.Markdown

	composer, err := extract.NewComposer(
		goquery.NewMetaParser(),
		goquery.NewReadabilityParser(),
		cfg,
		extract.WithSanitizer(bluemonday.NewSanitizer()),
	)
	if err != nil {
		return nil, err
	}

	service := &extract.Service{
		Normalizer: minerhtml.NewNormalizer(),
		Composer:   composer,
		Converter:  htmltomarkdown.NewConverter(),
		Sites:      publicsuffix.NewResolver(),
	}

	deps.Batch = &extract.Batch{
		Service:     minerslog.NewLoggingMetadataService(service, deps.Logger),
		Concurrency: c.Concurrency,
	}

	if !hasURLTarget(c.Targets) {
		return func() {}, nil
	}

	var fetcher miner.Fetcher
	if c.Render {
		rodFetcher, err := rod.NewFetcher(rod.WithFetchTimeout(c.Timeout), rod.WithUserAgent(c.userAgent()))
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = rodFetcher
	} else {
		fetcher = minerhttp.NewFetcher(minerhttp.WithTimeout(c.Timeout), minerhttp.WithUserAgent(c.userAgent()))
	}

	logger := deps.Logger
	deps.Batch.Fetcher = &extract.RetryFetcher{
		Next:   minerslog.NewLoggingFetcher(fetcher, logger),
		Delays: extract.BackoffDelays(c.Retries),
		OnRetry: func(url string, attempt int, err error) {
			logger.Warn("retry", "url", url, "attempt", attempt, "err", err)
		},
	}
	return func() { _ = fetcher.Close() }, nil
}

func defaultDBPath() string {
	if path := os.Getenv("MINER_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "miner.db"
	}
	dir := filepath.Join(home, ".miner")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "miner.db")
}
