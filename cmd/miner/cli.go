package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/miner"
	"github.com/fwojciec/miner/extract"
	minerhttp "github.com/fwojciec/miner/http"
	"github.com/fwojciec/miner/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	DB      *sqlite.DB
	Records miner.RecordService
	Batch   *extract.Batch
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetches and extractions to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract metadata from URLs, HTML files or stdin"`
	List    ListCmd    `cmd:"" help:"List saved extraction records"`
	Show    ShowCmd    `cmd:"" help:"Show a saved extraction record"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a saved extraction record"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Targets     []string      `arg:"" help:"URLs, HTML file paths, or - for stdin"`
	Strategy    string        `short:"s" default:"hybrid" enum:"meta,readability,hybrid" env:"MINER_STRATEGY" help:"Extraction strategy (meta, readability, hybrid)"`
	Strip       bool          `env:"MINER_STRIP" help:"Strip markup from the description"`
	Markdown    bool          `short:"m" help:"Render the description as Markdown"`
	Charset     string        `help:"Charset of file and stdin input (detected when empty)"`
	UserAgent   string        `name:"user-agent" env:"MINER_USER_AGENT" help:"User-Agent header for fetches"`
	Timeout     time.Duration `default:"10s" help:"Per-page fetch timeout"`
	Render      bool          `short:"r" help:"Render pages with headless Chrome before extracting"`
	Retries     int           `default:"2" help:"Retries per failed fetch, with doubling backoff from 1s"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent extraction limit"`
	Save        bool          `help:"Save extracted records to the database"`
	Format      string        `short:"f" default:"json" enum:"json,yaml" help:"Output format (json, yaml)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL   string `help:"Only show records for this URL"`
	Limit int    `short:"n" default:"20" help:"Maximum number of records"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID     string `arg:"" help:"Record ID"`
	Format string `short:"f" default:"json" enum:"json,yaml" help:"Output format (json, yaml)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Record ID"`
	Force bool   `help:"Confirm deletion"`
}

// userAgent returns the configured User-Agent or the fetcher default.
func (c *ExtractCmd) userAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}
	return minerhttp.DefaultUserAgent
}
