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
	"github.com/fwojciec/ogscrape"
	"github.com/fwojciec/ogscrape/goquery"
	ogshttp "github.com/fwojciec/ogscrape/http"
	ogslog "github.com/fwojciec/ogscrape/slog"
	"github.com/fwojciec/ogscrape/sqlite"
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
	// Database path. Set before calling Run(); the --db flag overrides it.
	DBPath string

	// Stdin is read by "scrape -".
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RecordService ogscrape.RecordService
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ogscrape"),
		kong.Description("Extract Open Graph, Twitter Card and custom meta tags from web pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'ogscrape --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	deps.Logger = newLogger(stderr, cli.Verbose)

	if cli.DB != "" {
		m.DBPath = cli.DB
	}

	// Scraping without --save never touches the database.
	if needsDB(cmd, cli) {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set OGSCRAPE_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.RecordService = sqlite.NewRecordService(m.DB)
		deps.Records = ogslog.NewLoggingRecordService(m.RecordService, deps.Logger)
	}

	deps.Scraper = ogslog.NewLoggingScraper(goquery.NewScraper(), deps.Logger)

	if cmd == "scrape" || cmd == "batch" {
		fetcher := ogshttp.NewFetcher(
			ogshttp.WithTimeout(cli.Timeout),
			ogshttp.WithUserAgent(cli.UserAgent),
		)
		defer fetcher.Close()

		sitemaps := ogshttp.NewSitemapService(fetcher.Client())
		if cli.Batch.MaxURLs > 0 {
			sitemaps = sitemaps.WithMaxURLs(cli.Batch.MaxURLs)
		}

		deps.Fetcher = ogslog.NewLoggingFetcher(fetcher, deps.Logger)
		deps.Sitemaps = ogslog.NewLoggingSitemapService(sitemaps, deps.Logger)
	}

	return kongCtx.Run(deps)
}

func needsDB(cmd string, cli *CLI) bool {
	switch cmd {
	case "scrape":
		return cli.Scrape.Save
	case "batch":
		return cli.Batch.Save
	}
	return true
}

// newLogger returns a text logger on w when verbose, else a logger that
// discards everything.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func defaultDBPath() string {
	if path := os.Getenv("OGSCRAPE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "ogscrape.db"
	}
	dir := filepath.Join(home, ".ogscrape")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "history.db")
}
