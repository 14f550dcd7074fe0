package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/doclink/doclink"
	"github.com/doclink/doclink/resolve"
	docslog "github.com/doclink/doclink/slog"
	"github.com/doclink/doclink/sqlite"
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

	// Optional scoring policy file path. Set before calling Run().
	PolicyPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ProjectService  doclink.ProjectService
	DocumentService doclink.DocumentService
	BookmarkService doclink.BookmarkService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		PolicyPath: defaultPolicyPath(),
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
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("doclink"),
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
		return fmt.Errorf("no command specified. Run 'doclink --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCLINK_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	policy, err := resolve.LoadPolicy(m.PolicyPath)
	if err != nil {
		return err
	}

	// Wire core services into dependencies
	m.ProjectService = sqlite.NewProjectService(m.DB)
	m.DocumentService = sqlite.NewDocumentService(m.DB)
	m.BookmarkService = sqlite.NewBookmarkService(m.DB)
	deps.DB = m.DB
	deps.Projects = m.ProjectService
	deps.Documents = m.DocumentService
	deps.Bookmarks = m.BookmarkService

	resolver := &resolve.Resolver{
		Projects:  m.ProjectService,
		Documents: m.DocumentService,
		Finder:    resolve.NewFinder(m.DocumentService, policy),
	}
	deps.Resolver, deps.Target = wrapResolver(resolver, stderr)
	deps.Recoverer = &resolve.Recovery{
		Bookmarks: m.BookmarkService,
		Documents: m.DocumentService,
		Resolver:  deps.Target,
	}

	return kongCtx.Run(deps)
}

// wrapResolver adds resolution logging to stderr when DOCLINK_DEBUG is
// set.
func wrapResolver(resolver *resolve.Resolver, stderr io.Writer) (doclink.Resolver, doclink.TargetResolver) {
	if os.Getenv("DOCLINK_DEBUG") == "" {
		return resolver, resolver
	}
	logger := slog.New(slog.NewTextHandler(stderr, nil))
	logging := docslog.NewLoggingResolver(resolver, resolver, logger)
	return logging, logging
}

func defaultDBPath() string {
	if path := os.Getenv("DOCLINK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "doclink.db"
	}
	dir := filepath.Join(home, ".doclink")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "doclink.db")
}

func defaultPolicyPath() string {
	if path := os.Getenv("DOCLINK_POLICY"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".doclink", "policy.yaml")
}
