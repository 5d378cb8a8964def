package cli

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/robfig/cron/v3"

	"github.com/contentbridge/wpimport/internal/config"
	"github.com/contentbridge/wpimport/internal/database"
	"github.com/contentbridge/wpimport/internal/database/pages"
	"github.com/contentbridge/wpimport/internal/database/runs"
	"github.com/contentbridge/wpimport/internal/wordpress"
)

// WordpressImportCommand migrates a WordPress WXR export into the page store.
type WordpressImportCommand struct {
	XMLPath      string
	DatabasePath string
	Model        string
	ParentID     uint
	PageTypes    string
	PageStatuses string
	BadDates     string
	Schedule     string
}

func NewWordpressImportCommand() *WordpressImportCommand {
	return &WordpressImportCommand{}
}

func (cmd *WordpressImportCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()

	fs := flag.NewFlagSet("import", flag.ExitOnError)

	fs.StringVar(&cmd.XMLPath, "xml", "", "Path to the WordPress export XML file (required)")
	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the target page store database")
	fs.StringVar(&cmd.Model, "model", cfg.Import.Model, "Target page model, app.Model form")
	fs.UintVar(&cmd.ParentID, "parent", cfg.Import.ParentPageID, "ID of the page imported pages are attached under")
	fs.StringVar(&cmd.PageTypes, "types", cfg.Import.PageTypes, "Comma-separated wp:post_type values to import")
	fs.StringVar(&cmd.PageStatuses, "statuses", cfg.Import.PageStatuses, "Comma-separated wp:status values to import")
	fs.StringVar(&cmd.BadDates, "on-bad-date", cfg.Import.BadDates, "What an unparsable date does: 'fail' aborts the run, 'skip' drops the record")
	fs.StringVar(&cmd.Schedule, "schedule", cfg.Import.Schedule, "Cron expression to re-run the import on (re-runs are idempotent)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import -xml <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Migrate a WordPress export into the page store. Re-running over the\n")
		fmt.Fprintf(os.Stderr, "same export is safe: pages are matched by their wp:post_id and updated\n")
		fmt.Fprintf(os.Stderr, "in place instead of duplicated.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # One-shot import of published posts and pages:\n")
		fmt.Fprintf(os.Stderr, "  %s import -xml export.xml -parent 1\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Keep a staging site in sync, hourly:\n")
		fmt.Fprintf(os.Stderr, "  %s import -xml export.xml -schedule \"0 * * * *\"\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.XMLPath == "" {
		return fmt.Errorf("required flag -xml not provided")
	}

	switch wordpress.BadDatePolicy(cmd.BadDates) {
	case wordpress.BadDateFail, wordpress.BadDateSkip:
	default:
		return fmt.Errorf("invalid -on-bad-date value %q (want 'fail' or 'skip')", cmd.BadDates)
	}

	return nil
}

func (cmd *WordpressImportCommand) Run() error {
	if _, err := os.Stat(cmd.XMLPath); os.IsNotExist(err) {
		return fmt.Errorf("export file not found: %s", cmd.XMLPath)
	}

	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	db, err := database.NewDatabase(absDBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if cmd.Schedule == "" {
		return cmd.runOnce(db)
	}

	c := cron.New()
	if _, err := c.AddFunc(cmd.Schedule, func() {
		if err := cmd.runOnce(db); err != nil {
			fmt.Fprintf(os.Stderr, "Scheduled import failed: %v\n", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", cmd.Schedule, err)
	}

	fmt.Printf("Running import on schedule %q, press Ctrl-C to stop\n", cmd.Schedule)
	c.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx := c.Stop()
	<-ctx.Done()
	return nil
}

func (cmd *WordpressImportCommand) runOnce(db *database.Database) error {
	pageRepo := pages.NewRepository(db.DB)
	runRepo := runs.NewRepository(db.DB)

	importer, err := wordpress.NewImporter(pageRepo, wordpress.Options{
		Mapping:      wordpress.DefaultMapping(),
		Model:        cmd.Model,
		ParentID:     cmd.ParentID,
		PageTypes:    strings.Split(cmd.PageTypes, ","),
		PageStatuses: strings.Split(cmd.PageStatuses, ","),
		BadDates:     wordpress.BadDatePolicy(cmd.BadDates),
	})
	if err != nil {
		return err
	}

	stream, err := wordpress.Open(cmd.XMLPath)
	if err != nil {
		return err
	}
	defer stream.Close()

	run, err := runRepo.Start(cmd.XMLPath)
	if err != nil {
		return fmt.Errorf("failed to record import run: %w", err)
	}

	result, runErr := importer.Run(stream)

	errMsg := ""
	if runErr != nil {
		errMsg = runErr.Error()
	}
	if err := runRepo.Complete(run, result.Processed, result.Imported, result.Skipped, errMsg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to finalize run record: %v\n", err)
	}

	fmt.Println("\n=== Import Summary ===")
	fmt.Printf("Processed: %d\n", result.Processed)
	fmt.Printf("Imported:  %d\n", result.Imported)
	fmt.Printf("Skipped:   %d\n", result.Skipped)

	return runErr
}
