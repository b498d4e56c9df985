package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"roster-importer/core/config"
	"roster-importer/core/database"
	"roster-importer/core/logger"
	"roster-importer/core/mailer"
	"roster-importer/core/storage"
	"roster-importer/feature/calendar"
	"roster-importer/feature/importer"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	importYear      int
	importMonth     int
	importDryRun    bool
	importCreateCSV bool
)

// importCmd runs a one-shot roster import from the command line.
var importCmd = &cobra.Command{
	Use:   "import <document>",
	Short: "Import a duty roster document into the calendar",
	Long: `Extracts the duty roster from the given document, reconciles it against
the calendar store and prints the change report.

Year and month are inferred from the document name (convention
YYYY_MM.<ext>) unless given explicitly.

Examples:
  # Import, inferring year and month from the filename
  roster-importer import 2015_03.xlsx

  # Preview the changes without touching the calendar
  roster-importer import 2015_03.xlsx --dry-run

  # Import an arbitrarily named document
  roster-importer import plan.xlsx --year 2015 --month 3

  # Additionally write a Google calendar CSV next to the document
  roster-importer import 2015_03.xlsx --csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("calendar database connection failed: %w", err)
		}

		var archiveClient storage.Client
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Optional document archive unavailable", zap.Error(err))
		} else {
			archiveClient = client
		}

		path := args[0]
		document, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read document: %w", err)
		}

		svc := importer.NewService(
			calendar.NewStore(db),
			importer.NewXLSXReader(),
			importer.NewArchiver(archiveClient, cfg.Storage.Bucket, logg),
			mailer.New(cfg.Mailer),
			logg,
		)

		result, err := svc.Import(context.Background(), importer.ImportRequest{
			Filename:  filepath.Base(path),
			Year:      importYear,
			Month:     time.Month(importMonth),
			DryRun:    importDryRun,
			CreateCSV: importCreateCSV,
		}, document)
		if err != nil {
			return err
		}

		fmt.Println(result.Report)

		if importCreateCSV && result.CSV != "" {
			csvPath := path + ".csv"
			if err := os.WriteFile(csvPath, []byte(result.CSV), 0o644); err != nil {
				return fmt.Errorf("failed to write CSV: %w", err)
			}
			logg.Info("Wrote calendar CSV", zap.String("path", csvPath))
		}

		if result.Outcome.PartiallyApplied() {
			return fmt.Errorf("%d calendar operation(s) failed", len(result.Outcome.Failed))
		}
		return nil
	},
}

func init() {
	importCmd.Flags().IntVar(&importYear, "year", 0, "roster year (default: from filename)")
	importCmd.Flags().IntVar(&importMonth, "month", 0, "roster month 1-12 (default: from filename)")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "report changes without applying them")
	importCmd.Flags().BoolVar(&importCreateCSV, "csv", false, "write a Google calendar CSV next to the document")
	RootCmd.AddCommand(importCmd)
}
