// Package main provides rosterctl, an offline companion to the HTTP
// service: it runs the same export and import pipelines against
// DATABASE_URL without going through an upload.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	app "github.com/rosterhub/excelsync/internal/application/roster"
	domain "github.com/rosterhub/excelsync/internal/domain/roster"
	"github.com/rosterhub/excelsync/internal/infrastructure/repository"
	"github.com/rosterhub/excelsync/internal/infrastructure/spreadsheet"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	outputPath   string
	updatePolicy string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rosterctl",
		Short: "Export and import user rosters as Excel workbooks",
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export all active users to an xlsx workbook, one sheet per group",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "myData.xlsx", "Output workbook path")

	importCmd := &cobra.Command{
		Use:   "import [file.xlsx]",
		Short: "Import users from an xlsx workbook, upserting by email",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}
	importCmd.Flags().StringVar(&updatePolicy, "update-policy", "", "Update policy: refresh-created or touch-modified")

	rootCmd.AddCommand(exportCmd, importCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	db, err := openGorm()
	if err != nil {
		return err
	}

	useCase := app.NewExportWorkbook(
		repository.NewUserQueryRepository(db),
		repository.NewGroupRepository(db),
		time.Now,
	)

	out, err := useCase.Execute(cmd.Context())
	if err != nil {
		return err
	}

	if err := writeWorkbookFile(outputPath, out.Workbook); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "exported %d sheet(s) to %s\n", len(out.Workbook.Sheets), outputPath)
	return nil
}

// writeWorkbookFile removes the output file when serialization fails,
// so a failed export never leaves a truncated workbook on disk.
func writeWorkbookFile(path string, wb domain.Workbook) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := spreadsheet.NewCodec().Write(wb, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", path)
	}

	policy, err := app.ParseUpdatePolicy(updatePolicy)
	if err != nil {
		return err
	}

	pool, err := openPool(cmd.Context())
	if err != nil {
		return err
	}
	defer pool.Close()

	useCase := app.NewImportWorkbook(
		spreadsheet.NewCodec(),
		repository.NewUserBatchRepository(pool),
		policy,
		time.Now,
	)

	out, err := useCase.Execute(cmd.Context(), app.ImportWorkbookInput{Path: path})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "imported %d, updated %d, skipped %d\n",
		out.ImportedCount, out.UpdatedCount, out.SkippedCount)
	return nil
}

func openGorm() (*gorm.DB, error) {
	url, err := databaseURL()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(url), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}

func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	url, err := databaseURL()
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}
	return pool, nil
}

func databaseURL() (string, error) {
	_ = godotenv.Load()

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return "", errors.New("DATABASE_URL is required")
	}
	return url, nil
}
