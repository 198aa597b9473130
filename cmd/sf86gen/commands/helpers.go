package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clearform/sf86gen/internal/store"
	"github.com/clearform/sf86gen/pkg/catalog"
	"github.com/clearform/sf86gen/pkg/fieldmap"
	"github.com/clearform/sf86gen/pkg/formdata"
	"github.com/clearform/sf86gen/pkg/report"
)

func loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	cat, err := catalog.NewLoader().LoadDir(ctx, cfg.CatalogDir)
	if err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", cfg.CatalogDir, err)
	}
	return cat, nil
}

func buildResolver() (*fieldmap.Resolver, error) {
	return fieldmap.DefaultResolver()
}

func readDocument(path string) (*formdata.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return formdata.FromJSON(raw)
}

func openStore() (*store.Store, error) {
	return store.Open(cfg.StorePath)
}

// emit writes a rendered report to a file when output is set, otherwise to
// the command's stdout.
func emit(cmd *cobra.Command, content, output string) error {
	if output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), content)
		return nil
	}
	if err := os.WriteFile(output, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	return nil
}

func reportFormat(format string) report.Format {
	if format == "html" {
		return report.FormatHTML
	}
	return report.FormatText
}
