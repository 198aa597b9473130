package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/clearform/sf86gen/internal/app"
)

var (
	cfg    *app.Config
	logger *zap.Logger

	catalogDir  string
	templatePDF string
	storePath   string
	logLevel    string
	logFormat   string
)

func Execute() error {
	root := &cobra.Command{
		Use:          "sf86gen",
		Short:        "SF-86 field mapping and form fill toolkit",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = app.LoadConfig()
			if err != nil {
				return err
			}
			if catalogDir != "" {
				cfg.CatalogDir = catalogDir
			}
			if templatePDF != "" {
				cfg.TemplatePDF = templatePDF
			}
			if storePath != "" {
				cfg.StorePath = storePath
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if logFormat != "" {
				cfg.LogFormat = logFormat
			}

			logger, err = app.NewLogger(cfg.LogLevel, cfg.LogFormat)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&catalogDir, "catalog", "", "directory holding section-*.json field documents")
	root.PersistentFlags().StringVar(&templatePDF, "template", "", "path to the blank SF-86 template PDF")
	root.PersistentFlags().StringVar(&storePath, "store", "", "path to the draft database")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (console, json)")

	root.AddCommand(
		fieldsCmd(),
		sectionizeCmd(),
		mapCmd(),
		validateCmd(),
		coverageCmd(),
		fillCmd(),
		exportCmd(),
		draftCmd(),
		promptCmd(),
	)
	return root.Execute()
}
