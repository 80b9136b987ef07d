package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/homeboxlabs/labelgen"
	"github.com/homeboxlabs/labelgen/domain/sheet"
	"github.com/homeboxlabs/labelgen/internal/config"
	"github.com/homeboxlabs/labelgen/internal/log"
)

type generateFlags struct {
	envFile  string
	server   string
	username string
	password string
	workers  int

	pageWidthMM    float64
	pageHeightMM   float64
	marginTopMM    float64
	marginLeftMM   float64
	marginBottomMM float64
	marginRightMM  float64
	gridRows       int
	gridColumns    int
	rowSpacingMM   float64
	colSpacingMM   float64
	gridSkip       int
}

func generateCmd() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate <assets> <output.html>",
		Short: "Fetch asset labels and lay them out on printable sheets",
		Long: `Generate fetches the label image for every selected asset and writes an
HTML document of print-ready label sheets.

The asset selection is a comma-separated list of asset IDs ("013-005") and
inclusive ranges ("012-000--012-010"), e.g. 000-000--000-010,000-015.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  LABELGEN_SERVER_URL      Homebox server URL
  LABELGEN_USERNAME        Homebox username
  LABELGEN_PASSWORD        Homebox password (prefer the interactive prompt)
  LABELGEN_LOG_LEVEL       Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LABELGEN_LOG_FORMAT      Log format: pretty, json (default: pretty)
  LABELGEN_WORKER_COUNT    Concurrent label fetches (default: 1)
  LABELGEN_HTTP_TIMEOUT    Request timeout in seconds (default: 30)
  LABELGEN_MAX_RETRIES     Retry attempts for retryable failures (default: 3)`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&flags.envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVarP(&flags.server, "server", "s", "", "Homebox server URL")
	cmd.Flags().StringVarP(&flags.username, "username", "u", "", "Homebox username")
	cmd.Flags().StringVarP(&flags.password, "password", "p", "", "Homebox password; omit to be prompted instead")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "Concurrent label fetches (default: 1)")

	cmd.Flags().Float64Var(&flags.pageWidthMM, "page-width-mm", sheet.DefaultPageWidthMM, "Page width in millimeters")
	cmd.Flags().Float64Var(&flags.pageHeightMM, "page-height-mm", sheet.DefaultPageHeightMM, "Page height in millimeters")
	cmd.Flags().Float64Var(&flags.marginTopMM, "page-margin-top-mm", sheet.DefaultMarginTopMM, "Margin above the first row")
	cmd.Flags().Float64Var(&flags.marginLeftMM, "page-margin-left-mm", sheet.DefaultMarginLeftMM, "Margin left of the first column")
	cmd.Flags().Float64Var(&flags.marginBottomMM, "page-margin-bottom-mm", sheet.DefaultMarginBottomMM, "Margin below the last row")
	cmd.Flags().Float64Var(&flags.marginRightMM, "page-margin-right-mm", sheet.DefaultMarginRightMM, "Margin right of the last column")
	cmd.Flags().IntVar(&flags.gridRows, "grid-rows", sheet.DefaultGridRows, "Label rows per page")
	cmd.Flags().IntVar(&flags.gridColumns, "grid-columns", sheet.DefaultGridColumns, "Label columns per page")
	cmd.Flags().Float64Var(&flags.rowSpacingMM, "grid-row-spacing-mm", sheet.DefaultRowSpacingMM, "Gap between grid rows")
	cmd.Flags().Float64Var(&flags.colSpacingMM, "grid-col-spacing-mm", sheet.DefaultColSpacingMM, "Gap between grid columns")
	cmd.Flags().IntVarP(&flags.gridSkip, "grid-skip", "S", 0, "Leave the first n grid cells empty to reuse a partially printed sheet")

	return cmd
}

func runGenerate(cmd *cobra.Command, flags generateFlags, assets, outputPath string) error {
	cfg, err := loadConfig(flags.envFile)
	if err != nil {
		return err
	}
	if flags.server != "" {
		cfg = cfg.Apply(config.WithServerURL(flags.server))
	}
	if flags.username != "" {
		cfg = cfg.Apply(config.WithUsername(flags.username))
	}
	if flags.password != "" {
		cfg = cfg.Apply(config.WithPassword(flags.password))
	}
	if flags.workers > 0 {
		cfg = cfg.Apply(config.WithWorkerCount(flags.workers))
	}

	logger := log.NewLogger(cfg)

	if cfg.ServerURL() == "" {
		return fmt.Errorf("no Homebox server URL; pass --server or set LABELGEN_SERVER_URL")
	}
	if cfg.Username() == "" {
		return fmt.Errorf("no Homebox username; pass --username or set LABELGEN_USERNAME")
	}
	if _, err := os.Stat(outputPath); err == nil {
		return fmt.Errorf("refusing to overwrite %s; delete it first or choose another destination", outputPath)
	}

	if flags.password != "" {
		logger.Warn("password was provided on the command line; the interactive prompt is safer")
	}
	password := cfg.Password()
	if password == "" {
		password, err = promptPassword()
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
	}

	geometry := sheet.NewGeometry().
		WithPageSizeMM(flags.pageWidthMM, flags.pageHeightMM).
		WithMarginsMM(flags.marginTopMM, flags.marginLeftMM, flags.marginBottomMM, flags.marginRightMM).
		WithGrid(flags.gridRows, flags.gridColumns).
		WithSpacingMM(flags.rowSpacingMM, flags.colSpacingMM).
		WithSkip(flags.gridSkip)

	client, err := labelgen.New(
		labelgen.WithConfig(cfg),
		labelgen.WithLogger(logger),
		labelgen.WithGeometry(geometry),
	)
	if err != nil {
		return err
	}

	// Render fully in memory so a mid-fetch failure never leaves a
	// truncated document behind.
	var buf bytes.Buffer
	result, err := client.Generate(cmd.Context(), labelgen.GenerateParams{
		Assets:   assets,
		Password: password,
		Output:   &buf,
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("sheet written", "path", outputPath, "labels", result.LabelCount(), "pages", result.PageCount())
	return nil
}

func promptPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("stdin is not a terminal; pass --password or set LABELGEN_PASSWORD")
	}
	fmt.Fprint(os.Stderr, "Enter Homebox password: ")
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(password), nil
}
