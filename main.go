package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/westchamp24/tnm-download-cli/catalog"
	"github.com/westchamp24/tnm-download-cli/config"
	"github.com/westchamp24/tnm-download-cli/dataset"
	"github.com/westchamp24/tnm-download-cli/downloader"
	"github.com/westchamp24/tnm-download-cli/prompt"
)

var (
	extentFlag    string
	outputDirFlag string
	workersFlag   int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tnm-download-cli",
		Short: "USGS National Map Download CLI",
		Long: `Discovers geospatial data products available within a bounding box from
the USGS National Map catalog, groups them into named datasets, and
concurrently downloads the datasets you select.`,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVarP(&extentFlag, "extent", "e", "",
		"WGS84 Extent (xmin,ymin,xmax,ymax) of area to download data")
	cmd.Flags().StringVarP(&outputDirFlag, "output-dir", "o", "",
		"Directory where data will be downloaded to")
	cmd.Flags().IntVarP(&workersFlag, "workers", "t", downloader.DefaultWorkers,
		"The number of workers used to download data")
	_ = cmd.MarkFlagRequired("extent")
	_ = cmd.MarkFlagRequired("output-dir")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	// All validation happens before any network activity.
	bbox, err := catalog.ParseExtent(extentFlag)
	if err != nil {
		return fmt.Errorf("invalid extent: %w", err)
	}
	if err := ensureOutputDir(outputDirFlag); err != nil {
		return err
	}
	if workersFlag <= 0 {
		return fmt.Errorf("workers must be a positive integer, got %d", workersFlag)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	spin.Suffix = " Querying TNM Api"
	_ = spin.Color("yellow")
	spin.Start()
	products, err := catalog.NewClient(cfg).Products(ctx, bbox)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("catalog query failed: %w", err)
	}

	printAdvisories(products)

	datasets := dataset.Resolve(products.Items)
	if len(datasets) == 0 {
		fmt.Println("No products found in requested extent")
		return nil
	}

	selected, err := prompt.SelectDatasets(datasets)
	if err != nil {
		return fmt.Errorf("dataset selection failed: %w", err)
	}
	if len(selected) == 0 {
		fmt.Println("No datasets selected")
		return nil
	}

	engine := downloader.NewEngine(logger, downloader.WithWorkers(workersFlag))
	outcomes := engine.DownloadAll(ctx, selected, outputDirFlag)

	// The run succeeds as long as the batch drained; per-task failures are
	// reported, not fatal.
	summary := downloader.Summarize(outcomes)
	if summary.Failed > 0 {
		fmt.Printf("%d of %d downloads failed:\n", summary.Failed, summary.Total)
		for _, f := range summary.Failures {
			fmt.Printf("   %s: %v\n", f.Task.URL, f.Err)
		}
	} else {
		fmt.Printf("Downloaded %d files to %s\n", summary.Total, outputDirFlag)
	}
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// ensureOutputDir creates the output directory if it is missing.
func ensureOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("output_dir %s exists and is not a directory", dir)
		}
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("unable to create output_dir: %s", dir)
	}
	return nil
}

func printAdvisories(products *catalog.ProductsResponse) {
	if len(products.Messages) > 0 {
		fmt.Println("Messages:")
		for _, msg := range products.Messages {
			fmt.Printf("   %s\n", msg)
		}
	}
	if len(products.Errors) > 0 {
		fmt.Println("Errors:")
		for _, e := range products.Errors {
			fmt.Printf("   %s\n", e)
		}
	}
}
