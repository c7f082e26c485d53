package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meeting-meter/internal/config"
	"github.com/nguyentantai21042004/meeting-meter/internal/filler"
	"github.com/nguyentantai21042004/meeting-meter/internal/gemini"
	"github.com/nguyentantai21042004/meeting-meter/internal/logger"
	"github.com/nguyentantai21042004/meeting-meter/internal/report"
	"github.com/nguyentantai21042004/meeting-meter/internal/watcher"
)

type options struct {
	configPath string
	docx       bool
}

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "meter <transcript.txt> <output.md>",
		Short: "Analyze a speaker-labelled meeting transcript for clarity and filler words",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runAnalyze(cmd.Context(), cmd.OutOrStdout(), opts, args[0], args[1])
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "config.yaml", "path to the YAML config file (optional)")
	root.PersistentFlags().BoolVar(&opts.docx, "docx", false, "also write a .docx copy of each report")

	root.AddCommand(&cobra.Command{
		Use:   "watch",
		Short: "Watch the input directory and analyze every new transcript",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runWatch(cmd.Context(), opts)
		},
	})

	return root
}

// setup loads and validates configuration and wires the assembler
func setup(opts *options) (*config.Config, logger.Logger, report.Assembler, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	if opts.docx {
		cfg.Report.Docx = true
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	client := gemini.New(gemini.Options{
		APIKeys: cfg.Gemini.APIKeys,
		Model:   cfg.Gemini.Model,
		BaseURL: cfg.Gemini.BaseURL,
		Timeout: cfg.Gemini.Timeout,
	}, log)
	counter := filler.NewCounter(cfg.Filler.Vocabulary)

	return cfg, log, report.New(cfg, client, counter, log), nil
}

func runAnalyze(ctx context.Context, stdout io.Writer, opts *options, transcriptPath, outputPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	_, log, asm, err := setup(opts)
	if err != nil {
		return err
	}

	res, err := asm.Analyze(ctx, transcriptPath, outputPath)
	if err != nil {
		log.Error(ctx, "Analysis aborted: %v", err)
		return err
	}

	fmt.Fprintf(stdout, "Report saved to: %s\n", res.OutputPath)
	if res.DocxPath != "" {
		fmt.Fprintf(stdout, "DOCX saved to: %s\n", res.DocxPath)
	}
	fmt.Fprintf(stdout, "\n--- Quick Preview ---\n%s\n", res.Preview)
	return nil
}

func runWatch(ctx context.Context, opts *options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, log, asm, err := setup(opts)
	if err != nil {
		return err
	}

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		return err
	}

	handler := func(ctx context.Context, transcriptPath string) error {
		name := strings.TrimSuffix(filepath.Base(transcriptPath), filepath.Ext(transcriptPath))
		_, err := asm.Analyze(ctx, transcriptPath, filepath.Join(cfg.Paths.Output, name+".md"))
		return err
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		return err
	}
	defer w.Stop()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info(ctx, "Meeting meter is ready! Monitoring: %s, output: %s", cfg.Paths.Input, cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error(ctx, "Watcher error: %v", err)
		return err
	}

	log.Info(ctx, "Meeting meter stopped")
	return nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Output} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
