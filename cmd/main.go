package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"fastascan/internal/config"
	"fastascan/internal/fasta"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// version is the program version. It can be overridden at build time with
// -ldflags "-X main.version=..."
var version = "0.1.0"

// delimiter separates records in scan output.
const delimiter = "----------------------------------------"

var (
	configFlag  string
	verboseFlag bool
)

// newLogger builds the logger from config and the --verbose flag. When a log
// file is configured, log lines go to both stderr and the file so running
// interactively still shows them.
func newLogger(cfg *config.Config) *log.Logger {
	var out io.Writer = os.Stderr
	if cfg.LogFile != "" {
		if f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			out = io.MultiWriter(os.Stderr, f)
		}
	}
	logger := log.New(out)
	if verboseFlag {
		logger.SetLevel(log.DebugLevel)
		return logger
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info", "":
		logger.SetLevel(log.InfoLevel)
	case "warn", "warning":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
		logger.Warn("unknown log_level in config, defaulting to info", "provided", cfg.LogLevel)
	}
	return logger
}

// inputPath resolves the file to operate on: positional argument, then
// config, then the conventional default.
func inputPath(cfg *config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if cfg.InputFasta != "" {
		return cfg.InputFasta
	}
	return "example.fasta"
}

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [file]",
		Short: "Print every record with its length and alphabet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFlag)
			if err != nil {
				return err
			}
			logger := newLogger(cfg)
			path := inputPath(cfg, args)
			logger.Debug("scanning", "path", path)

			p := fasta.NewParser(path)
			if !p.IsFasta() {
				logger.Error("file is not FASTA format or was not found", "path", path)
				return fmt.Errorf("not a FASTA file: %s", path)
			}
			records, err := p.Records()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			n := 0
			for rec := range records {
				fmt.Fprintln(out, rec)
				fmt.Fprintf(out, "Length: %d\n", rec.Len())
				fmt.Fprintf(out, "Alphabet: %s\n", rec.Alphabet())
				fmt.Fprintln(out, delimiter)
				n++
			}
			logger.Info("scan finished", "path", path, "records", n)
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Report whether the file looks like FASTA",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFlag)
			if err != nil {
				return err
			}
			path := inputPath(cfg, args)
			if !fasta.NewParser(path).IsFasta() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: not FASTA\n", path)
				return errors.New("not FASTA")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: FASTA\n", path)
			return nil
		},
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fastascan",
		Short:         "Scan FASTA files and classify their sequences",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configFlag, "config", "", "path to config.json (optional)")
	root.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose (debug) logging")
	root.AddCommand(newScanCmd(), newCheckCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
