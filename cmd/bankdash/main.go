package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/iammorganparry/bankdash/internal/config"
)

var args struct {
	configPath string
	dataPath   string
	debug      bool
	port       int
}

var rootCmd = &cobra.Command{
	Use:           "bankdash",
	Short:         "Banking insights dashboard over the bank-marketing dataset",
	Long:          "Serve an interactive dashboard of the bank-marketing CSV: age distribution, subscription rate, contact duration and monthly trends.",
	RunE:          runServeCmd,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP",
	RunE:  runServeCmd,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Show the dashboard in the terminal",
	RunE:  runTUICmd,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&args.configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&args.dataPath, "data", "", "path to the dataset (default bank-full.csv)")
	rootCmd.PersistentFlags().BoolVar(&args.debug, "debug", false, "enable debug mode")
	for _, c := range []*cobra.Command{rootCmd, serveCmd} {
		c.Flags().IntVar(&args.port, "port", 0, "HTTP port (default 8050)")
	}
	rootCmd.AddCommand(serveCmd, tuiCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig applies command line flags on top of config.Load.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(args.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("data") {
		cfg.DataPath = args.dataPath
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = args.debug
	}
	if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
		cfg.Port = args.port
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	logLevel := slog.LevelInfo
	if cfg.DebugLogging() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)
	return logger
}
