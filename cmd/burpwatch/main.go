package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync"

	"burpwatch/internal/config"

	"github.com/spf13/cobra"
)

// Version information (set at build time)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "burpwatch",
		Short: "Watch burp-ui backups and drive archive restores",
		Long: `burpwatch polls a burp-ui server to know when backups are running,
follows asynchronous archive restores to completion and serves the
result over a small local API.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (default $BURPWATCH_CONFIG, /config/config.yaml or ./config.yaml)")

	rootCmd.AddCommand(
		newServeCmd(&configPath),
		newStatusCmd(&configPath),
		newRestoreCmd(&configPath),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "burpwatch %s\n", Version)
			fmt.Fprintf(out, "  Commit:     %s\n", Commit)
			fmt.Fprintf(out, "  Build Date: %s\n", BuildDate)
			fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
			fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

func getConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if configPath := os.Getenv("BURPWATCH_CONFIG"); configPath != "" {
		return configPath
	}

	// Try common paths
	candidates := []string{
		"/config/config.yaml",
		"./config.yaml",
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

func loadConfig(flagValue string, watch bool) (*config.Config, string, error) {
	configPath := getConfigPath(flagValue)
	if configPath == "" {
		return nil, "", fmt.Errorf("no configuration file found")
	}

	load := config.LoadFile
	if watch {
		load = config.Load
	}

	cfg, err := load(configPath)
	if err != nil {
		return nil, configPath, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, configPath, nil
}

var (
	logFileMu sync.Mutex
	logFile   *os.File
)

// setupLogging installs the default slog logger. It may be called again on
// config reload; the previous log file is closed once the new one is open.
func setupLogging(logConfig config.LoggingConfig) error {
	var level slog.Level
	switch logConfig.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var out io.Writer = os.Stdout
	var file *os.File
	if logConfig.File != "" {
		f, err := os.OpenFile(logConfig.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		file = f
		out = io.MultiWriter(os.Stdout, f)
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level: level,
	}

	if logConfig.Format == "text" {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}

	slog.SetDefault(slog.New(handler))

	logFileMu.Lock()
	previous := logFile
	logFile = file
	logFileMu.Unlock()
	if previous != nil {
		previous.Close()
	}

	return nil
}

func closeLogFile() {
	logFileMu.Lock()
	defer logFileMu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
