// Package main is the entry point for the stratdex CLI
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	dexcmd "github.com/KirkDiggler/strat-dex/cmd/stratdex/dex"
	"github.com/KirkDiggler/strat-dex/internal/clients/stratdex"
	"github.com/KirkDiggler/strat-dex/internal/config"
)

var (
	// Global flags
	configPath string
	baseURL    string
	timeout    time.Duration
	verbose    bool

	// settings is the config file merged with the global flags
	settings = &config.Config{}
)

var rootCmd = &cobra.Command{
	Use:               "stratdex",
	Short:             "Random competitive sets from the strategy dex",
	Long:              `stratdex draws a random standard pokemon and one of its recommended sets from the strategy dex, and prints it as importable team text.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Strategy dex RPC base URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "HTTP request timeout")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(randomizeCmd)
	rootCmd.AddCommand(dexcmd.NewDexCmd(newClient))
}

// setup installs the logger and resolves settings before any command runs
func setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Root().PersistentFlags()
	if flags.Changed("base-url") {
		cfg.Client.BaseURL = baseURL
	}
	if flags.Changed("timeout") {
		cfg.Client.Timeout = timeout
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	settings = cfg
	slog.Debug("settings resolved",
		"config", configPath,
		"base_url", cfg.Client.BaseURL,
		"timeout", cfg.Client.Timeout,
	)
	return nil
}

func newClient() (stratdex.Client, error) {
	return stratdex.New(settings.ClientSettings())
}
