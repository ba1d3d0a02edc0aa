package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"retirement-calc/config"
	"retirement-calc/logger"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "retirement-calc",
	Short: "Retirement savings calculator",
	Long: "Computes the capital needed on the day you retire and the annual and\n" +
		"monthly savings required to get there, as an HTTP API or one-off.",
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "TOML config file (default $RETIREMENT_CONFIG)")
}

// loadConfig reads .env, the TOML file and the environment, then validates.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()

	path := flagConfig
	if path == "" {
		path = os.Getenv("RETIREMENT_CONFIG")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*logger.Logger, error) {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	lc := logger.DefaultConfig()
	lc.Level = level
	lc.Format = cfg.Log.Format
	lc.Output = os.Stderr
	return logger.New(lc), nil
}
