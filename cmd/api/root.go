package main

import (
	"fmt"
	"os"

	"petclinic/internal/platform/config"
	"petclinic/internal/platform/logger"

	"github.com/spf13/cobra"
)

var (
	// Version se setea en build time
	Version = "dev"

	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "petclinic",
	Short: "Veterinary clinic web application",
	Long: `petclinic serves the owners, pets and visits forms of the clinic.

Storage is in-memory by default; set storage.driver (or DB_DRIVER/DB_DSN)
to use Postgres or SQLite.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	// Sin subcomando se comporta como "serve".
	RunE: runServe,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
}

func loadConfig() (config.Config, logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App,
	})
	return cfg, log, nil
}
