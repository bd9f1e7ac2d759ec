package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/general-configurator/internal/catalog"
	"github.com/KirkDiggler/general-configurator/internal/db"
	"github.com/KirkDiggler/general-configurator/internal/entities"
)

var rollCount int

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the catalog document",
	RunE: func(_ *cobra.Command, _ []string) error {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(catalog.Schema()); err != nil {
			return fmt.Errorf("failed to encode schema: %w", err)
		}
		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending Postgres migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg.Log.NewLogger(os.Stderr).Info("Applying migrations", "host", cfg.Postgres.Host, "dbname", cfg.Postgres.DBName)
		if err := db.RunMigrations(cmd.Context(), cfg.Postgres.DSN()); err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}
		fmt.Println("Migrations applied")
		return nil
	},
}

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll random builds from the catalog",
	RunE:  runRoll,
}

func init() {
	rollCmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file, overrides the config")
	rollCmd.Flags().IntVarP(&rollCount, "count", "n", 1, "Number of builds to roll")
}

func runRoll(cmd *cobra.Command, _ []string) error {
	if rollCount < 1 {
		return fmt.Errorf("count must be at least 1")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	sampler, err := catalog.NewSampler(cat, nil)
	if err != nil {
		return fmt.Errorf("failed to create sampler: %w", err)
	}

	for i := 0; i < rollCount; i++ {
		g, err := sampler.RandomGeneral()
		if err != nil {
			return fmt.Errorf("failed to roll: %w", err)
		}
		fmt.Println(g.StringKey(false, entities.StarringEquipped))
	}
	return nil
}
