// Package main is the entry point for the configurator server and tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/general-configurator/cmd/server/client"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "general-configurator",
	Short: "General build configurator",
	Long:  `Equip a general from the catalog, compute buffs, debuffs, materials and refine estimates, and compare builds.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to the YAML configuration file")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
