package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ha-entity-engine/internal/adapters/output/persistence"
	"ha-entity-engine/internal/config"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage localization catalogs",
}

var catalogMigrateCmd = &cobra.Command{
	Use:   "migrate <language>",
	Short: "Rewrite a JSON or legacy catalog as flat YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		repo := persistence.NewFileCatalogRepository(cfg.CatalogPath)
		entries, err := repo.Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return fmt.Errorf("no catalog found for %q in %s", args[0], cfg.CatalogPath)
		}
		if err := repo.Save(cmd.Context(), args[0], entries); err != nil {
			return err
		}
		fmt.Printf("migrated %d keys for %s\n", len(entries), args[0])
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogMigrateCmd)
	rootCmd.AddCommand(catalogCmd)
}
