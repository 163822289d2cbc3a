package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mailcue-backend/internal/catalog"
	"mailcue-backend/internal/compound"
	"mailcue-backend/internal/rules"
)

var catalogDir string

var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Inspect and validate the action catalogs",
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load the catalogs and report authoring defects",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, registry, err := loadCatalogs()
		if err != nil {
			return err
		}
		fmt.Printf("ok: %d actions, %d compound actions\n", cat.Len(), registry.Count().Total)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print catalog statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, registry, err := loadCatalogs()
		if err != nil {
			return err
		}
		counts := registry.Count()
		fmt.Printf("actions:          %d\n", cat.Len())
		fmt.Printf("generic actions:  %d\n", len(cat.Generic()))
		fmt.Printf("intents:          %d\n", len(cat.Intents()))
		fmt.Printf("compound actions: %d (premium %d, free %d, requiresResponse %d)\n",
			counts.Total, counts.Premium, counts.Free, counts.RequiresResponse)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <actionId>",
	Short: "Print one action definition as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, registry, err := loadCatalogs()
		if err != nil {
			return err
		}
		if def, ok := cat.Get(args[0]); ok {
			return printJSON(def)
		}
		if def, ok := registry.Get(args[0]); ok {
			return printJSON(def)
		}
		return fmt.Errorf("action %q not found", args[0])
	},
}

func loadCatalogs() (*catalog.Catalog, *compound.Registry, error) {
	cat, err := catalog.Load(catalogDir)
	if err != nil {
		return nil, nil, err
	}
	if _, err := rules.NewEngine(cat); err != nil {
		return nil, nil, err
	}
	registry, err := compound.NewRegistry(compound.Builtin(), compound.BuiltinRules(), cat)
	if err != nil {
		return nil, nil, err
	}
	return cat, registry, nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func main() {
	rootCmd.PersistentFlags().StringVar(&catalogDir, "catalog-dir", "", "directory of catalog overlay files")
	rootCmd.AddCommand(validateCmd, statsCmd, showCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
