package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"registrylint/internal/registry"
)

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the category taxonomy",
		RunE:  runCategories,
	}
}

func runCategories(cmd *cobra.Command, _ []string) error {
	rp, err := registry.Resolve(registryDir)
	if err != nil {
		return err
	}

	exists, err := registry.FileExists(rp.CategoriesFile)
	if err != nil {
		return fmt.Errorf("stat taxonomy file: %w", err)
	}
	if !exists {
		return fmt.Errorf("category taxonomy not found: %s", rp.CategoriesFile)
	}

	ids := registry.LoadCategories(rp.CategoriesFile).IDs()
	if len(ids) == 0 {
		return fmt.Errorf("category taxonomy is empty or unparsable: %s", rp.CategoriesFile)
	}

	if outputJSON {
		data, err := json.MarshalIndent(ids, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	for _, id := range ids {
		cmd.Println(id)
	}
	return nil
}
