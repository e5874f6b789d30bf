package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	registryDir string
	outputJSON  bool
)

// Execute runs the root cobra command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registrylint",
		Short: "Plugin registry validation CLI",
	}

	cmd.PersistentFlags().StringVar(&registryDir, "registry", "", "Path to registry root")
	cmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output machine-readable JSON")

	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newPluginCmd())
	cmd.AddCommand(newCategoriesCmd())

	return cmd
}
