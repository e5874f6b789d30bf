package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"registrylint/internal/registry"
	"registrylint/internal/validate"
)

func newPluginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plugin <name>",
		Short: "Validate a single plugin and its versions",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlugin,
	}
}

func runPlugin(cmd *cobra.Command, args []string) error {
	rp, err := registry.Resolve(registryDir)
	if err != nil {
		return err
	}

	exists, err := registry.DirExists(rp.Root)
	if err != nil {
		return fmt.Errorf("stat registry root: %w", err)
	}
	if !exists {
		return fmt.Errorf("registry root does not exist: %s", rp.Root)
	}

	reports, summary, err := validate.RunPlugin(rp, args[0], validate.Options{Ctx: cmd.Context()})
	if err != nil {
		return err
	}

	if outputJSON {
		if err := writeValidationJSON(cmd, rp.Root, reports, summary); err != nil {
			return err
		}
	} else {
		writeValidationReport(cmd, rp.Root, reports, summary, false)
	}

	if summary.Errors > 0 {
		return fmt.Errorf("validation failed with %d error(s)", summary.Errors)
	}
	return nil
}
