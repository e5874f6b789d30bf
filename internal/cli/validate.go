package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"registrylint/internal/logx"
	"registrylint/internal/netcheck"
	"registrylint/internal/registry"
	"registrylint/internal/validate"
)

var (
	validateCheckURLs bool
	validateTimeout   int
	validateQuiet     bool
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate every plugin and version descriptor in the registry",
		RunE:  runValidate,
	}

	cmd.Flags().BoolVar(&validateCheckURLs, "check-urls", envBool("REGISTRYLINT_CHECK_URLS"), "Probe release URLs over HTTP")
	cmd.Flags().IntVar(&validateTimeout, "timeout", 10, "Per-URL probe timeout in seconds")
	cmd.Flags().BoolVar(&validateQuiet, "quiet", false, "Suppress info-level findings")
	return cmd
}

func runValidate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

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

	logsDir, err := registry.GlobalLogsDir()
	if err != nil {
		return err
	}
	logger, closer, err := logx.New(logsDir)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Printf("registrylint validate: registry=%s checkURLs=%v", rp.Root, validateCheckURLs)

	opts := validate.Options{Ctx: ctx}
	if validateCheckURLs {
		opts.CheckURLs = true
		opts.Prober = netcheck.New(time.Duration(validateTimeout) * time.Second)
	}

	reports, summary, err := validate.Run(rp, opts)
	if err != nil {
		return err
	}
	logger.Printf("validated %d plugins, %d versions: %d errors, %d warnings",
		summary.Plugins, summary.Versions, summary.Errors, summary.Warnings)

	if outputJSON {
		if err := writeValidationJSON(cmd, rp.Root, reports, summary); err != nil {
			return err
		}
	} else {
		writeValidationReport(cmd, rp.Root, reports, summary, validateQuiet)
	}

	if summary.Errors > 0 {
		return fmt.Errorf("validation failed with %d error(s)", summary.Errors)
	}
	return nil
}
