package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"registrylint/internal/tui"
	"registrylint/internal/validate"
)

func writeValidationJSON(cmd *cobra.Command, root string, reports []validate.FileReport, summary validate.Summary) error {
	payload := struct {
		Registry string                `json:"registry"`
		Files    []validate.FileReport `json:"files"`
		Summary  validate.Summary      `json:"summary"`
	}{
		Registry: root,
		Files:    reports,
		Summary:  summary,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode validation json: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func writeValidationReport(cmd *cobra.Command, root string, reports []validate.FileReport, summary validate.Summary, quiet bool) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, tui.HeaderStyle.Render("Registry:")+" "+root)

	for _, file := range reports {
		printedHeader := false
		for _, f := range file.Findings {
			if quiet && f.Level == validate.LevelInfo {
				continue
			}
			if !printedHeader {
				fmt.Fprintln(out)
				fmt.Fprintln(out, tui.HeaderStyle.Render(relPath(root, file.Path)))
				printedHeader = true
			}
			style := tui.LevelStyle(string(f.Level))
			fmt.Fprintf(out, "  %s %s\n", style.Render(levelTag(f.Level)), f.Message)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Plugins: %d, Versions: %d, Errors: %d, Warnings: %d\n",
		summary.Plugins, summary.Versions, summary.Errors, summary.Warnings)
}

func levelTag(l validate.Level) string {
	switch l {
	case validate.LevelError:
		return "ERROR"
	case validate.LevelWarning:
		return "WARN "
	default:
		return "info "
	}
}

func relPath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

func envBool(name string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(name))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
