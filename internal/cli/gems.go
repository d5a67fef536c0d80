// internal/cli/gems.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var gemsCmd = &cobra.Command{
	Use:   "gems",
	Short: "List registered gems",
	Long:  `List the gems (package format backends) registered in this build and whether they can be used on this system.`,
	Args:  cobra.NoArgs,
	RunE:  runGems,
}

func runGems(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	plat, err := app.Platform()
	if err != nil {
		return fmt.Errorf("detecting platform: %w", err)
	}

	fmt.Fprintf(out, "Platform: %s/%s\n\n", plat.OS, plat.Arch)

	names := app.Registry.Names()
	if len(names) == 0 {
		fmt.Fprintln(out, "No gems registered.")
		return nil
	}

	available := make(map[string]bool, len(plat.Available))
	for _, gem := range plat.Available {
		available[gem] = true
	}

	fmt.Fprintf(out, "%s\n", formatBold("Gems:"))
	for _, gem := range names {
		marker := " "
		switch {
		case !app.Config.GemEnabled(gem):
			marker = "-"
		case available[gem]:
			marker = "*"
		}
		fmt.Fprintf(out, "  %s %s\n", marker, gem)
	}
	fmt.Fprintf(out, "\n* = enabled and available, - = disabled\n")

	return nil
}
