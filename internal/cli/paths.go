// internal/cli/paths.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show the directories bauh uses",
	Long:  `Display the cache, configuration, temporary and desktop integration directories for the current user.`,
	Args:  cobra.NoArgs,
	RunE:  runPaths,
}

func runPaths(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	p := app.Paths

	rows := [][2]string{
		{"Cache", p.CacheDir},
		{"Config", p.ConfigDir},
		{"Config file", app.ConfigFile()},
		{"Themes", p.UserThemesDir},
		{"Desktop entries", p.DesktopEntriesDir},
		{"Temp", p.TempDir},
		{"Logs", p.LogsDir},
		{"Autostart", p.AutostartDir},
	}

	for _, row := range rows {
		fmt.Fprintf(out, "%s %s\n", formatBold(fmt.Sprintf("%-16s", row[0]+":")), row[1])
	}
	return nil
}
