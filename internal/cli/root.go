// internal/cli/root.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/bauh-project/bauh"
)

var (
	cfgFile   string
	verbosity int
	noLogFile bool
	app       *bauh.App
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bauh",
	Short: "Graphical interface for managing Linux software",
	Long: `bauh - manage applications from several package formats

Inspect the locations, configuration and gems bauh uses on this system.`,
	Version:       bauh.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		app, err = bauh.New(&bauh.Options{
			ConfigFile:     cfgFile,
			Verbosity:      verbosity,
			NoLogFile:      noLogFile,
			FallbackConfig: true,
		})
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if app == nil {
			return nil
		}
		return app.Close()
	},
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	initTemplateFormatting()

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/bauh/config.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (-v info, -vv debug, -vvv trace)")
	rootCmd.PersistentFlags().BoolVar(&noLogFile, "no-log-file", false, "log to the console only")

	// Add commands
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(gemsCmd)
	rootCmd.AddCommand(versionCmd)
}
