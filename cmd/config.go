package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/msstore-grabber/internal/app"
	"github.com/oshokin/msstore-grabber/internal/config"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
		// The configuration file may not exist yet.
		PersistentPreRun: func(*cobra.Command, []string) {},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	configInitCmd = &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default configuration file",
		Long: `Writes a commented configuration file with default values.

Without a path the file is written to ` + config.DefaultConfigFilename + ` in the current
directory, which is where msstore-grabber looks for it by default.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path := configFilenameFromFlag
			if len(args) > 0 {
				path = args[0]
			}

			force, _ := cmd.Flags().GetBool("force")

			app.ExecuteConfigInitCommand(cmd.Context(), path, force)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	configInitCmd.Flags().BoolP("force", "f", false, "overwrite an existing file.")

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
