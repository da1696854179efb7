package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/msstore-grabber/internal/app"
)

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var downloadCmd = &cobra.Command{
	Use:   "download [flags] {value}",
	Short: "Download selected Microsoft Store packages.",
	Long: `Looks up the value like the root command, prints the link table and downloads
the files chosen with --select, one after another.

A selector is one of:
- a 1-based index from the table, e.g. 3
- an inclusive range, e.g. 2-4
- the keyword all
- a case-insensitive glob matched against file names, e.g. "*x64*.appx"

Selectors can be repeated or separated by commas. The first failed download
stops the batch; files saved before it are kept.`,
	Example: `  msstore-grabber download -t ProductId -s 1,3 9WZDNCRFJBMP
  msstore-grabber download -s "*.appxbundle" -o ./packages https://apps.microsoft.com/detail/9WZDNCRFJBMP`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		applyFlags(cmd)

		selectors, _ := cmd.Flags().GetStringSlice("select")

		app.ExecuteDownloadCommand(cmd.Context(), appConfig, args[0], selectors)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	downloadFlags := downloadCmd.Flags()

	downloadFlags.StringP(
		"output",
		"o",
		"",
		"directory to save downloaded files (the path will be created if it doesn’t exist).")

	downloadFlags.StringSliceP(
		"select",
		"s",
		nil,
		"files to download: index, range (2-4), all, or glob pattern; repeatable.")

	rootCmd.AddCommand(downloadCmd)
}
