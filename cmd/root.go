package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/msstore-grabber/internal/app"
	"github.com/oshokin/msstore-grabber/internal/config"
	"github.com/oshokin/msstore-grabber/internal/logger"
	"github.com/oshokin/msstore-grabber/internal/version"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "msstore-grabber [flags] {value}",
		Short: "List Microsoft Store package download links.",
		Long: `MSStore Grabber resolves Microsoft Store apps into direct package download links
using the store.rg-adguard.net link generator.

The value can be:
- A Microsoft Store URL (--type url, the default)
- A ProductId, e.g. 9WZDNCRFJBMP (--type ProductId)
- A PackageFamilyName (--type PackageFamilyName)
- A CategoryId (--type CategoryId)

Only installable packages (.appx, .appxbundle, .msix, .msixbundle, .eappx, .eappxbundle)
are listed unless --all is given. Use the download command to save files.`,
		Example: `  msstore-grabber https://apps.microsoft.com/detail/9WZDNCRFJBMP
  msstore-grabber -t ProductId -r RP 9WZDNCRFJBMP`,
		Version:          version.Full(),
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			applyFlags(cmd)

			app.ExecuteRootCommand(cmd.Context(), appConfig, args[0])
		},
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	runUntilDone(ctx, stop, func(ctx context.Context) {
		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	})
}

// runUntilDone runs command in its own goroutine and returns once it has finished.
// After the context is cancelled, default signal handling is restored,
// so a second interrupt terminates the process without waiting for cleanup.
func runUntilDone(ctx context.Context, stop context.CancelFunc, command func(context.Context)) {
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer stop()

		command(ctx)
	}()

	<-ctx.Done()
	stop()
	<-done
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	persistentFlags := rootCmd.PersistentFlags()

	persistentFlags.StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	persistentFlags.StringP(
		"type",
		"t",
		"",
		"lookup type: "+strings.Join(config.LookupTypes(), ", ")+" (default is url).")

	persistentFlags.StringP(
		"ring",
		"r",
		"",
		"release ring: "+strings.Join(config.Rings(), ", ")+" (default is Retail).")

	persistentFlags.StringP(
		"lang",
		"l",
		"",
		"market language sent to the service (default is "+config.DefaultLanguage+").")

	persistentFlags.BoolP(
		"all",
		"a",
		false,
		"show all files, not only installable packages.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}
}

// applyFlags merges the command-line flags into the loaded configuration
// and sets up logging from the result.
func applyFlags(cmd *cobra.Command) {
	if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)

	if appConfig.LogFile != "" {
		logger.EnableFileOutput(logger.FileOptions{
			Filename:   appConfig.LogFile,
			MaxSizeMB:  appConfig.LogMaxSizeMB,
			MaxBackups: appConfig.LogMaxBackups,
			MaxAgeDays: appConfig.LogMaxAgeDays,
		})
	}

	if appConfig.ConfigFilename != "" {
		logger.Debugf(cmd.Context(), "Using configuration file %s", appConfig.ConfigFilename)
	}
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("type"); flag != nil && flag.Changed {
		cfg.LookupType, _ = flags.GetString("type")
	}

	if flag := flags.Lookup("ring"); flag != nil && flag.Changed {
		cfg.Ring, _ = flags.GetString("ring")
	}

	if flag := flags.Lookup("lang"); flag != nil && flag.Changed {
		cfg.Language, _ = flags.GetString("lang")
	}

	if flag := flags.Lookup("all"); flag != nil && flag.Changed {
		showAll, _ := flags.GetBool("all")
		cfg.PackagesOnly = !showAll
	}

	if flag := flags.Lookup("output"); flag != nil && flag.Changed {
		cfg.OutputPath, _ = flags.GetString("output")
	}

	return config.ValidateConfig(cfg)
}
