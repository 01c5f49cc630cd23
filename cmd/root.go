package cmd

import (
	"os"

	"anchovy/internal/config"
	"anchovy/pkg/logging"

	"github.com/spf13/cobra"
)

// appConfig is the layered configuration loaded before any command runs.
var appConfig = config.GetDefaultConfig()

// logLevelFlag overrides log.level from the config files.
var logLevelFlag string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "anchovy",
	Short: "Browse the Anchovy design system from your terminal",
	Long: `anchovy is the reference catalog of the Anchovy design system.

Run without a command it opens the interactive browser: color spectrum,
typography, gradients, components, spacing and the design token file, with
one-key copy of every value. The subcommands expose the same catalog to
scripts and to MCP clients.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. malformed colors, failed exports)
	SilenceUsage:      true,
	Args:              cobra.NoArgs,
	PersistentPreRunE: loadConfig,
	RunE:              runBrowse,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "anchovy version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// loadConfig layers the config files, applies --log-level and sets up CLI
// logging on stderr so stdout stays clean for command output.
func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if logLevelFlag != "" {
		cfg.Log.Level = logLevelFlag
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logging.InitForCLI(level, cmd.ErrOrStderr())
	appConfig = cfg
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Minimum log level: debug, info, warn or error")
	addBrowseFlags(rootCmd)

	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newColorCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
