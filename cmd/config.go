package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardnotation/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage cardnotation settings",
	Long:  `Commands for inspecting and changing the cardnotation config file.`,
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Config file:", config.GetConfigFilePath())
		fmt.Fprintf(out, "delimiter = %q\n", cfg.Delimiter)
		fmt.Fprintf(out, "color     = %q\n", cfg.Color)
		fmt.Fprintf(out, "log_level = %q\n", cfg.LogLevel)
	},
}

// configSetDelimiterCmd represents the config set-delimiter command
var configSetDelimiterCmd = &cobra.Command{
	Use:   "set-delimiter [delimiter]",
	Short: "Set the default card list delimiter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		delimiter := args[0]

		if err := config.SetDelimiter(delimiter); err != nil {
			return fmt.Errorf("error setting delimiter: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default delimiter set to: %q\n", delimiter)
		return nil
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the config file",
	Run: func(cmd *cobra.Command, args []string) {
		// The root pre-run has already loaded, and if needed created, the file
		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", config.GetConfigFilePath())
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetDelimiterCmd)
	configCmd.AddCommand(configInitCmd)
}
