package cmd

import (
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/cardnotation/internal/config"
)

var (
	log = logrus.New()
	cfg = config.Default()

	delimiterFlag string
	verboseFlag   bool
	noColorFlag   bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardnotation",
	Short: "Tool for parsing playing-card notation",
	Long: `Cardnotation parses playing-card notation such as "AS", "10C" or "KH",
and lists of cards separated by a delimiter such as "AS, 2H, 8C".`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)

	RootCmd.PersistentFlags().StringVarP(&delimiterFlag, "delimiter", "d", "", "Card list delimiter (default from config)")
	RootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
	RootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
}

// setup loads the configuration and applies global flags on top of it
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	cfg = loaded

	if cmd.Flags().Changed("delimiter") {
		if delimiterFlag == "" {
			return fmt.Errorf("delimiter must not be empty")
		}
		cfg.Delimiter = delimiterFlag
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	if verboseFlag {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	colorize.NoColor = !useColor(cfg.Color, noColorFlag, term.IsTerminal(int(os.Stdout.Fd())))

	log.WithFields(logrus.Fields{
		"config":    config.GetConfigFilePath(),
		"delimiter": cfg.Delimiter,
		"color":     !colorize.NoColor,
	}).Debug("configuration loaded")
	return nil
}

func useColor(mode string, disabled, tty bool) bool {
	if disabled {
		return false
	}
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return tty
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
