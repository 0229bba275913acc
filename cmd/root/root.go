// Package root contains the root command for the application.
package root

import (
	"cardmatch/internal/config"
	"cardmatch/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags holds flags shared by multiple commands.
type CommonFlags struct {
	Input       string
	Corrections string
	Years       int
	NoBonus     bool
}

var (
	// Log is the shared logger instance for commands.
	Log logging.Logger = logging.NewLogrusAdapterFromLogger(logrus.New())

	// Cfg is the loaded application configuration.
	Cfg *config.Config

	// SharedFlags are common flags accessible to all commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "cardmatch",
		Short: "Analyze bank statements and rank credit cards by projected value.",
		Long: `cardmatch categorizes bank-statement transactions into spending
categories, aggregates them into a spend profile, and scores a card
catalog against that profile to rank cards by projected net value.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to cardmatch!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				config.Logger.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))
		},
	}
)

// Init registers persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input statement CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Corrections, "corrections", "c", "", "Corrections YAML file (merchant key to category)")
	Cmd.PersistentFlags().IntVarP(&SharedFlags.Years, "years", "y", 0, "Projection horizon in years (defaults from config)")
	Cmd.PersistentFlags().BoolVar(&SharedFlags.NoBonus, "no-bonus", false, "Exclude welcome bonuses from scoring")
}

// Years resolves the projection horizon from flags and config.
func Years() int {
	if SharedFlags.Years > 0 {
		return SharedFlags.Years
	}
	if Cfg != nil && Cfg.Scoring.Years > 0 {
		return Cfg.Scoring.Years
	}
	return 1
}

// IncludeWelcomeBonus resolves bonus inclusion from flags and config.
func IncludeWelcomeBonus() bool {
	if SharedFlags.NoBonus {
		return false
	}
	if Cfg != nil {
		return Cfg.Scoring.IncludeWelcomeBonus
	}
	return true
}

// Delimiter resolves the CSV delimiter from config.
func Delimiter() rune {
	if Cfg != nil && Cfg.CSV.Delimiter != "" {
		return []rune(Cfg.CSV.Delimiter)[0]
	}
	return ','
}
