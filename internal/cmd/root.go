package cmd

import (
	"os"
	"strings"

	"github.com/leanstack/leango/internal/config"
	"github.com/leanstack/leango/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "leango",
	Short: "Shared logger and centralized configuration boilerplate",
	Long: `LeanGo is a small boilerplate that wires a centralized, CLI-driven
configuration snapshot into a process-shared logger with context
adapters and enriched exception reporting.

Run without a subcommand to start the interactive demo.`,
	RunE: runDemo,
}

var debugFlag bool

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/leango/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "set the logging level to DEBUG")
	rootCmd.PersistentFlags().Bool("date", false, "suffix the log file name with the process start time")
	_ = viper.BindPFlag("logging.date_suffix", rootCmd.PersistentFlags().Lookup("date"))

	rootCmd.PersistentFlags().Int("somenumber", 10, "set example.some_number")
	_ = viper.BindPFlag("example.some_number", rootCmd.PersistentFlags().Lookup("somenumber"))
	rootCmd.PersistentFlags().BoolP("boolean", "b", false, "set example.boolean to true")
	_ = viper.BindPFlag("example.boolean", rootCmd.PersistentFlags().Lookup("boolean"))
}

func initConfig() {
	// A project-root .env file is loaded first so AutomaticEnv can see
	// its values. Variables already in the environment win.
	if cwd, err := os.Getwd(); err == nil {
		_ = config.LoadEnvFile(cwd)
	}

	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/leango")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("LEANGO")
	// Replace dots with underscores for nested keys in env vars
	// e.g., LEANGO_LOGGING_LEVEL for logging.level
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()

	// -d wins over every other level source.
	if debugFlag {
		viper.Set("logging.level", logging.LevelDebug)
	}
}
