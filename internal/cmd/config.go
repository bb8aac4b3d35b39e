package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/leanstack/leango/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify LeanGo configuration",
	Long: `View or modify LeanGo configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  leango config set logging.level DEBUG
  leango config set example.some_number 42

Valid keys:
  logging.name         - Logger name shown in the log file format
  logging.level        - Logging threshold
                         Options: DEBUG, INFO, WARNING, ERROR, CRITICAL
  logging.directory    - Directory the log file is written to
  logging.date_suffix  - Suffix log files with the process start time (true/false)
  example.some_number  - Example project setting (non-negative integer)
  example.boolean      - Example project setting (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/leango/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	fmt.Println("Current configuration:")
	fmt.Println()

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Printf("Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Printf("Config file: (none - using defaults)\n")
	}
	fmt.Println()

	fmt.Println("logging:")
	fmt.Printf("  name: %s\n", cfg.Logging.Name)
	fmt.Printf("  level: %s\n", cfg.Logging.Level)
	fmt.Printf("  directory: %s\n", cfg.Logging.Directory)
	fmt.Printf("  date_suffix: %v\n", cfg.Logging.DateSuffix)

	fmt.Println("example:")
	fmt.Printf("  some_number: %d\n", cfg.Example.SomeNumber)
	fmt.Printf("  boolean: %v\n", cfg.Example.Boolean)

	fmt.Println()
	fmt.Printf("Log file: %s\n", cfg.LogFilePath())

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	// Validate the key exists
	validKeys := map[string]string{
		"logging.name":        "string",
		"logging.level":       "level",
		"logging.directory":   "string",
		"logging.date_suffix": "bool",
		"example.some_number": "int",
		"example.boolean":     "bool",
	}

	keyType, ok := validKeys[key]
	if !ok {
		return fmt.Errorf("unknown configuration key: %s\nRun 'leango config set --help' to see valid keys", key)
	}

	// Validate the value based on type
	var typedValue any
	switch keyType {
	case "string":
		if value == "" {
			return fmt.Errorf("invalid value for %s: must not be empty", key)
		}
		typedValue = value
	case "level":
		upper := strings.ToUpper(value)
		if !validLevel(upper) {
			return fmt.Errorf("invalid value for %s: %s\nValid options: %s",
				key, value, strings.Join(config.ValidLogLevels(), ", "))
		}
		typedValue = upper
	case "bool":
		if value != "true" && value != "false" {
			return fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		typedValue = value == "true"
	case "int":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: expected integer", key)
		}
		if intVal < 0 {
			return fmt.Errorf("invalid value for %s: must be non-negative", key)
		}
		typedValue = intVal
	}

	// Ensure config directory exists
	configDir := config.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set the value in viper
	viper.Set(key, typedValue)

	// Write to config file
	configFile := config.ConfigFilePath()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Set %s = %v\n", key, typedValue)
	fmt.Printf("Config saved to %s\n", configFile)

	return nil
}

func validLevel(level string) bool {
	for _, valid := range config.ValidLogLevels() {
		if level == valid {
			return true
		}
	}
	return false
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFilePath()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'leango config set' to modify values", configFile)
	}

	// Create config directory
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Generate a commented config file
	configContent := `# LeanGo Configuration

# Logging settings
logging:
  # Logger name, shown padded in the log file format
  name: LeanGo
  # Logging threshold: DEBUG, INFO, WARNING, ERROR or CRITICAL
  level: INFO
  # Directory the log file is written to (created if missing)
  directory: logs
  # Suffix the log file name with the process start time
  date_suffix: false

# Example project settings
example:
  some_number: 10
  boolean: false
`

	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configFile)
	fmt.Println("Edit this file to customize LeanGo's behavior.")

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	configFile := config.ConfigFilePath()

	if viper.ConfigFileUsed() != "" {
		fmt.Printf("Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Printf("Default path: %s (not created)\n", configFile)
	}

	// Also show config search paths
	fmt.Println("\nSearch paths:")
	fmt.Printf("  1. %s\n", configFile)
	fmt.Printf("  2. $HOME/.config/leango/config.yaml\n")
	fmt.Printf("  3. ./config.yaml (current directory)\n")
	fmt.Println("\nEnvironment variables: LEANGO_* (e.g., LEANGO_LOGGING_LEVEL)")
	fmt.Println("A .env file in the working directory is loaded at startup;")
	fmt.Println("variables already in the environment win.")

	return nil
}
