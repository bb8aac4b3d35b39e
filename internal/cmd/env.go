package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Check which well-known environment variables are set",
	Long: `Check which well-known environment variables are set.

A .env file in the working directory is loaded into the process
environment at startup. Variables that already exist in the
environment are never overwritten by the file.`,
	RunE: runEnv,
}

// envKeys are the variables a project .env file typically provides.
var envKeys = []string{"SECRET_API_TOKEN", "USER", "PASSWORD"}

func init() {
	rootCmd.AddCommand(envCmd)
}

func runEnv(cmd *cobra.Command, args []string) error {
	for _, key := range envKeys {
		if _, ok := os.LookupEnv(key); ok {
			fmt.Printf("%s is set\n", key)
		} else {
			fmt.Printf("%s is not set\n", key)
		}
	}
	return nil
}
