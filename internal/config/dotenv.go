package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadEnvFile loads the project root's .env file into the process
// environment, if one exists. Values already present in the environment
// win over file values. A missing file is not an error; a malformed one
// is, so startup can mention it without failing.
func LoadEnvFile(root string) error {
	path := filepath.Join(root, ".env")
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil
	}
	return godotenv.Load(path)
}
