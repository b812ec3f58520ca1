package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"prosecoach/internal/config"
)

const BaseDirName = "ProseCoach"

const (
	ConfigFile = "prosecoach.yaml"
	DBFile     = "prosecoach.db"
)

func EnsureDefault() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return EnsureAt(filepath.Join(home, BaseDirName))
}

// EnsureAt lays out the workspace under base and writes a default config file
// the first time.
func EnsureAt(base string) (string, error) {
	paths := []string{
		filepath.Join(base, "configs"),
		filepath.Join(base, "projects"),
	}

	for _, p := range paths {
		if err := os.MkdirAll(p, 0o755); err != nil {
			return "", fmt.Errorf("mkdir %s: %w", p, err)
		}
	}

	settingsPath := ConfigPath(base)
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		defaults := config.Default()
		defaults.DBPath = DBPath(base)
		raw, marshalErr := yaml.Marshal(defaults)
		if marshalErr != nil {
			return "", fmt.Errorf("marshal settings: %w", marshalErr)
		}
		if writeErr := os.WriteFile(settingsPath, raw, 0o644); writeErr != nil {
			return "", fmt.Errorf("write settings: %w", writeErr)
		}
	}

	return base, nil
}

func ConfigPath(base string) string {
	return filepath.Join(base, "configs", ConfigFile)
}

func DBPath(base string) string {
	return filepath.Join(base, DBFile)
}
