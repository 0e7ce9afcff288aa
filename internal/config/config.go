package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/atomic"
)

const DefaultVaultPath = "~/Documents/SermonVault"

// IndexMaxAge is how old a cached index snapshot may be before callers
// should trigger a rebuild. The cache itself never auto-expires.
const IndexMaxAge = time.Hour

const settingsFileName = "settings.json"

// Settings are the persisted application preferences
type Settings struct {
	SermonVaultPath string `json:"sermonVaultPath"`
	Theme           string `json:"theme,omitempty"`
	LastOpened      string `json:"lastOpened,omitempty"`
}

// VaultPath returns the vault path from the SERMONVAULT_PATH env var, then
// the saved settings, falling back to DefaultVaultPath.
func VaultPath() string {
	if env := os.Getenv("SERMONVAULT_PATH"); env != "" {
		return env
	}
	if settings, err := LoadSettings(); err == nil && settings.SermonVaultPath != "" {
		return settings.SermonVaultPath
	}
	return DefaultVaultPath
}

// AppDataDir returns the directory holding settings and vault data
func AppDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(base, "sermonvault"), nil
}

// EnsureAppDataDir creates the app data directory if needed. Mains call this
// once at startup and check the result; nothing else creates the directory
// implicitly.
func EnsureAppDataDir() (string, error) {
	dir, err := AppDataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create app data directory: %w", err)
	}
	return dir, nil
}

// LoadSettings reads the persisted settings, returning zero settings when
// the file does not exist yet.
func LoadSettings() (Settings, error) {
	dir, err := AppDataDir()
	if err != nil {
		return Settings{}, err
	}

	content, err := os.ReadFile(filepath.Join(dir, settingsFileName))
	if os.IsNotExist(err) {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(content, &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	return settings, nil
}

// SaveSettings fully overwrites the settings file
func SaveSettings(settings Settings) error {
	dir, err := EnsureAppDataDir()
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	path := filepath.Join(dir, settingsFileName)
	if err := atomic.WriteFile(path, strings.NewReader(string(encoded))); err != nil {
		return fmt.Errorf("cannot save settings: %w", err)
	}
	return nil
}
