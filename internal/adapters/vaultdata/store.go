// Package vaultdata persists the controlled vocabularies (tags, locations,
// services) as a small JSON file in the application data directory.
package vaultdata

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"sermonvault/internal/domain"
	"sermonvault/internal/ports"
)

// DataFileName is the vocabulary file kept in the app data directory
const DataFileName = "vault-data.json"

// Store implements ports.VaultDataStore
type Store struct {
	fs      ports.FileSystem
	dataDir string
}

var _ ports.VaultDataStore = (*Store)(nil)

// NewStore creates a vault data store rooted at the app data directory
func NewStore(fs ports.FileSystem, dataDir string) *Store {
	return &Store{fs: fs, dataDir: dataDir}
}

// DataPath returns the location of the vocabulary file
func (s *Store) DataPath() string {
	return filepath.Join(s.dataDir, DataFileName)
}

// Load returns the stored vault data. When the file is absent or cannot be
// decoded, it falls back to the default vocabularies.
func (s *Store) Load() (domain.VaultData, error) {
	path := s.DataPath()
	if !s.fs.PathExists(path) {
		return domain.DefaultVaultData(), nil
	}

	content, err := s.fs.ReadText(path)
	if err != nil {
		slog.Warn("failed to read vault data, using defaults",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return domain.DefaultVaultData(), nil
	}

	var data domain.VaultData
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		slog.Warn("failed to decode vault data, using defaults",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return domain.DefaultVaultData(), nil
	}

	return data, nil
}

// Save fully overwrites the vocabulary file
func (s *Store) Save(data domain.VaultData) error {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode vault data: %w", err)
	}
	if err := s.fs.WriteText(s.DataPath(), string(encoded)); err != nil {
		return fmt.Errorf("cannot save vault data: %w", err)
	}
	return nil
}
