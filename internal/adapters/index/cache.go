// Package index implements the sermon index: a full-vault scan cached as a
// JSON snapshot at the vault root.
package index

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"sermonvault/internal/adapters/markdown"
	"sermonvault/internal/application"
	"sermonvault/internal/domain"
	"sermonvault/internal/ports"
)

// CacheFileName is the snapshot file written at the vault root
const CacheFileName = "sermon-index.json"

// Cache implements ports.SermonIndex over a vault root directory
type Cache struct {
	fs        ports.FileSystem
	vaultPath string
}

var _ ports.SermonIndex = (*Cache)(nil)

// NewCache creates an index cache for the given vault root
func NewCache(fs ports.FileSystem, vaultPath string) *Cache {
	return &Cache{fs: fs, vaultPath: vaultPath}
}

// CachePath returns the location of the snapshot file
func (c *Cache) CachePath() string {
	return filepath.Join(c.vaultPath, CacheFileName)
}

// Scan walks the vault and parses every metadata sidecar. A file that cannot
// be read or parsed is logged and skipped; one corrupt sermon never aborts
// the batch. Only a failure to list the vault root is fatal.
func (c *Cache) Scan() ([]domain.SermonRecord, error) {
	if !c.fs.PathExists(c.vaultPath) {
		return nil, fmt.Errorf("%w: %s", application.ErrVaultNotFound, c.vaultPath)
	}

	files, err := c.fs.ListFiles(c.vaultPath, true)
	if err != nil {
		return nil, fmt.Errorf("cannot build sermon index: %w", err)
	}

	var records []domain.SermonRecord
	for _, path := range files {
		// The suffix check also keeps sermon-index.json out of the batch
		if !markdown.IsMetadataFile(path) {
			continue
		}

		content, err := c.fs.ReadText(path)
		if err != nil {
			slog.Warn("skipping unreadable metadata file",
				slog.String("path", path),
				slog.String("error", err.Error()))
			continue
		}

		record, err := markdown.ParseRecord(content, path)
		if err != nil {
			slog.Warn("skipping invalid metadata file",
				slog.String("path", path),
				slog.String("error", err.Error()))
			continue
		}

		records = append(records, *record)
	}

	return records, nil
}

// Rebuild runs a fresh scan, aggregates statistics, stamps the current time,
// and persists the snapshot. A failed persist is logged only: the computed
// snapshot is still returned.
func (c *Cache) Rebuild() (*domain.IndexSnapshot, error) {
	records, err := c.Scan()
	if err != nil {
		return nil, err
	}

	snapshot := &domain.IndexSnapshot{
		Sermons:     records,
		LastScanned: time.Now().UnixMilli(),
		TotalCount:  len(records),
		Stats:       domain.AggregateStats(records),
	}

	if err := c.save(snapshot); err != nil {
		slog.Warn("failed to persist index cache",
			slog.String("path", c.CachePath()),
			slog.String("error", err.Error()))
	}

	slog.Info("index rebuilt",
		slog.Int("sermons", snapshot.TotalCount),
		slog.String("vault", c.vaultPath))

	return snapshot, nil
}

// Load reads the persisted snapshot. An absent or undecodable cache file is
// not an error: it returns (nil, nil) and the caller rebuilds.
func (c *Cache) Load() (*domain.IndexSnapshot, error) {
	path := c.CachePath()
	if !c.fs.PathExists(path) {
		return nil, nil
	}

	content, err := c.fs.ReadText(path)
	if err != nil {
		slog.Warn("failed to read index cache, treating as absent",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil, nil
	}

	var snapshot domain.IndexSnapshot
	if err := json.Unmarshal([]byte(content), &snapshot); err != nil {
		slog.Warn("failed to decode index cache, treating as absent",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil, nil
	}

	return &snapshot, nil
}

// save fully overwrites the cache file; there are no partial writes
func (c *Cache) save(snapshot *domain.IndexSnapshot) error {
	encoded, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return c.fs.WriteText(c.CachePath(), string(encoded))
}
