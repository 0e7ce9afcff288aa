package ports

import "sermonvault/internal/domain"

// SermonIndex provides cached access to the scanned vault.
// Staleness is a caller policy: compare the snapshot's LastScanned against
// the configured max age and call Rebuild when it is too old. The index
// itself never expires or locks; concurrent rebuilds are last-writer-wins.
type SermonIndex interface {
	// Load reads the persisted snapshot from the vault root. It returns
	// (nil, nil) when the cache file is absent or cannot be decoded.
	Load() (*domain.IndexSnapshot, error)

	// Rebuild scans the vault, aggregates statistics, persists the
	// resulting snapshot, and returns it. A failed persist is logged, not
	// returned: the fresh in-memory snapshot is still valid.
	Rebuild() (*domain.IndexSnapshot, error)

	// Scan walks the vault and parses every metadata file, skipping
	// unreadable or invalid ones. Record order follows discovery order and
	// is not an invariant.
	Scan() ([]domain.SermonRecord, error)
}

// VaultDataStore persists the controlled vocabularies (tags, locations,
// services) independently of the index.
type VaultDataStore interface {
	// Load returns the stored vault data, falling back to the defaults
	// when no data has been saved yet.
	Load() (domain.VaultData, error)

	// Save fully overwrites the stored vault data.
	Save(data domain.VaultData) error
}
