package commands

import (
	"context"
	"fmt"
	"time"

	"sermonvault/internal/domain"
	"sermonvault/internal/ports"
)

// RebuildIndexCommand forces a fresh scan of the vault
type RebuildIndexCommand struct {
	index ports.SermonIndex
}

// NewRebuildIndexCommand creates a new RebuildIndexCommand
func NewRebuildIndexCommand(index ports.SermonIndex) *RebuildIndexCommand {
	return &RebuildIndexCommand{index: index}
}

// Execute runs a full rescan and returns the fresh snapshot
func (c *RebuildIndexCommand) Execute(ctx context.Context) (*domain.IndexSnapshot, error) {
	snapshot, err := c.index.Rebuild()
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild index: %w", err)
	}
	return snapshot, nil
}

// EnsureIndexCommand returns a usable snapshot: the cached one when present
// and fresh enough, otherwise the result of a rebuild. This is where the
// staleness policy lives; the cache itself never expires.
type EnsureIndexCommand struct {
	index  ports.SermonIndex
	MaxAge time.Duration
}

// NewEnsureIndexCommand creates a new EnsureIndexCommand
func NewEnsureIndexCommand(index ports.SermonIndex, maxAge time.Duration) *EnsureIndexCommand {
	return &EnsureIndexCommand{index: index, MaxAge: maxAge}
}

// Execute loads the cached snapshot, rebuilding when it is absent or stale
func (c *EnsureIndexCommand) Execute(ctx context.Context) (*domain.IndexSnapshot, error) {
	snapshot, err := c.index.Load()
	if err != nil {
		return nil, err
	}
	if snapshot != nil && !snapshot.IsStale(c.MaxAge) {
		return snapshot, nil
	}

	fresh, err := c.index.Rebuild()
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild index: %w", err)
	}
	return fresh, nil
}
