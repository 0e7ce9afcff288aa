package commands

import (
	"context"
	"time"

	"sermonvault/internal/domain"
	"sermonvault/internal/ports"
)

// SearchCommand filters the indexed sermons
type SearchCommand struct {
	index   ports.SermonIndex
	Filters domain.SearchFilters
	MaxAge  time.Duration
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(index ports.SermonIndex, filters domain.SearchFilters) *SearchCommand {
	return &SearchCommand{
		index:   index,
		Filters: filters,
		MaxAge:  time.Hour,
	}
}

// Execute runs the search over the cached index and returns matching
// records newest-first.
func (c *SearchCommand) Execute(ctx context.Context) ([]domain.SermonRecord, error) {
	snapshot, err := NewEnsureIndexCommand(c.index, c.MaxAge).Execute(ctx)
	if err != nil {
		return nil, err
	}

	results := domain.Search(snapshot.Sermons, c.Filters)
	domain.SortByDate(results, false)
	return results, nil
}
