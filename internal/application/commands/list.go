package commands

import (
	"context"
	"time"

	"sermonvault/internal/domain"
	"sermonvault/internal/ports"
)

// ListSermonsCommand lists indexed sermons, optionally scoped to one year
type ListSermonsCommand struct {
	index  ports.SermonIndex
	Year   int // 0 lists every year
	MaxAge time.Duration
}

// NewListSermonsCommand creates a new ListSermonsCommand
func NewListSermonsCommand(index ports.SermonIndex, year int) *ListSermonsCommand {
	return &ListSermonsCommand{index: index, Year: year, MaxAge: time.Hour}
}

// Execute returns the matching records newest-first
func (c *ListSermonsCommand) Execute(ctx context.Context) ([]domain.SermonRecord, error) {
	snapshot, err := NewEnsureIndexCommand(c.index, c.MaxAge).Execute(ctx)
	if err != nil {
		return nil, err
	}

	records := append([]domain.SermonRecord(nil), snapshot.Sermons...)
	if c.Year != 0 {
		records = domain.Search(records, domain.SearchFilters{YearFrom: c.Year, YearTo: c.Year})
	}
	domain.SortByDate(records, false)
	return records, nil
}

// StatsCommand reports the aggregate statistics and filter options of the
// indexed vault
type StatsCommand struct {
	index  ports.SermonIndex
	MaxAge time.Duration
}

// StatsResult bundles the snapshot statistics with the distinct filter values
type StatsResult struct {
	TotalCount  int
	LastScanned int64
	Stats       domain.Stats
	Options     domain.FilterOptions
}

// NewStatsCommand creates a new StatsCommand
func NewStatsCommand(index ports.SermonIndex) *StatsCommand {
	return &StatsCommand{index: index, MaxAge: time.Hour}
}

// Execute returns statistics over the cached index
func (c *StatsCommand) Execute(ctx context.Context) (*StatsResult, error) {
	snapshot, err := NewEnsureIndexCommand(c.index, c.MaxAge).Execute(ctx)
	if err != nil {
		return nil, err
	}

	return &StatsResult{
		TotalCount:  snapshot.TotalCount,
		LastScanned: snapshot.LastScanned,
		Stats:       snapshot.Stats,
		Options:     domain.CollectFilterOptions(snapshot.Sermons),
	}, nil
}
