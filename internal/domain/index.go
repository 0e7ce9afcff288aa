package domain

import (
	"sort"
	"time"
)

// Stats holds the grouped counts computed over a full scan. Recomputed
// wholesale on every scan, never mutated in place.
type Stats struct {
	ByYear     map[int]int        `json:"byYear"`
	ByFormat   map[FileFormat]int `json:"byType"`
	ByLocation map[string]int     `json:"byLocation"`
	ByService  map[string]int     `json:"byService"`
}

// AggregateStats reduces a record collection into grouped counts in a single
// pass. Records without deliveries contribute nothing to the location and
// service counts.
func AggregateStats(records []SermonRecord) Stats {
	stats := Stats{
		ByYear:     make(map[int]int),
		ByFormat:   make(map[FileFormat]int),
		ByLocation: make(map[string]int),
		ByService:  make(map[string]int),
	}

	for _, r := range records {
		stats.ByYear[r.Year]++
		stats.ByFormat[r.FileFormat]++

		for _, d := range r.Deliveries {
			if d.Location != "" {
				stats.ByLocation[d.Location]++
			}
			for _, service := range d.Services {
				stats.ByService[service]++
			}
		}
	}

	return stats
}

// IndexSnapshot is the result of one full vault scan. A new scan replaces the
// snapshot wholesale; snapshots are never merged or patched.
type IndexSnapshot struct {
	Sermons     []SermonRecord `json:"sermons"`
	LastScanned int64          `json:"lastScanned"`
	TotalCount  int            `json:"totalCount"`
	Stats       Stats          `json:"stats"`
}

// IsStale reports whether the snapshot is older than maxAge. Staleness is a
// caller policy; the index cache itself never expires a snapshot.
func (s *IndexSnapshot) IsStale(maxAge time.Duration) bool {
	scanned := time.UnixMilli(s.LastScanned)
	return time.Since(scanned) > maxAge
}

// FilterOptions holds the distinct values available for building search
// filters, each sorted ascending.
type FilterOptions struct {
	Locations []string
	Services  []string
	Series    []string
	Tags      []string
	Formats   []FileFormat
	Years     []int
}

// CollectFilterOptions extracts the distinct filterable values from a record
// collection.
func CollectFilterOptions(records []SermonRecord) FilterOptions {
	locations := make(map[string]bool)
	services := make(map[string]bool)
	series := make(map[string]bool)
	tags := make(map[string]bool)
	formats := make(map[FileFormat]bool)
	years := make(map[int]bool)

	for _, r := range records {
		for _, d := range r.Deliveries {
			if d.Location != "" {
				locations[d.Location] = true
			}
			for _, svc := range d.Services {
				services[svc] = true
			}
		}
		if r.Series != "" {
			series[r.Series] = true
		}
		for _, tag := range r.Tags {
			tags[tag] = true
		}
		formats[r.FileFormat] = true
		years[r.Year] = true
	}

	opts := FilterOptions{
		Locations: sortedKeys(locations),
		Services:  sortedKeys(services),
		Series:    sortedKeys(series),
		Tags:      sortedKeys(tags),
	}
	for format := range formats {
		opts.Formats = append(opts.Formats, format)
	}
	sort.Slice(opts.Formats, func(i, j int) bool { return opts.Formats[i] < opts.Formats[j] })
	for year := range years {
		opts.Years = append(opts.Years, year)
	}
	sort.Ints(opts.Years)
	return opts
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
