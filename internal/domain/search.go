package domain

import "strings"

// SearchFilters is a composable record filter. Every field is optional and
// all present fields AND together. A nil slice imposes no constraint; a
// non-nil empty slice is an empty membership set and matches nothing.
// YearFrom/YearTo of zero leave that bound open.
type SearchFilters struct {
	Query     string
	Formats   []FileFormat
	Locations []string
	Services  []string
	Series    []string
	Tags      []string
	YearFrom  int
	YearTo    int
}

// IsZero reports whether the filter imposes no constraints at all
func (f SearchFilters) IsZero() bool {
	return f.Query == "" &&
		f.Formats == nil &&
		f.Locations == nil &&
		f.Services == nil &&
		f.Tags == nil &&
		f.Series == nil &&
		f.YearFrom == 0 &&
		f.YearTo == 0
}

// Search filters a record collection. It never mutates its input and
// preserves the relative order of matching records.
func Search(records []SermonRecord, filters SearchFilters) []SermonRecord {
	var matched []SermonRecord
	for _, r := range records {
		if matchesFilters(&r, filters) {
			matched = append(matched, r)
		}
	}
	return matched
}

func matchesFilters(r *SermonRecord, f SearchFilters) bool {
	if f.Query != "" && !matchesQuery(r, f.Query) {
		return false
	}

	if f.Formats != nil && !containsFormat(f.Formats, r.FileFormat) {
		return false
	}

	if f.Locations != nil && !anyIn(r.DeliveryLocations(), f.Locations) {
		return false
	}

	if f.Services != nil && !anyIn(r.DeliveryServices(), f.Services) {
		return false
	}

	if f.Series != nil {
		if r.Series == "" || !contains(f.Series, r.Series) {
			return false
		}
	}

	if f.Tags != nil && !anyIn(r.Tags, f.Tags) {
		return false
	}

	if f.YearFrom != 0 && r.Year < f.YearFrom {
		return false
	}
	if f.YearTo != 0 && r.Year > f.YearTo {
		return false
	}

	return true
}

// matchesQuery does a case-insensitive substring match against the record's
// searchable text: title, delivery locations and services, tags, references,
// and notes.
func matchesQuery(r *SermonRecord, query string) bool {
	parts := []string{r.Title}
	parts = append(parts, r.DeliveryLocations()...)
	parts = append(parts, r.DeliveryServices()...)
	parts = append(parts, r.Tags...)
	parts = append(parts, r.References...)
	parts = append(parts, r.Notes)

	haystack := strings.ToLower(strings.Join(parts, " "))
	return strings.Contains(haystack, strings.ToLower(query))
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

func containsFormat(set []FileFormat, value FileFormat) bool {
	for _, f := range set {
		if f == value {
			return true
		}
	}
	return false
}

// anyIn reports whether any of values is a member of set
func anyIn(values, set []string) bool {
	for _, v := range values {
		if contains(set, v) {
			return true
		}
	}
	return false
}
