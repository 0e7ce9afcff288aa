package domain

import "testing"

func searchFixture() []SermonRecord {
	return []SermonRecord{
		{
			ID:         "s1",
			Title:      "Grace Abounds",
			Date:       "2024-01-05",
			Year:       2024,
			FileFormat: FormatKeynote,
			Tags:       []string{"grace", "faith"},
			Series:     "New Year 2024",
			Deliveries: []DeliverySession{
				{Date: "2024-01-05", Location: "GBI Haleluya", Services: []string{"Raya 1"}},
			},
		},
		{
			ID:         "s2",
			Title:      "Walking in Love",
			Date:       "2024-03-10",
			Year:       2024,
			FileFormat: FormatMarkdown,
			Tags:       []string{"love"},
			References: []string{"1 Cor 13"},
			Deliveries: []DeliverySession{
				{Date: "2024-03-10", Location: "GBI Kristus", Services: []string{"Youth Service"}},
			},
		},
		{
			ID:         "s3",
			Title:      "Hope Restored",
			Date:       "2025-04-20",
			Year:       2025,
			FileFormat: FormatPDF,
			Notes:      "Easter message on grace and hope",
		},
	}
}

func TestSearch_Query(t *testing.T) {
	records := searchFixture()

	t.Run("matches title case-insensitively", func(t *testing.T) {
		got := Search(records, SearchFilters{Query: "GRACE"})
		if len(got) != 2 {
			t.Fatalf("expected 2 matches, got %d", len(got))
		}
		if got[0].ID != "s1" || got[1].ID != "s3" {
			t.Errorf("expected s1,s3 in input order, got %s,%s", got[0].ID, got[1].ID)
		}
	})

	t.Run("matches delivery location", func(t *testing.T) {
		got := Search(records, SearchFilters{Query: "haleluya"})
		if len(got) != 1 || got[0].ID != "s1" {
			t.Fatalf("expected only s1, got %v", ids(got))
		}
	})

	t.Run("matches delivery service", func(t *testing.T) {
		got := Search(records, SearchFilters{Query: "youth"})
		if len(got) != 1 || got[0].ID != "s2" {
			t.Fatalf("expected only s2, got %v", ids(got))
		}
	})

	t.Run("matches references", func(t *testing.T) {
		got := Search(records, SearchFilters{Query: "1 cor"})
		if len(got) != 1 || got[0].ID != "s2" {
			t.Fatalf("expected only s2, got %v", ids(got))
		}
	})

	t.Run("matches notes", func(t *testing.T) {
		got := Search(records, SearchFilters{Query: "easter"})
		if len(got) != 1 || got[0].ID != "s3" {
			t.Fatalf("expected only s3, got %v", ids(got))
		}
	})

	t.Run("empty query passes all", func(t *testing.T) {
		got := Search(records, SearchFilters{})
		if len(got) != len(records) {
			t.Errorf("expected all %d records, got %d", len(records), len(got))
		}
	})
}

func TestSearch_Filters(t *testing.T) {
	records := searchFixture()

	t.Run("format membership", func(t *testing.T) {
		got := Search(records, SearchFilters{Formats: []FileFormat{FormatPDF, FormatMarkdown}})
		if len(got) != 2 {
			t.Fatalf("expected 2 matches, got %d", len(got))
		}
	})

	t.Run("location matches any delivery", func(t *testing.T) {
		got := Search(records, SearchFilters{Locations: []string{"GBI Kristus"}})
		if len(got) != 1 || got[0].ID != "s2" {
			t.Fatalf("expected only s2, got %v", ids(got))
		}
	})

	t.Run("service matches any delivery", func(t *testing.T) {
		got := Search(records, SearchFilters{Services: []string{"Raya 1", "Raya 2"}})
		if len(got) != 1 || got[0].ID != "s1" {
			t.Fatalf("expected only s1, got %v", ids(got))
		}
	})

	t.Run("series filter rejects records without series", func(t *testing.T) {
		got := Search(records, SearchFilters{Series: []string{"New Year 2024"}})
		if len(got) != 1 || got[0].ID != "s1" {
			t.Fatalf("expected only s1, got %v", ids(got))
		}
	})

	t.Run("tag intersects", func(t *testing.T) {
		got := Search(records, SearchFilters{Tags: []string{"faith", "hope"}})
		if len(got) != 1 || got[0].ID != "s1" {
			t.Fatalf("expected only s1, got %v", ids(got))
		}
	})

	t.Run("year range inclusive", func(t *testing.T) {
		got := Search(records, SearchFilters{YearFrom: 2024, YearTo: 2024})
		if len(got) != 2 {
			t.Fatalf("expected 2 matches, got %d", len(got))
		}

		got = Search(records, SearchFilters{YearFrom: 2025})
		if len(got) != 1 || got[0].ID != "s3" {
			t.Fatalf("expected only s3, got %v", ids(got))
		}
	})

	t.Run("nil slice imposes no constraint, empty slice rejects", func(t *testing.T) {
		got := Search(records, SearchFilters{Locations: nil})
		if len(got) != len(records) {
			t.Errorf("nil filter: expected all records, got %d", len(got))
		}

		got = Search(records, SearchFilters{Locations: []string{}})
		if len(got) != 0 {
			t.Errorf("empty filter: expected no records, got %d", len(got))
		}
	})
}

func TestSearch_ANDComposition(t *testing.T) {
	records := searchFixture()

	textOnly := Search(records, SearchFilters{Query: "grace"})
	formatOnly := Search(records, SearchFilters{Formats: []FileFormat{FormatKeynote}})
	both := Search(records, SearchFilters{Query: "grace", Formats: []FileFormat{FormatKeynote}})

	// combined result must equal the intersection of the individual results
	for _, r := range both {
		if !contains(ids(textOnly), r.ID) || !contains(ids(formatOnly), r.ID) {
			t.Errorf("record %s in combined result but not in both partial results", r.ID)
		}
	}
	if len(both) != 1 || both[0].ID != "s1" {
		t.Fatalf("expected intersection {s1}, got %v", ids(both))
	}
}

func TestSearch_DoesNotMutateInput(t *testing.T) {
	records := searchFixture()
	Search(records, SearchFilters{Query: "grace"})

	if records[0].ID != "s1" || records[1].ID != "s2" || records[2].ID != "s3" {
		t.Error("input order changed after search")
	}
}

func ids(records []SermonRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}
