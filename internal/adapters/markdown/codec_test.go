package markdown

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"sermonvault/internal/domain"
)

const sampleMetadata = `---
id: s1
title: "Grace Abounds"
date: 2024-01-05
deliveries: [{"date":"2024-01-05","location":"GBI Haleluya","services":["Raya 1","Raya 2"]}]
series: "New Year 2024"
tags: [grace, faith]
references: [John 3:16, Rom 5:1]
---

Opening illustration about the prodigal son.
`

func TestParseRecord(t *testing.T) {
	record, err := ParseRecord(sampleMetadata, "/vault/2024/Grace Abounds.key.md")
	if err != nil {
		t.Fatalf("ParseRecord failed: %v", err)
	}

	if record.ID != "s1" {
		t.Errorf("expected id s1, got %s", record.ID)
	}
	if record.Title != "Grace Abounds" {
		t.Errorf("expected title Grace Abounds, got %s", record.Title)
	}
	if record.Date != "2024-01-05" {
		t.Errorf("expected date 2024-01-05, got %s", record.Date)
	}
	if record.Series != "New Year 2024" {
		t.Errorf("expected series, got %q", record.Series)
	}
	if !reflect.DeepEqual(record.Tags, []string{"grace", "faith"}) {
		t.Errorf("unexpected tags: %v", record.Tags)
	}
	if !reflect.DeepEqual(record.References, []string{"John 3:16", "Rom 5:1"}) {
		t.Errorf("unexpected references: %v", record.References)
	}
	if record.Notes != "Opening illustration about the prodigal son." {
		t.Errorf("unexpected notes: %q", record.Notes)
	}

	if len(record.Deliveries) != 1 {
		t.Fatalf("expected 1 delivery, got %d", len(record.Deliveries))
	}
	d := record.Deliveries[0]
	if d.Location != "GBI Haleluya" {
		t.Errorf("unexpected delivery location: %s", d.Location)
	}
	if !reflect.DeepEqual(d.Services, []string{"Raya 1", "Raya 2"}) {
		t.Errorf("unexpected delivery services: %v", d.Services)
	}

	// derived fields
	if record.FileFormat != domain.FormatKeynote {
		t.Errorf("expected keynote format, got %s", record.FileFormat)
	}
	if record.FileName != "Grace Abounds.key" {
		t.Errorf("expected sidecar suffix stripped, got %s", record.FileName)
	}
	if record.FilePath != "/vault/2024/Grace Abounds.key" {
		t.Errorf("unexpected file path: %s", record.FilePath)
	}
	if record.Year != 2024 {
		t.Errorf("expected year 2024 from directory, got %d", record.Year)
	}
}

func TestParseRecord_ByteOrderMark(t *testing.T) {
	record, err := ParseRecord("\ufeff"+sampleMetadata, "/vault/2024/Grace Abounds.key.md")
	if err != nil {
		t.Fatalf("ParseRecord failed on BOM-prefixed content: %v", err)
	}
	if record.ID != "s1" {
		t.Errorf("expected id s1, got %s", record.ID)
	}
}

func TestParseRecord_RequiredFields(t *testing.T) {
	t.Run("missing id is rejected", func(t *testing.T) {
		content := "---\ntitle: \"No ID\"\ndate: 2024-01-05\n---\n"
		_, err := ParseRecord(content, "/vault/2024/x.pdf.md")
		if !errors.Is(err, ErrMissingID) {
			t.Errorf("expected ErrMissingID, got %v", err)
		}
	})

	t.Run("missing title is rejected", func(t *testing.T) {
		content := "---\nid: s9\ndate: 2024-01-05\n---\n"
		_, err := ParseRecord(content, "/vault/2024/x.pdf.md")
		if !errors.Is(err, ErrMissingTitle) {
			t.Errorf("expected ErrMissingTitle, got %v", err)
		}
	})

	t.Run("missing date defaults to today", func(t *testing.T) {
		content := "---\nid: s9\ntitle: \"Undated\"\n---\n"
		record, err := ParseRecord(content, "/vault/2024/x.pdf.md")
		if err != nil {
			t.Fatalf("expected record despite missing date, got %v", err)
		}
		if record.Date != domain.Today() {
			t.Errorf("expected today's date, got %s", record.Date)
		}
	})

	t.Run("unparseable date defaults to today", func(t *testing.T) {
		content := "---\nid: s9\ntitle: \"Bad Date\"\ndate: sometime last year\n---\n"
		record, err := ParseRecord(content, "/vault/2024/x.pdf.md")
		if err != nil {
			t.Fatalf("expected record despite bad date, got %v", err)
		}
		if record.Date != domain.Today() {
			t.Errorf("expected today's date, got %s", record.Date)
		}
	})

	t.Run("no frontmatter is rejected", func(t *testing.T) {
		_, err := ParseRecord("just some text", "/vault/2024/x.pdf.md")
		if !errors.Is(err, ErrNoFrontmatter) {
			t.Errorf("expected ErrNoFrontmatter, got %v", err)
		}
	})
}

func TestParseRecord_LegacyDeliveries(t *testing.T) {
	t.Run("singular service lifted into services", func(t *testing.T) {
		content := "---\n" +
			"id: s1\n" +
			"title: \"Legacy\"\n" +
			"date: 2023-12-25\n" +
			`deliveries: [{"date":"2023-12-25","location":"GBI Haleluya","service":"Raya 1"}]` + "\n" +
			"---\n"
		record, err := ParseRecord(content, "/vault/2023/x.key.md")
		if err != nil {
			t.Fatalf("ParseRecord failed: %v", err)
		}
		if len(record.Deliveries) != 1 {
			t.Fatalf("expected 1 delivery, got %d", len(record.Deliveries))
		}
		if !reflect.DeepEqual(record.Deliveries[0].Services, []string{"Raya 1"}) {
			t.Errorf("expected service lifted to [Raya 1], got %v", record.Deliveries[0].Services)
		}
	})

	t.Run("missing services coerced to empty list", func(t *testing.T) {
		content := "---\n" +
			"id: s1\n" +
			"title: \"Legacy\"\n" +
			"date: 2023-12-25\n" +
			`deliveries: [{"date":"2023-12-25","location":"GBI Haleluya"}]` + "\n" +
			"---\n"
		record, err := ParseRecord(content, "/vault/2023/x.key.md")
		if err != nil {
			t.Fatalf("ParseRecord failed: %v", err)
		}
		if record.Deliveries[0].Services == nil {
			t.Error("expected services to be an empty list, got nil")
		}
		if len(record.Deliveries[0].Services) != 0 {
			t.Errorf("expected empty services, got %v", record.Deliveries[0].Services)
		}
	})

	t.Run("undecodable deliveries string becomes empty list", func(t *testing.T) {
		content := "---\n" +
			"id: s1\n" +
			"title: \"Broken\"\n" +
			"date: 2023-12-25\n" +
			"deliveries: \"not json at all\"\n" +
			"---\n"
		record, err := ParseRecord(content, "/vault/2023/x.key.md")
		if err != nil {
			t.Fatalf("ParseRecord failed: %v", err)
		}
		if record.Deliveries == nil || len(record.Deliveries) != 0 {
			t.Errorf("expected empty delivery list, got %v", record.Deliveries)
		}
	})
}

func TestParseRecord_YearFromDirectory(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"/vault/2024/a.key.md", 2024},
		{"/vault/unsorted/a.key.md", 0},
		{"/vault/a.key.md", 0},
	}

	for _, tt := range tests {
		content := "---\nid: s1\ntitle: \"T\"\ndate: 2024-01-01\n---\n"
		record, err := ParseRecord(content, tt.path)
		if err != nil {
			t.Fatalf("ParseRecord(%s) failed: %v", tt.path, err)
		}
		if record.Year != tt.want {
			t.Errorf("ParseRecord(%s).Year = %d, want %d", tt.path, record.Year, tt.want)
		}
	}
}

func TestSerializeRecord_RoundTrip(t *testing.T) {
	original := &domain.SermonRecord{
		ID:    "s1",
		Title: "Grace Abounds",
		Date:  "2024-01-05",
		Deliveries: []domain.DeliverySession{
			{Date: "2024-01-05", Location: "GBI Haleluya", Services: []string{"Raya 1"}},
		},
		Tags:       []string{"grace", "faith"},
		Series:     "New Year 2024",
		References: []string{"John 3:16"},
		Notes:      "Closing prayer notes.",
	}

	serialized := SerializeRecord(original)
	parsed, err := ParseRecord(serialized, "/vault/2024/Grace Abounds.key.md")
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}

	if parsed.ID != original.ID ||
		parsed.Title != original.Title ||
		parsed.Date != original.Date ||
		parsed.Series != original.Series ||
		parsed.Notes != original.Notes {
		t.Errorf("scalar fields did not survive round trip: %+v", parsed)
	}
	if !reflect.DeepEqual(parsed.Tags, original.Tags) {
		t.Errorf("tags did not survive round trip: %v", parsed.Tags)
	}
	if !reflect.DeepEqual(parsed.References, original.References) {
		t.Errorf("references did not survive round trip: %v", parsed.References)
	}
	if !reflect.DeepEqual(parsed.Deliveries, original.Deliveries) {
		t.Errorf("deliveries did not survive round trip: %v", parsed.Deliveries)
	}

	// serialization is deterministic
	if SerializeRecord(original) != serialized {
		t.Error("expected identical output for repeated serialization")
	}
}

func TestSerializeRecord_OmitsEmptyOptionalFields(t *testing.T) {
	record := &domain.SermonRecord{ID: "s1", Title: "Bare", Date: "2024-01-05"}
	out := SerializeRecord(record)

	for _, field := range []string{"deliveries:", "series:", "tags:", "references:"} {
		if strings.Contains(out, field) {
			t.Errorf("expected %s to be omitted, got:\n%s", field, out)
		}
	}
}

func TestMetadataFileName(t *testing.T) {
	if got := MetadataFileName("Sermon.key"); got != "Sermon.key.md" {
		t.Errorf("MetadataFileName = %s", got)
	}
	if !IsMetadataFile("Sermon.key.md") {
		t.Error("expected Sermon.key.md to be a metadata file")
	}
	if IsMetadataFile("Sermon.key") {
		t.Error("expected Sermon.key not to be a metadata file")
	}
}
