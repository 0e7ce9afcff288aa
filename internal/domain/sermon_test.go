package domain

import (
	"strings"
	"testing"
)

func TestFormatFromFileName(t *testing.T) {
	tests := []struct {
		fileName string
		want     FileFormat
	}{
		{"Kelimpahan Sejati.key", FormatKeynote},
		{"sermon.keynote", FormatKeynote},
		{"outline.pages", FormatPages},
		{"grace.pdf", FormatPDF},
		{"notes.doc", FormatWord},
		{"notes.docx", FormatWord},
		{"slides.ppt", FormatPowerPoint},
		{"slides.pptx", FormatPowerPoint},
		{"draft.txt", FormatNotes},
		{"draft.rtf", FormatNotes},
		{"outline.md", FormatMarkdown},
		{"outline.markdown", FormatMarkdown},
		{"Sermon.KEY", FormatKeynote},
		{"archive.zip", FormatUnknown},
		{"noextension", FormatUnknown},
		{"trailingdot.", FormatUnknown},
		{"", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			if got := FormatFromFileName(tt.fileName); got != tt.want {
				t.Errorf("FormatFromFileName(%q) = %s, want %s", tt.fileName, got, tt.want)
			}
		})
	}
}

func TestIsSupportedFile(t *testing.T) {
	if !IsSupportedFile("sermon.pdf") {
		t.Error("expected sermon.pdf to be supported")
	}
	if IsSupportedFile("image.png") {
		t.Error("expected image.png to be unsupported")
	}
}

func TestDeliveryAccessors(t *testing.T) {
	record := SermonRecord{
		Deliveries: []DeliverySession{
			{Date: "2024-01-05", Location: "GBI Haleluya", Services: []string{"Raya 1", "Raya 2"}},
			{Date: "2024-01-12", Location: "", Services: []string{"Youth Service"}},
			{Date: "2024-01-19", Location: "GBI Kristus", Services: nil},
		},
	}

	locations := record.DeliveryLocations()
	if len(locations) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(locations))
	}
	if locations[0] != "GBI Haleluya" || locations[1] != "GBI Kristus" {
		t.Errorf("unexpected locations: %v", locations)
	}

	services := record.DeliveryServices()
	if len(services) != 3 {
		t.Fatalf("expected 3 services, got %d", len(services))
	}
	if services[2] != "Youth Service" {
		t.Errorf("expected services in delivery order, got %v", services)
	}
}

func TestNewSermonID(t *testing.T) {
	id := NewSermonID()
	if !strings.HasPrefix(id, "sermon-") {
		t.Errorf("expected sermon- prefix, got %s", id)
	}
	if id == NewSermonID() {
		t.Error("expected unique IDs")
	}
}

func TestValidDate(t *testing.T) {
	if !ValidDate("2024-01-05") {
		t.Error("expected 2024-01-05 to be valid")
	}
	if ValidDate("05/01/2024") {
		t.Error("expected 05/01/2024 to be invalid")
	}
	if ValidDate("") {
		t.Error("expected empty date to be invalid")
	}
}

func TestSortByDate(t *testing.T) {
	records := []SermonRecord{
		{ID: "a", Date: "2023-06-01"},
		{ID: "b", Date: "2025-01-15"},
		{ID: "c", Date: "2024-12-25"},
	}

	SortByDate(records, false)
	if records[0].ID != "b" || records[1].ID != "c" || records[2].ID != "a" {
		t.Errorf("expected newest-first order b,c,a, got %s,%s,%s",
			records[0].ID, records[1].ID, records[2].ID)
	}

	SortByDate(records, true)
	if records[0].ID != "a" {
		t.Errorf("expected oldest-first order to start with a, got %s", records[0].ID)
	}
}

func TestGroupByYear(t *testing.T) {
	records := []SermonRecord{
		{ID: "a", Year: 2024},
		{ID: "b", Year: 2025},
		{ID: "c", Year: 2024},
	}

	grouped := GroupByYear(records)
	if len(grouped) != 2 {
		t.Fatalf("expected 2 year buckets, got %d", len(grouped))
	}
	if len(grouped[2024]) != 2 {
		t.Errorf("expected 2 records in 2024, got %d", len(grouped[2024]))
	}
	if len(grouped[2025]) != 1 {
		t.Errorf("expected 1 record in 2025, got %d", len(grouped[2025]))
	}
}
