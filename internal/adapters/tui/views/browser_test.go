package views

import (
	"strings"
	"testing"

	"sermonvault/internal/domain"
)

func snapshotFixture() *domain.IndexSnapshot {
	sermons := []domain.SermonRecord{
		{ID: "a", Title: "Grace Abounds", Date: "2024-01-07", Year: 2024, FileFormat: domain.FormatKeynote},
		{ID: "b", Title: "Walking in Love", Date: "2024-06-02", Year: 2024, FileFormat: domain.FormatPDF},
		{ID: "c", Title: "Hope Restored", Date: "2025-03-09", Year: 2025, FileFormat: domain.FormatMarkdown},
	}
	return &domain.IndexSnapshot{
		Sermons:    sermons,
		TotalCount: len(sermons),
		Stats:      domain.AggregateStats(sermons),
	}
}

func TestBrowserRows_GroupedByYearNewestFirst(t *testing.T) {
	m := NewBrowserModel(nil)
	m.snapshot = snapshotFixture()
	m.refreshRows()

	// 2 year headers + 3 sermons
	if len(m.rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(m.rows))
	}

	if !m.rows[0].isHeader() || m.rows[0].year != 2025 {
		t.Errorf("expected 2025 header first, got %+v", m.rows[0])
	}
	if m.rows[1].record == nil || m.rows[1].record.ID != "c" {
		t.Errorf("expected sermon c under 2025, got %+v", m.rows[1])
	}
	if !m.rows[2].isHeader() || m.rows[2].year != 2024 {
		t.Errorf("expected 2024 header third, got %+v", m.rows[2])
	}
	// within a year, newest first
	if m.rows[3].record == nil || m.rows[3].record.ID != "b" {
		t.Errorf("expected sermon b before a in 2024, got %+v", m.rows[3])
	}
}

func TestBrowserCursor_SkipsYearHeaders(t *testing.T) {
	m := NewBrowserModel(nil)
	m.snapshot = snapshotFixture()
	m.refreshRows()

	// cursor starts on the first sermon, not the 2025 header
	if m.cursor != 1 {
		t.Fatalf("expected cursor at 1, got %d", m.cursor)
	}

	m.moveCursor(1)
	if m.cursor != 3 {
		t.Errorf("expected cursor to skip the 2024 header to 3, got %d", m.cursor)
	}

	m.moveCursor(-1)
	if m.cursor != 1 {
		t.Errorf("expected cursor back at 1, got %d", m.cursor)
	}

	// moving up from the first sermon stays put
	m.moveCursor(-1)
	if m.cursor != 1 {
		t.Errorf("expected cursor clamped at 1, got %d", m.cursor)
	}
}

func TestBrowserSelectedRecord(t *testing.T) {
	m := NewBrowserModel(nil)
	m.snapshot = snapshotFixture()
	m.refreshRows()

	r := m.selectedRecord()
	if r == nil || r.ID != "c" {
		t.Fatalf("expected sermon c selected, got %+v", r)
	}
}

func TestBrowserRenderRow_TagsShownOnSelectedRow(t *testing.T) {
	m := NewBrowserModel(nil)
	record := domain.SermonRecord{
		ID:         "a",
		Title:      "Grace Abounds",
		Date:       "2024-01-07",
		FileFormat: domain.FormatKeynote,
		Tags:       []string{"grace", "faith"},
	}
	row := browserRow{record: &record}

	for _, selected := range []bool{false, true} {
		got := m.renderRow(row, selected)
		if !strings.Contains(got, "#grace #faith") {
			t.Errorf("selected=%v: expected tags in row, got %q", selected, got)
		}
	}
}

func TestSummarizeRecord(t *testing.T) {
	r := domain.SermonRecord{
		Title: "Grace Abounds",
		Deliveries: []domain.DeliverySession{
			{Location: "GBI Haleluya", Services: []string{"Raya 1"}},
			{Location: "GBI Kristus"},
		},
	}

	got := summarizeRecord(r)
	want := "Grace Abounds  @ GBI Haleluya, GBI Kristus"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
