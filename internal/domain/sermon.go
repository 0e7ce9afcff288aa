package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar date format used throughout the vault
// (frontmatter dates, delivery dates, sermon IDs).
const DateLayout = "2006-01-02"

// FileFormat identifies the kind of sermon artifact a record points at.
type FileFormat string

const (
	FormatKeynote    FileFormat = "keynote"
	FormatPages      FileFormat = "pages"
	FormatPDF        FileFormat = "pdf"
	FormatWord       FileFormat = "word"
	FormatPowerPoint FileFormat = "powerpoint"
	FormatNotes      FileFormat = "notes"
	FormatMarkdown   FileFormat = "markdown"
	FormatUnknown    FileFormat = "unknown"
)

var formatByExtension = map[string]FileFormat{
	"key":      FormatKeynote,
	"keynote":  FormatKeynote,
	"pages":    FormatPages,
	"pdf":      FormatPDF,
	"doc":      FormatWord,
	"docx":     FormatWord,
	"ppt":      FormatPowerPoint,
	"pptx":     FormatPowerPoint,
	"txt":      FormatNotes,
	"rtf":      FormatNotes,
	"md":       FormatMarkdown,
	"markdown": FormatMarkdown,
}

// FormatFromFileName detects the file format from a sermon file name.
// Unrecognized or missing extensions map to FormatUnknown.
func FormatFromFileName(fileName string) FileFormat {
	idx := strings.LastIndex(fileName, ".")
	if idx < 0 || idx == len(fileName)-1 {
		return FormatUnknown
	}
	ext := strings.ToLower(fileName[idx+1:])
	if format, ok := formatByExtension[ext]; ok {
		return format
	}
	return FormatUnknown
}

// DisplayName returns a human-readable name for the format
func (f FileFormat) DisplayName() string {
	switch f {
	case FormatKeynote:
		return "Keynote"
	case FormatPages:
		return "Pages"
	case FormatPDF:
		return "PDF"
	case FormatWord:
		return "Word"
	case FormatPowerPoint:
		return "PowerPoint"
	case FormatNotes:
		return "Notes"
	case FormatMarkdown:
		return "Markdown"
	default:
		return "Unknown"
	}
}

// Icon returns a single-glyph marker for the format, used in list views
func (f FileFormat) Icon() string {
	switch f {
	case FormatKeynote:
		return "📊"
	case FormatPages:
		return "📄"
	case FormatPDF:
		return "📕"
	case FormatWord:
		return "📘"
	case FormatPowerPoint:
		return "📙"
	case FormatNotes:
		return "📝"
	case FormatMarkdown:
		return "✍️"
	default:
		return "📎"
	}
}

// SupportedExtensions lists the sermon file extensions the vault accepts
func SupportedExtensions() []string {
	return []string{
		"key", "keynote", "pages", "pdf",
		"doc", "docx", "ppt", "pptx",
		"txt", "rtf", "md", "markdown",
	}
}

// IsSupportedFile reports whether a file name carries a supported extension
func IsSupportedFile(fileName string) bool {
	return FormatFromFileName(fileName) != FormatUnknown
}

// DeliverySession records one occasion a sermon was delivered
type DeliverySession struct {
	Date     string   `json:"date"`
	Location string   `json:"location"`
	Services []string `json:"services"`
}

// SermonRecord is one sermon in the vault: the validated, normalized form
// of a metadata sidecar file.
type SermonRecord struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Date         string            `json:"date"`
	Deliveries   []DeliverySession `json:"deliveries,omitempty"`
	Tags         []string          `json:"tags,omitempty"`
	Series       string            `json:"series,omitempty"`
	References   []string          `json:"references,omitempty"`
	Notes        string            `json:"notes,omitempty"`
	FileFormat   FileFormat        `json:"fileType"`
	FileName     string            `json:"fileName"`
	FilePath     string            `json:"filePath"`
	MetadataPath string            `json:"metadataPath"`
	Year         int               `json:"year"`
}

// DeliveryLocations returns the non-empty locations across all deliveries,
// in delivery order.
func (r *SermonRecord) DeliveryLocations() []string {
	var locations []string
	for _, d := range r.Deliveries {
		if d.Location != "" {
			locations = append(locations, d.Location)
		}
	}
	return locations
}

// DeliveryServices returns every service across all deliveries, in order.
func (r *SermonRecord) DeliveryServices() []string {
	var services []string
	for _, d := range r.Deliveries {
		services = append(services, d.Services...)
	}
	return services
}

// NewSermonID generates a stable unique sermon ID. IDs are assigned once at
// creation and never regenerated.
func NewSermonID() string {
	return "sermon-" + uuid.NewString()
}

// Today returns the current date in the vault's date layout
func Today() string {
	return time.Now().Format(DateLayout)
}

// ValidDate reports whether s is a well-formed calendar date
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// SortByDate sorts records newest-first by primary date. Pass ascending=true
// for oldest-first. Dates use an ISO layout so string comparison is enough.
func SortByDate(records []SermonRecord, ascending bool) {
	sort.SliceStable(records, func(i, j int) bool {
		if ascending {
			return records[i].Date < records[j].Date
		}
		return records[i].Date > records[j].Date
	})
}

// GroupByYear buckets records by their storage year
func GroupByYear(records []SermonRecord) map[int][]SermonRecord {
	grouped := make(map[int][]SermonRecord)
	for _, r := range records {
		grouped[r.Year] = append(grouped[r.Year], r)
	}
	return grouped
}
