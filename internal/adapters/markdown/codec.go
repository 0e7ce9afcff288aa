// Package markdown encodes and decodes sermon metadata sidecar files.
//
// A sidecar is named after the sermon artifact with a .md suffix appended
// ("Kelimpahan Sejati.key" -> "Kelimpahan Sejati.key.md") and carries a
// frontmatter block between --- lines followed by a free-text body used as
// the sermon's notes.
package markdown

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"sermonvault/internal/domain"
)

// MetadataSuffix is the extension appended to a sermon file name to form its
// sidecar name.
const MetadataSuffix = ".md"

// Sentinel errors for records that must be skipped during a scan
var (
	ErrNoFrontmatter = errors.New("no frontmatter block")
	ErrMissingID     = errors.New("missing id")
	ErrMissingTitle  = errors.New("missing title")
)

const frontmatterDelimiter = "---"

// ParseRecord parses one sidecar file's content into a validated, normalized
// record. The frontmatter is first decoded into a permissive key/value map,
// then coerced into the typed record: records without an id or title are
// rejected; a missing or invalid date is defaulted to today with a warning.
func ParseRecord(content, metadataPath string) (*domain.SermonRecord, error) {
	raw, body, err := splitFrontmatter(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", metadataPath, err)
	}

	fields := map[string]any{}
	if err := yaml.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("%s: invalid frontmatter: %w", metadataPath, err)
	}

	id := stringField(fields, "id")
	if id == "" {
		return nil, fmt.Errorf("%s: %w", metadataPath, ErrMissingID)
	}

	title := stringField(fields, "title")
	if title == "" {
		return nil, fmt.Errorf("%s: %w", metadataPath, ErrMissingTitle)
	}

	date := stringField(fields, "date")
	if !domain.ValidDate(date) {
		slog.Warn("missing or invalid date, defaulting to today",
			slog.String("path", metadataPath),
			slog.String("date", date))
		date = domain.Today()
	}

	fileName := strings.TrimSuffix(filepath.Base(metadataPath), MetadataSuffix)
	dir := filepath.Dir(metadataPath)

	record := &domain.SermonRecord{
		ID:           id,
		Title:        title,
		Date:         date,
		Deliveries:   normalizeDeliveries(fields["deliveries"]),
		Tags:         stringListField(fields, "tags"),
		Series:       stringField(fields, "series"),
		References:   stringListField(fields, "references"),
		Notes:        strings.TrimSpace(body),
		FileFormat:   domain.FormatFromFileName(fileName),
		FileName:     fileName,
		FilePath:     filepath.Join(dir, fileName),
		MetadataPath: metadataPath,
		Year:         yearFromDir(dir),
	}

	return record, nil
}

// SerializeRecord renders a record back into sidecar text. Deliveries are
// stored as a JSON array on one frontmatter line, matching the format the
// desktop app has always written. Output is deterministic for a given record.
func SerializeRecord(r *domain.SermonRecord) string {
	var b strings.Builder

	b.WriteString(frontmatterDelimiter + "\n")
	fmt.Fprintf(&b, "id: %s\n", r.ID)
	fmt.Fprintf(&b, "title: %q\n", r.Title)
	fmt.Fprintf(&b, "date: %s\n", r.Date)

	if len(r.Deliveries) > 0 {
		deliveries := make([]domain.DeliverySession, len(r.Deliveries))
		for i, d := range r.Deliveries {
			if d.Services == nil {
				d.Services = []string{}
			}
			deliveries[i] = d
		}
		encoded, err := json.Marshal(deliveries)
		if err == nil {
			fmt.Fprintf(&b, "deliveries: %s\n", encoded)
		}
	}

	if r.Series != "" {
		fmt.Fprintf(&b, "series: %q\n", r.Series)
	}
	if len(r.Tags) > 0 {
		fmt.Fprintf(&b, "tags: [%s]\n", strings.Join(r.Tags, ", "))
	}
	if len(r.References) > 0 {
		fmt.Fprintf(&b, "references: [%s]\n", strings.Join(r.References, ", "))
	}

	b.WriteString(frontmatterDelimiter + "\n")
	b.WriteString("\n")
	b.WriteString(r.Notes)
	b.WriteString("\n")

	return b.String()
}

// MetadataFileName returns the sidecar name for a sermon file name
func MetadataFileName(sermonFileName string) string {
	return sermonFileName + MetadataSuffix
}

// IsMetadataFile reports whether a path names a metadata sidecar
func IsMetadataFile(path string) bool {
	return strings.HasSuffix(path, MetadataSuffix)
}

// splitFrontmatter separates the frontmatter block from the body
func splitFrontmatter(content string) (frontmatter, body string, err error) {
	content = strings.TrimPrefix(content, "\uFEFF")
	if !strings.HasPrefix(content, frontmatterDelimiter+"\n") &&
		content != frontmatterDelimiter {
		return "", "", ErrNoFrontmatter
	}

	rest := strings.TrimPrefix(content, frontmatterDelimiter+"\n")
	end := strings.Index(rest, "\n"+frontmatterDelimiter)
	if end < 0 {
		return "", "", ErrNoFrontmatter
	}

	frontmatter = rest[:end]
	body = rest[end+len("\n"+frontmatterDelimiter):]
	body = strings.TrimPrefix(body, "\n")
	return frontmatter, body, nil
}

// normalizeDeliveries coerces the loosely-typed deliveries value into a
// clean list. It accepts the structured YAML form and the legacy
// JSON-encoded-string form, and lifts the legacy singular "service" field
// into a one-element "services" list. Anything undecodable becomes an empty
// list rather than an error.
func normalizeDeliveries(value any) []domain.DeliverySession {
	if value == nil {
		return nil
	}

	var entries []map[string]any

	switch v := value.(type) {
	case string:
		if err := json.Unmarshal([]byte(v), &entries); err != nil {
			slog.Warn("failed to decode deliveries JSON, dropping",
				slog.String("error", err.Error()))
			return []domain.DeliverySession{}
		}
	case []any:
		for _, item := range v {
			if entry, ok := toStringKeyMap(item); ok {
				entries = append(entries, entry)
			}
		}
	default:
		return []domain.DeliverySession{}
	}

	deliveries := make([]domain.DeliverySession, 0, len(entries))
	for _, entry := range entries {
		deliveries = append(deliveries, normalizeDelivery(entry))
	}
	return deliveries
}

func normalizeDelivery(entry map[string]any) domain.DeliverySession {
	d := domain.DeliverySession{
		Date:     stringField(entry, "date"),
		Location: stringField(entry, "location"),
		Services: []string{},
	}

	switch services := entry["services"].(type) {
	case []any:
		for _, s := range services {
			if str, ok := s.(string); ok {
				d.Services = append(d.Services, str)
			}
		}
	case []string:
		d.Services = append(d.Services, services...)
	default:
		// legacy form: singular "service" without "services"
		if service := stringField(entry, "service"); service != "" {
			d.Services = []string{service}
		}
	}

	return d
}

// toStringKeyMap converts a decoded YAML/JSON mapping to string keys
func toStringKeyMap(value any) (map[string]any, bool) {
	switch m := value.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = v
		}
		return out, true
	default:
		return nil, false
	}
}

func stringField(fields map[string]any, key string) string {
	switch v := fields[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case int:
		return strconv.Itoa(v)
	case time.Time:
		// yaml resolves unquoted ISO dates to timestamps
		return v.Format(domain.DateLayout)
	default:
		return ""
	}
}

func stringListField(fields map[string]any, key string) []string {
	list, ok := fields[key].([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// yearFromDir derives the storage year from the metadata file's parent
// directory name. An unparseable or negative name coerces to 0.
func yearFromDir(dir string) int {
	year, err := strconv.Atoi(filepath.Base(dir))
	if err != nil || year < 0 {
		return 0
	}
	return year
}
