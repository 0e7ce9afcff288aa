package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"sermonvault/internal/adapters/markdown"
	"sermonvault/internal/application"
	"sermonvault/internal/domain"
	"sermonvault/internal/ports"
)

// ImportSermonCommand copies a sermon file into the vault's year folder and
// writes its metadata sidecar
type ImportSermonCommand struct {
	fs        ports.FileSystem
	VaultPath string

	SourcePath string
	Title      string
	Date       string // defaults to today when empty
	Tags       []string
	Series     string
	References []string
	Notes      string
	Deliveries []domain.DeliverySession
}

// ImportResult contains the result of importing a sermon
type ImportResult struct {
	Record  *domain.SermonRecord
	Message string
}

// NewImportSermonCommand creates a new ImportSermonCommand
func NewImportSermonCommand(fs ports.FileSystem, vaultPath, sourcePath, title string) *ImportSermonCommand {
	return &ImportSermonCommand{
		fs:         fs,
		VaultPath:  vaultPath,
		SourcePath: sourcePath,
		Title:      title,
	}
}

// Validate checks if the import is valid
func (c *ImportSermonCommand) Validate() error {
	if err := application.ValidateRequired("sourcePath", c.SourcePath); err != nil {
		return err
	}
	if err := application.ValidateRequired("title", c.Title); err != nil {
		return err
	}
	if err := application.ValidateSupportedFile("sourcePath", filepath.Base(c.SourcePath)); err != nil {
		return err
	}
	if c.Date != "" {
		if err := application.ValidateDate("date", c.Date); err != nil {
			return err
		}
	}
	if !c.fs.PathExists(c.SourcePath) {
		return &application.ImportError{Path: c.SourcePath, Reason: "file does not exist"}
	}
	return nil
}

// Execute copies the sermon file into <vault>/<year>/ and writes the
// <name>.<ext>.md sidecar next to it
func (c *ImportSermonCommand) Execute(ctx context.Context) (*ImportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	date := c.Date
	if date == "" {
		date = domain.Today()
	}
	year := yearOf(date)

	fileName := filepath.Base(c.SourcePath)
	yearDir := filepath.Join(c.VaultPath, strconv.Itoa(year))
	targetPath := filepath.Join(yearDir, fileName)
	metadataPath := filepath.Join(yearDir, markdown.MetadataFileName(fileName))

	record := &domain.SermonRecord{
		ID:           domain.NewSermonID(),
		Title:        strings.TrimSpace(c.Title),
		Date:         date,
		Deliveries:   c.Deliveries,
		Tags:         c.Tags,
		Series:       c.Series,
		References:   c.References,
		Notes:        c.Notes,
		FileFormat:   domain.FormatFromFileName(fileName),
		FileName:     fileName,
		FilePath:     targetPath,
		MetadataPath: metadataPath,
		Year:         year,
	}

	if err := c.fs.CopyFile(c.SourcePath, targetPath); err != nil {
		return nil, fmt.Errorf("failed to copy sermon file: %w", err)
	}

	if err := c.fs.WriteText(metadataPath, markdown.SerializeRecord(record)); err != nil {
		return nil, fmt.Errorf("failed to write metadata: %w", err)
	}

	return &ImportResult{
		Record:  record,
		Message: fmt.Sprintf("Imported %s into %d", fileName, year),
	}, nil
}

func yearOf(date string) int {
	parsed, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return time.Now().Year()
	}
	return parsed.Year()
}

// UpdateMetadataCommand rewrites a sermon's sidecar from its record
type UpdateMetadataCommand struct {
	fs     ports.FileSystem
	Record *domain.SermonRecord
}

// NewUpdateMetadataCommand creates a new UpdateMetadataCommand
func NewUpdateMetadataCommand(fs ports.FileSystem, record *domain.SermonRecord) *UpdateMetadataCommand {
	return &UpdateMetadataCommand{fs: fs, Record: record}
}

// Validate checks if the update is valid
func (c *UpdateMetadataCommand) Validate() error {
	if c.Record == nil {
		return &application.ValidationError{Field: "record", Message: "record is required"}
	}
	if err := application.ValidateRequired("id", c.Record.ID); err != nil {
		return err
	}
	if err := application.ValidateRequired("title", c.Record.Title); err != nil {
		return err
	}
	return application.ValidateRequired("metadataPath", c.Record.MetadataPath)
}

// Execute fully overwrites the sidecar file
func (c *UpdateMetadataCommand) Execute(ctx context.Context) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := c.fs.WriteText(c.Record.MetadataPath, markdown.SerializeRecord(c.Record)); err != nil {
		return fmt.Errorf("cannot update sermon metadata: %w", err)
	}
	return nil
}
