package commands

import (
	"context"
	"fmt"
	"time"

	"sermonvault/internal/application"
	"sermonvault/internal/domain"
	"sermonvault/internal/ports"
)

// GetSermonCommand looks a sermon up by its record ID
type GetSermonCommand struct {
	index  ports.SermonIndex
	ID     string
	MaxAge time.Duration
}

// NewGetSermonCommand creates a new GetSermonCommand
func NewGetSermonCommand(index ports.SermonIndex, id string) *GetSermonCommand {
	return &GetSermonCommand{index: index, ID: id, MaxAge: time.Hour}
}

// Execute returns the record with the given ID
func (c *GetSermonCommand) Execute(ctx context.Context) (*domain.SermonRecord, error) {
	if err := application.ValidateRequired("id", c.ID); err != nil {
		return nil, err
	}

	snapshot, err := NewEnsureIndexCommand(c.index, c.MaxAge).Execute(ctx)
	if err != nil {
		return nil, err
	}

	for i := range snapshot.Sermons {
		if snapshot.Sermons[i].ID == c.ID {
			record := snapshot.Sermons[i]
			return &record, nil
		}
	}
	return nil, fmt.Errorf("%w: sermon %s", application.ErrNotFound, c.ID)
}
