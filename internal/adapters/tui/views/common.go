package views

import (
	"strings"

	"sermonvault/internal/domain"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Messages for view switching
type SwitchToBrowserMsg struct{}

type SwitchToSearchMsg struct{}

type SwitchToStatsMsg struct{}

type SwitchToHelpMsg struct{}

// OpenFileMsg asks the app to open a sermon artifact with the OS opener
type OpenFileMsg struct {
	Path string
}

// OpenEditorMsg asks the app to open a metadata sidecar in $EDITOR
type OpenEditorMsg struct {
	Path string
}

type errMsg struct {
	err error
}

type successMsg struct {
	message string
}

// indexLoadedMsg carries a fresh snapshot into a view
type indexLoadedMsg struct {
	snapshot *domain.IndexSnapshot
}

func summarizeRecord(r domain.SermonRecord) string {
	parts := []string{r.Title}
	if locations := r.DeliveryLocations(); len(locations) > 0 {
		parts = append(parts, "@ "+strings.Join(locations, ", "))
	}
	return strings.Join(parts, "  ")
}
