package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/numberquest/internal/ui/layout"
)

// Screen defines the interface for all scene screens.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the scene name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is an optional interface for screens that show a
// progress readout on the right of the header.
type StatusProvider interface {
	Status() string
}

// AdvanceMsg is sent by a scene when it is finished and the adventure
// should move to the next stage.
type AdvanceMsg struct{}

// Advance is a tea.Cmd that emits AdvanceMsg.
func Advance() tea.Msg {
	return AdvanceMsg{}
}
