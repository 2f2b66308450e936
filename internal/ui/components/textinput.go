package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberquest/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for numeric answers. Keys other
// than digits and thousands separators are ignored.
type AnswerInput struct {
	Model     textinput.Model
	submitted bool
	valid     bool
}

// NewAnswerInput creates a focused answer input accepting up to maxWidth
// characters.
func NewAnswerInput(placeholder string, maxWidth int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return AnswerInput{Model: ti}
}

// Init returns the initial command.
func (t AnswerInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		for _, r := range kmsg.Text {
			if (r < '0' || r > '9') && r != ',' {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input with a check or cross after submission.
func (t AnswerInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t AnswerInput) Value() string {
	return t.Model.Value()
}

// Submit marks the input as submitted with a validation result.
func (t *AnswerInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}

// Clear empties the input for another attempt.
func (t *AnswerInput) Clear() {
	t.Model.SetValue("")
	t.submitted = false
	t.valid = false
}
