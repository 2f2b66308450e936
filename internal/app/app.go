package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberquest/internal/adventure"
	"github.com/abhisek/numberquest/internal/problemgen"
	"github.com/abhisek/numberquest/internal/router"
	"github.com/abhisek/numberquest/internal/screen"
	"github.com/abhisek/numberquest/internal/screens/challenge"
	"github.com/abhisek/numberquest/internal/screens/portal"
	"github.com/abhisek/numberquest/internal/screens/story"
	"github.com/abhisek/numberquest/internal/screens/summary"
	"github.com/abhisek/numberquest/internal/ui/layout"
)

// Options holds the dependencies injected into the app.
type Options struct {
	// Generator produces the challenge problems. Nil uses the
	// process-wide default generator.
	Generator challenge.Generator

	// StartStage is the first scene shown.
	StartStage adventure.Stage
}

// AppModel is the root Bubble Tea model. It owns the adventure state and
// swaps scenes as the story advances.
type AppModel struct {
	router    *router.Router
	state     *adventure.State
	generator challenge.Generator
	width     int
	height    int
}

// newAppModel creates a new AppModel positioned at opts.StartStage.
func newAppModel(opts Options) AppModel {
	gen := opts.Generator
	if gen == nil {
		gen = problemgen.Default()
	}
	m := AppModel{
		state:     adventure.NewState(opts.StartStage),
		generator: gen,
	}
	m.router = router.New(m.sceneFor(m.state.Stage))
	return m
}

// sceneFor builds the screen for a stage.
func (m AppModel) sceneFor(stage adventure.Stage) screen.Screen {
	switch {
	case stage == adventure.Portal:
		return portal.New()
	case stage.IsChallenge():
		return challenge.New(m.state, m.generator)
	case stage == adventure.Outro:
		return summary.New(adventure.BuildSummary(m.state))
	default:
		return story.New(stage)
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case screen.AdvanceMsg:
		next := m.state.Advance()
		return m, m.router.Reset(m.sceneFor(next))
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render draws the frame: header, active scene and footer.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	footerHints := []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if kp, ok := active.(screen.KeyHintProvider); ok {
			if hints := kp.KeyHints(); len(hints) > 0 {
				footerHints = hints
			}
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
