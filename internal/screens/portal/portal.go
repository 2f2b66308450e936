package portal

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberquest/internal/adventure"
	"github.com/abhisek/numberquest/internal/screen"
	"github.com/abhisek/numberquest/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	swirlStart   = 500 * time.Millisecond
	captionStart = 1500 * time.Millisecond
	totalDur     = 3 * time.Second
)

// ring frames rotate the digits around the portal.
var ringFrames = []string{
	"1 × 2 ÷ 3 × 4 ÷ 5",
	"× 2 ÷ 3 × 4 ÷ 5 ×",
	"2 ÷ 3 × 4 ÷ 5 × 6",
	"÷ 3 × 4 ÷ 5 × 6 ÷",
	"3 × 4 ÷ 5 × 6 ÷ 7",
	"× 4 ÷ 5 × 6 ÷ 7 ×",
}

const portalArt = `    .-~~~-.
  .'  .-.  '.
 /   (   )   \
 \    '-'    /
  '.       .'
    '-...-'`

type tickMsg time.Time

// PortalScreen is the animated transition into the world of numbers. It
// advances on its own once the animation has played.
type PortalScreen struct {
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*PortalScreen)(nil)

// New creates a PortalScreen.
func New() *PortalScreen {
	return &PortalScreen{}
}

func (p *PortalScreen) Title() string {
	return adventure.Portal.Title()
}

func (p *PortalScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (p *PortalScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if p.transitioned {
			return p, nil
		}
		p.elapsed += tickInterval
		p.tickCount++
		if p.elapsed >= totalDur {
			return p, p.transition()
		}
		return p, tick()

	case tea.KeyPressMsg:
		// Skipping is allowed once the swirl has begun.
		if p.elapsed >= swirlStart {
			return p, p.transition()
		}
		return p, nil
	}

	return p, nil
}

func (p *PortalScreen) transition() tea.Cmd {
	if p.transitioned {
		return nil
	}
	p.transitioned = true
	return screen.Advance
}

func (p *PortalScreen) View(width, height int) string {
	var sections []string

	art := lipgloss.NewStyle().Foreground(theme.Primary).Render(portalArt)
	sections = append(sections, art)

	if p.elapsed >= swirlStart {
		frame := ringFrames[p.tickCount%len(ringFrames)]
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(frame))
	}

	if p.elapsed >= captionStart {
		for _, line := range adventure.Script(adventure.Portal) {
			sections = append(sections, "", theme.Narration.Render(line.Text))
		}
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
