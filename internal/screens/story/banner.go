package story

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberquest/internal/ui/layout"
	"github.com/abhisek/numberquest/internal/ui/theme"
)

const bannerArt = `
 ███╗   ██╗██╗   ██╗███╗   ███╗██████╗ ███████╗██████╗
 ████╗  ██║██║   ██║████╗ ████║██╔══██╗██╔════╝██╔══██╗
 ██╔██╗ ██║██║   ██║██╔████╔██║██████╔╝█████╗  ██████╔╝
 ██║╚██╗██║██║   ██║██║╚██╔╝██║██╔══██╗██╔══╝  ██╔══██╗
 ██║ ╚████║╚██████╔╝██║ ╚═╝ ██║██████╔╝███████╗██║  ██║
 ╚═╝  ╚═══╝ ╚═════╝ ╚═╝     ╚═╝╚═════╝ ╚══════╝╚═╝  ╚═╝
              Q  U  E  S  T`

const bannerCompact = "N U M B E R   Q U E S T"

// RenderBanner returns the title banner styled in the primary color.
// Uses a compact fallback for narrow or short terminals.
func RenderBanner(width, height int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 60 || layout.IsCompactHeight(height) {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
