package effects

import "charm.land/lipgloss/v2"

// Sparkle renders a one-line celebration string for the TUI. The
// session screen shows it next to the feedback banner.
type Sparkle struct{}

var sparkleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)

func (Sparkle) Celebrate() {}

// Banner returns the styled celebration line.
func (Sparkle) Banner() string {
	return sparkleStyle.Render("✦ Mandou bem! ✦")
}
