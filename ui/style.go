package ui

import "github.com/charmbracelet/lipgloss"

// DomainHeader renders a game-domain section header.
func DomainHeader(domain string) string {
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12"))
	return style.Render(domain)
}

// EndorseBadge renders an endorsement status tag. Endorsed mods show
// green, everything else stays muted.
func EndorseBadge(status string) string {
	color := "8"
	if status == "Endorsed" {
		color = "10"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(status)
}

// MembershipBadge renders an account membership flag (premium or
// supporter) as yes/no with matching color.
func MembershipBadge(name string, active bool) string {
	color := "8"
	label := name + ": no"
	if active {
		color = "10"
		label = name + ": yes"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(label)
}
