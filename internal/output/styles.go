package output

import "github.com/charmbracelet/lipgloss"

var (
	// HeadingColor is used for report and section titles.
	HeadingColor = lipgloss.Color("#5A67D8")
	// FundedColor marks goals and checks that are met.
	FundedColor = lipgloss.Color("#4ECDC4")
	// ShortfallColor marks goals and checks that are not met.
	ShortfallColor = lipgloss.Color("#FF6B6B")
	// SubtleColor is used for explanatory text.
	SubtleColor = lipgloss.Color("#666666")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(HeadingColor)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	FundedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FundedColor)

	ShortfallStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ShortfallColor)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)
)

// badge renders a funded / not funded marker.
func badge(ok bool, yes, no string) string {
	if ok {
		return FundedStyle.Render(yes)
	}
	return ShortfallStyle.Render(no)
}
