package report

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
)

var (
	colorPrimary = lipgloss.Color("#F59E0B") // Amber
	colorSuccess = lipgloss.Color("#10B981") // Green
	colorWarning = lipgloss.Color("#EF4444") // Red
	colorMuted   = lipgloss.Color("#9CA3AF") // Light gray

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	keyStyle   = lipgloss.NewStyle().Foreground(colorMuted).Width(14)
	valueStyle = lipgloss.NewStyle().Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(colorSuccess)
	warnStyle  = lipgloss.NewStyle().Foreground(colorWarning)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)
)

// tierColors shades tiers from green (unripe) to brown (overripe).
var tierColors = [...]string{"#4D7C0F", "#65A30D", "#CA8A04", "#EAB308", "#F59E0B", "#B45309", "#78350F"}

func tierStyle(level int) lipgloss.Style {
	if level < 1 || level > len(tierColors) {
		return valueStyle
	}
	return valueStyle.Foreground(lipgloss.Color(tierColors[level-1]))
}

// FangColorScheme themes fang's help and error output with the report palette.
func FangColorScheme(c lipgloss.LightDarkFunc) fang.ColorScheme {
	text := c(lipgloss.Color("#111827"), lipgloss.Color("#F9FAFB"))
	return fang.ColorScheme{
		Base:           text,
		Title:          colorPrimary,
		Description:    colorMuted,
		Codeblock:      c(lipgloss.Color("#E5E7EB"), lipgloss.Color("#1F2937")),
		Program:        colorPrimary,
		DimmedArgument: colorMuted,
		Comment:        colorMuted,
		Flag:           colorSuccess,
		FlagDefault:    colorMuted,
		Command:        colorPrimary,
		QuotedString:   colorSuccess,
		Argument:       text,
		Help:           colorMuted,
		Dash:           colorMuted,
		ErrorHeader:    [2]color.Color{text, colorWarning},
		ErrorDetails:   colorWarning,
	}
}
