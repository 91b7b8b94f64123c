package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the palette for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string
	SurfaceAlt string
	FocusBg    string

	SelectionBg   string
	SelectionText string

	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string
}

// Styles contains pre-built lipgloss styles for a theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Title    lipgloss.Style
	Header   lipgloss.Style
	Footer   lipgloss.Style
	Selected lipgloss.Style
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		FaintText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		AccentText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		SuccessText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		WarningText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		DangerText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),
		InfoText:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Info)),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true),
	}
}

// LevelStyle returns the style used for a log level.
func (s Styles) LevelStyle(level string) lipgloss.Style {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "ERROR", "DPANIC", "PANIC", "FATAL":
		return s.DangerText
	case "WARN":
		return s.WarningText.Bold(true)
	case "INFO":
		return s.SuccessText
	case "DEBUG":
		return s.InfoText
	}
	return s.MutedText
}

var themeOrder = []string{"Showroom", "Asphalt", "Racing Green"}

var themes = map[string]func() Theme{
	"Showroom":     showroomTheme,
	"Asphalt":      asphaltTheme,
	"Racing Green": racingGreenTheme,
}

// GetTheme returns the named theme, falling back to Showroom.
func GetTheme(name string) Theme {
	if build, ok := themes[strings.TrimSpace(name)]; ok {
		return build()
	}
	return showroomTheme()
}

// NextTheme returns the theme after current in cycling order.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames lists the available themes in cycling order.
func ThemeNames() []string {
	out := make([]string, len(themeOrder))
	copy(out, themeOrder)
	return out
}

func showroomTheme() Theme {
	return Theme{
		Name:          "Showroom",
		Background:    "#10141c",
		Surface:       "#171d28",
		SurfaceAlt:    "#1c2331",
		FocusBg:       "#212a3b",
		SelectionBg:   "#2f4a6d",
		SelectionText: "#f4f7fb",
		Border:        "#34405a",
		BorderFocus:   "#7fb4ff",
		Text:          "#e3e8f1",
		Muted:         "#9aa6bd",
		Faint:         "#5d6880",
		Accent:        "#7fb4ff",
		Success:       "#6fd49a",
		Warning:       "#f2c46d",
		Danger:        "#ff7a7a",
		Info:          "#79d3e6",
	}
}

func asphaltTheme() Theme {
	return Theme{
		Name:          "Asphalt",
		Background:    "#161616",
		Surface:       "#1f1f1f",
		SurfaceAlt:    "#262626",
		FocusBg:       "#2d2d2d",
		SelectionBg:   "#4a4a4a",
		SelectionText: "#ffffff",
		Border:        "#444444",
		BorderFocus:   "#ffb347",
		Text:          "#e8e8e8",
		Muted:         "#a8a8a8",
		Faint:         "#6c6c6c",
		Accent:        "#ffb347",
		Success:       "#9ccc65",
		Warning:       "#ffd54f",
		Danger:        "#ef5350",
		Info:          "#81d4fa",
	}
}

func racingGreenTheme() Theme {
	return Theme{
		Name:          "Racing Green",
		Background:    "#0c1a14",
		Surface:       "#12241b",
		SurfaceAlt:    "#172d22",
		FocusBg:       "#1c3629",
		SelectionBg:   "#2e5a43",
		SelectionText: "#f5f1e3",
		Border:        "#2f4d3d",
		BorderFocus:   "#d8c38a",
		Text:          "#ece6d2",
		Muted:         "#a9b5a4",
		Faint:         "#60705f",
		Accent:        "#d8c38a",
		Success:       "#8fd18a",
		Warning:       "#e8b960",
		Danger:        "#e07060",
		Info:          "#8cc7c0",
	}
}
