// Package theme defines color themes for the ramtrack TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceHover  lipgloss.Color // Selected row, active tab
	SurfaceBright lipgloss.Color // Focused item inside a selection
	Border        lipgloss.Color
	BorderAccent  lipgloss.Color // Focused card
	TextDim       lipgloss.Color // Hints, disabled toggles
	TextMuted     lipgloss.Color // Labels, metadata
	TextPrimary   lipgloss.Color
	Accent        lipgloss.Color // Progress, active states
	AccentBright  lipgloss.Color // Today
	Done          lipgloss.Color // Checked items
	Exempt        lipgloss.Color // Haid days
	Warning       lipgloss.Color // Unsaved changes
	Error         lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme: warm, paper-inspired dark.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    lipgloss.Color("#100F0F"),
	Surface:       lipgloss.Color("#1C1B1A"),
	SurfaceHover:  lipgloss.Color("#282726"),
	SurfaceBright: lipgloss.Color("#343331"),
	Border:        lipgloss.Color("#403E3C"),
	BorderAccent:  lipgloss.Color("#3AA99F"),
	TextDim:       lipgloss.Color("#575653"),
	TextMuted:     lipgloss.Color("#878580"),
	TextPrimary:   lipgloss.Color("#FFFCF0"),
	Accent:        lipgloss.Color("#3AA99F"),
	AccentBright:  lipgloss.Color("#5BC8BE"),
	Done:          lipgloss.Color("#879A39"),
	Exempt:        lipgloss.Color("#CE5D97"),
	Warning:       lipgloss.Color("#D0A215"),
	Error:         lipgloss.Color("#D14D41"),
}

// Lantern is a deep green theme with gold highlights.
var Lantern = Theme{
	Name:          "lantern",
	Background:    lipgloss.Color("#0B1A14"),
	Surface:       lipgloss.Color("#12261D"),
	SurfaceHover:  lipgloss.Color("#1B3529"),
	SurfaceBright: lipgloss.Color("#264536"),
	Border:        lipgloss.Color("#2F5442"),
	BorderAccent:  lipgloss.Color("#E3B448"),
	TextDim:       lipgloss.Color("#4D6B5C"),
	TextMuted:     lipgloss.Color("#8FAE9E"),
	TextPrimary:   lipgloss.Color("#F4EEDC"),
	Accent:        lipgloss.Color("#E3B448"),
	AccentBright:  lipgloss.Color("#F5D27A"),
	Done:          lipgloss.Color("#7BC47F"),
	Exempt:        lipgloss.Color("#C88BC4"),
	Warning:       lipgloss.Color("#F0A04B"),
	Error:         lipgloss.Color("#E5675B"),
}

// TokyoNight is a cool blue/purple theme.
var TokyoNight = Theme{
	Name:          "tokyo-night",
	Background:    lipgloss.Color("#1A1B26"),
	Surface:       lipgloss.Color("#24283B"),
	SurfaceHover:  lipgloss.Color("#343A52"),
	SurfaceBright: lipgloss.Color("#414868"),
	Border:        lipgloss.Color("#565F89"),
	BorderAccent:  lipgloss.Color("#7AA2F7"),
	TextDim:       lipgloss.Color("#565F89"),
	TextMuted:     lipgloss.Color("#A9B1D6"),
	TextPrimary:   lipgloss.Color("#C0CAF5"),
	Accent:        lipgloss.Color("#7AA2F7"),
	AccentBright:  lipgloss.Color("#A9C1FF"),
	Done:          lipgloss.Color("#9ECE6A"),
	Exempt:        lipgloss.Color("#BB9AF7"),
	Warning:       lipgloss.Color("#E0AF68"),
	Error:         lipgloss.Color("#F7768E"),
}

// Terminal uses ANSI 16 colors only.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceHover:  lipgloss.Color("8"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderAccent:  lipgloss.Color("6"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("6"),
	AccentBright:  lipgloss.Color("14"),
	Done:          lipgloss.Color("2"),
	Exempt:        lipgloss.Color("5"),
	Warning:       lipgloss.Color("3"),
	Error:         lipgloss.Color("1"),
}

// All available themes.
var All = []Theme{FlexokiDark, Lantern, TokyoNight, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// Names lists the names of All in order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
