package render

import "github.com/charmbracelet/lipgloss"

// Theme colors live cells, dead cells and the status chrome.
type Theme struct {
	Name  string
	Alive lipgloss.Color
	Dead  lipgloss.Color
	Text  lipgloss.Color
	Muted lipgloss.Color
	Plain bool
}

// Available themes
var (
	ThemePlain = Theme{
		Name:  "plain",
		Plain: true,
	}

	ThemeRetroGreen = Theme{
		Name:  "retro",
		Alive: lipgloss.Color("#00ff00"), // green phosphor
		Dead:  lipgloss.Color("#001100"),
		Text:  lipgloss.Color("#88ff88"),
		Muted: lipgloss.Color("#005500"),
	}

	ThemeOcean = Theme{
		Name:  "ocean",
		Alive: lipgloss.Color("#00a8cc"),
		Dead:  lipgloss.Color("#001a33"),
		Text:  lipgloss.Color("#e0f0ff"),
		Muted: lipgloss.Color("#4488aa"),
	}

	ThemeCyberpunk = Theme{
		Name:  "cyberpunk",
		Alive: lipgloss.Color("#ff00ff"),
		Dead:  lipgloss.Color("#0a0a0a"),
		Text:  lipgloss.Color("#00ffff"),
		Muted: lipgloss.Color("#666666"),
	}

	Themes = []Theme{
		ThemePlain,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeCyberpunk,
	}
)

// GetTheme returns a theme by name, falling back to plain.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemePlain
}

// NextTheme cycles through Themes.
func NextTheme(current Theme) Theme {
	for i, t := range Themes {
		if t.Name == current.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
