// Package ui holds the terminal presentation layer: lipgloss styles, the
// character ramps shared by the grid renderers, and the bubbletea fluid
// animation.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the current color scheme.
type Theme struct {
	Accent lipgloss.Color
	Good   lipgloss.Color
	Bad    lipgloss.Color
	Faint  lipgloss.Color
	IsDark bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Accent: lipgloss.Color("#101F38"),
		Good:   lipgloss.Color("#2e7d32"),
		Bad:    lipgloss.Color("#e53935"),
		Faint:  lipgloss.Color("#6e7781"),
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Accent: lipgloss.Color("#8BC34A"),
		Good:   lipgloss.Color("#8BC34A"),
		Bad:    lipgloss.Color("#ef5350"),
		Faint:  lipgloss.Color("#8b949e"),
		IsDark: true,
	}
}

// DetectTheme picks dark or light from the terminal. COLORFGBG carries
// "foreground;background"; ANSI backgrounds 0-6 and 8 are dark.
func DetectTheme() Theme {
	if fgbg := os.Getenv("COLORFGBG"); fgbg != "" {
		parts := strings.Split(fgbg, ";")
		if len(parts) == 2 {
			if bg, err := strconv.Atoi(parts[1]); err == nil {
				if (bg >= 0 && bg <= 6) || bg == 8 {
					return DarkTheme()
				}
			}
		}
	}
	if os.Getenv("ALGOLAB_DARK") == "1" {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds the styled components used by the commands.
type Styles struct {
	Theme Theme

	Title lipgloss.Style
	Good  lipgloss.Style
	Bad   lipgloss.Style
	Faint lipgloss.Style
}

// NewStyles creates a Styles instance for the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,
		Title: lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		Good:  lipgloss.NewStyle().Foreground(theme.Good).Bold(true),
		Bad:   lipgloss.NewStyle().Foreground(theme.Bad).Bold(true),
		Faint: lipgloss.NewStyle().Foreground(theme.Faint),
	}
}

// DefaultStyles returns styles for the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}
