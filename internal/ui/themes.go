package ui

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for UI output.
// Each field contains an ANSI escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Accent is a lipgloss color for table titles.
	Accent lipgloss.TerminalColor
	// Error indicates failures or critical issues.
	Error string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:   "dark",
		Accent: lipgloss.Color("#FF8C00"),
		Error:  "\033[38;5;196m", // Red
		Reset:  "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set or --no-color flag is provided.
	NoColorTheme = Theme{
		Name:   "none",
		Accent: lipgloss.NoColor{},
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// InitTheme initializes the theme based on the noColor flag and environment.
// It respects the NO_COLOR environment variable (https://no-color.org/) for
// accessibility. If noColor is true or NO_COLOR is set, colors are disabled.
//
// Parameters:
//   - noColor: If true, disables all color output regardless of environment.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}

	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}

	currentTheme = DarkTheme
}

// ColorError returns the error color code of the active theme.
func ColorError() string { return GetCurrentTheme().Error }

// ColorReset returns the reset code of the active theme.
func ColorReset() string { return GetCurrentTheme().Reset }

// TitleRenderer returns a function styling title lines for out. The color
// profile is detected on out itself, so pipes and files get plain text.
// With the no-color theme the returned function is the identity.
func TitleRenderer(out io.Writer) func(string) string {
	theme := GetCurrentTheme()
	if theme.Name == NoColorTheme.Name {
		return func(s string) string { return s }
	}
	style := lipgloss.NewRenderer(out).NewStyle().Bold(true).Foreground(theme.Accent)
	return func(s string) string { return style.Render(s) }
}
