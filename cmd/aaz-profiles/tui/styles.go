package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorPeach    = lipgloss.Color(flavor.Peach().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Tree styles.
var (
	// HeaderStyle is used for the profile title line.
	HeaderStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	// SelectedStyle is used for fully selected checkboxes.
	SelectedStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	// PartialStyle is used for groups with some commands selected.
	PartialStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	// UnselectedStyle is used for unchecked items.
	UnselectedStyle = lipgloss.NewStyle().
			Foreground(colorText)

	// CurrentStyle highlights the row under the cursor.
	CurrentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	// DimStyle is used for counts and secondary text.
	DimStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	// VersionStyle renders the selected API version of a command.
	VersionStyle = lipgloss.NewStyle().
			Foreground(colorPeach)

	// PreviewStageStyle marks non-stable versions.
	PreviewStageStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Italic(true)

	// UnregisteredStyle marks commands excluded from the CLI command table.
	UnregisteredStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Italic(true)

	// ContentPaneStyle wraps the editor body.
	ContentPaneStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)

	// EnumeratorStyle colors tree branches.
	EnumeratorStyle = lipgloss.NewStyle().
			Foreground(colorSurface1).
			PaddingRight(1)
)

// Status bar styles.
var (
	// StatusBarStyle is the base style for the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	// StatusBarKeyStyle highlights keyboard shortcuts in the status bar.
	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Background(colorSurface0).
				Bold(true)

	// DirtyStyle flags unsaved changes in the status bar.
	DirtyStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorPeach).
			Padding(0, 1)
)
