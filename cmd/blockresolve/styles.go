// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/sbtools/blockresolve/pkg/blocks"

	"github.com/charmbracelet/lipgloss"
)

// Color palette shared by all CLI output.
const (
	// ColorPrimary is purple - used for titles and headers.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green - used for resolved blocks and covered collisions.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red - used for unresolved blocks and uncovered collisions.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - used for warnings.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue - used for block IDs and keys.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for success messages and positive indicators.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages and failure indicators.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// KeyStyle is for field names and block IDs.
	KeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	// tokenKindStyle pads the kind column of `tokenize` output.
	tokenKindStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(7)

	// fieldStyle aligns the field names of `resolve` output.
	fieldStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Width(10)
)

// categoryColors are the editor's palette for each block category.
var categoryColors = map[blocks.Category]lipgloss.Color{
	blocks.CategoryMotion:    "#4C97FF",
	blocks.CategoryLooks:     "#9966FF",
	blocks.CategorySound:     "#CF63CF",
	blocks.CategoryEvents:    "#FFBF00",
	blocks.CategoryControl:   "#FFAB19",
	blocks.CategorySensing:   "#5CB1D6",
	blocks.CategoryOperators: "#59C059",
	blocks.CategoryVariables: "#FF8C1A",
	blocks.CategoryList:      "#FF661A",
	blocks.CategoryCustom:    "#FF6680",
	blocks.CategoryCustomArg: "#FF6680",
	blocks.CategoryExtension: "#0FBD8C",
	blocks.CategoryGrey:      "#BFBFBF",
	blocks.CategoryObsolete:  "#ED4242",
}

// swatch renders a colour block followed by label. Unknown categories and
// empty colours fall back to the muted palette entry.
func swatch(color lipgloss.Color, label string) string {
	if color == "" {
		color = ColorMuted
	}
	return lipgloss.NewStyle().Foreground(color).Render("■") + " " + label
}

func categorySwatch(c blocks.Category) string {
	return swatch(categoryColors[c], c.String())
}
