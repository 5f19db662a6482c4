package ui

import "github.com/gdamore/tcell/v2"

// MenuColors defines the felt-green color palette for the menu UI.
var MenuColors = struct {
	Border      tcell.Color // Muted gray-green for borders
	BorderFocus tcell.Color // Brighter green for focused borders
	CardBG      tcell.Color // Dark gray background
	Title       tcell.Color // Bright white for title
	TitleAccent tcell.Color // Green accent for decoration
	Label       tcell.Color // Light gray for labels
	Hint        tcell.Color // Dim gray for hints
	Selected    tcell.Color // Bright green for selected items
	Unselected  tcell.Color // Dim gray for unselected items
	ButtonBG    tcell.Color // Button background
	ButtonFocus tcell.Color // Focused button
	ButtonText  tcell.Color // Button text
}{
	Border:      tcell.PaletteColor(65),  // Muted gray-green
	BorderFocus: tcell.PaletteColor(71),  // Brighter green
	CardBG:      tcell.PaletteColor(236), // Dark gray
	Title:       tcell.PaletteColor(255), // Bright white
	TitleAccent: tcell.PaletteColor(71),  // Green accent
	Label:       tcell.PaletteColor(250), // Light gray
	Hint:        tcell.PaletteColor(245), // Dim gray
	Selected:    tcell.PaletteColor(114), // Bright green
	Unselected:  tcell.PaletteColor(245), // Dim gray
	ButtonBG:    tcell.PaletteColor(65),  // Felt green
	ButtonFocus: tcell.PaletteColor(71),  // Brighter green
	ButtonText:  tcell.PaletteColor(255), // White
}
