package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termello/config"
	"termello/othello"
)

// ColorConfigUI provides a board color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()

	// Current selection
	selectedFelt int
	selectedHint int
	editingHint  bool // true = editing hint color, false = editing felt
}

// Felt tones to choose from. Each entry carries a base and a slightly
// lighter alternate so the two checkerboard shades stay related.
var feltColors = []struct {
	code    int
	altCode int
	name    string
}{
	{22, 28, "Tournament Green"},
	{28, 34, "Bright Green"},
	{23, 29, "Deep Teal"},
	{17, 18, "Midnight Blue"},
	{18, 19, "Navy"},
	{52, 88, "Burgundy"},
	{58, 94, "Olive"},
	{94, 130, "Walnut"},
	{236, 238, "Slate"},
	{238, 240, "Graphite"},
	{232, 234, "Charcoal"},
	{54, 55, "Plum"},
}

// Hint colors (bright tones that read against a dark felt).
var hintColors = []struct {
	code int
	name string
}{
	{120, "Mint"},
	{114, "Spring Green"},
	{155, "Lime"},
	{226, "Yellow"},
	{220, "Gold"},
	{214, "Amber"},
	{210, "Coral"},
	{159, "Ice Blue"},
	{117, "Sky Blue"},
	{183, "Lavender"},
	{255, "White"},
	{250, "Gray"},
}

// NewColorConfig creates a new board color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:          cfg,
		onDone:       onDone,
		selectedFelt: cfg.Theme.Colors.BoardColor,
		selectedHint: cfg.Theme.Colors.HintColor,
		editingHint:  false,
	}

	// Create the color list
	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)

	// Populate with felt tones initially
	cc.populateColorList()

	// Handle selection change (preview)
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if cc.editingHint {
			if index >= 0 && index < len(hintColors) {
				cc.selectedHint = hintColors[index].code
			}
		} else {
			if index >= 0 && index < len(feltColors) {
				cc.selectedFelt = feltColors[index].code
			}
		}
	})

	// Handle selection confirm (apply)
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if cc.editingHint {
			if index >= 0 && index < len(hintColors) {
				cc.cfg.Theme.Colors.HintColor = cc.selectedHint
				cc.cfg.Save()
				// Switch back to felt selection
				cc.editingHint = false
				cc.populateColorList()
			}
		} else {
			if index >= 0 && index < len(feltColors) {
				cc.cfg.Theme.Colors.BoardColor = feltColors[index].code
				cc.cfg.Theme.Colors.BoardColorAlt = feltColors[index].altCode
				cc.cfg.Save()
				onDone()
			}
		}
	})

	// Create preview box
	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	// Layout: list on left, preview on right
	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 32, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

// populateColorList fills the list with appropriate colors based on editing mode.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	if cc.editingHint {
		cc.colorList.SetTitle(" Select Hint Color (Tab: switch to felt) ")
		for i, c := range hintColors {
			cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
				tcell.PaletteColor(c.code).Hex(), c.name, c.code),
				"", rune('a'+i), nil)
		}
		for i, c := range hintColors {
			if c.code == cc.selectedHint {
				cc.colorList.SetCurrentItem(i)
				break
			}
		}
	} else {
		cc.colorList.SetTitle(" Select Felt Color (Tab: switch to hints) ")
		for i, c := range feltColors {
			cc.colorList.AddItem(fmt.Sprintf("[#%06x]██[#%06x]██[-] %s (%d)",
				tcell.PaletteColor(c.code).Hex(), tcell.PaletteColor(c.altCode).Hex(), c.name, c.code),
				"", rune('a'+i), nil)
		}
		for i, c := range feltColors {
			if c.code == cc.selectedFelt {
				cc.colorList.SetCurrentItem(i)
				break
			}
		}
	}
}

// feltAlt returns the alternate shade paired with the selected felt tone.
func (cc *ColorConfigUI) feltAlt() int {
	for _, c := range feltColors {
		if c.code == cc.selectedFelt {
			return c.altCode
		}
	}
	return cc.selectedFelt
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	feltColor := tcell.PaletteColor(cc.selectedFelt)
	feltAltColor := tcell.PaletteColor(cc.feltAlt())
	darkColor := tcell.PaletteColor(cc.cfg.Theme.Colors.DarkColor)
	lightColor := tcell.PaletteColor(cc.cfg.Theme.Colors.LightColor)
	hintColor := tcell.PaletteColor(cc.selectedHint)

	startX := x + 2
	startY := y + 1

	if width < 22 || height < 12 {
		return x, y, width, height
	}

	// Opening position with Dark's legal replies hinted.
	board := othello.Initial()
	hints := board.LegalMoves(othello.Dark)
	hinted := make(map[othello.Move]bool, len(hints))
	for _, m := range hints {
		hinted[m] = true
	}

	for row := 0; row < othello.Size; row++ {
		for col := 0; col < othello.Size; col++ {
			bg := feltColor
			if (row+col)%2 == 1 {
				bg = feltAltColor
			}

			char := cc.cfg.Theme.Symbols.EmptyCell
			fg := hintColor
			switch board[row][col] {
			case othello.Dark:
				char = cc.cfg.Theme.Symbols.DarkDisc
				fg = darkColor
			case othello.Light:
				char = cc.cfg.Theme.Symbols.LightDisc
				fg = lightColor
			default:
				if hinted[othello.Move{Row: row, Col: col}] {
					char = cc.cfg.Theme.Symbols.LegalHint
				}
			}

			style := tcell.StyleDefault.Background(bg).Foreground(fg)
			screen.SetContent(startX+col*2, startY+row, char, nil, style)
			screen.SetContent(startX+col*2+1, startY+row, ' ', nil, style)
		}
	}

	// Draw color info
	infoStyle := tcell.StyleDefault
	var info string
	if cc.editingHint {
		info = fmt.Sprintf("Hint: %d  Felt: %d/%d", cc.selectedHint, cc.selectedFelt, cc.feltAlt())
	} else {
		info = fmt.Sprintf("Felt: %d/%d  Hint: %d", cc.selectedFelt, cc.feltAlt(), cc.selectedHint)
	}
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+othello.Size+1, ch, nil, infoStyle)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between felt and hint color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingHint = !cc.editingHint
	cc.populateColorList()
}
