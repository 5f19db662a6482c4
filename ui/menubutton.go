package ui

import (
	"github.com/gdamore/tcell/v2"
)

// MenuButton is a styled button. The primary button carries a disc marker
// so the default action reads at a glance.
type MenuButton struct {
	label    string
	primary  bool
	focused  bool
	onSelect func()
}

// NewMenuButton creates a new menu button.
func NewMenuButton(label string, primary bool, onSelect func()) *MenuButton {
	return &MenuButton{
		label:    label,
		primary:  primary,
		onSelect: onSelect,
	}
}

// SetFocused sets the focus state.
func (b *MenuButton) SetFocused(focused bool) {
	b.focused = focused
}

// HandleKey processes keyboard input. Returns true if handled.
func (b *MenuButton) HandleKey(event *tcell.EventKey) bool {
	if event.Key() == tcell.KeyEnter {
		if b.onSelect != nil {
			b.onSelect()
		}
		return true
	}
	return false
}

// text returns the display label, disc-marked on the primary button.
func (b *MenuButton) text() []rune {
	if b.primary {
		return []rune("● " + b.label)
	}
	return []rune(b.label)
}

// Draw renders the button at the given position.
// Returns the width used.
func (b *MenuButton) Draw(screen tcell.Screen, x, y int) int {
	label := b.text()
	width := len(label) + 2

	if b.focused {
		// Filled pill with bright text
		style := tcell.StyleDefault.
			Foreground(MenuColors.ButtonText).
			Background(MenuColors.ButtonFocus)
		screen.SetContent(x, y, ' ', nil, style)
		for i, ch := range label {
			screen.SetContent(x+1+i, y, ch, nil, style)
		}
		screen.SetContent(x+width-1, y, ' ', nil, style)
		return width
	}

	// Dim label in brackets, no fill
	labelStyle := tcell.StyleDefault.
		Foreground(MenuColors.Hint).
		Background(MenuColors.CardBG)
	bracketStyle := tcell.StyleDefault.
		Foreground(MenuColors.Border).
		Background(MenuColors.CardBG)

	screen.SetContent(x, y, '[', nil, bracketStyle)
	for i, ch := range label {
		screen.SetContent(x+1+i, y, ch, nil, labelStyle)
	}
	screen.SetContent(x+width-1, y, ']', nil, bracketStyle)
	return width
}

// Width returns the drawn width of the button.
func (b *MenuButton) Width() int {
	return len(b.text()) + 2
}
