package ui

import (
	"github.com/gdamore/tcell/v2"
)

// RadioOption represents a single radio button option.
type RadioOption struct {
	Label       string
	Description string
}

// RadioSelect is a single-choice group drawn with disc bullets, one option
// per row.
type RadioSelect struct {
	label    string
	options  []RadioOption
	selected int
	focused  bool
	onChange func(int)
}

// NewRadioSelect creates a new radio select component.
func NewRadioSelect(label string, options []RadioOption, initial int, onChange func(int)) *RadioSelect {
	return &RadioSelect{
		label:    label,
		options:  options,
		selected: initial,
		onChange: onChange,
	}
}

// SetFocused sets the focus state.
func (r *RadioSelect) SetFocused(focused bool) {
	r.focused = focused
}

// moveTo moves the selection to index if it exists.
func (r *RadioSelect) moveTo(index int) {
	if index < 0 || index >= len(r.options) {
		return
	}
	r.selected = index
	if r.onChange != nil {
		r.onChange(r.selected)
	}
}

// HandleKey processes keyboard input. Up/Down step the selection; Left and
// Right work too, so the group is usable along either axis. Returns true if
// handled.
func (r *RadioSelect) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyUp, tcell.KeyLeft:
		r.moveTo(r.selected - 1)
		return true
	case tcell.KeyDown, tcell.KeyRight:
		r.moveTo(r.selected + 1)
		return true
	}
	return false
}

// Draw renders the radio select component.
// Returns the number of rows used.
func (r *RadioSelect) Draw(screen tcell.Screen, x, y, width int) int {
	bgStyle := tcell.StyleDefault.Background(MenuColors.CardBG)
	labelStyle := tcell.StyleDefault.Foreground(MenuColors.Label).Background(MenuColors.CardBG)
	accentStyle := tcell.StyleDefault.Foreground(MenuColors.TitleAccent).Background(MenuColors.CardBG)
	selectedStyle := tcell.StyleDefault.Foreground(MenuColors.Selected).Background(MenuColors.CardBG)
	unselectedStyle := tcell.StyleDefault.Foreground(MenuColors.Unselected).Background(MenuColors.CardBG)
	hintStyle := tcell.StyleDefault.Foreground(MenuColors.Hint).Background(MenuColors.CardBG)

	row := y

	// Group label with diamond prefix: ◈ Your Color
	col := x
	screen.SetContent(col, row, '◈', nil, accentStyle)
	col += 2
	for _, ch := range r.label {
		screen.SetContent(col, row, ch, nil, labelStyle)
		col++
	}
	row++

	for i, opt := range r.options {
		col = x + 2

		chosen := i == r.selected
		style := unselectedStyle
		if chosen {
			style = selectedStyle
		}

		// Focus cursor
		cursor := ' '
		if r.focused && chosen {
			cursor = '▸'
		}
		screen.SetContent(col, row, cursor, nil, selectedStyle)
		col += 2

		// Disc bullet, filled on the chosen option
		bullet := '○'
		if chosen {
			bullet = '◉'
		}
		screen.SetContent(col, row, bullet, nil, style)
		col += 2

		for _, ch := range opt.Label {
			screen.SetContent(col, row, ch, nil, style)
			col++
		}

		// Parenthesized description, dimmed
		if opt.Description != "" {
			col++
			for _, ch := range "(" + opt.Description + ")" {
				screen.SetContent(col, row, ch, nil, hintStyle)
				col++
			}
		}

		// Clear trailing cells so a longer previous label leaves no tail
		for ; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, bgStyle)
		}

		row++
	}

	return row - y
}

// Selected returns the currently selected index.
func (r *RadioSelect) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *RadioSelect) SetSelected(index int) {
	r.moveTo(index)
}
