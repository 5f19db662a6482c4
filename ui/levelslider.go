package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// LevelSlider is a horizontal slider for picking an integer level. Levels
// render as a row of discs, filled up to the current value.
type LevelSlider struct {
	label    string
	min      int
	max      int
	value    int
	focused  bool
	onChange func(int)
}

// NewLevelSlider creates a new level slider.
func NewLevelSlider(label string, min, max, initial int, onChange func(int)) *LevelSlider {
	if initial < min {
		initial = min
	}
	if initial > max {
		initial = max
	}
	return &LevelSlider{
		label:    label,
		min:      min,
		max:      max,
		value:    initial,
		onChange: onChange,
	}
}

// SetFocused sets the focus state.
func (s *LevelSlider) SetFocused(focused bool) {
	s.focused = focused
}

// HandleKey processes keyboard input. Left/Right step the value, Home/End
// jump to the bounds. Returns true if handled.
func (s *LevelSlider) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyLeft:
		s.SetValue(s.value - 1)
		return true
	case tcell.KeyRight:
		s.SetValue(s.value + 1)
		return true
	case tcell.KeyHome:
		s.SetValue(s.min)
		return true
	case tcell.KeyEnd:
		s.SetValue(s.max)
		return true
	}
	return false
}

// Draw renders the slider component.
// Returns the number of rows used.
func (s *LevelSlider) Draw(screen tcell.Screen, x, y, width int) int {
	bgStyle := tcell.StyleDefault.Background(MenuColors.CardBG)
	labelStyle := tcell.StyleDefault.Foreground(MenuColors.Label).Background(MenuColors.CardBG)
	accentStyle := tcell.StyleDefault.Foreground(MenuColors.TitleAccent).Background(MenuColors.CardBG)
	selectedStyle := tcell.StyleDefault.Foreground(MenuColors.Selected).Background(MenuColors.CardBG)
	unselectedStyle := tcell.StyleDefault.Foreground(MenuColors.Unselected).Background(MenuColors.CardBG)

	col := x

	// Focus cursor
	cursor := ' '
	if s.focused {
		cursor = '▸'
	}
	screen.SetContent(col, y, cursor, nil, selectedStyle)
	col += 2

	// Label with diamond prefix: ◈ Depth
	screen.SetContent(col, y, '◈', nil, accentStyle)
	col += 2
	for _, ch := range s.label {
		screen.SetContent(col, y, ch, nil, labelStyle)
		col++
	}
	col += 3

	arrowStyle := unselectedStyle
	if s.focused {
		arrowStyle = selectedStyle
	}
	screen.SetContent(col, y, '◀', nil, arrowStyle)
	col += 2

	// One disc per level, filled up to the current value
	for lvl := s.min; lvl <= s.max; lvl++ {
		disc := '○'
		style := unselectedStyle
		if lvl <= s.value {
			disc = '●'
			style = selectedStyle
		}
		screen.SetContent(col, y, disc, nil, style)
		screen.SetContent(col+1, y, ' ', nil, bgStyle)
		col += 2
	}

	screen.SetContent(col, y, '▶', nil, arrowStyle)
	col += 2

	// Value readout: 4/6
	for _, ch := range fmt.Sprintf("%d/%d", s.value, s.max) {
		screen.SetContent(col, y, ch, nil, labelStyle)
		col++
	}

	return 1
}

// Value returns the current slider value.
func (s *LevelSlider) Value() int {
	return s.value
}

// SetValue sets the slider value, clamped to the slider's bounds.
func (s *LevelSlider) SetValue(v int) {
	if v < s.min {
		v = s.min
	}
	if v > s.max {
		v = s.max
	}
	if v == s.value {
		return
	}
	s.value = v
	if s.onChange != nil {
		s.onChange(s.value)
	}
}
