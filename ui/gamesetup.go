package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termello/config"
	"termello/engine"
	"termello/othello"
)

// Setup screen dimensions.
const (
	setupWidth  = 46
	setupHeight = 21
)

// Focus order on the setup screen.
const (
	focusColor = iota
	focusDepth
	focusPruning
	focusStart
	focusColors
	focusQuit
	focusCount
)

// GameSetupUI is the new-game screen: color, search depth and pruning
// selection plus the start/colors/quit buttons.
type GameSetupUI struct {
	*MenuCard

	colorSelect   *RadioSelect
	depthSlider   *LevelSlider
	pruningSelect *RadioSelect
	buttons       [3]*MenuButton

	focusIdx int

	cfg      *config.Config
	onStart  func(engine.GameConfig)
	onCancel func()
	onColors func()
}

// NewGameSetup creates a new game setup screen.
func NewGameSetup(cfg *config.Config, onStart func(engine.GameConfig), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		MenuCard: NewMenuCard("T E R M E L L O"),
		cfg:      cfg,
		onStart:  onStart,
		onCancel: onCancel,
		onColors: onColors,
	}

	setup.colorSelect = NewRadioSelect("Your Color", []RadioOption{
		{Label: "Dark", Description: "plays first"},
		{Label: "Light", Description: "plays second"},
	}, 0, nil)

	setup.depthSlider = NewLevelSlider("Depth", 1, 6, cfg.Engine.DefaultDepth, nil)

	pruningIdx := 1
	if cfg.Engine.Pruning {
		pruningIdx = 0
	}
	setup.pruningSelect = NewRadioSelect("Pruning", []RadioOption{
		{Label: "On", Description: "alpha-beta"},
		{Label: "Off", Description: "full minimax"},
	}, pruningIdx, nil)

	setup.buttons[0] = NewMenuButton("Start Game", true, func() {
		onStart(setup.buildGameConfig())
	})
	setup.buttons[1] = NewMenuButton("Board Colors", false, func() {
		if onColors != nil {
			onColors()
		}
	})
	setup.buttons[2] = NewMenuButton("Quit", false, func() {
		onCancel()
	})

	return setup
}

// buildGameConfig assembles a GameConfig from the current selections.
func (s *GameSetupUI) buildGameConfig() engine.GameConfig {
	color := othello.Dark
	if s.colorSelect.Selected() == 1 {
		color = othello.Light
	}
	return engine.GameConfig{
		PlayerColor: color,
		SearchDepth: s.depthSlider.Value(),
		Pruning:     s.pruningSelect.Selected() == 0,
		Trace:       s.cfg.Engine.Trace,
		ThinkDelay:  time.Duration(s.cfg.Engine.ThinkDelayMs) * time.Millisecond,
	}
}

// Draw renders the setup screen.
func (s *GameSetupUI) Draw(screen tcell.Screen) {
	s.MenuCard.Draw(screen)

	x, y, width, _ := s.GetInnerRect()
	col := x + 4
	innerWidth := width - 8

	s.colorSelect.SetFocused(s.focusIdx == focusColor)
	s.depthSlider.SetFocused(s.focusIdx == focusDepth)
	s.pruningSelect.SetFocused(s.focusIdx == focusPruning)
	for i, b := range s.buttons {
		b.SetFocused(s.focusIdx == focusStart+i)
	}

	row := y + 6
	row += s.colorSelect.Draw(screen, col, row, innerWidth) + 1
	row += s.depthSlider.Draw(screen, col, row, innerWidth) + 1
	row += s.pruningSelect.Draw(screen, col, row, innerWidth) + 1

	s.DrawDivider(screen, row)
	row += 2

	btnCol := col
	for _, b := range s.buttons {
		btnCol += b.Draw(screen, btnCol, row) + 2
	}
}

// InputHandler routes keys to the focused component, with Tab cycling focus.
func (s *GameSetupUI) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return s.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		switch event.Key() {
		case tcell.KeyTab:
			s.focusIdx = (s.focusIdx + 1) % focusCount
			return
		case tcell.KeyBacktab:
			s.focusIdx = (s.focusIdx + focusCount - 1) % focusCount
			return
		case tcell.KeyEsc:
			s.onCancel()
			return
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				s.onCancel()
				return
			}
		}

		if s.focused().HandleKey(event) {
			return
		}

		// Unhandled movement keys hop between components.
		switch event.Key() {
		case tcell.KeyDown, tcell.KeyEnter:
			s.focusIdx = (s.focusIdx + 1) % focusCount
		case tcell.KeyUp:
			s.focusIdx = (s.focusIdx + focusCount - 1) % focusCount
		case tcell.KeyLeft:
			if s.focusIdx > focusStart {
				s.focusIdx--
			}
		case tcell.KeyRight:
			if s.focusIdx >= focusStart && s.focusIdx < focusQuit {
				s.focusIdx++
			}
		}
	})
}

// focused returns the component holding keyboard focus.
func (s *GameSetupUI) focused() keyHandler {
	switch s.focusIdx {
	case focusColor:
		return s.colorSelect
	case focusDepth:
		return s.depthSlider
	case focusPruning:
		return s.pruningSelect
	default:
		return s.buttons[s.focusIdx-focusStart]
	}
}

// keyHandler is the shared surface of the setup screen components.
type keyHandler interface {
	HandleKey(event *tcell.EventKey) bool
}

// Flex returns the setup screen centered in a flex container.
func (s *GameSetupUI) Flex() *tview.Flex {
	return CreateCenteredLayout(s, setupWidth, setupHeight)
}
