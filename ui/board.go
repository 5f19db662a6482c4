// Package ui specifies custom controls for tview to assist in playing
// Othello in the terminal.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termello/config"
	"termello/engine"
	"termello/othello"
	"termello/types"
)

// Style slice indices for BoardUI.styles.
const (
	styleBoard = iota
	styleBoardAlt
	styleDark
	styleLight
	styleHint
	styleCursorFG
	styleLastPlayedBG
	styleCursorBG
)

type BoardUI struct {
	Box          *tview.Box
	BoardState   *types.BoardState
	hint         *tview.TextView
	cfg          *config.Config
	finished     bool
	selRow       int
	selCol       int
	lastTurnPass bool
	app          *tview.Application
	eng          engine.GameEngine
	styles       []tcell.Color
	infoPanel    *GameInfoPanel
	focusMode    bool
	moveHistory  []MoveEntry
	gameConfig   engine.GameConfig
}

func NewBoard(app *tview.Application, c *config.Config, hint *tview.TextView) *BoardUI {
	board := &BoardUI{
		Box:        tview.NewBox(),
		BoardState: types.NewBoardState(),
		hint:       hint,
		app:        app,
		selRow:     -1,
		selCol:     -1,
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		// 2 characters per cell for square appearance
		boardW, boardH := othello.Size*2, othello.Size

		humanToMove := board.humanToMove()

		for row := 0; row < othello.Size; row++ {
			for col := 0; col < othello.Size; col++ {
				cell := board.BoardState.Board[row][col]

				bg := board.styles[styleBoard]
				if (row+col)%2 == 1 {
					bg = board.styles[styleBoardAlt]
				}

				var drawRune rune
				var fg tcell.Color
				switch cell {
				case othello.Dark:
					drawRune = board.cfg.Theme.Symbols.DarkDisc
					fg = board.styles[styleDark]
				case othello.Light:
					drawRune = board.cfg.Theme.Symbols.LightDisc
					fg = board.styles[styleLight]
				default:
					drawRune = board.cfg.Theme.Symbols.EmptyCell
					fg = board.styles[styleHint]
					if board.cfg.Theme.ShowLegalMoves && humanToMove &&
						board.BoardState.Board.IsLegalMove(row, col, board.eng.PlayerColor()) {
						drawRune = board.cfg.Theme.Symbols.LegalHint
					}
				}

				if row == board.selRow && col == board.selCol {
					if board.cfg.Theme.DrawCursorBackground {
						bg = board.styles[styleCursorBG]
					} else if cell == othello.Empty {
						drawRune = board.cfg.Theme.Symbols.Cursor
						fg = board.styles[styleCursorFG]
					}
				} else if row == board.BoardState.LastMove.Row && col == board.BoardState.LastMove.Col {
					if board.cfg.Theme.DrawLastPlayedBackground {
						bg = board.styles[styleLastPlayedBG]
					} else if cell == othello.Empty {
						drawRune = board.cfg.Theme.Symbols.LastPlayed
					}
				}

				drawDiscCell(screen, tcell.StyleDefault.Background(bg).Foreground(fg), drawRune, col, row, x+4, y)
			}
		}
		drawCoordinates(screen, x, y, board)
		// Add offset for coordinate display
		return x, y, boardW + 4, boardH + 2
	})
	return board
}

// humanToMove reports whether the human may currently place a disc.
func (g *BoardUI) humanToMove() bool {
	if g.eng == nil || g.finished {
		return false
	}
	return g.BoardState.ToMove == g.eng.PlayerColor()
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *BoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *BoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (g *BoardUI) IsFocusMode() bool {
	return g.focusMode
}

func (g *BoardUI) SelectedTile() *types.BoardPos {
	if g.selRow == -1 && g.selCol == -1 {
		return nil
	}
	return &types.BoardPos{Row: g.selRow, Col: g.selCol}
}

func (g *BoardUI) MoveSelection(dRow, dCol int) {
	if g.BoardState.Finished() {
		g.ResetSelection()
		return
	}
	prevTile := g.SelectedTile()
	if prevTile == nil {
		g.selRow = g.BoardState.LastMove.Row
		g.selCol = g.BoardState.LastMove.Col
		if g.SelectedTile() == nil {
			// No previous move made, use board center
			g.selRow = othello.Size / 2
			g.selCol = othello.Size / 2
		}
		return
	}
	if g.selRow+dRow < 0 || g.selRow+dRow >= othello.Size {
		return
	}
	if g.selCol+dCol < 0 || g.selCol+dCol >= othello.Size {
		return
	}
	g.selRow += dRow
	g.selCol += dCol
}

func (g *BoardUI) ResetSelection() {
	g.selRow = -1
	g.selCol = -1
}

// ConnectEngine connects the board to a game engine.
func (g *BoardUI) ConnectEngine(e engine.GameEngine) error {
	g.finished = false
	g.eng = e
	g.moveHistory = nil

	// Callbacks must be in place before Connect: when the human plays light
	// the engine starts thinking immediately.
	e.OnMove(func(row, col int, color othello.Color, boardState *types.BoardState) {
		g.lastTurnPass = (row == -1 && col == -1)
		g.BoardState = boardState
		if boardState.MoveNumber <= len(g.moveHistory) {
			// Undo rewound the game; drop the stale tail.
			g.moveHistory = g.moveHistory[:boardState.MoveNumber]
		} else {
			g.moveHistory = append(g.moveHistory, MoveEntry{Color: color, Row: row, Col: col})
		}
		g.refreshHint()
		// Spawn goroutine to avoid deadlock when called from main thread
		go func() {
			g.app.QueueUpdateDraw(func() {})
		}()
	})

	e.OnGameEnd(func(outcome string) {
		g.finished = true
		g.BoardState = e.GetBoardState()
		g.ResetSelection()
		g.refreshHint()
		go func() {
			g.app.QueueUpdateDraw(func() {})
		}()
	})

	if err := e.Connect(); err != nil {
		return err
	}

	g.BoardState = e.GetBoardState()
	g.refreshHint()
	return nil
}

// PlayMove plays a move at the given coordinates.
func (g *BoardUI) PlayMove(row, col int) {
	if g.finished {
		return
	}
	if g.eng == nil {
		return
	}
	if !g.eng.IsMyTurn() {
		return
	}
	if err := g.eng.PlayMove(row, col); err != nil {
		// Could show error for illegal move
		return
	}
}

// Undo rewinds the human's previous move.
func (g *BoardUI) Undo() {
	if g.finished {
		return
	}
	if g.eng == nil {
		return
	}
	if err := g.eng.Undo(); err != nil {
		return
	}
}

// Close disconnects the engine.
func (g *BoardUI) Close() {
	if g.eng == nil {
		return
	}
	g.eng.Close()
}

func (g *BoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // styleBoard
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),     // styleBoardAlt
		tcell.PaletteColor(c.Theme.Colors.DarkColor),         // styleDark
		tcell.PaletteColor(c.Theme.Colors.LightColor),        // styleLight
		tcell.PaletteColor(c.Theme.Colors.HintColor),         // styleHint
		tcell.PaletteColor(c.Theme.Colors.CursorColorFG),     // styleCursorFG
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // styleLastPlayedBG
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // styleCursorBG
	}
	g.cfg = c
}

// SetGameConfig stores the active game configuration for display.
func (g *BoardUI) SetGameConfig(cfg engine.GameConfig) {
	g.gameConfig = cfg
	if g.infoPanel != nil {
		g.infoPanel.SetGameConfig(cfg)
	}
}

func (g *BoardUI) refreshHint() {
	// Update info panel if available
	if g.infoPanel != nil {
		g.infoPanel.SetBoardState(g.BoardState)
	}

	// Focus mode shows minimal hint
	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	var statusLine, turnLine, controlsLine string

	if g.finished {
		// Game over state
		statusLine = "───────── Game Complete ─────────\n\n"
		turnLine = fmt.Sprintf("  Result: %s\n", g.BoardState.Outcome)
		controlsLine = "\n  q · return to menu"
	} else {
		// Active game state
		if g.lastTurnPass {
			statusLine = "  ○ No legal move, turn passed\n\n"
		}

		if g.eng != nil && g.eng.IsMyTurn() {
			disc := "●"
			color := "Dark"
			if g.eng.PlayerColor() == othello.Light {
				disc = "○"
				color = "Light"
			}
			turnLine = fmt.Sprintf("  %s Your move (%s)\n", disc, color)
		} else {
			turnLine = "  ◌ Thinking...\n"
		}

		controlsLine = `
  hjkl/↑↓←→ move   ⏎ play
     u undo   f focus   q quit`
	}

	g.hint.SetText(fmt.Sprintf("%s%s%s", statusLine, turnLine, controlsLine))
}

// IsFinished returns true if the game is over.
func (g *BoardUI) IsFinished() bool {
	return g.finished
}

// drawDiscCell draws a board cell (2 characters wide)
func drawDiscCell(s tcell.Screen, c tcell.Style, r rune, col, row, l, t int) {
	// Disc at position 0, padding at position 1
	s.SetContent(l+col*2, t+row, r, nil, c)
	s.SetContent(l+col*2+1, t+row, ' ', nil, c)
}

func drawCoordinates(s tcell.Screen, x, y int, ui *BoardUI) {
	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(ui.styles[styleCursorBG])
	lpHighlight := tcell.StyleDefault.Background(ui.styles[styleLastPlayedBG])

	// Column letters a-h below the board
	for col := 0; col < othello.Size; col++ {
		_style := style
		if col == ui.selCol {
			_style = highlight
		} else if col == ui.BoardState.LastMove.Col {
			_style = lpHighlight
		}
		// 2-char cells
		s.SetContent(x+4+(col*2), y+othello.Size+1, rune('a'+col), nil, _style)
		s.SetContent(x+4+(col*2)+1, y+othello.Size+1, ' ', nil, _style)
	}

	// Row numbers 1-8 on the left, top-down
	for row := 0; row < othello.Size; row++ {
		_style := style
		if row == ui.selRow {
			_style = highlight
		} else if row == ui.BoardState.LastMove.Row {
			_style = lpHighlight
		}
		s.SetContent(x+2, y+row, rune('1'+row), nil, _style)
	}
	s.Show()
}
