package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		ShowLegalMoves:           true,
		Colors: ConfigColors{
			BoardColor:        22,
			BoardColorAlt:     28,
			DarkColor:         232,
			LightColor:        255,
			HintColor:         120,
			CursorColorFG:     2,
			CursorColorBG:     4,
			LastPlayedColorBG: 130,
		},
		Symbols: ConfigSymbols{
			DarkDisc:   '●',
			LightDisc:  '●',
			EmptyCell:  ' ',
			LegalHint:  '·',
			Cursor:     '▣',
			LastPlayed: '◌',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Engine: EngineConfig{
			DefaultDepth: 4,
			Pruning:      true,
			Trace:        false,
			ThinkDelayMs: 400,
		},
	}
}
