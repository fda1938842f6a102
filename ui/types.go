// Package ui provides the score label, HUD panels and overlays drawn over the grid.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gridsnake/config"
)

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	TextColor      rl.Color // Score label
	Dim            rl.Color // Full-screen shade behind overlays
	Padding        int32
	LineHeight     int32
	FontSize       int32
	HeaderFontSize int32
	ScoreFontSize  int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 240},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.LightGray,
		TextColor:      rl.White,
		Dim:            rl.Color{R: 0, G: 0, B: 0, A: 160},
		Padding:        10,
		LineHeight:     16,
		FontSize:       12,
		HeaderFontSize: 14,
		ScoreFontSize:  24,
	}
}

// ThemeFromConfig applies the configured text color and font size to the default theme.
func ThemeFromConfig(cfg *config.Config) Theme {
	t := DefaultTheme()
	t.TextColor = ToColor(cfg.Render.Text)
	if cfg.Render.FontSize > 0 {
		t.ScoreFontSize = int32(cfg.Render.FontSize)
	}
	return t
}

// ToColor converts a configured color to a raylib color.
func ToColor(c config.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
