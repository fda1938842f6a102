package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the given theme.
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{Theme: theme}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight
}

// DrawLine draws a line of text in the given color and returns the new Y position.
func (r *Renderer) DrawLine(x, y int32, text string, color rl.Color) int32 {
	rl.DrawText(text, x, y, r.Theme.FontSize, color)
	return y + r.Theme.LineHeight
}

// DrawCenteredText draws text horizontally centered on cx.
func (r *Renderer) DrawCenteredText(text string, cx, y, fontSize int32, color rl.Color) {
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, cx-w/2, y, fontSize, color)
}
