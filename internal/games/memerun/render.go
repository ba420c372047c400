package memerun

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/memerun/internal/core"
)

// Assets supplies optional ASCII sprites by name ("player", "token", or an
// obstacle type such as "rug"). A missing sprite falls back to a built-in
// glyph, so a nil or empty provider is always safe.
type Assets interface {
	Sprite(name string) ([]string, bool)
}

// DrawKind selects how a DrawCommand is painted.
type DrawKind int

const (
	DrawFill   DrawKind = iota // fill Rect with Glyph
	DrawSprite                 // paint Lines clipped to Rect
	DrawText                   // write Text at Rect.X, Rect.Y
	DrawFrame                  // box border around Rect
)

// DrawCommand is one primitive in screen cells.
type DrawCommand struct {
	Kind  DrawKind
	Rect  core.Rect
	Glyph rune
	Lines []string
	Text  string
	Color core.Color
}

// Fallback glyphs and colors used when no sprite is available.
const (
	PlayerGlyph = '█'
	TokenGlyph  = '◎'
	BorderGlyph = '─'
)

var obstacleStyle = map[ObstacleType]struct {
	glyph rune
	color core.Color
}{
	ObstacleRug:   {'≈', core.ColorRed},
	ObstacleFud:   {'?', core.ColorYellow},
	ObstacleBear:  {'▼', core.ColorBrightRed},
	ObstaclePaper: {'░', core.ColorWhite},
	ObstacleScam:  {'$', core.ColorMagenta},
}

// hudRows is the number of screen rows above the playfield.
const hudRows = 2

// RenderContext maps world units to screen cells. It is owned by the caller
// and rebuilt only when the screen or field size changes.
type RenderContext struct {
	Cols, Rows     int
	fieldW, fieldH float64
	scaleX, scaleY float64
}

// Update recomputes the cached scale if the size changed. It reports whether
// anything was recomputed.
func (rc *RenderContext) Update(cols, rows int, fieldW, fieldH float64) bool {
	if cols == rc.Cols && rows == rc.Rows && fieldW == rc.fieldW && fieldH == rc.fieldH {
		return false
	}
	rc.Cols, rc.Rows = cols, rows
	rc.fieldW, rc.fieldH = fieldW, fieldH
	rc.scaleX, rc.scaleY = 0, 0
	if fieldW > 0 && fieldH > 0 {
		rc.scaleX = float64(cols) / fieldW
		rc.scaleY = float64(max(rows-hudRows, 1)) / fieldH
	}
	return true
}

// toCells converts a world box to a screen rectangle of at least one cell.
func (rc RenderContext) toCells(b core.Box) core.Rect {
	x := int(math.Floor(b.X * rc.scaleX))
	y := int(math.Floor(b.Y*rc.scaleY)) + hudRows
	w := max(int(math.Round(b.W*rc.scaleX)), 1)
	h := max(int(math.Round(b.H*rc.scaleY)), 1)
	return core.NewRect(x, y, w, h)
}

// visible reports whether a world box has any part on the playfield.
func (rc RenderContext) visible(b core.Box) bool {
	return b.Right() > 0 && b.X < rc.fieldW
}

// Render turns a snapshot into draw commands. It reads s and never changes it.
func Render(s State, assets Assets, rc RenderContext) []DrawCommand {
	cmds := make([]DrawCommand, 0, 8+len(s.Store.Obstacles())+len(s.Store.Tokens()))

	cmds = append(cmds, hud(s, rc.Cols)...)
	cmds = append(cmds, DrawCommand{
		Kind:  DrawFill,
		Rect:  core.NewRect(0, hudRows-1, rc.Cols, 1),
		Glyph: BorderGlyph,
		Color: core.ColorGray,
	})

	for _, t := range s.Store.Tokens() {
		if rc.visible(t.Box) {
			cmds = append(cmds, entity(assets, "token", rc.toCells(t.Box), TokenGlyph, core.ColorBrightYellow))
		}
	}
	for _, o := range s.Store.Obstacles() {
		if !rc.visible(o.Box) {
			continue
		}
		style, ok := obstacleStyle[o.Type]
		if !ok {
			style.glyph, style.color = '#', core.ColorOrange
		}
		cmds = append(cmds, entity(assets, o.Type.String(), rc.toCells(o.Box), style.glyph, style.color))
	}
	cmds = append(cmds, entity(assets, "player", rc.toCells(s.Player), PlayerGlyph, core.ColorBrightGreen))

	return cmds
}

// entity returns a sprite command when assets provide one, or a glyph fill.
func entity(assets Assets, name string, r core.Rect, glyph rune, c core.Color) DrawCommand {
	if assets != nil {
		if lines, ok := assets.Sprite(name); ok && len(lines) > 0 {
			return DrawCommand{Kind: DrawSprite, Rect: r, Lines: lines, Color: c}
		}
	}
	return DrawCommand{Kind: DrawFill, Rect: r, Glyph: glyph, Color: c}
}

func hud(s State, cols int) []DrawCommand {
	left := fmt.Sprintf(" Score: %d  Tokens: %d  Level: %d ",
		s.Ledger.Score, s.Ledger.TokensCollected, s.Level)
	hearts := strings.Repeat("♥", s.Ledger.Lives)
	if s.Ledger.Lives > 5 {
		hearts = fmt.Sprintf("♥×%d", s.Ledger.Lives)
	}
	lives := " Lives: " + hearts + " "
	right := fmt.Sprintf(" %s  %s ", s.Pattern.Kind, formatElapsed(s.Ledger.Elapsed.Milliseconds()))

	cmds := []DrawCommand{
		{Kind: DrawText, Rect: core.NewRect(1, 0, 0, 0), Text: left, Color: core.ColorBrightYellow},
		{Kind: DrawText, Rect: core.NewRect(1+utf8.RuneCountInString(left), 0, 0, 0), Text: lives, Color: core.ColorRed},
	}
	if x := cols - utf8.RuneCountInString(right) - 1; x > 0 {
		cmds = append(cmds, DrawCommand{Kind: DrawText, Rect: core.NewRect(x, 0, 0, 0), Text: right, Color: core.ColorCyan})
	}
	return cmds
}

func formatElapsed(ms int64) string {
	sec := ms / 1000
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}

// Overlay returns commands for a centered message box.
func Overlay(cols, rows int, title, subtitle string) []DrawCommand {
	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	boxX := (cols - boxW) / 2
	boxY := (rows - boxH) / 2
	r := core.NewRect(boxX, boxY, boxW, boxH)

	return []DrawCommand{
		{Kind: DrawFill, Rect: r, Glyph: ' '},
		{Kind: DrawFrame, Rect: r, Color: core.ColorWhite},
		{
			Kind:  DrawText,
			Rect:  core.NewRect(boxX+(boxW-utf8.RuneCountInString(title))/2, boxY+1, 0, 0),
			Text:  title,
			Color: core.ColorBrightYellow,
		},
		{
			Kind:  DrawText,
			Rect:  core.NewRect(boxX+(boxW-utf8.RuneCountInString(subtitle))/2, boxY+3, 0, 0),
			Text:  subtitle,
			Color: core.ColorWhite,
		},
	}
}

// Paint rasterizes draw commands onto dst in order. Later commands cover
// earlier ones; everything outside the screen is clipped.
func Paint(dst *core.Screen, cmds []DrawCommand) {
	for _, c := range cmds {
		switch c.Kind {
		case DrawFill:
			dst.DrawRect(c.Rect, c.Glyph, c.Color)
		case DrawFrame:
			dst.DrawBox(c.Rect, c.Color)
		case DrawText:
			dst.DrawText(c.Rect.X, c.Rect.Y, c.Text, c.Color)
		case DrawSprite:
			for dy, line := range c.Lines {
				if dy >= c.Rect.H {
					break
				}
				dx := 0
				for _, r := range line {
					if dx >= c.Rect.W {
						break
					}
					if r != ' ' {
						dst.SetColor(c.Rect.X+dx, c.Rect.Y+dy, r, c.Color)
					}
					dx++
				}
			}
		}
	}
}
