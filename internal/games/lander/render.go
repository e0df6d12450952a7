package lander

import (
	"fmt"
	"math"

	"github.com/vovakirdan/xtarda-rescue/internal/core"
)

// Visual characters for rendering
const (
	StarDim        = '.'
	StarBright     = '*'
	MothershipHull = '='
	MothershipNose = '<'
	MothershipTail = '>'
	PodChar        = 'A'
	ManChar        = 'i'
	AsteroidChar   = '@'
	PadChar        = '#'
	GroundChar     = '▀'
)

var explosionGlyphs = []rune{'*', '+', 'x', '.'}

// hudRows is the number of rows reserved above the playfield.
const hudRows = 1

// Render draws the current world into dst.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Snapshot()
	snap.Draw(dst)
}

// Draw renders the snapshot into dst, scaling world units to cells.
func (s *Snapshot) Draw(dst *core.Screen) {
	dst.Clear()
	v := viewport{
		sx: float64(dst.Width()) / s.WorldW,
		sy: float64(dst.Height()-hudRows) / s.WorldH,
	}

	s.drawStars(dst, v)
	s.drawGround(dst, v)
	s.drawAsteroids(dst, v)
	s.drawMothership(dst, v)
	s.drawPod(dst, v)
	s.drawMan(dst, v)
	s.drawHUD(dst)
	s.drawOverlay(dst)
}

// viewport maps world coordinates to screen cells.
type viewport struct {
	sx, sy float64
}

func (v viewport) cellX(x float64) int { return int(math.Floor(x * v.sx)) }

func (v viewport) cellY(y float64) int { return hudRows + int(math.Floor(y*v.sy)) }

func (s *Snapshot) drawStars(dst *core.Screen, v viewport) {
	for _, st := range s.Stars {
		if st.Bright {
			dst.SetColored(v.cellX(st.X), v.cellY(st.Y), StarBright, core.ColorWhite)
		} else {
			dst.SetColored(v.cellX(st.X), v.cellY(st.Y), StarDim, core.ColorGray)
		}
	}
}

func (s *Snapshot) drawGround(dst *core.Screen, v viewport) {
	groundRow := v.cellY(s.GroundY)
	for y := groundRow; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundChar, core.ColorDarkGreen)
	}

	padRow := v.cellY(s.GroundY - s.PadHeight)
	left, right := v.cellX(s.PadLeft), v.cellX(s.PadRight)
	dst.DrawHLine(left, padRow, right-left, PadChar, core.ColorYellow)
}

// drawAsteroids fills every cell whose centre lies inside a blob.
func (s *Snapshot) drawAsteroids(dst *core.Screen, v viewport) {
	for i := range s.Asteroids {
		a := &s.Asteroids[i]
		for b := range a.Blobs {
			bx, by := a.BlobCenter(b)
			r := a.Blobs[b].Radius
			for cy := v.cellY(by - r); cy <= v.cellY(by+r); cy++ {
				for cx := v.cellX(bx - r); cx <= v.cellX(bx+r); cx++ {
					wx := (float64(cx) + 0.5) / v.sx
					wy := (float64(cy-hudRows) + 0.5) / v.sy
					if core.Distance(wx, wy, bx, by) <= r {
						dst.SetColored(cx, cy, AsteroidChar, core.ColorGreen)
					}
				}
			}
		}
	}
}

func (s *Snapshot) drawMothership(dst *core.Screen, v viewport) {
	ms := &s.Mothership
	x0, x1 := v.cellX(ms.X), v.cellX(ms.X+ms.Width)
	y := v.cellY(ms.Y)
	dst.DrawHLine(x0, y, core.Max(x1-x0, 1), MothershipHull, core.ColorBrightGreen)
	dst.SetColored(x0, y, MothershipNose, core.ColorBrightGreen)
	dst.SetColored(core.Max(x1-1, x0), y, MothershipTail, core.ColorBrightGreen)
}

func (s *Snapshot) drawPod(dst *core.Screen, v viewport) {
	p := &s.Pod
	x, y := v.cellX(p.CenterX()), v.cellY(p.CenterY())

	switch p.Status {
	case PodInactive:
		return
	case PodExploding:
		// Debris spreads as the timer runs
		spread := 1 + p.ExplosionTimer/5
		glyph := explosionGlyphs[core.Clamp(p.ExplosionTimer/5, 0, len(explosionGlyphs)-1)]
		color := core.ColorRed
		if p.FreshExplosion {
			color = core.ColorYellow
		}
		for dx := -spread; dx <= spread; dx++ {
			dst.SetColored(x+dx, y, glyph, color)
		}
		dst.SetColored(x, y-1, glyph, color)
		dst.SetColored(x, y+1, glyph, color)
	default:
		dst.SetColored(x, y, PodChar, core.ColorWhite)
	}
}

func (s *Snapshot) drawMan(dst *core.Screen, v viewport) {
	if s.Man.Status != ManEnteringPod {
		return
	}
	dst.SetColored(v.cellX(s.Man.X), v.cellY(s.Man.Y+s.ManHeight)-1, ManChar, core.ColorWhite)
}

func (s *Snapshot) drawHUD(dst *core.Screen) {
	p := s.Progress
	left := fmt.Sprintf("LEVEL %d  MEN %d", p.Level, p.MenToRescue)
	dst.DrawTextColored(1, 0, left, core.ColorBrightGreen)

	dst.DrawTextCentered(0, fmt.Sprintf("RESCUED %d", p.Rescued), core.ColorGreen)

	right := fmt.Sprintf("PODS %d", p.PodsRemaining)
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorBrightGreen)
}

func (s *Snapshot) drawOverlay(dst *core.Screen) {
	switch s.Status {
	case StatusSplash:
		drawCenteredBox(dst, "XTARDA RESCUE", "Press ENTER to start")
	case StatusNewLevel:
		subtitle := fmt.Sprintf("Pods carried over: %d  |  ENTER to continue", s.Progress.PodsCarriedOver)
		drawCenteredBox(dst, fmt.Sprintf("LEVEL %d", s.Progress.Level), subtitle)
	case StatusPaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StatusGameOver:
		subtitle := fmt.Sprintf("Rescued: %d  |  R to restart, Q to quit", s.Progress.Rescued)
		drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorGreen)
	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightGreen)
	dst.DrawTextColored(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle, core.ColorGreen)
}
