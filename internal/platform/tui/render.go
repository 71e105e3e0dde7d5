package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyrush/internal/core"
	"github.com/vovakirdan/skyrush/internal/sim"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.Get(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.Get(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// entityGlyph returns the corridor glyph and color for an entity.
// Laser gates are drawn separately because they span multiple lanes.
func entityGlyph(v sim.EntityView, word string) (rune, core.Color) {
	switch v.Kind {
	case sim.KindObstacle:
		return '^', core.ColorRed
	case sim.KindGem:
		return '*', core.ColorYellow
	case sim.KindLetter:
		glyph := '?'
		if v.LetterIndex >= 0 && v.LetterIndex < len(word) {
			glyph = rune(word[v.LetterIndex])
		}
		return glyph, core.ColorCyan
	case sim.KindShopPortal:
		return 'O', core.ColorMagenta
	case sim.KindAlien:
		return '@', core.ColorGreen
	case sim.KindMissile:
		return '!', core.ColorRed
	case sim.KindMagnet:
		return 'M', core.ColorBlue
	case sim.KindShield:
		return 'S', core.ColorCyan
	case sim.KindDrone:
		return 'v', core.ColorMagenta
	case sim.KindBarrier:
		return '#', core.ColorOrange
	case sim.KindSpikeFloor:
		return 'x', core.ColorGray
	case sim.KindTurret:
		return 'T', core.ColorOrange
	case sim.KindJumpPad:
		return '~', core.ColorGreen
	case sim.KindSpeedBoost:
		return '>', core.ColorYellow
	default:
		return '?', core.ColorDefault
	}
}

// corridorGeometry maps simulation coordinates onto screen cells.
// The lane axis runs horizontally around the screen center; the forward
// axis runs up the screen, with the player row near the bottom.
type corridorGeometry struct {
	centerCol   int
	playerRow   int
	topRow      int
	colsPerUnit float64
	rowsPerUnit float64
	halfWidth   float64 // Corridor half-width in simulation units
}

// newCorridorGeometry fits the corridor into the screen between topRow
// and the bottom margin. depth is how many forward units the view shows.
func newCorridorGeometry(s *core.Screen, topRow int, laneCount int, laneWidth, depth float64) corridorGeometry {
	half := float64(laneCount) * laneWidth / 2

	// Aim for ~5 columns per lane, clamped to the screen.
	corridorCols := laneCount * 5
	if corridorCols > s.Width()-4 {
		corridorCols = s.Width() - 4
	}
	if corridorCols < laneCount {
		corridorCols = laneCount
	}

	playerRow := s.Height() - 3
	rows := playerRow - topRow
	if rows < 1 {
		rows = 1
	}

	return corridorGeometry{
		centerCol:   s.Width() / 2,
		playerRow:   playerRow,
		topRow:      topRow,
		colsPerUnit: float64(corridorCols) / (2 * half),
		rowsPerUnit: float64(rows) / depth,
		halfWidth:   half,
	}
}

// cell projects a simulation position to a screen cell. ok is false when
// the position falls outside the visible corridor band.
func (g corridorGeometry) cell(x, z float64) (col, row int, ok bool) {
	col = g.centerCol + int(x*g.colsPerUnit+0.5*sign(x))
	row = g.playerRow + int(z*g.rowsPerUnit)
	ok = row >= g.topRow && row <= g.playerRow+1
	return col, row, ok
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// drawLanes draws the corridor edges and lane separators.
func (g corridorGeometry) drawLanes(s *core.Screen, laneCount int, laneWidth float64) {
	for row := g.topRow; row <= g.playerRow+1; row++ {
		for i := 0; i <= laneCount; i++ {
			x := -g.halfWidth + float64(i)*laneWidth
			col := g.centerCol + int(x*g.colsPerUnit+0.5*sign(x))
			glyph := ':'
			if i == 0 || i == laneCount {
				glyph = '|'
			}
			s.Set(col, row, glyph, core.ColorGray)
		}
	}
}

// drawHUD renders the status line and word progress at the top of the screen.
func drawHUD(s *core.Screen, score, gems, lives, level int, distance float64, word string, collected []bool) {
	status := fmt.Sprintf(" SCORE %06d  GEMS %d  LIVES %d  LEVEL %d  %.0fm",
		score, gems, lives, level, distance)
	s.DrawText(0, 0, status, core.ColorWhite)

	// Word progress: collected letters lit, missing ones dimmed.
	col := 1
	for i, r := range word {
		c := core.ColorGray
		if i < len(collected) && collected[i] {
			c = core.ColorCyan
		}
		s.Set(col, 1, r, c)
		col += 2
	}
}

// drawCenteredText draws text centered horizontally at the given row.
func drawCenteredText(s *core.Screen, row int, text string, c core.Color) {
	x := (s.Width() - len(text)) / 2
	if x < 0 {
		x = 0
	}
	s.DrawText(x, row, text, c)
}
