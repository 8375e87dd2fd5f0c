package renderer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/trytobebee/termsnake/pkg/config"
	"github.com/trytobebee/termsnake/pkg/game"
)

// TerminalRenderer draws full frames of the game into a single buffered
// write per tick, so the screen never shows a half-painted board.
type TerminalRenderer struct {
	grid   [][]int
	buffer strings.Builder
	out    io.Writer
}

// Cell types for the board grid.
const (
	cellEmpty = iota
	cellHead
	cellBody
	cellFood
	cellCrash
)

var (
	borderColor = color.New(color.FgHiBlack)
	foodColor   = color.New(color.FgWhite)
	crashColor  = color.New(color.FgHiRed, color.Bold)

	// Snake color by speed band: the faster the snake, the hotter the
	// color. Two speed levels per band, top level bright red.
	speedColors = []*color.Color{
		color.New(color.FgGreen),
		color.New(color.FgCyan),
		color.New(color.FgYellow),
		color.New(color.FgMagenta),
		color.New(color.FgHiRed),
	}
)

// NewTerminalRenderer creates a renderer for a board of the given interior
// size, writing to stdout.
func NewTerminalRenderer(width, height int) *TerminalRenderer {
	// Pre-allocate the grid to keep the per-frame work allocation-light.
	grid := make([][]int, height)
	for i := range grid {
		grid[i] = make([]int, width)
	}
	return &TerminalRenderer{grid: grid, out: os.Stdout}
}

// SetOutput redirects frames to w. Used by tests.
func (r *TerminalRenderer) SetOutput(w io.Writer) { r.out = w }

// Setup switches to the alternate screen and hides the cursor. Call once at
// startup; Restore must run on every exit path.
func (r *TerminalRenderer) Setup() {
	fmt.Fprint(r.out, "\033[?1049h\033[?25l")
}

// Restore leaves the alternate screen, shows the cursor and resets colors,
// returning the user's shell to a usable state.
func (r *TerminalRenderer) Restore() {
	fmt.Fprint(r.out, "\033[0m\033[?25h\033[?1049l")
}

// Render repaints the whole frame with one write.
func (r *TerminalRenderer) Render(g *game.Game, paused bool) {
	fmt.Fprint(r.out, "\033[H\033[2J\033[3J"+r.Frame(g, paused))
}

// Frame builds the complete frame for the current state: title, score line,
// border, snake, food and status banners.
func (r *TerminalRenderer) Frame(g *game.Game, paused bool) string {
	r.buffer.Reset()

	for y := range r.grid {
		for x := range r.grid[y] {
			r.grid[y][x] = cellEmpty
		}
	}

	for i, p := range g.Snake.Body() {
		if !g.Board.Contains(p) {
			continue
		}
		if i == 0 {
			r.grid[p.Y][p.X] = cellHead
		} else {
			r.grid[p.Y][p.X] = cellBody
		}
	}
	if g.HasFood {
		r.grid[g.Food.Y][g.Food.X] = cellFood
	}
	if g.Status == game.StatusGameOver && g.Board.Contains(g.CrashPoint) {
		r.grid[g.CrashPoint.Y][g.CrashPoint.X] = cellCrash
	}

	snakeColor := speedColor(g.SpeedLevel())

	r.buffer.WriteString("\n  🐍 SNAKE 🐍\n")
	r.buffer.WriteString(fmt.Sprintf("  Score: %d  |  Speed: %d/%d\n",
		g.Score, g.SpeedLevel(), config.MaxSpeedLevel))
	r.buffer.WriteString("\n")

	wall := borderColor.Sprint(config.CharWall)
	r.buffer.WriteString("  " + borderColor.Sprint(strings.Repeat(config.CharWall, g.Board.Width+2)) + "\n")
	for _, row := range r.grid {
		r.buffer.WriteString("  " + wall)
		for _, cell := range row {
			switch cell {
			case cellHead:
				r.buffer.WriteString(snakeColor.Sprint(config.CharHead))
			case cellBody:
				r.buffer.WriteString(snakeColor.Sprint(config.CharBody))
			case cellFood:
				r.buffer.WriteString(foodColor.Sprint(config.CharFood))
			case cellCrash:
				r.buffer.WriteString(crashColor.Sprint(config.CharCrash))
			default:
				r.buffer.WriteString(config.CharEmpty)
			}
		}
		r.buffer.WriteString(wall + "\n")
	}
	r.buffer.WriteString("  " + borderColor.Sprint(strings.Repeat(config.CharWall, g.Board.Width+2)) + "\n")

	r.buffer.WriteString("\n  WASD or arrow keys to steer, P to pause, Q to quit\n")

	if paused && g.Status == game.StatusRunning {
		r.buffer.WriteString("\n  ⏸  PAUSED - press P to continue\n")
	}
	if g.Status == game.StatusGameOver {
		if g.Won {
			r.buffer.WriteString("\n  🏆 YOU WIN! The board is full. Press R to restart or Q to quit\n")
		} else {
			r.buffer.WriteString("\n  💀 GAME OVER! Press R to restart or Q to quit\n")
		}
	}

	return r.buffer.String()
}

// speedColor maps a speed level onto its color band.
func speedColor(level int) *color.Color {
	band := level / 2
	if band >= len(speedColors) {
		band = len(speedColors) - 1
	}
	if band < 0 {
		band = 0
	}
	return speedColors[band]
}
