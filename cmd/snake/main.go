package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/trytobebee/termsnake/pkg/config"
	"github.com/trytobebee/termsnake/pkg/game"
	"github.com/trytobebee/termsnake/pkg/input"
	"github.com/trytobebee/termsnake/pkg/renderer"
)

func main() {
	os.Exit(run())
}

func run() int {
	width, height, err := boardSize()
	if err != nil {
		fmt.Fprintln(os.Stderr, "snake:", err)
		return 1
	}

	keys := input.NewKeyboardHandler()
	if err := keys.Start(); err != nil {
		fmt.Fprintln(os.Stderr, "snake: cannot open keyboard:", err)
		return 1
	}

	render := renderer.NewTerminalRenderer(width, height)
	render.Setup()

	// Terminal state must come back on every way out of the loop: normal
	// quit, game over and interrupt. The Once keeps the release from
	// running twice when paths overlap.
	var restoreOnce sync.Once
	restore := func() {
		restoreOnce.Do(func() {
			render.Restore()
			keys.Stop()
		})
	}
	defer restore()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		restore()
		os.Exit(1)
	}()

	g := game.NewGame(width, height)
	paused := false
	render.Render(g, paused)

	for {
		deadline := time.Now().Add(g.Interval)

		// Drain pending input for the remainder of the tick. The timer
		// below is the only place the loop sleeps, and a quit command
		// leaves before sleeping again.
		for {
			remaining := time.Until(deadline)
			if remaining <= 0 {
				break
			}
			select {
			case ev := <-keys.Events():
				switch cmd := input.Translate(ev); cmd.Kind {
				case input.CommandQuit:
					restore()
					farewell(g.Score)
					return 0
				case input.CommandMove:
					if !paused {
						g.SetDirection(cmd.Dir)
					}
				case input.CommandPause:
					if g.Status == game.StatusRunning {
						paused = !paused
						render.Render(g, paused)
					}
				case input.CommandRestart:
					if g.Status == game.StatusGameOver {
						g = game.NewGame(width, height)
						paused = false
						render.Render(g, paused)
					}
				}
			case <-time.After(remaining):
			}
		}

		if paused || g.Status != game.StatusRunning {
			continue
		}
		g.Step()
		render.Render(g, paused)
	}
}

// boardSize derives the playable area from the terminal, leaving room for
// the border and the text around it.
func boardSize() (int, int, error) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("cannot determine terminal size: %w", err)
	}

	width := cols - 4
	height := rows - config.ChromeRows
	if width > config.MaxBoardWidth {
		width = config.MaxBoardWidth
	}
	if height > config.MaxBoardHeight {
		height = config.MaxBoardHeight
	}
	if width < config.MinBoardWidth || height < config.MinBoardHeight {
		return 0, 0, fmt.Errorf("terminal too small: the board needs at least %dx%d cells",
			config.MinBoardWidth, config.MinBoardHeight)
	}
	return width, height, nil
}

func farewell(score int) {
	fmt.Printf("Thanks for playing! Final score: %s\n",
		color.New(color.FgHiGreen, color.Bold).Sprintf("%d", score))
}
