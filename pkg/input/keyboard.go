package input

import (
	"sync/atomic"

	"github.com/eiannone/keyboard"

	"github.com/trytobebee/termsnake/pkg/game"
)

// KeyEvent is a single raw keypress read from the terminal.
type KeyEvent struct {
	Char rune
	Key  keyboard.Key
}

// CommandKind is the category of a translated key event.
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandMove
	CommandQuit
	CommandPause
	CommandRestart
)

// Command is the translated form of a keypress. Dir is valid only for
// CommandMove.
type Command struct {
	Kind CommandKind
	Dir  game.Direction
}

// Translate maps a raw key event onto a game command. WASD and the arrow
// keys move, Q/Esc/Ctrl+C quit, P/Space pauses, R restarts; anything else
// is CommandNone.
func Translate(ev KeyEvent) Command {
	switch ev.Key {
	case keyboard.KeyArrowUp:
		return Command{Kind: CommandMove, Dir: game.Up}
	case keyboard.KeyArrowDown:
		return Command{Kind: CommandMove, Dir: game.Down}
	case keyboard.KeyArrowLeft:
		return Command{Kind: CommandMove, Dir: game.Left}
	case keyboard.KeyArrowRight:
		return Command{Kind: CommandMove, Dir: game.Right}
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Command{Kind: CommandQuit}
	case keyboard.KeySpace:
		return Command{Kind: CommandPause}
	}

	switch ev.Char {
	case 'w', 'W':
		return Command{Kind: CommandMove, Dir: game.Up}
	case 's', 'S':
		return Command{Kind: CommandMove, Dir: game.Down}
	case 'a', 'A':
		return Command{Kind: CommandMove, Dir: game.Left}
	case 'd', 'D':
		return Command{Kind: CommandMove, Dir: game.Right}
	case 'q', 'Q':
		return Command{Kind: CommandQuit}
	case 'p', 'P', ' ':
		return Command{Kind: CommandPause}
	case 'r', 'R':
		return Command{Kind: CommandRestart}
	}

	return Command{Kind: CommandNone}
}

// KeyboardHandler owns the raw-mode keyboard and pumps key events into a
// channel so the game loop can poll without blocking.
type KeyboardHandler struct {
	events  chan KeyEvent
	stopped atomic.Bool
}

// NewKeyboardHandler creates a keyboard input handler.
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{events: make(chan KeyEvent, 8)}
}

// Start puts the terminal keyboard into raw mode and begins listening.
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	go func() {
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				if h.stopped.Load() {
					return
				}
				// Transient read error: treated as no input, keep
				// listening.
				continue
			}
			select {
			case h.events <- KeyEvent{Char: char, Key: key}:
			default:
				// Queue full; dropping a keypress beats stalling
				// the reader.
			}
		}
	}()

	return nil
}

// Stop leaves raw mode and ends the pump. Safe to call more than once.
func (h *KeyboardHandler) Stop() {
	if h.stopped.CompareAndSwap(false, true) {
		keyboard.Close()
	}
}

// Events returns the channel the pump delivers key events on.
func (h *KeyboardHandler) Events() <-chan KeyEvent {
	return h.events
}
