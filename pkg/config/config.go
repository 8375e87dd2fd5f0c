package config

import "time"

// Board sizing. The playable area is derived from the terminal size at
// startup and clamped to these bounds. A terminal smaller than the minimum
// is a setup failure.
const (
	MinBoardWidth  = 10
	MinBoardHeight = 10
	MaxBoardWidth  = 60
	MaxBoardHeight = 30

	// ChromeRows is the number of screen rows taken by the title, score
	// line, border and help text around the playable area.
	ChromeRows = 8
)

// InitialSnakeLength is the body length at game start.
const InitialSnakeLength = 3

// Speed settings. Every food eaten shortens the tick interval by one step
// until the floor is reached.
const (
	MaxInterval  = 128 * time.Millisecond
	MinInterval  = 32 * time.Millisecond
	IntervalStep = 12 * time.Millisecond
)

// MaxSpeedLevel is the number of speed-up steps between MaxInterval and
// MinInterval.
const MaxSpeedLevel = int((MaxInterval - MinInterval) / IntervalStep)

// Characters used by the terminal renderer.
const (
	CharEmpty = " "
	CharWall  = "#"
	CharHead  = "S"
	CharBody  = "s"
	CharFood  = "A"
	CharCrash = "X"
)
