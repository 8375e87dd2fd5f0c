package game

import (
	"math/rand"
	"time"

	"github.com/trytobebee/termsnake/pkg/config"
)

// Status is the lifecycle state of a game session.
type Status int

const (
	StatusRunning Status = iota
	StatusGameOver
)

// Outcome classifies what a single tick did to the game.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeMoved
	OutcomeAte
	OutcomeHitWall
	OutcomeHitSelf
	OutcomeWon
)

// Game represents the state of one session: the snake, the board, the food
// and the score/speed bookkeeping. All mutation happens on the loop
// goroutine via Step and SetDirection.
type Game struct {
	Snake   *Snake
	Board   Board
	Food    Point
	HasFood bool

	Score      int
	Interval   time.Duration
	Status     Status
	Won        bool
	CrashPoint Point
	StartTime  time.Time

	rng *rand.Rand
}

// NewGame creates a game on a board of the given interior size, with the
// snake starting from the center in a random heading.
func NewGame(width, height int) *Game {
	return NewGameWithSource(width, height, rand.NewSource(time.Now().UnixNano()))
}

// NewGameWithSource is NewGame with a caller-supplied random source, so
// sessions can be reproduced.
func NewGameWithSource(width, height int, src rand.Source) *Game {
	rng := rand.New(src)
	g := &Game{
		Snake:     NewSnake(Point{X: width / 2, Y: height / 2}, config.InitialSnakeLength, Direction(rng.Intn(4))),
		Board:     NewBoard(width, height),
		Interval:  config.MaxInterval,
		StartTime: time.Now(),
		rng:       rng,
	}
	g.placeFood()
	return g
}

// SetDirection forwards a turn command to the snake. Reversals are ignored.
func (g *Game) SetDirection(d Direction) bool {
	if g.Status != StatusRunning {
		return false
	}
	return g.Snake.SetDirection(d)
}

// Step advances the game by one tick: compute the cell the head moves into,
// classify the outcome and mutate state accordingly. Exactly one branch
// applies to every next head.
func (g *Game) Step() Outcome {
	if g.Status != StatusRunning {
		return OutcomeNone
	}

	next := g.Snake.NextHead()
	switch {
	case !g.Board.Contains(next):
		g.Status = StatusGameOver
		g.CrashPoint = next
		return OutcomeHitWall
	case g.hitsSelf(next):
		g.Status = StatusGameOver
		g.CrashPoint = next
		return OutcomeHitSelf
	case g.HasFood && next == g.Food:
		g.Snake.Grow(1)
		g.Snake.Advance(next)
		g.Score++
		g.raiseSpeed()
		g.placeFood()
		if g.Status == StatusGameOver {
			return OutcomeWon
		}
		return OutcomeAte
	default:
		g.Snake.Advance(next)
		return OutcomeMoved
	}
}

// hitsSelf checks next against the body cells that will still be occupied
// once the head moves. The tail vacates its cell this tick unless growth is
// pending, in which case it stays and counts as occupied.
func (g *Game) hitsSelf(next Point) bool {
	body := g.Snake.Body()
	if g.Snake.GrowthPending() == 0 {
		body = body[:len(body)-1]
	}
	for _, p := range body {
		if p == next {
			return true
		}
	}
	return false
}

// raiseSpeed shortens the tick interval by one step, bounded by the floor.
func (g *Game) raiseSpeed() {
	g.Interval -= config.IntervalStep
	if g.Interval < config.MinInterval {
		g.Interval = config.MinInterval
	}
}

// placeFood spawns a new food on a free cell. When no free cell is left the
// snake has filled the board and the session ends as a won game.
func (g *Game) placeFood() {
	p, ok := SpawnFood(g.Board, g.Snake, g.rng)
	if !ok {
		g.HasFood = false
		g.Status = StatusGameOver
		g.Won = true
		return
	}
	g.Food = p
	g.HasFood = true
}

// SpeedLevel reports how many speed-up steps have been applied so far,
// from 0 up to config.MaxSpeedLevel.
func (g *Game) SpeedLevel() int {
	return int((config.MaxInterval - g.Interval) / config.IntervalStep)
}
