package game

import "math/rand"

// SpawnFood draws a uniformly random cell that is not occupied by the snake.
// It reports false when the snake covers the whole board, which the game
// treats as a win rather than retrying forever.
func SpawnFood(b Board, s *Snake, rng *rand.Rand) (Point, bool) {
	free := b.Cells() - s.Len()
	if free <= 0 {
		return Point{}, false
	}

	// Pick the nth free cell instead of rejection sampling, so the draw
	// stays uniform and terminates even on a nearly full board.
	n := rng.Intn(free)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			p := Point{X: x, Y: y}
			if s.Occupies(p) {
				continue
			}
			if n == 0 {
				return p, true
			}
			n--
		}
	}
	return Point{}, false
}
