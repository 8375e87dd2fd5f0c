package game

import "testing"

func TestNewSnakeBodyTrailsHeading(t *testing.T) {
	s := NewSnake(Point{X: 5, Y: 5}, 3, Right)

	want := []Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	if s.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(want))
	}
	for i, p := range s.Body() {
		if p != want[i] {
			t.Errorf("body[%d] = %v, want %v", i, p, want[i])
		}
	}
	if s.Direction() != Right {
		t.Errorf("Direction() = %v, want Right", s.Direction())
	}
}

func TestNextHeadDoesNotMutate(t *testing.T) {
	s := NewSnake(Point{X: 5, Y: 5}, 3, Right)

	next := s.NextHead()
	if next != (Point{X: 6, Y: 5}) {
		t.Errorf("NextHead() = %v, want (6,5)", next)
	}
	if s.Head() != (Point{X: 5, Y: 5}) {
		t.Errorf("Head() changed to %v after NextHead", s.Head())
	}
	if s.Len() != 3 {
		t.Errorf("Len() changed to %d after NextHead", s.Len())
	}
}

func TestAdvanceKeepsLength(t *testing.T) {
	s := NewSnake(Point{X: 5, Y: 5}, 3, Right)

	s.Advance(s.NextHead())

	if s.Len() != 3 {
		t.Errorf("Len() = %d after plain advance, want 3", s.Len())
	}
	if s.Head() != (Point{X: 6, Y: 5}) {
		t.Errorf("Head() = %v, want (6,5)", s.Head())
	}
	if s.Occupies(Point{X: 3, Y: 5}) {
		t.Error("old tail cell (3,5) still occupied after advance")
	}
}

func TestAdvanceWithGrowthPending(t *testing.T) {
	s := NewSnake(Point{X: 5, Y: 5}, 3, Right)

	s.Grow(1)
	if s.GrowthPending() != 1 {
		t.Fatalf("GrowthPending() = %d, want 1", s.GrowthPending())
	}

	s.Advance(s.NextHead())

	if s.Len() != 4 {
		t.Errorf("Len() = %d after growing advance, want 4", s.Len())
	}
	if s.GrowthPending() != 0 {
		t.Errorf("GrowthPending() = %d after growing advance, want 0", s.GrowthPending())
	}
	if !s.Occupies(Point{X: 3, Y: 5}) {
		t.Error("tail cell (3,5) should be kept while growth is pending")
	}
}

func TestSetDirectionRejectsReversal(t *testing.T) {
	for _, dir := range []Direction{Up, Right, Down, Left} {
		s := NewSnake(Point{X: 5, Y: 5}, 3, dir)

		if s.SetDirection(dir.Opposite()) {
			t.Errorf("SetDirection(%v) accepted while heading %v", dir.Opposite(), dir)
		}
		if s.Direction() != dir {
			t.Errorf("heading changed to %v, want %v", s.Direction(), dir)
		}
	}
}

// A reversal command must stay rejected per the spec scenario: heading away
// from the trailing body, the opposite key is a no-op because the neck cell
// is occupied.
func TestSetDirectionIgnoresNeckReversal(t *testing.T) {
	s := NewSnake(Point{X: 5, Y: 5}, 5, Down)

	want := []Point{{5, 5}, {5, 4}, {5, 3}, {5, 2}, {5, 1}}
	for i, p := range s.Body() {
		if p != want[i] {
			t.Fatalf("body[%d] = %v, want %v", i, p, want[i])
		}
	}

	if s.SetDirection(Up) {
		t.Error("reversal into the neck was accepted")
	}
	if s.Direction() != Down {
		t.Errorf("Direction() = %v, want Down", s.Direction())
	}
}

// Two turns inside one tick must not fold the snake onto its neck: after
// turning Up while still on a rightward move, Left would reverse the actual
// movement and has to be rejected until the snake has moved.
func TestSetDirectionTwoTurnsOneTick(t *testing.T) {
	s := NewSnake(Point{X: 5, Y: 5}, 3, Right)

	if !s.SetDirection(Up) {
		t.Fatal("turn Up rejected")
	}
	if s.SetDirection(Left) {
		t.Error("turn Left accepted before the Up move happened")
	}
	if s.Direction() != Up {
		t.Fatalf("Direction() = %v, want Up", s.Direction())
	}

	s.Advance(s.NextHead())

	if !s.SetDirection(Left) {
		t.Error("turn Left rejected after the Up move happened")
	}
}

func TestOccupies(t *testing.T) {
	s := NewSnake(Point{X: 5, Y: 5}, 3, Right)

	for _, p := range s.Body() {
		if !s.Occupies(p) {
			t.Errorf("Occupies(%v) = false for a body cell", p)
		}
	}
	if s.Occupies(Point{X: 6, Y: 5}) {
		t.Error("Occupies((6,5)) = true for a free cell")
	}
}
