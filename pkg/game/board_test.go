package game

import "testing"

func TestBoardContains(t *testing.T) {
	b := NewBoard(10, 8)

	cases := []struct {
		p    Point
		want bool
	}{
		{Point{X: 0, Y: 0}, true},
		{Point{X: 9, Y: 7}, true},
		{Point{X: 5, Y: 3}, true},
		{Point{X: -1, Y: 3}, false},
		{Point{X: 3, Y: -1}, false},
		{Point{X: 10, Y: 3}, false},
		{Point{X: 3, Y: 8}, false},
		{Point{X: -1, Y: -1}, false},
	}

	for _, c := range cases {
		if got := b.Contains(c.p); got != c.want {
			t.Errorf("Contains(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestBoardCells(t *testing.T) {
	if got := NewBoard(10, 8).Cells(); got != 80 {
		t.Errorf("Cells() = %d, want 80", got)
	}
}
