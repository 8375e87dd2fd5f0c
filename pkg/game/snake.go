package game

// Snake holds the ordered body of the snake, head first, together with its
// heading and the growth still owed from recently eaten food.
type Snake struct {
	body      []Point
	direction Direction
	lastMove  Direction
	growth    int
}

// NewSnake creates a snake of the given length with its head at start and
// the body trailing away opposite the heading.
func NewSnake(start Point, length int, dir Direction) *Snake {
	if length < 1 {
		length = 1
	}
	body := make([]Point, 0, length)
	p := start
	for i := 0; i < length; i++ {
		body = append(body, p)
		p = p.Translate(dir.Opposite())
	}
	return &Snake{body: body, direction: dir, lastMove: dir}
}

// Head returns the front segment.
func (s *Snake) Head() Point { return s.body[0] }

// Body returns the full body, head first. Callers must not mutate it.
func (s *Snake) Body() []Point { return s.body }

// Len returns the number of body segments.
func (s *Snake) Len() int { return len(s.body) }

// Direction returns the current heading.
func (s *Snake) Direction() Direction { return s.direction }

// GrowthPending returns how many tail drops are still suspended.
func (s *Snake) GrowthPending() int { return s.growth }

// NextHead returns the cell the head will enter on the next advance. It does
// not mutate the snake.
func (s *Snake) NextHead() Point { return s.body[0].Translate(s.direction) }

// SetDirection updates the heading and reports whether it changed. A command
// that would reverse the snake into its own neck is silently ignored; both
// the current heading and the last moved heading are checked so that two
// quick turns inside a single tick cannot fold the head back onto the body.
func (s *Snake) SetDirection(d Direction) bool {
	if d == s.direction {
		return false
	}
	if d == s.direction.Opposite() || d == s.lastMove.Opposite() {
		return false
	}
	s.direction = d
	return true
}

// Advance moves the head into next. The tail is kept while growth is
// pending (net length +1), otherwise it is dropped so the length stays
// constant. The caller guarantees next is the adjacent cell in the current
// heading.
func (s *Snake) Advance(next Point) {
	s.body = append([]Point{next}, s.body...)
	if s.growth > 0 {
		s.growth--
	} else {
		s.body = s.body[:len(s.body)-1]
	}
	s.lastMove = s.direction
}

// Grow suspends the next n tail drops.
func (s *Snake) Grow(n int) {
	if n > 0 {
		s.growth += n
	}
}

// Occupies reports whether p is covered by any body segment.
func (s *Snake) Occupies(p Point) bool {
	for _, b := range s.body {
		if b == p {
			return true
		}
	}
	return false
}
