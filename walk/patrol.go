package walk

import (
	"iter"

	"github.com/katalvlaran/gridray/grid"
)

// Patrol walks straight ahead from a start position and heading. Whenever
// the cell ahead is blocked it turns in place (clockwise by default) and
// tries again. The patrol ends when it steps off the grid, or when it
// reaches a (position, heading) state it has already been in, in which case
// Looped reports true.
type Patrol[T any] struct {
	grid    *grid.Grid[T]
	blocked func(T) bool
	turn    func(grid.Direction) grid.Direction
	pos     grid.Position
	dir     grid.Direction
	seen    map[patrolState]bool
	done    bool
	looped  bool
}

type patrolState struct {
	pos grid.Position
	dir grid.Direction
}

// NewPatrol starts a patrol at start heading dir. blocked reports cells the
// patrol may not enter; nil blocks nothing. A nil grid, an off-grid start or a
// zero dir produce an empty patrol.
func NewPatrol[T any](g *grid.Grid[T], start grid.Position, dir grid.Direction, blocked func(T) bool) *Patrol[T] {
	if blocked == nil {
		blocked = func(T) bool { return false }
	}
	return &Patrol[T]{
		grid:    g,
		blocked: blocked,
		turn:    grid.Direction.TurnRight,
		pos:     start,
		dir:     dir,
		seen:    make(map[patrolState]bool),
		done:    !g.InBounds(start) || dir.IsZero(),
	}
}

// WithTurn replaces the clockwise turn and returns p for chaining.
func (p *Patrol[T]) WithTurn(turn func(grid.Direction) grid.Direction) *Patrol[T] {
	if turn != nil {
		p.turn = turn
	}
	return p
}

// Next yields the current position and heading, then moves on.
// ok is false once the patrol has left the grid or looped.
func (p *Patrol[T]) Next() (pos grid.Position, dir grid.Direction, ok bool) {
	if p.done {
		return pos, dir, false
	}
	st := patrolState{p.pos, p.dir}
	if p.seen[st] {
		p.done, p.looped = true, true
		return pos, dir, false
	}
	p.seen[st] = true
	pos, dir = p.pos, p.dir
	p.advance()
	return pos, dir, true
}

// advance turns until the cell ahead is free or off-grid, then steps.
// A cell boxed in on every side turns forever; that shows up as a loop on
// the next call because the state repeats.
func (p *Patrol[T]) advance() {
	for i := 0; i < 4; i++ {
		next, ok := p.grid.Step(p.pos, p.dir)
		if !ok {
			p.done = true
			return
		}
		if v, _ := p.grid.Get(next); !p.blocked(v) {
			p.pos = next
			return
		}
		p.dir = p.turn(p.dir)
	}
}

// Looped reports whether the patrol ended by repeating a state.
func (p *Patrol[T]) Looped() bool { return p.looped }

// All adapts the remaining patrol to a range-over-func sequence.
func (p *Patrol[T]) All() iter.Seq2[grid.Position, grid.Direction] {
	return func(yield func(grid.Position, grid.Direction) bool) {
		for {
			pos, dir, ok := p.Next()
			if !ok || !yield(pos, dir) {
				return
			}
		}
	}
}

// Visited drains the patrol and returns the set of distinct positions it
// occupied, plus whether it ended in a loop.
func (p *Patrol[T]) Visited() (map[grid.Position]bool, bool) {
	out := make(map[grid.Position]bool)
	for pos := range p.All() {
		out[pos] = true
	}
	return out, p.looped
}
