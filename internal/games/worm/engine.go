// Package worm implements Gravity Worm: a worm crawls through a scrolling
// cave whose ceiling drifts up and down, and the player keeps it inside the
// gap by flipping its vertical direction.
//
// The Engine holds three sliding tracks of row numbers. The worm track and
// the near wall cover the columns the worm occupies; the far wall covers the
// rest of the screen and is extrapolated one value per tick. Values flow
// far -> near -> discarded as the window scrolls.
package worm

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/gravity-worm/internal/ring"
)

// Minimum field size. Below MinHeight the initial gap is zero; below
// MinWidth the far wall is empty and has nothing to extrapolate from.
const (
	MinHeight = 8
	MinWidth  = 3
)

// ErrInvalidDimension is returned when the play field is too small.
var ErrInvalidDimension = errors.New("worm: invalid dimension")

// Engine is the game state for one session.
type Engine struct {
	worm  *ring.Ring[int] // Worm rows, head at the back
	above *ring.Ring[int] // Ceiling rows under the worm
	ahead *ring.Ring[int] // Ceiling rows not yet reached

	gap      int  // Floor = ceiling + gap
	caveIncr bool // Ceiling rows grow each tick (moves down the screen)
	wormDecr bool // Head row shrinks each tick (moves up the screen)

	maxY    int
	maxX    int
	wormLen int
	score   int
}

// NewEngine builds a fresh session for a height×width field.
func NewEngine(height, width int) (*Engine, error) {
	if height < MinHeight {
		return nil, fmt.Errorf("%w: height %d, need at least %d", ErrInvalidDimension, height, MinHeight)
	}
	if width < MinWidth {
		return nil, fmt.Errorf("%w: width %d, need at least %d", ErrInvalidDimension, width, MinWidth)
	}

	caveInit := height / 8
	wormInit := height / 4
	wormLen := width/2 + 1
	aheadLen := width - wormLen

	return &Engine{
		worm:     ring.Filled(wormLen, wormInit),
		above:    ring.Filled(wormLen, caveInit),
		ahead:    ring.Filled(aheadLen, caveInit),
		gap:      caveInit * 7,
		caveIncr: false,
		wormDecr: false,
		maxY:     height,
		maxX:     width,
		wormLen:  wormLen,
	}, nil
}

// Advance scrolls the cave and the worm by one column.
func (e *Engine) Advance() {
	// Check if the ceiling must turn around
	back := mustBack(e.ahead)
	if back+e.gap >= e.maxY {
		e.caveIncr = false
		if e.gap > 1 {
			e.gap--
		}
	} else if back <= 0 {
		e.caveIncr = true
	}

	// Advance walls
	e.above.PopFront()
	front, _ := e.ahead.PopFront()
	e.above.PushBack(front)
	if e.caveIncr {
		e.ahead.PushBack(back + 1)
	} else {
		e.ahead.PushBack(back - 1)
	}

	// Advance worm
	head := mustBack(e.worm)
	e.worm.PopFront()
	if e.wormDecr {
		e.worm.PushBack(head - 1)
	} else {
		e.worm.PushBack(head + 1)
	}
}

// Alive reports whether the worm's head is strictly between ceiling and floor.
func (e *Engine) Alive() bool {
	ceil := e.Ceiling()
	head := e.Head()
	return ceil < head && head < ceil+e.gap
}

// SetWormDecr sets the worm's direction for the following ticks.
// true moves the head toward row 0.
func (e *Engine) SetWormDecr(decr bool) {
	e.wormDecr = decr
}

// WormDecr returns the worm's current direction flag.
func (e *Engine) WormDecr() bool {
	return e.wormDecr
}

// CaveIncr returns the ceiling's current trend flag.
func (e *Engine) CaveIncr() bool {
	return e.caveIncr
}

// Head returns the row of the worm's head.
func (e *Engine) Head() int {
	return mustBack(e.worm)
}

// Ceiling returns the ceiling row under the worm's head.
func (e *Engine) Ceiling() int {
	return mustBack(e.above)
}

// Gap returns the current ceiling-to-floor distance.
func (e *Engine) Gap() int {
	return e.gap
}

// WormLen returns the number of columns the worm spans.
func (e *Engine) WormLen() int {
	return e.wormLen
}

// AheadLen returns the number of columns of unreached cave.
func (e *Engine) AheadLen() int {
	return e.ahead.Len()
}

// Bounds returns the field height and width.
func (e *Engine) Bounds() (height, width int) {
	return e.maxY, e.maxX
}

// Score returns the number of ticks survived.
func (e *Engine) Score() int {
	return e.score
}

// addSurvivedTick bumps the score after a tick the worm lived through.
func (e *Engine) addSurvivedTick() {
	e.score++
}

// WormTrack returns a copy of the worm rows, tail first.
func (e *Engine) WormTrack() []int {
	return e.worm.Values()
}

// NearWall returns a copy of the ceiling rows under the worm.
func (e *Engine) NearWall() []int {
	return e.above.Values()
}

// FarWall returns a copy of the ceiling rows ahead of the worm.
func (e *Engine) FarWall() []int {
	return e.ahead.Values()
}

// mustBack returns the newest value of a track.
// Tracks are full for the engine's lifetime, so an empty one is a bug.
func mustBack(r *ring.Ring[int]) int {
	v, ok := r.Back()
	if !ok {
		panic("worm: empty track")
	}
	return v
}
