package aoc

import (
	"reflect"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Grid is a dense 2-D array indexed as g[y][x].
type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.X < 0 || p.Y < 0 || p.Y >= len(g) || p.X >= len(g[0]) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// MakeGrid returns a zeroed grid x cells wide and y cells tall.
func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// GridOf reshapes cells, in row-major order, into a grid w cells wide.
// It reports false if len(cells) is not a multiple of w.
func GridOf[T any](cells []T, w int) (Grid[T], bool) {
	if w <= 0 || len(cells)%w != 0 {
		return nil, false
	}
	out := make(Grid[T], 0, len(cells)/w)
	for len(cells) > 0 {
		out = append(out, cells[:w:w])
		cells = cells[w:]
	}
	return out, true
}

var hashers map[reflect.Type]any // map[reflect.Type]func(*Grid[T]) deephash.Sum

func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) TransposeInto(out Grid[T]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			out[x][y] = g[y][x]
		}
	}
}

// Transpose returns a new grid with rows and columns swapped.
func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.TransposeInto(out)
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// Count returns the number of cells for which f returns true.
func (g Grid[T]) Count(f func(T) bool) int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if f(v) {
				n++
			}
		}
	}
	return n
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Toward returns a point moving from p to b in max 1 step in the X
// and/or Y direction.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	p.X += Sign(b.X - p.X)
	p.Y += Sign(b.Y - p.Y)
	return p
}

// Max returns the component-wise maximum of p and b.
func (p Pt2[T]) Max(b Pt2[T]) Pt2[T] {
	return Pt2[T]{max(p.X, b.X), max(p.Y, b.Y)}
}

// Segment is the straight line from A to B, inclusive of both ends.
type Segment struct {
	A, B Pt
}

// Len returns the number of unit steps from A to B when moving
// horizontally, vertically or diagonally.
func (s Segment) Len() int {
	return max(AbsDiff(s.A.X, s.B.X), AbsDiff(s.A.Y, s.B.Y))
}

// IsAxisAligned reports whether s is horizontal or vertical.
func (s Segment) IsAxisAligned() bool {
	return s.A.X == s.B.X || s.A.Y == s.B.Y
}

// Reverse returns s with its endpoints swapped.
func (s Segment) Reverse() Segment {
	return Segment{A: s.B, B: s.A}
}

// ForPoints calls f for each of the Len()+1 lattice points from A to B. It
// only enumerates the exact points of horizontal, vertical and 45°
// segments.
func (s Segment) ForPoints(f func(Pt)) {
	p := s.A
	for i := 0; i <= s.Len(); i++ {
		f(p)
		p = p.Toward(s.B)
	}
}
