// Package day5 solves Advent of Code 2021 day 5, Hydrothermal Venture.
package day5

import (
	"strings"

	"github.com/maisem/aoc2021"
)

func parsePt(s string) (aoc.Pt, bool) {
	xy := aoc.Values[int](strings.Split(s, ","))
	if len(xy) != 2 || xy[0] < 0 || xy[1] < 0 {
		return aoc.Pt{}, false
	}
	return aoc.Pt{X: xy[0], Y: xy[1]}, true
}

// ParseSegment parses a "x1,y1 -> x2,y2" line.
func ParseSegment(s string) (aoc.Segment, bool) {
	a, b, ok := strings.Cut(s, " -> ")
	if !ok {
		return aoc.Segment{}, false
	}
	pa, ok := parsePt(a)
	if !ok {
		return aoc.Segment{}, false
	}
	pb, ok := parsePt(b)
	if !ok {
		return aoc.Segment{}, false
	}
	return aoc.Segment{A: pa, B: pb}, true
}

// Parse returns the vent segments, dropping lines that do not parse.
func Parse(input string) []aoc.Segment {
	var out []aoc.Segment
	for _, l := range aoc.Lines(input) {
		if s, ok := ParseSegment(l); ok {
			out = append(out, s)
		}
	}
	return out
}

// Rasterize returns a grid large enough for every endpoint in segs, with
// each cell holding the number of admitted segments covering it.
func Rasterize(segs []aoc.Segment, admit func(aoc.Segment) bool) aoc.Grid[int] {
	var size aoc.Pt
	for _, s := range segs {
		size = size.Max(s.A).Max(s.B)
	}
	g := aoc.MakeGrid[int](size.X+1, size.Y+1)
	for _, s := range segs {
		if !admit(s) {
			continue
		}
		s.ForPoints(func(p aoc.Pt) {
			g[p.Y][p.X]++
		})
	}
	return g
}

func overlaps(g aoc.Grid[int]) int {
	return g.Count(func(n int) bool { return n > 1 })
}

func all(aoc.Segment) bool { return true }

// Part1 counts the points where at least two horizontal or vertical lines
// overlap.
func Part1(input string) int {
	return overlaps(Rasterize(Parse(input), aoc.Segment.IsAxisAligned))
}

// Part2 counts the points where at least two lines overlap.
func Part2(input string) int {
	return overlaps(Rasterize(Parse(input), all))
}
