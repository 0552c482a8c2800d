// Package day4 solves Advent of Code 2021 day 4, Giant Squid.
//
// Rather than simulating the draws, the draw order is inverted into a table
// of the turn each number is called on. A line completes on the largest
// turn among its cells, and a board wins on the smallest such turn among
// its rows and columns.
package day4

import "github.com/maisem/aoc2021"

const (
	boardSize = 5

	// NeverDrawn is the turn of a number that is not called. It is larger
	// than any real turn and any valid number.
	NeverDrawn = 100
)

// Game is a parsed bingo game.
type Game struct {
	Numbers []int
	Boards  []aoc.Grid[int]

	turns [NeverDrawn]int // number -> first turn it is called on
}

// Parse reads the comma separated draws from the first block, and one
// 5x5 board per following block. Blocks that are not 5x5 boards of valid
// numbers are dropped.
func Parse(input string) *Game {
	blocks := aoc.Blocks(input)
	g := &Game{}
	if len(blocks) == 0 {
		return g
	}
	for _, n := range aoc.Values[int](aoc.Split(blocks[0], ",")) {
		if valid(n) {
			g.Numbers = append(g.Numbers, n)
		}
	}
	for _, b := range blocks[1:] {
		cells := aoc.Values[int](aoc.Fields(b))
		if len(cells) != boardSize*boardSize || !allValid(cells) {
			continue
		}
		board, ok := aoc.GridOf(cells, boardSize)
		if ok {
			g.Boards = append(g.Boards, board)
		}
	}
	for i := range g.turns {
		g.turns[i] = NeverDrawn
	}
	for turn := len(g.Numbers) - 1; turn >= 0; turn-- {
		g.turns[g.Numbers[turn]] = turn
	}
	return g
}

func valid(n int) bool {
	return n >= 0 && n < NeverDrawn
}

func allValid(ns []int) bool {
	for _, n := range ns {
		if !valid(n) {
			return false
		}
	}
	return true
}

// Turn returns the first turn on which n is called, or NeverDrawn.
func (g *Game) Turn(n int) int {
	return g.turns[n]
}

// lineTurn returns the turn on which every number in line has been called.
func (g *Game) lineTurn(line []int) int {
	t := 0
	for _, n := range line {
		t = max(t, g.turns[n])
	}
	return t
}

// WinningTurn returns the first turn on which a row or column of b is
// complete, or NeverDrawn if b never wins. Diagonals do not count.
func (g *Game) WinningTurn(b aoc.Grid[int]) int {
	t := NeverDrawn
	for _, row := range b {
		t = min(t, g.lineTurn(row))
	}
	for _, col := range b.Transpose() {
		t = min(t, g.lineTurn(col))
	}
	return t
}

// Score returns the score of b if it wins on turn: the number called on
// that turn times the sum of the numbers not yet called.
func (g *Game) Score(b aoc.Grid[int], turn int) int {
	if turn < 0 || turn >= len(g.Numbers) {
		return 0
	}
	var unmarked []int
	for _, row := range b {
		for _, n := range row {
			if g.turns[n] > turn {
				unmarked = append(unmarked, n)
			}
		}
	}
	return g.Numbers[turn] * aoc.Sum(unmarked...)
}

// pick returns the score of the board whose winning turn is preferred by
// better. Ties go to the board that comes first in the input.
func (g *Game) pick(better func(t, best int) bool) int {
	best, bestTurn := -1, 0
	for i, b := range g.Boards {
		t := g.WinningTurn(b)
		if best == -1 || better(t, bestTurn) {
			best, bestTurn = i, t
		}
	}
	if best == -1 {
		return 0
	}
	return g.Score(g.Boards[best], bestTurn)
}

// Part1 returns the score of the first board to win.
func Part1(input string) int {
	return Parse(input).pick(func(t, best int) bool { return t < best })
}

// Part2 returns the score of the last board to win.
func Part2(input string) int {
	return Parse(input).pick(func(t, best int) bool { return t > best })
}
