// Package day2 solves Advent of Code 2021 day 2, Dive!
package day2

import (
	"strings"

	"github.com/maisem/aoc2021"
)

type Verb int

const (
	Up Verb = iota
	Down
	Forward
)

var verbs = map[string]Verb{
	"up":      Up,
	"down":    Down,
	"forward": Forward,
}

func (v Verb) String() string {
	switch v {
	case Up:
		return "up"
	case Down:
		return "down"
	case Forward:
		return "forward"
	}
	return ""
}

// Command is a single piloting instruction.
type Command struct {
	Verb Verb
	N    int64
}

// ParseCommand parses a "<verb> <n>" line.
func ParseCommand(s string) (Command, bool) {
	verb, arg, ok := strings.Cut(strings.TrimSpace(s), " ")
	if !ok {
		return Command{}, false
	}
	v, ok := verbs[verb]
	if !ok {
		return Command{}, false
	}
	ns := aoc.Values[int64]([]string{arg})
	if len(ns) != 1 || ns[0] < 0 {
		return Command{}, false
	}
	return Command{Verb: v, N: ns[0]}, true
}

func parse(input string) []Command {
	var out []Command
	for _, l := range aoc.Lines(input) {
		if c, ok := ParseCommand(l); ok {
			out = append(out, c)
		}
	}
	return out
}

// Position is the submarine state where up and down move it directly.
type Position struct {
	X, Depth int64
}

func (p Position) Apply(c Command) Position {
	switch c.Verb {
	case Up:
		p.Depth -= c.N
	case Down:
		p.Depth += c.N
	case Forward:
		p.X += c.N
	}
	return p
}

// AimedPosition is the submarine state where up and down turn it, and
// forward moves along the current aim.
type AimedPosition struct {
	X, Depth, Aim int64
}

func (p AimedPosition) Apply(c Command) AimedPosition {
	switch c.Verb {
	case Up:
		p.Aim -= c.N
	case Down:
		p.Aim += c.N
	case Forward:
		p.X += c.N
		p.Depth += p.Aim * c.N
	}
	return p
}

func Part1(input string) int64 {
	p := aoc.Fold(parse(input), Position.Apply, Position{})
	return p.X * p.Depth
}

func Part2(input string) int64 {
	p := aoc.Fold(parse(input), AimedPosition.Apply, AimedPosition{})
	return p.X * p.Depth
}
