// Package day7 solves Advent of Code 2021 day 7, The Treachery of Whales.
package day7

import (
	"slices"

	"github.com/maisem/aoc2021"
)

// Fuel is the cost for a crab to move d steps.
type Fuel func(d int) int

// Linear costs one unit of fuel per step.
func Linear(d int) int { return d }

// Triangular costs one more unit for each step than the step before.
func Triangular(d int) int { return d * (d + 1) / 2 }

// Cost returns the total fuel for every crab in xs to move to target.
func Cost(xs []int, target int, fuel Fuel) int {
	total := 0
	for _, x := range xs {
		total += fuel(aoc.AbsDiff(x, target))
	}
	return total
}

func parse(input string) []int {
	return aoc.Values[int](aoc.Split(input, ","))
}

// Part1 aligns on a median, which minimizes the sum of distances.
func Part1(input string) int {
	xs := parse(input)
	if len(xs) == 0 {
		return 0
	}
	slices.Sort(xs)
	mid := len(xs) / 2
	return min(Cost(xs, xs[mid], Linear), Cost(xs, xs[max(mid-1, 0)], Linear))
}

// Part2 aligns next to the mean: the triangular cost is minimized within
// one step of it.
func Part2(input string) int {
	xs := parse(input)
	if len(xs) == 0 {
		return 0
	}
	mean := aoc.Sum(xs...) / len(xs)
	return min(Cost(xs, mean, Triangular), Cost(xs, mean+1, Triangular))
}
