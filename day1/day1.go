// Package day1 solves Advent of Code 2021 day 1, Sonar Sweep.
package day1

import "github.com/maisem/aoc2021"

func parse(input string) []int {
	return aoc.Values[int](aoc.Lines(input))
}

// Count returns the number of indices i for which xs[i] < xs[i+stride].
//
// Comparing at stride 3 is the same as comparing consecutive sums of three
// element windows, since the two middle terms of adjacent windows cancel.
func Count(xs []int, stride int) int {
	n := 0
	for i := 0; i+stride < len(xs); i++ {
		if xs[i] < xs[i+stride] {
			n++
		}
	}
	return n
}

// CountWindowIncreases returns the number of times the sum of a sliding
// window of the given width increases.
func CountWindowIncreases(xs []int, width int) int {
	if len(xs) < width {
		return 0
	}
	var sums []int
	for i := 0; i+width <= len(xs); i++ {
		sums = append(sums, aoc.Sum(xs[i:i+width]...))
	}
	return Count(sums, 1)
}

func Part1(input string) int {
	return Count(parse(input), 1)
}

func Part2(input string) int {
	return Count(parse(input), 3)
}
