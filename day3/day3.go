// Package day3 solves Advent of Code 2021 day 3, Binary Diagnostic.
package day3

import (
	"strings"

	"github.com/maisem/aoc2021"
)

// Report is the diagnostic report: a list of numbers sharing a bit width.
type Report struct {
	Width  int
	Values []int
}

// Parse reads one binary number per line. The width is the length of the
// first line.
func Parse(input string) Report {
	lines := aoc.Lines(input)
	var r Report
	if len(lines) > 0 {
		r.Width = len(strings.TrimSpace(lines[0]))
	}
	r.Values = aoc.Binaries[int](lines)
	return r
}

// Criterion picks the bit value to keep at a position.
type Criterion func(xs []int, pos int) int

// Majority returns the most common value of bit pos in xs. Ties go to 1.
func Majority(xs []int, pos int) int {
	ones := 0
	for _, x := range xs {
		ones += x >> pos & 1
	}
	if 2*ones >= len(xs) {
		return 1
	}
	return 0
}

// Minority returns the least common value of bit pos in xs. Ties go to 0.
func Minority(xs []int, pos int) int {
	return 1 - Majority(xs, pos)
}

// Rates returns the gamma and epsilon rates of the report.
func (r Report) Rates() (gamma, epsilon int) {
	for pos := 0; pos < r.Width; pos++ {
		gamma |= Majority(r.Values, pos) << pos
		epsilon |= Minority(r.Values, pos) << pos
	}
	return gamma, epsilon
}

// Filter repeatedly keeps the values whose bit matches the criterion,
// starting at the most significant bit, until one value remains. It
// returns 0 if xs is empty.
func (r Report) Filter(c Criterion) int {
	xs := r.Values
	for pos := r.Width - 1; pos >= 0 && len(xs) > 1; pos-- {
		want := c(xs, pos)
		var keep []int
		for _, x := range xs {
			if x>>pos&1 == want {
				keep = append(keep, x)
			}
		}
		xs = keep
	}
	if len(xs) == 0 {
		return 0
	}
	return xs[0]
}

func Part1(input string) int {
	gamma, epsilon := Parse(input).Rates()
	return gamma * epsilon
}

func Part2(input string) int {
	r := Parse(input)
	return r.Filter(Majority) * r.Filter(Minority)
}
