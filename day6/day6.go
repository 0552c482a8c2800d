// Package day6 solves Advent of Code 2021 day 6, Lanternfish.
package day6

import "github.com/maisem/aoc2021"

const (
	resetTimer = 6
	newTimer   = 8
)

// Cohorts counts the fish by timer value. It is used as a ring: on day d,
// slot d%9 holds the fish whose timer is 0.
type Cohorts [newTimer + 1]int64

// NewCohorts returns the cohorts of the given fish timers. Timers outside
// 0..8 are ignored.
func NewCohorts(timers []int) Cohorts {
	var c Cohorts
	for _, t := range timers {
		if t >= 0 && t <= newTimer {
			c[t]++
		}
	}
	return c
}

// Step advances the population by one day, where day is the number of days
// already simulated. The fish with timer 0 stay in their slot as their own
// newborns (timer 8, nine days on) and are added again to the slot
// reached seven days on.
func (c *Cohorts) Step(day int) {
	c[(day+resetTimer+1)%len(c)] += c[day%len(c)]
}

// Total returns the population size.
func (c Cohorts) Total() int64 {
	return aoc.Sum(c[:]...)
}

// Simulate returns the population after the given number of days.
func Simulate(timers []int, days int) int64 {
	c := NewCohorts(timers)
	for d := 0; d < days; d++ {
		c.Step(d)
	}
	return c.Total()
}

func parse(input string) []int {
	return aoc.Values[int](aoc.Split(input, ","))
}

func Part1(input string) int64 {
	return Simulate(parse(input), 80)
}

func Part2(input string) int64 {
	return Simulate(parse(input), 256)
}
