// Command 2021 prints the answers to Advent of Code 2021, days 1 through 7.
//
// Usage:
//
//	go run ./2021 -day 4 -part 2 2021/4.input
//	go run ./2021 -sample
package main

import (
	_ "embed"

	"github.com/maisem/aoc2021"
	"github.com/maisem/aoc2021/day1"
	"github.com/maisem/aoc2021/day2"
	"github.com/maisem/aoc2021/day3"
	"github.com/maisem/aoc2021/day4"
	"github.com/maisem/aoc2021/day5"
	"github.com/maisem/aoc2021/day6"
	"github.com/maisem/aoc2021/day7"
)

func main() {
	aoc.Run(2021, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=7

199
200
208
210
200
207
240
269
260
263
*/
func (s solver) D1p1() any {
	return day1.Part1(s.Text())
}

// want=5
func (s solver) D1p2() any {
	return day1.Part2(s.Text())
}

/*
want=150

forward 5
down 5
forward 8
up 3
down 8
forward 2
*/
func (s solver) D2p1() any {
	return day2.Part1(s.Text())
}

// want=900
func (s solver) D2p2() any {
	return day2.Part2(s.Text())
}

/*
want=198

00100
11110
10110
10111
10101
01111
00111
11100
10000
11001
00010
01010
*/
func (s solver) D3p1() any {
	return day3.Part1(s.Text())
}

// want=230
func (s solver) D3p2() any {
	return day3.Part2(s.Text())
}

/*
want=4512

7,4,9,5,11,17,23,2,0,14,21,24,10,16,13,6,15,25,12,22,18,20,8,19,3,26,1

22 13 17 11 0
8 2 23 4 24
21 9 14 16 7
6 10 3 18 5
1 12 20 15 19

3 15 0 2 22
9 18 13 17 5
19 8 7 25 23
20 11 10 24 4
14 21 16 12 6

14 21 17 24 4
10 16 15 9 19
18 8 23 26 20
22 11 13 6 5
2 0 12 3 7
*/
func (s solver) D4p1() any {
	return day4.Part1(s.Text())
}

// want=1924
func (s solver) D4p2() any {
	return day4.Part2(s.Text())
}

/*
want=5

0,9 -> 5,9
8,0 -> 0,8
9,4 -> 3,4
2,2 -> 2,1
7,0 -> 7,4
6,4 -> 2,0
0,9 -> 2,9
3,4 -> 1,4
0,0 -> 8,8
5,5 -> 8,2
*/
func (s solver) D5p1() any {
	return day5.Part1(s.Text())
}

// want=12
func (s solver) D5p2() any {
	return day5.Part2(s.Text())
}

/*
want=5934

3,4,3,1,2
*/
func (s solver) D6p1() any {
	return day6.Part1(s.Text())
}

// want=26984457539
func (s solver) D6p2() any {
	return day6.Part2(s.Text())
}

/*
want=37

16,1,2,0,4,2,7,1,2,14
*/
func (s solver) D7p1() any {
	return day7.Part1(s.Text())
}

// want=168
func (s solver) D7p2() any {
	return day7.Part2(s.Text())
}
