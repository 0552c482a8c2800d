package day3

import (
	"os"
	"testing"

	"github.com/maisem/aoc2021"
)

const example = `00100
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
`

func TestParts(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) int
		want int
	}{
		{"part1", Part1, 198},
		{"part2", Part2, 230},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(example); got != tt.want {
				t.Errorf("%s(example) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestInput(t *testing.T) {
	b, err := os.ReadFile("testdata/input.txt")
	if os.IsNotExist(err) {
		t.Skip("no puzzle input")
	}
	if err != nil {
		t.Fatal(err)
	}
	if got, want := Part1(string(b)), 3958484; got != want {
		t.Errorf("Part1 = %v, want %v", got, want)
	}
	if got, want := Part2(string(b)), 1613181; got != want {
		t.Errorf("Part2 = %v, want %v", got, want)
	}
}

func TestRates(t *testing.T) {
	r := Parse(example)
	if r.Width != 5 {
		t.Fatalf("Width = %d, want 5", r.Width)
	}
	gamma, epsilon := r.Rates()
	if want := int(aoc.ParseBinary("0b10110")); gamma != want {
		t.Errorf("gamma = %b, want %b", gamma, want)
	}
	if want := int(aoc.ParseBinary("0b01001")); epsilon != want {
		t.Errorf("epsilon = %b, want %b", epsilon, want)
	}
	if got, want := gamma^epsilon, 1<<r.Width-1; got != want {
		t.Errorf("gamma^epsilon = %b, want %b", got, want)
	}
}

func TestFilter(t *testing.T) {
	r := Parse(example)
	if got, want := r.Filter(Majority), 23; got != want {
		t.Errorf("oxygen = %v, want %v", got, want)
	}
	if got, want := r.Filter(Minority), 10; got != want {
		t.Errorf("co2 = %v, want %v", got, want)
	}
}

func TestTieBreak(t *testing.T) {
	tests := []struct {
		xs       []int
		pos      int
		majority int
	}{
		{[]int{0b1, 0b0}, 0, 1},
		{[]int{0b10, 0b00, 0b10, 0b00}, 1, 1},
		{[]int{0b1, 0b0, 0b0}, 0, 0},
		{[]int{0b1, 0b1, 0b0}, 0, 1},
	}
	for _, tt := range tests {
		if got := Majority(tt.xs, tt.pos); got != tt.majority {
			t.Errorf("Majority(%b, %d) = %v, want %v", tt.xs, tt.pos, got, tt.majority)
		}
		if got := Minority(tt.xs, tt.pos); got != 1-tt.majority {
			t.Errorf("Minority(%b, %d) = %v, want %v", tt.xs, tt.pos, got, 1-tt.majority)
		}
	}
}

func TestEmpty(t *testing.T) {
	if got := Part1(""); got != 0 {
		t.Errorf("Part1(\"\") = %v, want 0", got)
	}
	if got := Part2(""); got != 0 {
		t.Errorf("Part2(\"\") = %v, want 0", got)
	}
}
