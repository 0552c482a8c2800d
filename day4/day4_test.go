package day4

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/maisem/aoc2021"
)

const example = `7,4,9,5,11,17,23,2,0,14,21,24,10,16,13,6,15,25,12,22,18,20,8,19,3,26,1

22 13 17 11  0
 8  2 23  4 24
21  9 14 16  7
 6 10  3 18  5
 1 12 20 15 19

 3 15  0  2 22
 9 18 13 17  5
19  8  7 25 23
20 11 10 24  4
14 21 16 12  6

14 21 17 24  4
10 16 15  9 19
18  8 23 26 20
22 11 13  6  5
 2  0 12  3  7
`

func TestParts(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) int
		want int
	}{
		{"part1", Part1, 4512},
		{"part2", Part2, 1924},
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
	if got, want := Part1(string(b)), 4662; got != want {
		t.Errorf("Part1 = %v, want %v", got, want)
	}
	if got, want := Part2(string(b)), 12080; got != want {
		t.Errorf("Part2 = %v, want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	g := Parse(example)
	if got, want := len(g.Numbers), 27; got != want {
		t.Errorf("len(Numbers) = %v, want %v", got, want)
	}
	if got, want := len(g.Boards), 3; got != want {
		t.Fatalf("len(Boards) = %v, want %v", got, want)
	}
	want := aoc.Grid[int]{
		{3, 15, 0, 2, 22},
		{9, 18, 13, 17, 5},
		{19, 8, 7, 25, 23},
		{20, 11, 10, 24, 4},
		{14, 21, 16, 12, 6},
	}
	if diff := cmp.Diff(want, g.Boards[1]); diff != "" {
		t.Errorf("board 1 mismatch (-want +got):\n%s", diff)
	}
	if got := g.Turn(7); got != 0 {
		t.Errorf("Turn(7) = %v, want 0", got)
	}
	if got := g.Turn(27); got != NeverDrawn {
		t.Errorf("Turn(27) = %v, want %v", got, NeverDrawn)
	}
}

func TestWinningTurn(t *testing.T) {
	g := Parse(example)
	// The third board wins on 24, the first on 16 and the second on 13.
	want := []int{13, 14, 11}
	for i, b := range g.Boards {
		if got := g.WinningTurn(b); got != want[i] {
			t.Errorf("WinningTurn(board %d) = %v, want %v", i, got, want[i])
		}
	}
}

func TestColumnWins(t *testing.T) {
	in := `1,6,11,16,21,99

 1  2  3  4  5
 6  7  8  9 10
11 12 13 14 15
16 17 18 19 20
21 22 23 24 25
`
	g := Parse(in)
	if got := g.WinningTurn(g.Boards[0]); got != 4 {
		t.Errorf("WinningTurn = %v, want 4", got)
	}
	// Unmarked: 1..25 minus the first column.
	if got, want := Part1(in), 21*(325-55); got != want {
		t.Errorf("Part1 = %v, want %v", got, want)
	}
}

func TestDiagonalDoesNotWin(t *testing.T) {
	in := `1,7,13,19,25

 1  2  3  4  5
 6  7  8  9 10
11 12 13 14 15
16 17 18 19 20
21 22 23 24 25
`
	g := Parse(in)
	if got := g.WinningTurn(g.Boards[0]); got != NeverDrawn {
		t.Errorf("WinningTurn = %v, want %v", got, NeverDrawn)
	}
	if got := Part1(in); got != 0 {
		t.Errorf("Part1 = %v, want 0", got)
	}
}

func TestTiesPickFirstBoard(t *testing.T) {
	in := `1,2,3,4,5

 1  2  3  4  5
 6  7  8  9 10
11 12 13 14 15
16 17 18 19 20
21 22 23 24 25

 1  2  3  4  5
26 27 28 29 30
31 32 33 34 35
36 37 38 39 40
41 42 43 44 45
`
	// Both boards win on turn 4; the first board's unmarked sum is 6..25.
	if got, want := Part1(in), 5*(325-15); got != want {
		t.Errorf("Part1 = %v, want %v", got, want)
	}
	if got, want := Part2(in), 5*(325-15); got != want {
		t.Errorf("Part2 = %v, want %v", got, want)
	}
}

func TestMalformedBoardsDropped(t *testing.T) {
	in := `1,2

1 2 3

 1  2  3  4  5
 6  7  8  9 10
11 12 13 14 15
16 17 18 19 20
21 22 23 24 250
`
	if got := len(Parse(in).Boards); got != 0 {
		t.Errorf("len(Boards) = %v, want 0", got)
	}
	if got := Part2(in); got != 0 {
		t.Errorf("Part2 = %v, want 0", got)
	}
}
