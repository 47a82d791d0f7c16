// Command day12 solves Advent of Code 2022 day 12, Hill Climbing Algorithm.
package main

import (
	_ "embed"

	"github.com/advent2022/aoc"
)

func main() {
	aoc.Run(2022, source, &solver{})
}

//go:embed day12.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s solver) heightMap() aoc.HeightMap {
	hm := aoc.MustGet(aoc.ParseHeightMap(s.Input()))
	s.Debugf("start %v, end %v\n%v", hm.Start, hm.End, hm)
	return hm
}

/*
want=31

Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
*/
func (s solver) D12p1() any {
	hm := s.heightMap()
	return aoc.MustGet(hm.Steps(hm.Start, aoc.WithDebug(s.Debugf)))
}

// want=29
func (s solver) D12p2() any {
	hm := s.heightMap()
	return aoc.MustGet(hm.FewestStepsFromLowest(aoc.WithDebug(s.Debugf)))
}
