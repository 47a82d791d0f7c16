package aoc

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBadCell is returned for a height map cell that is not a-z, S or E,
	// or for a second S or E.
	ErrBadCell = errors.New("aoc: bad height map cell")

	// ErrMissingEndpoint is returned for a height map without S or without E.
	ErrMissingEndpoint = errors.New("aoc: height map needs a start and an end")
)

// Heights of the lowest ('a') and highest ('z') cells of a height map.
const (
	Lowest  = 0
	Highest = int('z' - 'a')
)

// HeightMap is a parsed hill climbing puzzle: the heights and the marked
// start (S, height a) and end (E, height z) cells.
type HeightMap struct {
	Heights    Grid[int]
	Start, End Pt
}

// ParseHeightMap parses rows of a-z letters with exactly one S and one E.
func ParseHeightMap(input []byte) (HeightMap, error) {
	var (
		hm                 HeightMap
		haveStart, haveEnd bool
	)
	s := bufio.NewScanner(bytes.NewReader(input))
	s.Buffer(nil, len(input)+1) // a row may be as long as the whole input
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		y := len(hm.Heights)
		row := make([]int, len(line))
		for x := 0; x < len(line); x++ {
			p, c := Pt{x, y}, line[x]
			switch c {
			case 'S':
				if haveStart {
					return HeightMap{}, fmt.Errorf("%w: second start at %v", ErrBadCell, p)
				}
				hm.Start, haveStart, c = p, true, 'a'
			case 'E':
				if haveEnd {
					return HeightMap{}, fmt.Errorf("%w: second end at %v", ErrBadCell, p)
				}
				hm.End, haveEnd, c = p, true, 'z'
			}
			h, ok := Letter(c)
			if !ok {
				return HeightMap{}, fmt.Errorf("%w: %q at %v", ErrBadCell, c, p)
			}
			row[x] = h
		}
		hm.Heights = append(hm.Heights, row)
	}
	if err := s.Err(); err != nil {
		return HeightMap{}, fmt.Errorf("%w: reading row %d: %v", ErrInvalidGrid, len(hm.Heights), err)
	}
	if err := hm.Heights.Validate(); err != nil {
		return HeightMap{}, err
	}
	if !haveStart || !haveEnd {
		return HeightMap{}, fmt.Errorf("%w: start=%t end=%t", ErrMissingEndpoint, haveStart, haveEnd)
	}
	return hm, nil
}

// String renders hm in the puzzle's input format.
func (hm HeightMap) String() string {
	var sb strings.Builder
	for y, row := range hm.Heights {
		for x, h := range row {
			switch (Pt{x, y}) {
			case hm.Start:
				sb.WriteByte('S')
			case hm.End:
				sb.WriteByte('E')
			default:
				sb.WriteByte(byte('a' + h))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DistancesToEnd returns, for every cell that can climb to End, the fewest
// steps it takes. It is a single Descend search outward from End.
func (hm HeightMap) DistancesToEnd(opts ...SearchOption) (DistanceTable, error) {
	opts = append([]SearchOption{WithStepRule(Descend)}, opts...)
	return ShortestPaths(hm.Heights, hm.End, opts...)
}

// Steps returns the fewest steps needed to climb from from to End.
func (hm HeightMap) Steps(from Pt, opts ...SearchOption) (int, error) {
	t, err := hm.DistancesToEnd(opts...)
	if err != nil {
		return 0, err
	}
	return t.To(from)
}

// FewestStepsFromLowest returns the fewest steps needed to reach End from
// any cell of height a.
func (hm HeightMap) FewestStepsFromLowest(opts ...SearchOption) (int, error) {
	t, err := hm.DistancesToEnd(opts...)
	if err != nil {
		return 0, err
	}
	_, d, ok := t.Nearest(hm.Heights, func(h int) bool { return h == Lowest })
	if !ok {
		return 0, fmt.Errorf("%w: no lowest cell reaches %v", ErrNoPathFound, hm.End)
	}
	return d, nil
}
