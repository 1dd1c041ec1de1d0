// Package seed loads initial live cells from "x,y" coordinate lists.
package seed

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"term-life/internal/core"
)

// ErrInvalidFormat is returned for lines that are not two comma separated
// non-negative integers.
var ErrInvalidFormat = errors.New("invalid coordinate format")

// Coordinate is one parsed seed line.
type Coordinate struct {
	X, Y int
}

// ParseCoordinate parses a single "x,y" line. Surrounding whitespace is
// ignored.
func ParseCoordinate(line string) (Coordinate, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != 2 {
		return Coordinate{}, fmt.Errorf("%w: %q has %d fields", ErrInvalidFormat, line, len(fields))
	}
	var vals [2]int
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, strconv.IntSize-1)
		if err != nil {
			return Coordinate{}, fmt.Errorf("%w: %q: %w", ErrInvalidFormat, line, err)
		}
		vals[i] = int(v)
	}
	return Coordinate{X: vals[0], Y: vals[1]}, nil
}

// Parse reads every non-blank line of r as a coordinate. The first bad line
// aborts the parse; the error names its 1-based line number.
func Parse(r io.Reader) ([]Coordinate, error) {
	var coords []Coordinate
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		c, err := ParseCoordinate(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		coords = append(coords, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	return coords, nil
}

// Load parses r and marks every coordinate alive in g. Nothing is written to
// g unless the whole input parses. Coordinates outside g are ignored.
func Load(r io.Reader, g *core.Grid) error {
	coords, err := Parse(r)
	if err != nil {
		return err
	}
	Apply(coords, g)
	return nil
}

// Apply marks coords alive in g.
func Apply(coords []Coordinate, g *core.Grid) {
	for _, c := range coords {
		g.Set(c.X, c.Y)
	}
}
