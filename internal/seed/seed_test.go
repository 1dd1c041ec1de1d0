package seed

import (
	"errors"
	"strings"
	"testing"

	"term-life/internal/core"
)

func TestParseCoordinate(t *testing.T) {
	cases := []struct {
		in   string
		want Coordinate
		ok   bool
	}{
		{"1,2", Coordinate{1, 2}, true},
		{"  10,0  ", Coordinate{10, 0}, true},
		{"3, 4", Coordinate{}, false},
		{"1,2,3", Coordinate{}, false},
		{"12", Coordinate{}, false},
		{"", Coordinate{}, false},
		{"a,1", Coordinate{}, false},
		{"1,", Coordinate{}, false},
		{"-1,2", Coordinate{}, false},
		{"1.5,2", Coordinate{}, false},
	}
	for _, c := range cases {
		got, err := ParseCoordinate(c.in)
		if c.ok {
			if err != nil {
				t.Fatalf("ParseCoordinate(%q): %v", c.in, err)
			}
			if got != c.want {
				t.Fatalf("ParseCoordinate(%q) = %+v, want %+v", c.in, got, c.want)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("ParseCoordinate(%q) error = %v, want ErrInvalidFormat", c.in, err)
		}
	}
}

func TestLoadMarksCells(t *testing.T) {
	g, _ := core.NewGrid(5, 4)
	if err := Load(strings.NewReader("1,2\n3,4\n"), g); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Columns(); x++ {
			want := (x == 1 && y == 2) || (x == 3 && y == 4)
			if g.Alive(x, y) != want {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, !want, want)
			}
		}
	}
}

func TestLoadSkipsBlankLinesAndWhitespace(t *testing.T) {
	g, _ := core.NewGrid(3, 3)
	if err := Load(strings.NewReader("\n\n  0,0 \r\n\n\t2,1\n  \n"), g); err != nil {
		t.Fatal(err)
	}
	if g.Count() != 2 || !g.Alive(0, 0) || !g.Alive(2, 1) {
		t.Fatalf("unexpected cells, count=%d", g.Count())
	}
}

func TestLoadIsAllOrNothing(t *testing.T) {
	g, _ := core.NewGrid(5, 5)
	err := Load(strings.NewReader("0,0\n1,1\n1,2,3\n"), g)
	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("error %q does not name the failing line", err)
	}
	if g.Count() != 0 {
		t.Fatalf("failed load mutated the grid: %d live cells", g.Count())
	}
}

func TestLoadIgnoresCoordinatesOffTheBoard(t *testing.T) {
	g, _ := core.NewGrid(2, 2)
	if err := Load(strings.NewReader("1,1\n5,0\n0,9\n"), g); err != nil {
		t.Fatal(err)
	}
	if g.Count() != 1 || !g.Alive(1, 1) {
		t.Fatalf("count=%d, want only (1,1)", g.Count())
	}
}

func TestLoadEmptyInput(t *testing.T) {
	g, _ := core.NewGrid(2, 2)
	if err := Load(strings.NewReader("   \n"), g); err != nil {
		t.Fatal(err)
	}
	if g.Count() != 0 {
		t.Fatal("empty input must not set cells")
	}
}
