package battleship

import "testing"

func TestCoordinateString(t *testing.T) {
	tests := []struct {
		coord    Coordinate
		expected string
	}{
		{NewCoordinate(0, 0), "A1"},
		{NewCoordinate(9, 9), "J10"},
		{NewCoordinate(3, 4), "D5"},
	}

	for _, test := range tests {
		if got := test.coord.String(); got != test.expected {
			t.Fatalf("coord %+v: expected %q, got %q", test.coord, test.expected, got)
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		raw      string
		expected Direction
	}{
		{"N", North}, {"n", North},
		{"E", East}, {"e", East},
		{"S", South}, {"s", South},
		{"W", West}, {"w", West},
	}

	for _, test := range tests {
		direction, err := ParseDirection(test.raw)
		if err != nil {
			t.Fatal(err)
		}
		if direction != test.expected {
			t.Fatalf("%q: expected %v, got %v", test.raw, test.expected, direction)
		}
	}

	for _, raw := range []string{"", "X", "NE", "north"} {
		if _, err := ParseDirection(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestDirectionVectors(t *testing.T) {
	tests := []struct {
		direction  Direction
		dRow, dCol int
	}{
		{North, -1, 0},
		{East, 0, 1},
		{South, 1, 0},
		{West, 0, -1},
	}

	for _, test := range tests {
		dRow, dCol := test.direction.vector()
		if dRow != test.dRow || dCol != test.dCol {
			t.Fatalf("%v: expected (%d,%d), got (%d,%d)", test.direction, test.dRow, test.dCol, dRow, dCol)
		}
	}
}
