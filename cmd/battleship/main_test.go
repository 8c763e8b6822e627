package main

import (
	"errors"
	"strings"
	"testing"

	cerr "battleship-cli/internal/error"
	bs "battleship-cli/models/battleship"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected bs.Coordinate
		wantErr  bool
	}{
		{name: "top left", raw: "A1", expected: bs.NewCoordinate(0, 0)},
		{name: "lowercase", raw: "j10", expected: bs.NewCoordinate(9, 9)},
		{name: "surrounding space", raw: " C7 ", expected: bs.NewCoordinate(2, 6)},
		{name: "row out of range", raw: "K1", wantErr: true},
		{name: "column out of range", raw: "A11", wantErr: true},
		{name: "column zero", raw: "A0", wantErr: true},
		{name: "too short", raw: "A", wantErr: true},
		{name: "not a number", raw: "Axy", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			coord, err := parseCoordinate(test.raw, 10)
			if test.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", test.raw)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if coord != test.expected {
				t.Fatalf("expected %v, got %v", test.expected, coord)
			}
		})
	}
}

func TestParseCoordinateOutOfBoundsError(t *testing.T) {
	if _, err := parseCoordinate("K1", 10); !errors.Is(err, cerr.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestParseCoordinateRoundTrip(t *testing.T) {
	coord := bs.NewCoordinate(3, 4)
	parsed, err := parseCoordinate(coord.String(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if parsed != coord {
		t.Fatalf("round trip: expected %v, got %v", coord, parsed)
	}
}

func TestRenderBoard(t *testing.T) {
	board, err := bs.NewBoard(3)
	if err != nil {
		t.Fatal(err)
	}
	ship, err := bs.NewShip(2, bs.NewCoordinate(0, 0), bs.East)
	if err != nil {
		t.Fatal(err)
	}
	if err := board.PlaceShip(ship); err != nil {
		t.Fatal(err)
	}
	if _, err := board.ApplyShot(bs.NewCoordinate(2, 2)); err != nil {
		t.Fatal(err)
	}

	revealed := renderBoard(board, true)
	lines := strings.Split(strings.TrimRight(revealed, "\n"), "\n")
	expected := []string{
		"  _ _ _ ",
		"A|#|#|_|",
		"B|_|_|_|",
		"C|_|_|O|",
		"  1 2 3",
	}
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(expected), len(lines), revealed)
	}
	for i, line := range expected {
		if lines[i] != line {
			t.Fatalf("line %d: expected %q, got %q", i, line, lines[i])
		}
	}

	hidden := renderBoard(board, false)
	if strings.Contains(hidden, "#") {
		t.Fatal("hidden rendering must not reveal ship cells")
	}
	if !strings.Contains(hidden, "O") {
		t.Fatal("hidden rendering must still show misses")
	}
}
