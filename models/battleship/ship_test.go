package battleship

import (
	"errors"
	"testing"

	cerr "battleship-cli/internal/error"
)

func TestNewShipCells(t *testing.T) {
	tests := []struct {
		name      string
		length    int
		start     Coordinate
		direction Direction
		expected  []Coordinate
	}{
		{
			name:      "destroyer east",
			length:    2,
			start:     NewCoordinate(0, 0),
			direction: East,
			expected:  []Coordinate{{0, 0}, {0, 1}},
		},
		{
			name:      "submarine south",
			length:    3,
			start:     NewCoordinate(4, 4),
			direction: South,
			expected:  []Coordinate{{4, 4}, {5, 4}, {6, 4}},
		},
		{
			name:      "battleship north",
			length:    4,
			start:     NewCoordinate(9, 2),
			direction: North,
			expected:  []Coordinate{{9, 2}, {8, 2}, {7, 2}, {6, 2}},
		},
		{
			name:      "carrier west",
			length:    5,
			start:     NewCoordinate(3, 8),
			direction: West,
			expected:  []Coordinate{{3, 8}, {3, 7}, {3, 6}, {3, 5}, {3, 4}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ship, err := NewShip(test.length, test.start, test.direction)
			if err != nil {
				t.Fatal(err)
			}

			cells := ship.Cells()
			if len(cells) != len(test.expected) {
				t.Fatalf("expected %d cells, got %d", len(test.expected), len(cells))
			}
			for i, cell := range cells {
				if cell != test.expected[i] {
					t.Fatalf("cell %d: expected %v, got %v", i, test.expected[i], cell)
				}
			}
			if ship.Length() != test.length {
				t.Fatalf("expected length %d, got %d", test.length, ship.Length())
			}
		})
	}
}

func TestNewShipInvalidLength(t *testing.T) {
	for _, length := range []int{-1, 0, 1, 6, 100} {
		if _, err := NewShip(length, NewCoordinate(0, 0), East); !errors.Is(err, cerr.ErrInvalidShipLength) {
			t.Fatalf("length %d: expected ErrInvalidShipLength, got %v", length, err)
		}
	}
}

func TestVarietyForLength(t *testing.T) {
	tests := []struct {
		length   int
		expected Variety
		display  string
	}{
		{2, Destroyer, "Destroyer"},
		{3, Submarine, "Submarine"},
		{4, Battleship, "Battleship"},
		{5, AircraftCarrier, "Aircraft Carrier"},
	}

	for _, test := range tests {
		variety, err := VarietyForLength(test.length)
		if err != nil {
			t.Fatal(err)
		}
		if variety != test.expected {
			t.Fatalf("length %d: expected %v, got %v", test.length, test.expected, variety)
		}
		if variety.String() != test.display {
			t.Fatalf("expected display name %q, got %q", test.display, variety.String())
		}
		if variety.Length() != test.length {
			t.Fatalf("variety %v: expected length %d, got %d", variety, test.length, variety.Length())
		}
	}
}

func TestShipDamageUntilSunk(t *testing.T) {
	ship, err := NewShip(3, NewCoordinate(0, 0), South)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		if ship.IsSunk() {
			t.Fatalf("ship sunk after %d of 3 hits", i)
		}
		if err := ship.Damage(); err != nil {
			t.Fatal(err)
		}
	}

	if !ship.IsSunk() {
		t.Fatal("ship not sunk after taking hits equal to its length")
	}

	if err := ship.Damage(); !errors.Is(err, cerr.ErrOverdamage) {
		t.Fatalf("expected ErrOverdamage on a sunk ship, got %v", err)
	}
}

func TestShipContains(t *testing.T) {
	ship, err := NewShip(4, NewCoordinate(2, 3), East)
	if err != nil {
		t.Fatal(err)
	}

	for _, cell := range []Coordinate{{2, 3}, {2, 4}, {2, 5}, {2, 6}} {
		if !ship.Contains(cell) {
			t.Fatalf("expected ship to contain %v", cell)
		}
	}
	for _, cell := range []Coordinate{{2, 2}, {2, 7}, {3, 3}, {0, 0}} {
		if ship.Contains(cell) {
			t.Fatalf("expected ship not to contain %v", cell)
		}
	}
}
