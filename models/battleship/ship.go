package battleship

import (
	cerr "battleship-cli/internal/error"
)

// Variety is the closed set of ship classes. Each maps to exactly one
// hull length, so length is derivable and never stored separately by
// callers.
type Variety uint8

const (
	Destroyer Variety = iota
	Submarine
	Battleship
	AircraftCarrier
)

func (v Variety) String() string {
	switch v {
	case Destroyer:
		return "Destroyer"
	case Submarine:
		return "Submarine"
	case Battleship:
		return "Battleship"
	default:
		return "Aircraft Carrier"
	}
}

func (v Variety) Length() int {
	switch v {
	case Destroyer:
		return 2
	case Submarine:
		return 3
	case Battleship:
		return 4
	default:
		return 5
	}
}

func VarietyForLength(length int) (Variety, error) {
	switch length {
	case 2:
		return Destroyer, nil
	case 3:
		return Submarine, nil
	case 4:
		return Battleship, nil
	case 5:
		return AircraftCarrier, nil
	default:
		return Destroyer, cerr.ErrShipLengthNotSupported(length)
	}
}

// Ship is a fixed line of cells plus a health counter. The cells are
// computed once at construction and never change; only health does.
type Ship struct {
	variety Variety
	cells   []Coordinate
	health  int
}

// NewShip computes the ship's cells as start + i*direction for
// i in [0, length). Cells may land out of board bounds; placement
// validation is the board's job, not the ship's.
func NewShip(length int, start Coordinate, direction Direction) (*Ship, error) {
	variety, err := VarietyForLength(length)
	if err != nil {
		return nil, err
	}

	dRow, dCol := direction.vector()
	cells := make([]Coordinate, length)
	for i := 0; i < length; i++ {
		cells[i] = NewCoordinate(start.Row+i*dRow, start.Col+i*dCol)
	}

	return &Ship{variety: variety, cells: cells, health: length}, nil
}

func (sh *Ship) Variety() Variety {
	return sh.variety
}

func (sh *Ship) Length() int {
	return len(sh.cells)
}

// Cells returns the ship's cells in bow-to-stern order. Callers must
// not mutate the returned slice.
func (sh *Ship) Cells() []Coordinate {
	return sh.cells
}

func (sh *Ship) Contains(coord Coordinate) bool {
	for _, cell := range sh.cells {
		if cell == coord {
			return true
		}
	}
	return false
}

// Damage knocks one point of health off the ship. Calling it on a sunk
// ship breaches the board's discipline and reports an overdamage fault.
func (sh *Ship) Damage() error {
	if sh.health == 0 {
		return cerr.ErrShipAlreadySunk(sh.variety.String())
	}
	sh.health--
	return nil
}

func (sh *Ship) IsSunk() bool {
	return sh.health == 0
}
