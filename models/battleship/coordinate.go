package battleship

import (
	"fmt"

	cerr "battleship-cli/internal/error"
)

// Coordinate addresses a single board cell. Row and Col are zero-based
// and must lie in [0, N) for an N x N board. The struct is comparable,
// so it hashes structurally and works as a map key.
type Coordinate struct {
	Row int
	Col int
}

func NewCoordinate(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// String renders the coordinate in display form, e.g. {0 0} -> "A1".
func (c Coordinate) String() string {
	return fmt.Sprintf("%c%d", 'A'+rune(c.Row), c.Col+1)
}

// Direction is a compass heading a ship extends toward from its start cell.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

func (d Direction) vector() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	default:
		return 0, -1
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	default:
		return "W"
	}
}

// Directions lists all four headings, handy for random placement.
var Directions = [4]Direction{North, East, South, West}

func ParseDirection(raw string) (Direction, error) {
	switch raw {
	case "N", "n":
		return North, nil
	case "E", "e":
		return East, nil
	case "S", "s":
		return South, nil
	case "W", "w":
		return West, nil
	default:
		return North, cerr.ErrInvalidDirection(raw)
	}
}
