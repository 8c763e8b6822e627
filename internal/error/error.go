package error

import (
	"errors"
	"fmt"
)

// Sentinels for the recoverable failure modes of the core. Constructor
// funcs below wrap these with %w so callers can match with errors.Is.
var (
	ErrInvalidShipLength = errors.New("unsupported ship length")
	ErrOutOfBounds       = errors.New("coordinate out of board bounds")
	ErrFleetDoesNotFit   = errors.New("fleet does not fit on board")

	// ErrOverdamage signals a core invariant breach, not a user error.
	// The board never damages a sunk ship.
	ErrOverdamage = errors.New("ship damaged past sinking")
)

func ErrShipLengthNotSupported(length int) error {
	return fmt.Errorf("%w: %d, supported lengths are 2 to 5", ErrInvalidShipLength, length)
}

func ErrRowOrColOutOfGridBound(row, col int) error {
	return fmt.Errorf("%w\trow: %d\tcol: %d", ErrOutOfBounds, row, col)
}

func ErrNoRoomForShip(length, attempts int) error {
	return fmt.Errorf("%w: no valid slot for ship of length %d after %d attempts", ErrFleetDoesNotFit, length, attempts)
}

func ErrShipAlreadySunk(variety string) error {
	return fmt.Errorf("%w: %s", ErrOverdamage, variety)
}

// ErrNoShipAtCell reports a grid cell marked as ship material with no
// owning ship, which means the board's bookkeeping is corrupt.
func ErrNoShipAtCell(row, col int) error {
	return fmt.Errorf("board state corrupt: ship cell with no owning ship\trow: %d\tcol: %d", row, col)
}

func ErrPlacementRejected(variety string) error {
	return fmt.Errorf("cannot place %s: out of bounds or intersecting another ship", variety)
}

func ErrInvalidDirection(direction string) error {
	return fmt.Errorf("direction must be one of N, E, S, W, got %q", direction)
}

func ErrInvalidCoordString(raw string) error {
	return fmt.Errorf("coordinate must look like A1, got %q", raw)
}

func ErrInvalidGridSize(size int) error {
	return fmt.Errorf("grid size must be positive, got %d", size)
}
