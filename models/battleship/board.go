package battleship

import (
	"math/rand"

	cerr "battleship-cli/internal/error"
)

// CellState is the per-cell truth on a board. It stays consistent with
// the ship set on every mutation; rendering and feasibility checks read
// only cell states, never ship internals.
type CellState uint8

const (
	CellSea CellState = iota
	CellUnhitShip
	CellHitShip
	CellMiss
)

// ShotResult classifies what a shot did to the target board.
type ShotResult uint8

const (
	ShotMiss ShotResult = iota
	ShotHit
	ShotHitAndSunk
)

func (r ShotResult) String() string {
	switch r {
	case ShotMiss:
		return "miss"
	case ShotHit:
		return "hit"
	default:
		return "sunk"
	}
}

// Outcome reports a resolved shot. Sunk is meaningful only when Result
// is ShotHitAndSunk.
type Outcome struct {
	Result ShotResult
	Sunk   Variety
}

// maxPlacementAttempts bounds the random search per ship so a fleet
// that cannot fit surfaces an error instead of spinning forever.
const maxPlacementAttempts = 10_000

// Board owns one player's N x N grid, the ships still afloat on it and
// the hits that have not yet been resolved into a sinking.
type Board struct {
	size  int
	cells [][]CellState

	// ships holds only unsunk ships. A ship leaves the slice the
	// instant it sinks.
	ships []*Ship

	// unresolvedHits are cells confirmed to hold ship material whose
	// ship has not sunk yet. The targeting engine works off this list;
	// cells of a sunk ship are purged so it cannot attract fire.
	unresolvedHits []Coordinate
}

func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, cerr.ErrInvalidGridSize(size)
	}

	cells := make([][]CellState, size)
	for i := range cells {
		cells[i] = make([]CellState, size)
	}
	return &Board{size: size, cells: cells}, nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) inBounds(coord Coordinate) bool {
	return coord.Row >= 0 && coord.Row < b.size && coord.Col >= 0 && coord.Col < b.size
}

// CellAt reports the state of a single cell.
func (b *Board) CellAt(coord Coordinate) (CellState, error) {
	if !b.inBounds(coord) {
		return CellSea, cerr.ErrRowOrColOutOfGridBound(coord.Row, coord.Col)
	}
	return b.cells[coord.Row][coord.Col], nil
}

// Ships returns the ships still afloat. Callers must not mutate the
// returned slice.
func (b *Board) Ships() []*Ship {
	return b.ships
}

// UnresolvedHits returns a copy of the unresolved hit list in the order
// the hits landed.
func (b *Board) UnresolvedHits() []Coordinate {
	out := make([]Coordinate, len(b.unresolvedHits))
	copy(out, b.unresolvedHits)
	return out
}

// FleetDestroyed reports whether every ship on this board has sunk.
func (b *Board) FleetDestroyed() bool {
	return len(b.ships) == 0
}

// IsValidPlacement reports whether the ship fits: all cells in bounds
// and none intersecting a previously placed ship. Placement happens
// before any shots, so only CellUnhitShip collisions can occur.
func (b *Board) IsValidPlacement(ship *Ship) bool {
	for _, cell := range ship.Cells() {
		if !b.inBounds(cell) {
			return false
		}
		if b.cells[cell.Row][cell.Col] == CellUnhitShip {
			return false
		}
	}
	return true
}

// PlaceShip commits a ship to the board. Callers validate with
// IsValidPlacement first; an invalid placement is rejected here too so
// the board's invariants cannot be broken from outside.
func (b *Board) PlaceShip(ship *Ship) error {
	if !b.IsValidPlacement(ship) {
		return cerr.ErrPlacementRejected(ship.Variety().String())
	}

	b.ships = append(b.ships, ship)
	for _, cell := range ship.Cells() {
		b.cells[cell.Row][cell.Col] = CellUnhitShip
	}
	return nil
}

// PlaceFleetRandom places one ship per length in the given order,
// sampling uniform start cells and directions until each placement is
// valid. The retry count is bounded per ship; exhausting it means the
// fleet does not fit and the board may be left partially populated.
func (b *Board) PlaceFleetRandom(lengths []int, rng *rand.Rand) error {
	for _, length := range lengths {
		placed := false

		for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
			start := NewCoordinate(rng.Intn(b.size), rng.Intn(b.size))
			direction := Directions[rng.Intn(len(Directions))]

			ship, err := NewShip(length, start, direction)
			if err != nil {
				return err
			}
			if !b.IsValidPlacement(ship) {
				continue
			}
			if err := b.PlaceShip(ship); err != nil {
				return err
			}
			placed = true
			break
		}

		if !placed {
			return cerr.ErrNoRoomForShip(length, maxPlacementAttempts)
		}
	}
	return nil
}

// IsHit reports whether a shot at the coordinate would strike unhit
// ship material. The game loop reads this before applying the shot to
// decide turn retention.
func (b *Board) IsHit(coord Coordinate) bool {
	if !b.inBounds(coord) {
		return false
	}
	return b.cells[coord.Row][coord.Col] == CellUnhitShip
}

// ApplyShot resolves a shot against this board. A strike on unhit ship
// material damages the owning ship; sinking it removes the ship from
// the active set and purges all its cells from the unresolved hits.
// Shots at already-resolved cells (hit or missed before) change nothing
// and report a miss.
func (b *Board) ApplyShot(coord Coordinate) (Outcome, error) {
	if !b.inBounds(coord) {
		return Outcome{}, cerr.ErrRowOrColOutOfGridBound(coord.Row, coord.Col)
	}

	switch b.cells[coord.Row][coord.Col] {
	case CellUnhitShip:
		b.cells[coord.Row][coord.Col] = CellHitShip
		b.unresolvedHits = append(b.unresolvedHits, coord)

		// Locate the struck ship by the shot coordinate, then mutate
		// the ship set only after the scan is done.
		hitIdx := -1
		for i, ship := range b.ships {
			if ship.Contains(coord) {
				hitIdx = i
				break
			}
		}
		if hitIdx == -1 {
			return Outcome{}, cerr.ErrNoShipAtCell(coord.Row, coord.Col)
		}

		ship := b.ships[hitIdx]
		if err := ship.Damage(); err != nil {
			return Outcome{}, err
		}

		if ship.IsSunk() {
			b.ships = append(b.ships[:hitIdx], b.ships[hitIdx+1:]...)
			b.removeResolvedHits(ship)
			return Outcome{Result: ShotHitAndSunk, Sunk: ship.Variety()}, nil
		}
		return Outcome{Result: ShotHit}, nil

	case CellSea:
		b.cells[coord.Row][coord.Col] = CellMiss
		return Outcome{Result: ShotMiss}, nil

	default:
		// CellHitShip or CellMiss: already resolved, nothing changes.
		return Outcome{Result: ShotMiss}, nil
	}
}

// removeResolvedHits drops every cell of a sunk ship from the
// unresolved hit list so the sinking stops attracting fire.
func (b *Board) removeResolvedHits(ship *Ship) {
	kept := b.unresolvedHits[:0]
	for _, hit := range b.unresolvedHits {
		if !ship.Contains(hit) {
			kept = append(kept, hit)
		}
	}
	b.unresolvedHits = kept
}

// VerticalNeighbors returns the in-bounds cells directly above and
// below the coordinate.
func (b *Board) VerticalNeighbors(coord Coordinate) []Coordinate {
	out := make([]Coordinate, 0, 2)
	for _, dRow := range [2]int{1, -1} {
		n := NewCoordinate(coord.Row+dRow, coord.Col)
		if b.inBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// HorizontalNeighbors returns the in-bounds cells directly left and
// right of the coordinate.
func (b *Board) HorizontalNeighbors(coord Coordinate) []Coordinate {
	out := make([]Coordinate, 0, 2)
	for _, dCol := range [2]int{1, -1} {
		n := NewCoordinate(coord.Row, coord.Col+dCol)
		if b.inBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// AllNeighbors returns the four-directional in-bounds neighbors.
func (b *Board) AllNeighbors(coord Coordinate) []Coordinate {
	return append(b.VerticalNeighbors(coord), b.HorizontalNeighbors(coord)...)
}

// CanContainShip reports whether a ship could still occupy the
// coordinate given current information: the cell is not already
// resolved, and the longest run of non-miss cells through it (checked
// per axis) fits the shortest ship still afloat. Necessary, not
// sufficient; it never rules out a cell a ship actually occupies.
func (b *Board) CanContainShip(coord Coordinate) bool {
	if !b.inBounds(coord) {
		return false
	}
	if b.cells[coord.Row][coord.Col] == CellHitShip || b.cells[coord.Row][coord.Col] == CellMiss {
		return false
	}
	if len(b.ships) == 0 {
		return false
	}

	maxRun := b.runLength(coord, 0, 1)
	if vRun := b.runLength(coord, 1, 0); vRun > maxRun {
		maxRun = vRun
	}

	shortest := b.ships[0].Length()
	for _, ship := range b.ships[1:] {
		if ship.Length() < shortest {
			shortest = ship.Length()
		}
	}

	return shortest <= maxRun
}

// runLength counts contiguous non-miss cells through the coordinate
// along one axis, extending both ways until a miss or the board edge.
func (b *Board) runLength(coord Coordinate, dRow, dCol int) int {
	run := 1
	for _, sign := range [2]int{1, -1} {
		for i := 1; ; i++ {
			n := NewCoordinate(coord.Row+sign*i*dRow, coord.Col+sign*i*dCol)
			if !b.inBounds(n) || b.cells[n.Row][n.Col] == CellMiss {
				break
			}
			run++
		}
	}
	return run
}

// Render returns the board as display symbols, one rune per cell.
// With revealShips false the grid is what an opponent may see: unhit
// ships are indistinguishable from sea.
func (b *Board) Render(revealShips bool) [][]rune {
	symbols := map[CellState]rune{
		CellSea:       '~',
		CellUnhitShip: '~',
		CellHitShip:   'X',
		CellMiss:      'O',
	}
	if revealShips {
		symbols[CellSea] = '_'
		symbols[CellUnhitShip] = '#'
	}

	grid := make([][]rune, b.size)
	for row := range grid {
		grid[row] = make([]rune, b.size)
		for col := range grid[row] {
			grid[row][col] = symbols[b.cells[row][col]]
		}
	}
	return grid
}
