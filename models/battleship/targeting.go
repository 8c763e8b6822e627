package battleship

// The targeting engine proposes cells for the automated player using
// nothing but the unresolved hit list and the cell grid. Three tiers,
// each filtered through CanContainShip, each returned as soon as it
// yields anything:
//
//  1. line inference over pairs of adjacent unresolved hits
//  2. all neighbors of every unresolved hit
//  3. every feasible cell on the board
//
// The engine is deterministic; picking one candidate at random is the
// caller's job.

// coordinatePair is an unordered pair of directly adjacent coordinates.
type coordinatePair struct {
	a, b Coordinate
}

// adjacentPairsIn finds all pairs of coordinates in the list that
// differ by exactly one in a single axis. Each pair appears once.
func adjacentPairsIn(coords []Coordinate) []coordinatePair {
	var pairs []coordinatePair
	for _, c1 := range coords {
		for _, c2 := range coords {
			vertical := c1.Row-c2.Row == 1 && c1.Col == c2.Col
			horizontal := c1.Row == c2.Row && c1.Col-c2.Col == 1
			if vertical || horizontal {
				pairs = append(pairs, coordinatePair{a: c1, b: c2})
			}
		}
	}
	return pairs
}

// GenerateTargets returns the candidate cells the automated player
// should consider next. With at least one unsunk ship and one feasible
// cell on the board, the result is never empty thanks to the tier-3
// full scan.
func (b *Board) GenerateTargets() []Coordinate {
	// Tier 1: adjacent hits betray a ship's line; extend it past both
	// endpoints.
	var pool []Coordinate
	for _, pair := range adjacentPairsIn(b.unresolvedHits) {
		if pair.a.Row != pair.b.Row {
			pool = append(pool, b.VerticalNeighbors(pair.a)...)
			pool = append(pool, b.VerticalNeighbors(pair.b)...)
		} else {
			pool = append(pool, b.HorizontalNeighbors(pair.a)...)
			pool = append(pool, b.HorizontalNeighbors(pair.b)...)
		}
	}
	if targets := b.filterFeasible(pool); len(targets) > 0 {
		return targets
	}

	// Tier 2: isolated hits mark ships of unknown orientation; try
	// every side of each.
	pool = pool[:0]
	for _, hit := range b.unresolvedHits {
		pool = append(pool, b.AllNeighbors(hit)...)
	}
	if targets := b.filterFeasible(pool); len(targets) > 0 {
		return targets
	}

	// Tier 3: nothing to go on, scan the whole board.
	pool = pool[:0]
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			pool = append(pool, NewCoordinate(row, col))
		}
	}
	return b.filterFeasible(pool)
}

// filterFeasible keeps coordinates passing CanContainShip, deduplicated
// in first-seen order.
func (b *Board) filterFeasible(pool []Coordinate) []Coordinate {
	seen := make(map[Coordinate]struct{}, len(pool))
	var out []Coordinate
	for _, coord := range pool {
		if _, dup := seen[coord]; dup {
			continue
		}
		seen[coord] = struct{}{}
		if b.CanContainShip(coord) {
			out = append(out, coord)
		}
	}
	return out
}
