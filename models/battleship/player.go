package battleship

import (
	"github.com/dariubs/percent"
	"github.com/google/uuid"
)

// Player pairs a board with an identity and running shot statistics.
type Player struct {
	Uuid string
	Name string

	Board *Board

	shotsFired int
	shotsHit   int
}

func NewPlayer(name string, board *Board) *Player {
	return &Player{
		Uuid:  uuid.NewString()[:10],
		Name:  name,
		Board: board,
	}
}

// RecordShot tallies one shot this player fired and whether it struck.
func (p *Player) RecordShot(result ShotResult) {
	p.shotsFired++
	if result == ShotHit || result == ShotHitAndSunk {
		p.shotsHit++
	}
}

func (p *Player) ShotsFired() int {
	return p.shotsFired
}

func (p *Player) ShotsHit() int {
	return p.shotsHit
}

// Accuracy returns hits over shots as a percentage, 0 before the first
// shot.
func (p *Player) Accuracy() float64 {
	if p.shotsFired == 0 {
		return 0
	}
	return percent.PercentOf(p.shotsHit, p.shotsFired)
}

// HasLost reports whether this player's fleet is gone.
func (p *Player) HasLost() bool {
	return p.Board.FleetDestroyed()
}
