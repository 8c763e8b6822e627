package battleship

import (
	"math/rand"

	"github.com/google/uuid"
)

// Match drives one game between two players. Whose turn it is lives
// here as explicit state, set by the coin flip and advanced by Fire;
// nothing about turn order is package-level.
type Match struct {
	Uuid string

	human    *Player
	computer *Player

	turn *Player
}

func NewMatch(human, computer *Player) *Match {
	m := &Match{
		Uuid:     uuid.NewString()[:6],
		human:    human,
		computer: computer,
	}
	// Arbitrary until the coin flip runs.
	m.turn = human
	return m
}

func (m *Match) Human() *Player {
	return m.human
}

func (m *Match) Computer() *Player {
	return m.computer
}

// TurnOwner returns the player who fires next.
func (m *Match) TurnOwner() *Player {
	return m.turn
}

// Defender returns the player currently being fired on.
func (m *Match) Defender() *Player {
	if m.turn == m.human {
		return m.computer
	}
	return m.human
}

// CoinFlip picks who moves first, uniformly, and returns the winner.
func (m *Match) CoinFlip(rng *rand.Rand) *Player {
	if rng.Intn(2) == 0 {
		m.turn = m.human
	} else {
		m.turn = m.computer
	}
	return m.turn
}

// Fire resolves the current turn owner's shot against the defender's
// board. A hit retains the turn; a miss hands it over. Statistics are
// tallied on the shooter.
func (m *Match) Fire(target Coordinate) (Outcome, error) {
	shooter := m.turn
	defender := m.Defender()

	hit := defender.Board.IsHit(target)
	outcome, err := defender.Board.ApplyShot(target)
	if err != nil {
		return Outcome{}, err
	}

	shooter.RecordShot(outcome.Result)
	if !hit {
		m.turn = defender
	}
	return outcome, nil
}

// Finished reports whether either fleet has been destroyed.
func (m *Match) Finished() bool {
	return m.human.HasLost() || m.computer.HasLost()
}

// Winner returns the surviving player once the match is finished, nil
// before that.
func (m *Match) Winner() *Player {
	switch {
	case m.human.HasLost():
		return m.computer
	case m.computer.HasLost():
		return m.human
	default:
		return nil
	}
}
