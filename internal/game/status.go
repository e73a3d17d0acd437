package game

import "fmt"

// Phase is the coarse state of the simulation.
type Phase uint8

const (
	NotStarted Phase = iota
	Running
	Over
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Over:
		return "over"
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// OutcomeKind says how a round ended.
type OutcomeKind uint8

const (
	Won      OutcomeKind = iota // local player won
	Lost                        // local player lost
	Finished                    // a server declared the winner
)

func (k OutcomeKind) String() string {
	switch k {
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("OutcomeKind(%d)", uint8(k))
}

// Outcome is the result carried by the Over phase.
type Outcome struct {
	Kind   OutcomeKind
	Winner uint32
	Loser  uint32
}

// GameStatus is the phase plus, when Over, the outcome.
type GameStatus struct {
	Phase   Phase
	Outcome Outcome
}

func (s GameStatus) String() string {
	if s.Phase != Over {
		return s.Phase.String()
	}
	return fmt.Sprintf("over (%s, winner %d, loser %d)", s.Outcome.Kind, s.Outcome.Winner, s.Outcome.Loser)
}

// Player numbers used when the round is judged locally.
const (
	PlayerHero    uint32 = 1
	PlayerVillain uint32 = 2
)
