package entity

// Mark is the content of a single board cell.
type Mark string

const (
	EmptyCell Mark = ""
	MarkA     Mark = "A"
	MarkB     Mark = "B"
)

// Player identifies one of the two participants.
type Player string

const (
	NoPlayer Player = ""
	PlayerA  Player = "A"
	PlayerB  Player = "B"
)

func (that Player) IsValid() bool {
	return that == PlayerA || that == PlayerB
}

// Mark - returns the mark the player writes into the board.
func (that Player) Mark() Mark {
	switch that {
	case PlayerA:
		return MarkA
	case PlayerB:
		return MarkB
	default:
		return EmptyCell
	}
}

// Opponent - returns the other player. NoPlayer has no opponent.
func (that Player) Opponent() Player {
	switch that {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return NoPlayer
	}
}
