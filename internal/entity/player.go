package entity

// Player is one of the two sides. X always moves first.
type Player uint8

const (
	PlayerX Player = iota + 1
	PlayerO
)

func (that Player) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// Opponent - returns the other side.
func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}
