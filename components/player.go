package components

// Player identifies one of the two paddle owners
// Usable as a map key; no other variants exist
type Player uint8

const (
	Player1 Player = iota
	Player2
	playerCount
)

// PlayerCount is the number of Player variants
const PlayerCount = int(playerCount)

// Players returns every variant in enum order
// Iteration over players uses this order wherever a deterministic order matters
func Players() [PlayerCount]Player {
	return [PlayerCount]Player{Player1, Player2}
}

// Valid reports whether p is a declared variant
func (p Player) Valid() bool {
	return p < playerCount
}

// Opponent returns the other player
func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// ServeDirection is the horizontal sign of this player's serve: Player1 serves toward +x
func (p Player) ServeDirection() float64 {
	if p == Player1 {
		return 1
	}
	return -1
}

// Tint returns the player's display color
func (p Player) Tint() Tint {
	switch p {
	case Player1:
		return TintPlayer1
	case Player2:
		return TintPlayer2
	default:
		return TintNeutral
	}
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	default:
		return "Unknown"
	}
}

// Tint is the ball display color, drawn from a small fixed palette
type Tint uint8

const (
	TintNeutral Tint = iota
	TintPlayer1
	TintPlayer2
)

func (t Tint) String() string {
	switch t {
	case TintNeutral:
		return "Neutral"
	case TintPlayer1:
		return "Player1"
	case TintPlayer2:
		return "Player2"
	default:
		return "Unknown"
	}
}
