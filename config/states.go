package config

// GameStateID is the top level game flow state
type GameStateID int

const (
	StateStart GameStateID = iota
	StatePlaying
	StateGameOver
)

func (s GameStateID) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
