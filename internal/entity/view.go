package entity

import "fmt"

type StatusKind uint8

const (
	StatusNextToMove StatusKind = iota
	StatusWinner
	StatusDraw
)

// Status is the derived state of the snapshot being displayed.
// Player is the winner for StatusWinner and the mover for StatusNextToMove.
type Status struct {
	Kind   StatusKind
	Player Player
}

func NextToMove(player Player) Status { return Status{Kind: StatusNextToMove, Player: player} }

func Winner(player Player) Status { return Status{Kind: StatusWinner, Player: player} }

func Draw() Status { return Status{Kind: StatusDraw} }

func (that Status) IsDecided() bool {
	return that.Kind == StatusWinner || that.Kind == StatusDraw
}

func (that Status) String() string {
	switch that.Kind {
	case StatusWinner:
		return "Winner: " + that.Player.String()
	case StatusDraw:
		return "Draw"
	default:
		return "Next player: " + that.Player.String()
	}
}

// MoveEntry is one row of the move list, one per history step.
// Player and Cell describe the mark placed to reach Step; step 0 has no player and Cell -1.
type MoveEntry struct {
	Step    int
	Label   string
	Player  Player
	Cell    int
	Current bool
}

// MoveLabel - returns the move-list caption for a step.
func MoveLabel(step int) string {
	if step == 0 {
		return "Go to game start"
	}
	return fmt.Sprintf("Go to move #%d", step)
}

// View is what a presentation layer needs to draw the game.
type View struct {
	Board   Board
	Status  Status
	Moves   []MoveEntry
	Step    int
	WinLine []int
}
