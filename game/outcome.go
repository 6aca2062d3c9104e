package game

import "fmt"

type Result int8

const (
	Draw Result = iota
	Win
	Loss
)

// Outcome is the result of a finished game. Color names the side that Result
// applies to and is ignored for draws.
type Outcome struct {
	Result Result
	Color  Color
}

func WinFor(c Color) Outcome {
	return Outcome{Result: Win, Color: c}
}

func LossFor(c Color) Outcome {
	return Outcome{Result: Loss, Color: c}
}

func DrawOutcome() Outcome {
	return Outcome{Result: Draw}
}

// Winner returns the winning side, false for draws.
func (o Outcome) Winner() (Color, bool) {
	switch o.Result {
	case Win:
		return o.Color, true
	case Loss:
		return o.Color.Opponent(), true
	}
	return White, false
}

func (o Outcome) String() string {
	winner, ok := o.Winner()
	if !ok {
		return "draw"
	}
	return fmt.Sprintf("%s wins", winner)
}

// Terminal scores from the root perspective
const (
	WinScore  = 1.0
	DrawScore = 0.0
	LossScore = -WinScore
)

// TerminalScore maps the outcome of a terminal state to {-1, 0, +1} from
// perspective's point of view, regardless of the side to move in state.
func TerminalScore(state State, perspective Color) float64 {
	if !state.IsTerminal() {
		panic("cannot score a non-terminal state")
	}
	winner, ok := state.Outcome().Winner()
	if !ok {
		return DrawScore
	}
	if winner == perspective {
		return WinScore
	}
	return LossScore
}
