package game

import "fmt"

// Color identifies one of the two sides.
type Color int8

const (
	White Color = iota
	Black
)

// Opponent returns the other side. Opponent(Opponent(c)) == c.
func (c Color) Opponent() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Move is an opaque transition between states. Implementations must be
// comparable so that moves can be used as map keys and compared with ==.
type Move interface {
	fmt.Stringer
}

// State should be immutable - Play always returns a new state and never aliases
// the receiver.
type State interface {
	// Player returns the side to move.
	Player() Color
	// LegalMoves returns the legal moves in a stable, deterministic order.
	LegalMoves() []Move
	// Play applies a move drawn from LegalMoves of this exact state.
	Play(Move) State
	IsTerminal() bool
	// Outcome is only defined when IsTerminal holds.
	Outcome() Outcome
}

// Evaluates a non-terminal state to a score from perspective's point of view,
// higher is better for perspective.
type Evaluate func(state State, perspective Color) float64

// Square indexes a board cell, 0 (a1) to 63 (h8).
type Square int8

type PieceType int8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

func (p PieceType) String() string {
	switch p {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return fmt.Sprintf("PieceType(%d)", int8(p))
}

type Piece struct {
	Type  PieceType
	Color Color
}

// Board exposes the read-only placement queries used by heuristics.
type Board interface {
	PieceMap() map[Square]Piece
	// AttackedSquares returns the squares threatened or controlled by the
	// piece on sq.
	AttackedSquares(sq Square) []Square
}
