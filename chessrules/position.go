// Package chessrules adapts github.com/notnil/chess to the game contracts used
// by the searcher and the heuristics.
package chessrules

import (
	"chessai/game"
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// Move is a comparable chess move.
type Move struct {
	From  chess.Square
	To    chess.Square
	Promo chess.PieceType
}

func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promo != chess.NoPieceType {
		s += m.Promo.String()
	}
	return s
}

// Draw thresholds that end a game without a claim
const (
	SeventyFiveMoveClock = 150 // Half-moves without a capture or pawn move
	FivefoldRepetition   = 5
)

// Position is an immutable chess position. Everything notnil/chess computes
// lazily is computed up front so that a Position can be shared between
// goroutines.
type Position struct {
	pos     *chess.Position
	parent  *Position // Previous position in the game, nil at the start
	key     string    // Identity for repetitions
	moves   []*chess.Move
	legal   []game.Move
	outcome *game.Outcome
	method  string
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	return newPosition(chess.NewGame().Position(), nil)
}

// FromFEN parses a position in Forsyth-Edwards Notation.
func FromFEN(fen string) (*Position, error) {
	option, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("failed to parse FEN %q: %w", fen, err)
	}
	return newPosition(chess.NewGame(option).Position(), nil), nil
}

func newPosition(pos *chess.Position, parent *Position) *Position {
	moves := pos.ValidMoves()
	legal := make([]game.Move, len(moves))
	for i, m := range moves {
		legal[i] = Move{From: m.S1(), To: m.S2(), Promo: m.Promo()}
	}

	p := &Position{
		pos:    pos,
		parent: parent,
		key:    repetitionKey(pos),
		moves:  moves,
		legal:  legal,
		method: "in progress",
	}
	p.detectOutcome()
	return p
}

func (p *Position) detectOutcome() {
	var outcome game.Outcome
	switch {
	case len(p.moves) == 0 && p.pos.Status() == chess.Checkmate:
		outcome, p.method = game.LossFor(p.Player()), "checkmate"
	case len(p.moves) == 0:
		outcome, p.method = game.DrawOutcome(), "stalemate"
	case insufficientMaterial(p.pos.Board()):
		outcome, p.method = game.DrawOutcome(), "insufficient material"
	case p.pos.HalfMoveClock() >= SeventyFiveMoveClock:
		outcome, p.method = game.DrawOutcome(), "seventyfive moves"
	case p.Repetitions() >= FivefoldRepetition:
		outcome, p.method = game.DrawOutcome(), "fivefold repetition"
	default:
		return
	}
	p.outcome = &outcome
}

func (p *Position) Player() game.Color {
	return fromChessColor(p.pos.Turn())
}

func (p *Position) LegalMoves() []game.Move {
	if p.outcome != nil {
		return nil
	}
	return append([]game.Move(nil), p.legal...)
}

// Play panics if move is not legal here, which is a caller bug.
func (p *Position) Play(move game.Move) game.State {
	for i, legal := range p.legal {
		if legal == move {
			return newPosition(p.pos.Update(p.moves[i]), p)
		}
	}
	panic(fmt.Sprintf("illegal move %v in position %s", move, p.FEN()))
}

func (p *Position) IsTerminal() bool {
	return p.outcome != nil
}

func (p *Position) Outcome() game.Outcome {
	if p.outcome == nil {
		panic("position is not terminal")
	}
	return *p.outcome
}

// Repetitions counts how often this position occurred in the game so far,
// itself included. Only positions since the last capture or pawn move can
// repeat.
func (p *Position) Repetitions() int {
	count := 1
	q := p.parent
	for steps := 0; q != nil && steps < p.pos.HalfMoveClock(); steps++ {
		if q.key == p.key {
			count++
		}
		q = q.parent
	}
	return count
}

// repetitionKey drops the move clocks from the FEN. Position.Hash includes
// them, so equal positions would never share a hash.
func repetitionKey(pos *chess.Position) string {
	return strings.Join(strings.Fields(pos.String())[:4], " ")
}

// Method reports how a terminal position ended.
func (p *Position) Method() string {
	return p.method
}

func (p *Position) FEN() string {
	return p.pos.String()
}

func (p *Position) String() string {
	return p.FEN()
}

func (p *Position) PieceMap() map[game.Square]game.Piece {
	squares := p.pos.Board().SquareMap()
	pieces := make(map[game.Square]game.Piece, len(squares))
	for sq, piece := range squares {
		if piece == chess.NoPiece {
			continue
		}
		pieces[game.Square(sq)] = game.Piece{
			Type:  fromChessPieceType(piece.Type()),
			Color: fromChessColor(piece.Color()),
		}
	}
	return pieces
}

func (p *Position) AttackedSquares(sq game.Square) []game.Square {
	return attacks(p.pos.Board(), chess.Square(sq))
}

func fromChessColor(c chess.Color) game.Color {
	if c == chess.Black {
		return game.Black
	}
	return game.White
}

func fromChessPieceType(t chess.PieceType) game.PieceType {
	switch t {
	case chess.Knight:
		return game.Knight
	case chess.Bishop:
		return game.Bishop
	case chess.Rook:
		return game.Rook
	case chess.Queen:
		return game.Queen
	case chess.King:
		return game.King
	}
	return game.Pawn
}

// insufficientMaterial covers bare kings, a king with a single minor piece
// against a bare king, and kings with bishops that all stand on the same square
// colour.
func insufficientMaterial(board *chess.Board) bool {
	knights := 0
	bishopColours := map[int]int{}
	for sq, piece := range board.SquareMap() {
		switch piece.Type() {
		case chess.King, chess.NoPieceType:
		case chess.Knight:
			knights++
		case chess.Bishop:
			bishopColours[(int(sq.File())+int(sq.Rank()))%2]++
		default:
			return false
		}
	}
	bishops := bishopColours[0] + bishopColours[1]
	if knights+bishops <= 1 {
		return true
	}
	return knights == 0 && len(bishopColours) == 1
}
