package game

type mockMove struct {
	id int
}

func (m mockMove) String() string {
	return string(rune('a' + m.id))
}

// mockPosition is a board with fixed pieces and attack sets.
type mockPosition struct {
	player  Color
	pieces  map[Square]Piece
	attacks map[Square][]Square
	outcome *Outcome
}

func (m mockPosition) Player() Color {
	return m.player
}

func (m mockPosition) LegalMoves() []Move {
	return []Move{mockMove{id: 0}}
}

func (m mockPosition) Play(move Move) State {
	return m
}

func (m mockPosition) IsTerminal() bool {
	return m.outcome != nil
}

func (m mockPosition) Outcome() Outcome {
	return *m.outcome
}

func (m mockPosition) PieceMap() map[Square]Piece {
	return m.pieces
}

func (m mockPosition) AttackedSquares(sq Square) []Square {
	return m.attacks[sq]
}

// Rook and king against a lone king
func rookEndgame() mockPosition {
	return mockPosition{
		player: White,
		pieces: map[Square]Piece{
			0:  {Type: Rook, Color: White},
			4:  {Type: King, Color: White},
			60: {Type: King, Color: Black},
		},
		attacks: map[Square][]Square{
			0:  {1, 2, 3, 4, 8, 16, 24, 32, 40, 48, 56},
			4:  {3, 5, 11, 12, 13},
			60: {59, 61, 51, 52, 53},
		},
	}
}
