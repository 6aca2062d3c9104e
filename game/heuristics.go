package game

import "fmt"

const (
	MaterialName = "material"
	MobilityName = "mobility"
	PositionName = "position"
)

// Piece values in pawn units. The king is always on the board so its value
// keeps the material magnitude above zero.
var PieceValues = map[PieceType]float64{
	Pawn:   1,
	Knight: 3,
	Bishop: 3,
	Rook:   5,
	Queen:  9,
	King:   2,
}

var heuristics = map[string]Heuristic{
	MaterialName: Material,
	MobilityName: Mobility,
	PositionName: Position,
}

// HeuristicByName resolves one of the built-in heuristics.
func HeuristicByName(name string) (Heuristic, error) {
	h, ok := heuristics[name]
	if !ok {
		return nil, fmt.Errorf("unknown heuristic %q", name)
	}
	return h, nil
}

// Material sums the values of color's pieces.
func Material(board Board, color Color) float64 {
	total := 0.0
	for _, piece := range board.PieceMap() {
		if piece.Color == color {
			total += PieceValues[piece.Type]
		}
	}
	return total
}

// Mobility counts the squares each of color's pieces attacks, summed without
// deduplication.
func Mobility(board Board, color Color) float64 {
	total := 0
	for sq, piece := range board.PieceMap() {
		if piece.Color == color {
			total += len(board.AttackedSquares(sq))
		}
	}
	return float64(total)
}

// Position rewards well placed pieces. Each piece contributes
// 1 + bonus/100 where bonus comes from a piece-square table in [-50, 50], so
// every term stays positive.
func Position(board Board, color Color) float64 {
	// Integer sums keep the result independent of map iteration order
	pieces, bonus := 0, 0
	for sq, piece := range board.PieceMap() {
		if piece.Color == color {
			pieces++
			bonus += pieceSquareBonus(piece, sq)
		}
	}
	return float64(pieces) + float64(bonus)/100
}

func pieceSquareBonus(piece Piece, sq Square) int {
	file, rank := int(sq)%8, int(sq)/8
	// Tables are laid out from White's side with rank 8 first
	index := (7-rank)*8 + file
	if piece.Color == Black {
		index = rank*8 + file
	}
	return pieceSquareTables[piece.Type][index]
}

var pieceSquareTables = map[PieceType]*[64]int{
	Pawn:   &pawnTable,
	Knight: &knightTable,
	Bishop: &bishopTable,
	Rook:   &rookTable,
	Queen:  &queenTable,
	King:   &kingTable,
}

var pawnTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenTable = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingTable = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}
