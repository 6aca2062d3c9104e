package chessrules

import (
	"chessai/game"

	"github.com/notnil/chess"
)

type offset struct {
	file, rank int
}

var (
	knightOffsets = []offset{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = []offset{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	rookRays      = []offset{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	bishopRays    = []offset{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	queenRays     = append(append([]offset{}, rookRays...), bishopRays...)
)

// attacks lists the squares the piece on sq threatens or defends. Sliding
// pieces stop at the first occupied square, which is included.
func attacks(board *chess.Board, sq chess.Square) []game.Square {
	piece := board.Piece(sq)
	if piece == chess.NoPiece {
		return nil
	}

	file, rank := int(sq.File()), int(sq.Rank())
	switch piece.Type() {
	case chess.Pawn:
		forward := 1
		if piece.Color() == chess.Black {
			forward = -1
		}
		return steps(file, rank, []offset{{-1, forward}, {1, forward}})
	case chess.Knight:
		return steps(file, rank, knightOffsets)
	case chess.King:
		return steps(file, rank, kingOffsets)
	case chess.Bishop:
		return slides(board, file, rank, bishopRays)
	case chess.Rook:
		return slides(board, file, rank, rookRays)
	case chess.Queen:
		return slides(board, file, rank, queenRays)
	}
	return nil
}

func steps(file, rank int, offsets []offset) []game.Square {
	squares := make([]game.Square, 0, len(offsets))
	for _, o := range offsets {
		if f, r := file+o.file, rank+o.rank; onBoard(f, r) {
			squares = append(squares, square(f, r))
		}
	}
	return squares
}

func slides(board *chess.Board, file, rank int, rays []offset) []game.Square {
	var squares []game.Square
	for _, ray := range rays {
		for f, r := file+ray.file, rank+ray.rank; onBoard(f, r); f, r = f+ray.file, r+ray.rank {
			squares = append(squares, square(f, r))
			if board.Piece(chess.Square(square(f, r))) != chess.NoPiece {
				break
			}
		}
	}
	return squares
}

func onBoard(file, rank int) bool {
	return file >= 0 && file < 8 && rank >= 0 && rank < 8
}

func square(file, rank int) game.Square {
	return game.Square(rank*8 + file)
}
