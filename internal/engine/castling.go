package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// castleSides lists the file direction of the kingside and queenside castles.
var castleSides = [...]int{1, -1}

// addCastling adds the two-file king moves for every side on which the
// unmoved king may castle with an unmoved rook.
func addCastling(board *chess.Board, active chess.Colour, king chess.Square, sel *chess.Selection) error {
	for _, dir := range castleSides {
		ok, err := canCastle(board, active, king, dir)
		if err != nil {
			return err
		}
		if ok {
			sel.Moves.Add(chess.Sq(king.Rank, king.File+2*dir))
		}
	}
	return nil
}

// canCastle checks the rook, the squares between king and rook, and that
// the king is not attacked on its start, pass-through and landing squares.
func canCastle(board *chess.Board, active chess.Colour, king chess.Square, dir int) (bool, error) {
	rookSq := castlingRookSquare(king, dir)
	landing := chess.Sq(king.Rank, king.File+2*dir)
	if !landing.Valid() {
		return false, nil
	}

	rook := board.Get(rookSq)
	if !rook.Is(active, chess.Rook) || rook.HasMoved {
		return false, nil
	}

	for file := king.File + dir; file != rookSq.File; file += dir {
		if !board.IsEmpty(chess.Sq(king.Rank, file)) {
			return false, nil
		}
	}

	for _, sq := range []chess.Square{king, chess.Sq(king.Rank, king.File+dir), landing} {
		safe, err := KingSafe(board, active, king, sq)
		if err != nil || !safe {
			return false, err
		}
	}
	return true, nil
}

// castlingRookSquare returns the corner square of the rook castling in dir.
func castlingRookSquare(king chess.Square, dir int) chess.Square {
	if dir > 0 {
		return chess.Sq(king.Rank, chess.BoardSize-1)
	}
	return chess.Sq(king.Rank, 0)
}

// CastlingRights derives the castling field from the board: a right exists
// while the king and that side's rook both stand unmoved on their home
// squares.
func CastlingRights(board *chess.Board) chess.CastlingRights {
	rights := chess.NoCastling
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		king := board.Get(chess.KingHome(colour))
		if !king.Is(colour, chess.King) || king.HasMoved {
			continue
		}
		for _, kingside := range []bool{true, false} {
			rook := board.Get(chess.RookHome(colour, kingside))
			if rook.Is(colour, chess.Rook) && !rook.HasMoved {
				rights |= chess.CastlingRight(colour, kingside)
			}
		}
	}
	return rights
}
