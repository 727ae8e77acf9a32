package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// addPawnAttacks adds the pawn's diagonal captures, including en passant.
func addPawnAttacks(board *chess.Board, active chess.Colour, sq chess.Square, history *chess.History, sel *chess.Selection) error {
	ep, hasEP := history.EnPassant()

	for _, dir := range chess.Pawn.Attacks() {
		target := sq.Add(chess.Orient(dir, active))
		if !target.Valid() {
			continue
		}

		victim := board.Get(target)
		var safe bool
		var err error
		switch {
		case victim.IsEnemyOf(active):
			safe, err = KingSafe(board, active, sq, target)
		case victim.IsEmpty() && hasEP && isEnPassantCapture(board, active, sq, target, ep):
			safe, err = KingSafeAfter(board, active, sq, target, ep.Victim)
		default:
			continue
		}
		if err != nil {
			return err
		}
		if safe {
			sel.Attacks.Add(target)
		}
	}
	return nil
}

// isEnPassantCapture reports whether the pawn on sq may take en passant on
// target: the enemy pawn that just advanced two rows landed beside it, on
// the mover's row and the target's column.
func isEnPassantCapture(board *chess.Board, active chess.Colour, sq, target chess.Square, ep chess.EnPassant) bool {
	if ep.Colour == active || ep.Target != target {
		return false
	}
	if ep.Victim.Rank != sq.Rank || ep.Victim.File != target.File {
		return false
	}
	return board.Get(ep.Victim).Is(ep.Colour, chess.Pawn)
}

// isPromotion returns true if a pawn of the colour standing on sq must promote.
func isPromotion(piece chess.Piece, sq chess.Square) bool {
	return piece.Kind == chess.Pawn && sq.Rank == piece.Colour.PromotionRow()
}
