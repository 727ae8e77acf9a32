package engine

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// FindKing returns the square of the colour's king. A board without one
// breaks the engine's invariants and yields an error wrapping ErrNoKing.
func FindKing(board *chess.Board, colour chess.Colour) (chess.Square, error) {
	sq, ok := board.Find(colour, chess.King)
	if !ok {
		return chess.Square{}, fmt.Errorf("%s king: %w", colour, errors.ErrNoKing)
	}
	return sq, nil
}

// KingSafe reports whether the active colour's king would be unattacked
// after the piece on source is relocated to target. The relocation is raw:
// no castling rook or en-passant victim is moved. Passing source == target
// probes the current position.
func KingSafe(board *chess.Board, active chess.Colour, source, target chess.Square) (bool, error) {
	return kingSafe(board, active, source, target, nil)
}

// KingSafeAfter is KingSafe with an additional square cleared before the
// probe, used for the pawn an en-passant capture removes.
func KingSafeAfter(board *chess.Board, active chess.Colour, source, target, cleared chess.Square) (bool, error) {
	return kingSafe(board, active, source, target, &cleared)
}

func kingSafe(board *chess.Board, active chess.Colour, source, target chess.Square, cleared *chess.Square) (bool, error) {
	probe := board.Clone()
	if cleared != nil {
		probe.Clear(*cleared)
	}
	if source != target {
		piece := probe.Get(source)
		probe.Clear(source)
		probe.Set(target, piece)
	}

	king, err := FindKing(probe, active)
	if err != nil {
		return false, err
	}
	return !isSquareAttacked(probe, king, active), nil
}

// InCheck returns true if the colour's king is currently attacked.
func InCheck(board *chess.Board, colour chess.Colour) (bool, error) {
	king, err := FindKing(board, colour)
	if err != nil {
		return false, err
	}
	safe, err := KingSafe(board, colour, king, king)
	return !safe, err
}

// isSquareAttacked scans outward from sq using every kind's own movement
// table and reports whether an enemy of that kind is the first piece met.
// defender is the colour whose piece stands (or would stand) on sq.
func isSquareAttacked(board *chess.Board, sq chess.Square, defender chess.Colour) bool {
	for _, kind := range chess.Kinds {
		for _, dir := range kind.Attacks() {
			if kind == chess.Pawn {
				// An enemy pawn attacks toward the defender, so it sits one
				// row ahead of sq in the defender's own forward direction.
				dir = chess.Orient(dir, defender)
			}
			if attackedAlong(board, sq, dir, kind, defender) {
				return true
			}
		}
	}
	return false
}

// attackedAlong walks from sq in direction dir for as far as kind moves.
func attackedAlong(board *chess.Board, sq chess.Square, dir chess.Direction, kind chess.Kind, defender chess.Colour) bool {
	next := sq
	for step := 0; step < kind.MaxSteps(); step++ {
		next = next.Add(dir)
		if !next.Valid() {
			return false
		}
		piece := board.Get(next)
		if piece.IsEmpty() {
			continue
		}
		return piece.Colour != defender && piece.Kind == kind
	}
	return false
}
