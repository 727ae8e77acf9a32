package engine

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Outcome reports whether an applied move is finished.
type Outcome int

const (
	// Completed means the turn should pass to the other colour.
	Completed Outcome = iota
	// PromotionPending means a pawn reached the last row and Promote must
	// be called before the turn passes.
	PromotionPending
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	if o == PromotionPending {
		return "PromotionPending"
	}
	return "Completed"
}

// Apply moves the piece on source to target and appends the record to
// history. The caller is trusted to pass a target taken from LegalMoves
// for source; legality is not checked again. A king moving two files also
// moves its rook, and a pawn moving diagonally onto an empty square takes
// the pawn beside it en passant. Both are kept as side effects of the
// returned record.
func Apply(board *chess.Board, source, target chess.Square, history *chess.History) (*chess.MoveRecord, Outcome, error) {
	for _, sq := range []chess.Square{source, target} {
		if !sq.Valid() {
			return nil, Completed, &errors.SquareError{Err: errors.ErrOutOfBounds, Rank: sq.Rank, File: sq.File, Op: "apply"}
		}
	}
	mover := board.Get(source)
	if mover.IsEmpty() {
		return nil, Completed, fmt.Errorf("apply %s%s: %w", source, target, errors.ErrEmptySquare)
	}

	rec := &chess.MoveRecord{
		Source:       source,
		SourceBefore: mover,
		Target:       target,
		TargetBefore: board.Get(target),
	}
	rec.Capture = !rec.TargetBefore.IsEmpty()

	switch {
	case mover.Kind == chess.King && abs(target.File-source.File) == 2:
		dir := sign(target.File - source.File)
		rook := relocate(board, castlingRookSquare(source, dir), chess.Sq(source.Rank, source.File+dir))
		rec.SideEffects = append(rec.SideEffects, rook)

	case mover.Kind == chess.Pawn && source.File != target.File && rec.TargetBefore.IsEmpty():
		victim := remove(board, chess.Sq(source.Rank, target.File))
		rec.SideEffects = append(rec.SideEffects, victim)
		rec.Capture = true
	}

	relocate(board, source, target)
	if history != nil {
		history.Push(rec)
	}

	if isPromotion(board.Get(target), target) {
		return rec, PromotionPending, nil
	}
	return rec, Completed, nil
}

// relocate performs the primitive move: the piece on source lands on target
// marked as moved and source is emptied.
func relocate(board *chess.Board, source, target chess.Square) chess.MoveRecord {
	rec := chess.MoveRecord{
		Source:       source,
		SourceBefore: board.Get(source),
		Target:       target,
		TargetBefore: board.Get(target),
	}
	piece := rec.SourceBefore
	piece.HasMoved = true
	board.Clear(source)
	board.Set(target, piece)
	return rec
}

// remove clears sq. It is recorded as a relocation of the piece onto its
// own square, so undoing it puts the piece back.
func remove(board *chess.Board, sq chess.Square) chess.MoveRecord {
	piece := board.Get(sq)
	board.Clear(sq)
	return chess.MoveRecord{
		Source:       sq,
		SourceBefore: piece,
		Target:       sq,
		TargetBefore: piece,
	}
}

// Promote replaces the pawn on sq with a piece of the given kind and the
// same colour. It completes a PromotionPending outcome and does not touch
// the history: undoing the move restores the pawn.
func Promote(board *chess.Board, sq chess.Square, kind chess.Kind) error {
	if !kind.CanPromoteTo() {
		return fmt.Errorf("promote to %s: %w", kind, errors.ErrInvalidPromotion)
	}
	pawn := board.Get(sq)
	if !isPromotion(pawn, sq) {
		return fmt.Errorf("promote on %s (%s): %w", sq, pawn, errors.ErrInvalidPromotion)
	}
	board.Set(sq, chess.Piece{Colour: pawn.Colour, Kind: kind, HasMoved: true})
	return nil
}

// Undo reverses a record: side effects first, each undone recursively, then
// the record's own source and target squares.
func Undo(board *chess.Board, rec *chess.MoveRecord) {
	for i := range rec.SideEffects {
		Undo(board, &rec.SideEffects[i])
	}
	board.Set(rec.Source, rec.SourceBefore)
	board.Set(rec.Target, rec.TargetBefore)
}

// UndoLast pops the most recent record from history and reverses it.
func UndoLast(board *chess.Board, history *chess.History) (*chess.MoveRecord, error) {
	rec := history.Pop()
	if rec == nil {
		return nil, errors.ErrNoHistory
	}
	Undo(board, rec)
	return rec, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
