package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Report is the raw input to status classification.
type Report struct {
	InCheck         bool
	HasAnyLegalMove bool
}

// Status classifies the report. Exactly one status holds for any report.
func (r Report) Status() chess.Status {
	switch {
	case r.InCheck && !r.HasAnyLegalMove:
		return chess.Checkmate
	case !r.InCheck && !r.HasAnyLegalMove:
		return chess.Stalemate
	case r.InCheck:
		return chess.Check
	default:
		return chess.Normal
	}
}

// Evaluate probes whether the active colour is in check and whether any of
// its pieces has a legal move.
func Evaluate(board *chess.Board, active chess.Colour, history *chess.History) (Report, error) {
	inCheck, err := InCheck(board, active)
	if err != nil {
		return Report{}, err
	}
	hasMove, err := HasLegalMoves(board, active, history)
	if err != nil {
		return Report{}, err
	}
	return Report{InCheck: inCheck, HasAnyLegalMove: hasMove}, nil
}

// Classify evaluates the position and returns its status for active.
func Classify(board *chess.Board, active chess.Colour, history *chess.History) (chess.GameStatus, error) {
	report, err := Evaluate(board, active, history)
	if err != nil {
		return chess.GameStatus{Active: active}, err
	}
	return chess.GameStatus{Status: report.Status(), Active: active}, nil
}

// IsCheckmate returns true if the position is checkmate for active.
func IsCheckmate(board *chess.Board, active chess.Colour, history *chess.History) bool {
	gs, err := Classify(board, active, history)
	return err == nil && gs.Status == chess.Checkmate
}

// IsStalemate returns true if the position is stalemate for active.
func IsStalemate(board *chess.Board, active chess.Colour, history *chess.History) bool {
	gs, err := Classify(board, active, history)
	return err == nil && gs.Status == chess.Stalemate
}
