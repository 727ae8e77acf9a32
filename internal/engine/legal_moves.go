// Package engine provides chess move generation, validation and board manipulation.
package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// LegalMoves returns the legal quiet moves and captures for the piece on sq.
// An empty square or a piece not belonging to active yields an empty
// selection. Every candidate is filtered through the king-safety probe, so
// pinned pieces only keep moves along the pin.
func LegalMoves(board *chess.Board, active chess.Colour, sq chess.Square, history *chess.History) (chess.Selection, error) {
	sel := chess.Selection{Square: sq}
	piece := board.Get(sq)
	if piece.IsEmpty() || piece.Colour != active {
		return sel, nil
	}

	steps := piece.Kind.MaxSteps()
	if piece.Kind == chess.Pawn && !piece.HasMoved {
		steps = 2
	}

	for _, dir := range piece.Kind.Moves() {
		if piece.Kind == chess.Pawn {
			dir = chess.Orient(dir, active)
		}
		if err := walk(board, active, sq, dir, steps, piece.Kind != chess.Pawn, &sel); err != nil {
			return sel, err
		}
	}

	switch piece.Kind {
	case chess.Pawn:
		if err := addPawnAttacks(board, active, sq, history, &sel); err != nil {
			return sel, err
		}
	case chess.King:
		if !piece.HasMoved {
			if err := addCastling(board, active, sq, &sel); err != nil {
				return sel, err
			}
		}
	}
	return sel, nil
}

// walk steps from sq along dir, recording empty squares as moves and the
// first enemy piece as an attack when captures are allowed.
func walk(board *chess.Board, active chess.Colour, sq chess.Square, dir chess.Direction, steps int, captures bool, sel *chess.Selection) error {
	next := sq
	for step := 0; step < steps; step++ {
		next = next.Add(dir)
		if !next.Valid() {
			return nil
		}
		target := board.Get(next)
		if !target.IsEmpty() && (target.Colour == active || !captures) {
			return nil
		}

		safe, err := KingSafe(board, active, sq, next)
		if err != nil {
			return err
		}

		if target.IsEmpty() {
			if safe {
				sel.Moves.Add(next)
			}
			continue
		}
		if safe {
			sel.Attacks.Add(next)
		}
		return nil
	}
	return nil
}

// AllLegalMoves returns every legal move for the active colour, ordered by
// source square.
func AllLegalMoves(board *chess.Board, active chess.Colour, history *chess.History) ([]chess.Move, error) {
	var moves []chess.Move
	for _, from := range board.Occupied(active) {
		sel, err := LegalMoves(board, active, from, history)
		if err != nil {
			return nil, err
		}
		targets := sel.Moves | sel.Attacks
		for _, to := range targets.Squares() {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves, nil
}

// HasLegalMoves returns true if the active colour has at least one legal move.
func HasLegalMoves(board *chess.Board, active chess.Colour, history *chess.History) (bool, error) {
	for _, from := range board.Occupied(active) {
		sel, err := LegalMoves(board, active, from, history)
		if err != nil {
			return false, err
		}
		if !sel.IsEmpty() {
			return true, nil
		}
	}
	return false, nil
}
