// Package errors provides sentinel errors and error types for the chess engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a target outside the current selection.
	ErrIllegalMove = errors.New("illegal move")

	// ErrOutOfBounds indicates a square outside the 8x8 board.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrNoKing indicates the side being tested has no king on the board.
	ErrNoKing = errors.New("no king on board")

	// ErrEmptySquare indicates a move was requested from an empty square.
	ErrEmptySquare = errors.New("empty source square")

	// ErrPromotionPending indicates a pawn promotion must be completed first.
	ErrPromotionPending = errors.New("promotion pending")

	// ErrNoPromotionPending indicates a promotion was requested out of turn.
	ErrNoPromotionPending = errors.New("no promotion pending")

	// ErrInvalidPromotion indicates a promotion to a kind a pawn cannot become.
	ErrInvalidPromotion = errors.New("invalid promotion")

	// ErrInvalidNotation indicates a malformed square or move string.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrNoHistory indicates an undo was requested on an empty history.
	ErrNoHistory = errors.New("no moves to undo")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameOver indicates a move was requested after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")
)

// SquareError wraps errors with the board coordinates that caused them.
// Out-of-bounds access panics with a *SquareError so that recover()
// callers can still inspect it with errors.Is().
type SquareError struct {
	Err  error // The underlying error
	Rank int   // Row index, 0 is black's back rank
	File int   // Column index, 0 is the a-file
	Op   string
}

// Error returns a formatted error message including the coordinates.
func (e *SquareError) Error() string {
	loc := fmt.Sprintf("(%d,%d)", e.Rank, e.File)
	if e.Op != "" {
		loc = e.Op + " " + loc
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", loc, e.Err)
	}
	return loc
}

// Unwrap returns the underlying error.
func (e *SquareError) Unwrap() error {
	return e.Err
}

// PositionError represents a failure tied to a specific position, such as
// a FEN field that could not be decoded or a move applied at some ply.
type PositionError struct {
	Err   error  // The underlying error
	FEN   string // The position in FEN form (if known)
	Field string // FEN field or move text involved (if known)
	Ply   int    // Ply number where the error occurred (0 if not applicable)
}

// Error returns a formatted error message with all available context.
func (e *PositionError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field %q", e.Field))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("position %q", e.FEN))
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "position error"
}

// Unwrap returns the underlying error.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
