// Package bot defines the contract between the rules engine and an external
// move-search collaborator. The engine hands the collaborator a FEN string
// and receives a coordinate move back.
package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Suggestion is a move proposed by a Searcher in coordinate notation.
type Suggestion struct {
	From string
	To   string
	// Promotion is the lowercase letter of the promotion piece, or 0.
	Promotion byte
}

// String returns the suggestion as a coordinate move such as "e7e8q".
func (s Suggestion) String() string {
	if s.Promotion == 0 {
		return s.From + s.To
	}
	return s.From + s.To + string(s.Promotion)
}

// Squares translates the suggestion's notation into board squares.
func (s Suggestion) Squares() (from, to chess.Square, err error) {
	if from, err = chess.ParseSquare(s.From); err != nil {
		return from, to, err
	}
	to, err = chess.ParseSquare(s.To)
	return from, to, err
}

// PromotionKind returns the promotion piece. A suggestion without one
// promotes to a queen.
func (s Suggestion) PromotionKind() (chess.Kind, error) {
	if s.Promotion == 0 {
		return chess.Queen, nil
	}
	kind, ok := chess.KindFromLetter(s.Promotion)
	if !ok || !kind.CanPromoteTo() {
		return chess.NoKind, fmt.Errorf("promotion %q: %w", s.Promotion, errors.ErrInvalidPromotion)
	}
	return kind, nil
}

// WithPromotion returns a copy of s promoting to kind.
func (s Suggestion) WithPromotion(kind chess.Kind) Suggestion {
	s.Promotion = kind.Letter() - 'A' + 'a'
	return s
}

// ParseSuggestion parses a coordinate move: two squares and an optional
// promotion letter ("e2e4", "a7a8n").
func ParseSuggestion(text string) (Suggestion, error) {
	text = strings.TrimSpace(text)
	if len(text) != 4 && len(text) != 5 {
		return Suggestion{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidNotation)
	}

	s := Suggestion{From: text[:2], To: text[2:4]}
	if _, _, err := s.Squares(); err != nil {
		return Suggestion{}, fmt.Errorf("move %q: %w", text, err)
	}
	if len(text) == 5 {
		s.Promotion = strings.ToLower(text[4:])[0]
		if _, err := s.PromotionKind(); err != nil {
			return Suggestion{}, fmt.Errorf("move %q: %w", text, err)
		}
	}
	return s, nil
}

// Searcher proposes a move for the side to move in a FEN position.
// Implementations may take as long as they like and should return early
// with ctx.Err() when the context is done.
type Searcher interface {
	Search(ctx context.Context, fen string, depth int) (Suggestion, error)
}

// SearcherFunc adapts an ordinary function to the Searcher interface.
type SearcherFunc func(ctx context.Context, fen string, depth int) (Suggestion, error)

// Search calls f(ctx, fen, depth).
func (f SearcherFunc) Search(ctx context.Context, fen string, depth int) (Suggestion, error) {
	return f(ctx, fen, depth)
}
