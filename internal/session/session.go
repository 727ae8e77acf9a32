// Package session holds the state of one game: board, side to move,
// history, current selection and any pending promotion. All operations
// go through a Session value; there is no package-level game state.
package session

import (
	"context"
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/bot"
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
)

// Session is a single game. It is not safe for concurrent use.
type Session struct {
	start *engine.Setup

	board     *chess.Board
	active    chess.Colour
	history   *chess.History
	selection *chess.Selection
	pending   *chess.Square
	captured  [2][]chess.Piece
	line      []bot.Suggestion

	searcher bot.Searcher
	depth    int
}

// Option configures a Session.
type Option func(*Session)

// WithSearcher sets the collaborator used by PlayBot.
func WithSearcher(s bot.Searcher) Option {
	return func(g *Session) {
		g.searcher = s
	}
}

// WithDepth sets the search depth passed to the searcher.
func WithDepth(depth int) Option {
	return func(g *Session) {
		g.depth = depth
	}
}

// New starts a game from the standard position.
func New(opts ...Option) *Session {
	return newSession(engine.NewInitialSetup(), opts)
}

// FromFEN starts a game from a FEN position.
func FromFEN(fen string, opts ...Option) (*Session, error) {
	setup, err := engine.Decode(fen)
	if err != nil {
		return nil, err
	}
	return newSession(setup, opts), nil
}

func newSession(setup *engine.Setup, opts []Option) *Session {
	g := &Session{start: setup, depth: 1}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset()
	return g
}

// Reset returns the game to its starting position.
func (g *Session) Reset() {
	g.board = g.start.Board.Clone()
	g.active = g.start.Active
	g.history = &chess.History{Origin: g.start.History.Origin}
	g.selection = nil
	g.pending = nil
	g.captured = [2][]chess.Piece{}
	g.line = nil
}

// Board returns a copy of the current board.
func (g *Session) Board() chess.Board {
	return *g.board
}

// Active returns the colour to move.
func (g *Session) Active() chess.Colour {
	return g.active
}

// History returns the game's move history. Callers must not modify it.
func (g *Session) History() *chess.History {
	return g.history
}

// Captured returns the pieces taken by colour, in capture order.
func (g *Session) Captured(colour chess.Colour) []chess.Piece {
	return append([]chess.Piece(nil), g.captured[colour]...)
}

// Line returns the moves played so far in coordinate notation, with the
// promotion letter set once a promotion is completed.
func (g *Session) Line() []bot.Suggestion {
	return append([]bot.Suggestion(nil), g.line...)
}

// StartFEN encodes the position the game started from.
func (g *Session) StartFEN() string {
	return engine.Encode(g.start.Board, g.start.Active, g.start.History)
}

// PendingPromotion returns the square of a pawn awaiting promotion.
func (g *Session) PendingPromotion() (chess.Square, bool) {
	if g.pending == nil {
		return chess.Square{}, false
	}
	return *g.pending, true
}

// Selection returns the current selection, if any.
func (g *Session) Selection() (chess.Selection, bool) {
	if g.selection == nil {
		return chess.Selection{}, false
	}
	return *g.selection, true
}

// Select computes the legal moves of the piece on sq and makes it the
// current selection. Selecting an empty square or an opponent's piece
// yields an empty selection.
func (g *Session) Select(sq chess.Square) (chess.Selection, error) {
	if g.pending != nil {
		return chess.Selection{}, errors.ErrPromotionPending
	}
	if !sq.Valid() {
		return chess.Selection{}, &errors.SquareError{Err: errors.ErrOutOfBounds, Rank: sq.Rank, File: sq.File, Op: "select"}
	}

	sel, err := engine.LegalMoves(g.board, g.active, sq, g.history)
	if err != nil {
		return chess.Selection{}, err
	}
	g.selection = &sel
	return sel, nil
}

// Deselect clears the current selection.
func (g *Session) Deselect() {
	g.selection = nil
}

// Move plays the selected piece to target. The target must be one of the
// selection's moves or attacks. A pawn reaching the last row leaves the
// turn with the mover until Promote is called.
func (g *Session) Move(target chess.Square) (engine.Outcome, error) {
	if g.pending != nil {
		return engine.Completed, errors.ErrPromotionPending
	}
	if g.selection == nil || !g.selection.Allows(target) {
		return engine.Completed, fmt.Errorf("move to %s: %w", target, errors.ErrIllegalMove)
	}

	rec, outcome, err := engine.Apply(g.board, g.selection.Square, target, g.history)
	if err != nil {
		return outcome, err
	}
	g.selection = nil
	g.line = append(g.line, bot.Suggestion{From: rec.Source.String(), To: rec.Target.String()})
	if piece, ok := rec.Captured(); ok {
		g.captured[rec.Mover()] = append(g.captured[rec.Mover()], piece)
	}

	if outcome == engine.PromotionPending {
		g.pending = &target
		return outcome, nil
	}
	g.active = g.active.Opposite()
	return outcome, nil
}

// Promote completes a pending promotion and passes the turn.
func (g *Session) Promote(kind chess.Kind) error {
	if g.pending == nil {
		return errors.ErrNoPromotionPending
	}
	if err := engine.Promote(g.board, *g.pending, kind); err != nil {
		return err
	}
	last := len(g.line) - 1
	g.line[last] = g.line[last].WithPromotion(kind)
	g.pending = nil
	g.active = g.active.Opposite()
	return nil
}

// Undo takes back the last move. The turn returns to the colour that made
// it and any pending promotion is dropped.
func (g *Session) Undo() error {
	rec, err := engine.UndoLast(g.board, g.history)
	if err != nil {
		return err
	}
	mover := rec.Mover()
	if _, ok := rec.Captured(); ok {
		list := g.captured[mover]
		g.captured[mover] = list[:len(list)-1]
	}
	g.line = g.line[:len(g.line)-1]
	g.active = mover
	g.pending = nil
	g.selection = nil
	return nil
}

// Status classifies the position for the side to move.
func (g *Session) Status() (chess.GameStatus, error) {
	return engine.Classify(g.board, g.active, g.history)
}

// Draws reports the draw conditions of the current position.
func (g *Session) Draws() engine.DrawReport {
	return engine.DrawRules(g.board, g.active, g.history)
}

// Position returns the repetition identity of the current position.
func (g *Session) Position() hashing.Position {
	return engine.RepetitionPosition(g.board.Clone(), g.active, g.history)
}

// FEN encodes the current position.
func (g *Session) FEN() string {
	return engine.Encode(g.board, g.active, g.history)
}

// LegalMoves lists every legal move of the side to move.
func (g *Session) LegalMoves() ([]chess.Move, error) {
	return engine.AllLegalMoves(g.board, g.active, g.history)
}

// ApplySuggestion plays a collaborator's move: select the source, move to
// the target, and promote if the move requires it.
func (g *Session) ApplySuggestion(s bot.Suggestion) (engine.Outcome, error) {
	from, to, err := s.Squares()
	if err != nil {
		return engine.Completed, err
	}

	if _, err := g.Select(from); err != nil {
		return engine.Completed, err
	}
	outcome, err := g.Move(to)
	if err != nil {
		g.Deselect()
		return outcome, fmt.Errorf("suggestion %s: %w", s, err)
	}
	if outcome != engine.PromotionPending {
		return outcome, nil
	}

	kind, err := s.PromotionKind()
	if err != nil {
		return outcome, err
	}
	if err := g.Promote(kind); err != nil {
		return outcome, err
	}
	return engine.Completed, nil
}

// PlayBot asks the configured searcher for a move in the current position
// and plays it. It fails with ErrGameOver when the side to move has no
// legal move.
func (g *Session) PlayBot(ctx context.Context) (bot.Suggestion, error) {
	if g.searcher == nil {
		return bot.Suggestion{}, fmt.Errorf("no searcher configured: %w", errors.ErrInvalidConfig)
	}
	if g.pending != nil {
		return bot.Suggestion{}, errors.ErrPromotionPending
	}

	status, err := g.Status()
	if err != nil {
		return bot.Suggestion{}, err
	}
	if status.IsOver() {
		return bot.Suggestion{}, fmt.Errorf("%s: %w", status, errors.ErrGameOver)
	}

	s, err := g.searcher.Search(ctx, g.FEN(), g.depth)
	if err != nil {
		return bot.Suggestion{}, err
	}
	if _, err := g.ApplySuggestion(s); err != nil {
		return s, err
	}
	return s, nil
}
