package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

func mustDecode(t testing.TB, fen string) *Setup {
	t.Helper()
	setup, err := Decode(fen)
	if err != nil {
		t.Fatalf("Decode(%q) failed: %v", fen, err)
	}
	return setup
}

func sq(s string) chess.Square {
	return chess.MustParseSquare(s)
}

// play applies a sequence of coordinate moves such as "e2e4", promoting to
// a queen whenever a pawn reaches the last row.
func play(t testing.TB, setup *Setup, moves ...string) {
	t.Helper()
	for _, m := range moves {
		from, to := sq(m[:2]), sq(m[2:4])
		sel, err := LegalMoves(setup.Board, setup.Active, from, setup.History)
		if err != nil {
			t.Fatalf("LegalMoves(%s) failed: %v", from, err)
		}
		if !sel.Allows(to) {
			t.Fatalf("move %s is not legal in %s", m, Encode(setup.Board, setup.Active, setup.History))
		}
		_, outcome, err := Apply(setup.Board, from, to, setup.History)
		if err != nil {
			t.Fatalf("Apply(%s) failed: %v", m, err)
		}
		if outcome == PromotionPending {
			if err := Promote(setup.Board, to, chess.Queen); err != nil {
				t.Fatalf("Promote(%s) failed: %v", to, err)
			}
		}
		setup.Active = setup.Active.Opposite()
	}
}
