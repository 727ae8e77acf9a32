package bot

import (
	"context"
	"testing"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

func TestRandomDeterministic(t *testing.T) {
	a, b := NewRandom(42), NewRandom(42)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		sa, err := a.Search(ctx, engine.InitialFEN, 1)
		if err != nil {
			t.Fatal(err)
		}
		sb, err := b.Search(ctx, engine.InitialFEN, 1)
		if err != nil {
			t.Fatal(err)
		}
		if sa != sb {
			t.Fatalf("call %d: %v != %v with equal seeds", i, sa, sb)
		}
	}
}

func TestRandomErrors(t *testing.T) {
	r := NewRandom(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Search(ctx, engine.InitialFEN, 1); err != context.Canceled {
		t.Errorf("Search() with cancelled context error = %v; want context.Canceled", err)
	}

	if _, err := r.Search(context.Background(), "not a fen", 1); !errors.Is(err, errors.ErrInvalidFEN) {
		t.Errorf("Search() with bad FEN error = %v; want ErrInvalidFEN", err)
	}

	mated := "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	if _, err := r.Search(context.Background(), mated, 1); !errors.Is(err, errors.ErrGameOver) {
		t.Errorf("Search() when mated error = %v; want ErrGameOver", err)
	}
}

func TestRandomPromotes(t *testing.T) {
	r := NewRandom(7)
	// The only legal moves are the pawn promotions and king moves; keep
	// searching until a promotion is drawn.
	fen := "7k/P7/8/8/8/8/8/K7 w - - 0 1"
	for i := 0; i < 200; i++ {
		s, err := r.Search(context.Background(), fen, 1)
		if err != nil {
			t.Fatal(err)
		}
		if s.From == "a7" {
			if s.Promotion == 0 {
				t.Fatalf("promotion suggestion %v has no piece", s)
			}
			return
		}
	}
	t.Error("no promotion drawn in 200 searches")
}

// TestRandomSuggestionsAreLegal plays random games and checks every
// suggestion against the engine's own generator.
func TestRandomSuggestionsAreLegal(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		r := NewRandom(seed)
		setup := engine.NewInitialSetup()

		for ply := 0; ply < 80; ply++ {
			gs, err := engine.Classify(setup.Board, setup.Active, setup.History)
			if err != nil {
				t.Fatal(err)
			}
			if gs.IsOver() {
				break
			}

			fen := engine.Encode(setup.Board, setup.Active, setup.History)
			s, err := r.Search(context.Background(), fen, 1)
			if err != nil {
				t.Fatalf("seed %d ply %d: Search(%q) error = %v", seed, ply, fen, err)
			}
			from, to, err := s.Squares()
			if err != nil {
				t.Fatal(err)
			}

			sel, err := engine.LegalMoves(setup.Board, setup.Active, from, setup.History)
			if err != nil {
				t.Fatal(err)
			}
			if !sel.Allows(to) {
				t.Fatalf("seed %d ply %d: suggestion %v not legal in %s", seed, ply, s, fen)
			}

			_, outcome, err := engine.Apply(setup.Board, from, to, setup.History)
			if err != nil {
				t.Fatal(err)
			}
			if outcome == engine.PromotionPending {
				kind, err := s.PromotionKind()
				if err != nil {
					t.Fatal(err)
				}
				if err := engine.Promote(setup.Board, to, kind); err != nil {
					t.Fatal(err)
				}
			}
			setup.Active = setup.Active.Opposite()
		}
	}
}

func TestPromotionLetter(t *testing.T) {
	tests := []struct {
		pt   notnil.PieceType
		want byte
	}{
		{notnil.Queen, 'q'},
		{notnil.Rook, 'r'},
		{notnil.Bishop, 'b'},
		{notnil.Knight, 'n'},
		{notnil.King, 0},
		{notnil.NoPieceType, 0},
	}

	for _, tt := range tests {
		if got := promotionLetter(tt.pt); got != tt.want {
			t.Errorf("promotionLetter(%v) = %q; want %q", tt.pt, got, tt.want)
		}
	}
}
