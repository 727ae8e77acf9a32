package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  chess.Status
	}{
		{"initial", InitialFEN, nil, chess.Normal},
		{"fool's mate", InitialFEN, []string{"f2f3", "e7e5", "g2g4", "d8h4"}, chess.Checkmate},
		{"scholar's mate", InitialFEN, []string{"e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7"}, chess.Checkmate},
		{"check", "4k3/8/8/8/8/8/8/r3K3 w - - 0 1", nil, chess.Check},
		{"back rank mate", "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", []string{"a1a8"}, chess.Checkmate},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", nil, chess.Stalemate},
		{"smothered", "6rk/5Npp/8/8/8/8/8/6K1 b - - 0 1", nil, chess.Checkmate},
		{"check escaped by capture", "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1", nil, chess.Check},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := mustDecode(t, tt.fen)
			play(t, setup, tt.moves...)

			gs, err := Classify(setup.Board, setup.Active, setup.History)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if gs.Status != tt.want {
				t.Errorf("Classify() = %v; want %v", gs.Status, tt.want)
			}
			if gs.Active != setup.Active {
				t.Errorf("Classify().Active = %v; want %v", gs.Active, setup.Active)
			}

			if got := IsCheckmate(setup.Board, setup.Active, setup.History); got != (tt.want == chess.Checkmate) {
				t.Errorf("IsCheckmate() = %v", got)
			}
			if got := IsStalemate(setup.Board, setup.Active, setup.History); got != (tt.want == chess.Stalemate) {
				t.Errorf("IsStalemate() = %v", got)
			}
		})
	}
}

func TestReportStatusExclusive(t *testing.T) {
	tests := []struct {
		report Report
		want   chess.Status
	}{
		{Report{InCheck: false, HasAnyLegalMove: true}, chess.Normal},
		{Report{InCheck: true, HasAnyLegalMove: true}, chess.Check},
		{Report{InCheck: true, HasAnyLegalMove: false}, chess.Checkmate},
		{Report{InCheck: false, HasAnyLegalMove: false}, chess.Stalemate},
	}

	seen := make(map[chess.Status]bool)
	for _, tt := range tests {
		got := tt.report.Status()
		if got != tt.want {
			t.Errorf("%+v.Status() = %v; want %v", tt.report, got, tt.want)
		}
		seen[got] = true
	}
	if len(seen) != 4 {
		t.Errorf("statuses covered = %d; want 4", len(seen))
	}
}

func TestEvaluateNoKing(t *testing.T) {
	board := chess.NewBoard()
	board.Set(sq("e1"), chess.W(chess.King))

	if _, err := Evaluate(board, chess.Black, chess.NewHistory()); err == nil {
		t.Error("Evaluate() without a black king succeeded; want error")
	}
	if IsCheckmate(board, chess.Black, chess.NewHistory()) {
		t.Error("IsCheckmate() = true on a broken board")
	}
}
