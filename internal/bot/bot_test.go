package bot

import (
	"context"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

func TestParseSuggestion(t *testing.T) {
	tests := []struct {
		text    string
		want    Suggestion
		wantErr error
	}{
		{text: "e2e4", want: Suggestion{From: "e2", To: "e4"}},
		{text: " g1f3\n", want: Suggestion{From: "g1", To: "f3"}},
		{text: "a7a8q", want: Suggestion{From: "a7", To: "a8", Promotion: 'q'}},
		{text: "a7a8N", want: Suggestion{From: "a7", To: "a8", Promotion: 'n'}},
		{text: "e2", wantErr: errors.ErrInvalidNotation},
		{text: "e2e9", wantErr: errors.ErrInvalidNotation},
		{text: "z2e4", wantErr: errors.ErrInvalidNotation},
		{text: "a7a8k", wantErr: errors.ErrInvalidPromotion},
		{text: "a7a8x", wantErr: errors.ErrInvalidPromotion},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseSuggestion(tt.text)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseSuggestion(%q) error = %v; want %v", tt.text, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSuggestion(%q) error = %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseSuggestion(%q) = %+v; want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSuggestionTranslation(t *testing.T) {
	s := Suggestion{From: "e7", To: "e8", Promotion: 'r'}
	if s.String() != "e7e8r" {
		t.Errorf("String() = %q; want e7e8r", s.String())
	}

	from, to, err := s.Squares()
	if err != nil {
		t.Fatal(err)
	}
	if from != chess.Sq(1, 4) || to != chess.Sq(0, 4) {
		t.Errorf("Squares() = %+v, %+v", from, to)
	}

	kind, err := s.PromotionKind()
	if err != nil || kind != chess.Rook {
		t.Errorf("PromotionKind() = %v, %v; want Rook", kind, err)
	}

	kind, err = Suggestion{From: "e7", To: "e8"}.PromotionKind()
	if err != nil || kind != chess.Queen {
		t.Errorf("PromotionKind() without letter = %v, %v; want Queen", kind, err)
	}
}

func TestSearcherFunc(t *testing.T) {
	want := Suggestion{From: "d2", To: "d4"}
	var searcher Searcher = SearcherFunc(func(ctx context.Context, fen string, depth int) (Suggestion, error) {
		if depth != 3 {
			t.Errorf("depth = %d; want 3", depth)
		}
		return want, nil
	})

	got, err := searcher.Search(context.Background(), "fen", 3)
	if err != nil || got != want {
		t.Errorf("Search() = %+v, %v; want %+v", got, err, want)
	}
}

func TestWithPromotion(t *testing.T) {
	base := Suggestion{From: "b2", To: "b1"}
	for _, kind := range []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight} {
		s := base.WithPromotion(kind)
		got, err := s.PromotionKind()
		if err != nil || got != kind {
			t.Errorf("WithPromotion(%s).PromotionKind() = %s, %v; want %s", kind, got, err, kind)
		}
	}
	if base.Promotion != 0 {
		t.Error("WithPromotion modified its receiver")
	}
}
