package engine

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

// Position 5 of the common perft suite promotes with a capture; it is not a
// fixture because its move count depends on how promotions are counted.
const position5 = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"

func oraclePositions() map[string]string {
	positions := map[string]string{"Position5": position5}
	for _, p := range testutil.Positions {
		positions[p.Name] = p.FEN
	}
	return positions
}

// referenceMoves lists the coordinate moves notnil/chess allows in fen.
// Promotions collapse to one entry per from-to pair.
func referenceMoves(t *testing.T, fen string) []string {
	t.Helper()
	opt, err := notnil.FEN(fen)
	if err != nil {
		t.Fatalf("notnil.FEN(%q) failed: %v", fen, err)
	}
	game := notnil.NewGame(opt)

	seen := make(map[string]bool)
	var moves []string
	for _, m := range game.ValidMoves() {
		s := m.S1().String() + m.S2().String()
		if !seen[s] {
			seen[s] = true
			moves = append(moves, s)
		}
	}
	sort.Strings(moves)
	return moves
}

func ourMoves(t *testing.T, setup *Setup) []chess.Move {
	t.Helper()
	moves, err := AllLegalMoves(setup.Board, setup.Active, setup.History)
	if err != nil {
		t.Fatalf("AllLegalMoves() failed: %v", err)
	}
	return moves
}

func moveStrings(moves []chess.Move) []string {
	var out []string
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

func TestLegalMovesMatchReference(t *testing.T) {
	for name, fen := range oraclePositions() {
		t.Run(name, func(t *testing.T) {
			setup := mustDecode(t, fen)
			if diff := cmp.Diff(referenceMoves(t, fen), moveStrings(ourMoves(t, setup))); diff != "" {
				t.Errorf("moves mismatch (-reference +ours):\n%s", diff)
			}
		})
	}
}

// TestLegalMovesMatchReferenceDepth2 plays every legal move, encodes the
// resulting position and compares the replies. This exercises Apply and
// Encode along with the generator.
func TestLegalMovesMatchReferenceDepth2(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping depth-2 comparison in short mode")
	}

	for name, fen := range oraclePositions() {
		t.Run(name, func(t *testing.T) {
			setup := mustDecode(t, fen)
			for _, m := range ourMoves(t, setup) {
				_, outcome, err := Apply(setup.Board, m.From, m.To, setup.History)
				if err != nil {
					t.Fatalf("Apply(%s) failed: %v", m, err)
				}
				if outcome == PromotionPending {
					if err := Promote(setup.Board, m.To, chess.Queen); err != nil {
						t.Fatalf("Promote(%s) failed: %v", m.To, err)
					}
				}
				setup.Active = setup.Active.Opposite()

				next := Encode(setup.Board, setup.Active, setup.History)
				if diff := cmp.Diff(referenceMoves(t, next), moveStrings(ourMoves(t, setup))); diff != "" {
					t.Errorf("after %s (%s) moves mismatch (-reference +ours):\n%s", m, next, diff)
				}

				if _, err := UndoLast(setup.Board, setup.History); err != nil {
					t.Fatal(err)
				}
				setup.Active = setup.Active.Opposite()
			}
		})
	}
}

func TestFixtureCounts(t *testing.T) {
	for _, p := range testutil.Positions {
		t.Run(p.Name, func(t *testing.T) {
			setup := mustDecode(t, p.FEN)
			status, err := Classify(setup.Board, setup.Active, setup.History)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, status.Status, p.Status, "status")
			testutil.AssertEqual(t, len(ourMoves(t, setup)), p.Moves, "move count")
		})
	}
}
