package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// These tests verify the assertion helpers on passing input. Failing
// input is checked through a recording testing.TB.

type recorder struct {
	testing.TB
	failures []string
}

func (r *recorder) Helper() {}

func (r *recorder) Error(args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprint(args...))
}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func TestAssertions_Success(t *testing.T) {
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, "hello", "hello", "value should be %s", "hello")
	AssertNoError(t, nil)
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", errors.ErrNoKing), errors.ErrNoKing)
	AssertContains(t, "hello world", "world")
	AssertTrue(t, len("hello") == 5)
	AssertFalse(t, len("hello") == 0)

	var ss chess.SquareSet
	ss.Add(chess.MustParseSquare("e4"))
	ss.Add(chess.MustParseSquare("a1"))
	AssertSquares(t, ss, []string{"e4", "a1"})
	AssertSquares(t, chess.SquareSet(0), nil)

	moves := []chess.Move{
		{From: chess.MustParseSquare("g1"), To: chess.MustParseSquare("f3")},
		{From: chess.MustParseSquare("e2"), To: chess.MustParseSquare("e4")},
	}
	AssertMoves(t, moves, []string{"e2e4", "g1f3"})
	AssertMoves(t, nil, []string{})

	AssertBoardEqual(t, chess.NewInitialBoard(), chess.NewInitialBoard())
}

func TestAssertions_Failure(t *testing.T) {
	moved := chess.NewInitialBoard()
	moved.Cells[6][4].HasMoved = true

	tests := []struct {
		name   string
		assert func(tb testing.TB)
		want   string
	}{
		{"equal", func(tb testing.TB) { AssertEqual(tb, 1, 2) }, "mismatch"},
		{"no error", func(tb testing.TB) { AssertNoError(tb, errors.ErrNoHistory, "undo") }, "undo: unexpected error"},
		{"error is", func(tb testing.TB) { AssertErrorIs(tb, nil, errors.ErrNoKing) }, "want no king on board"},
		{"contains", func(tb testing.TB) { AssertContains(tb, "abc", "x") }, "does not contain"},
		{"true", func(tb testing.TB) { AssertTrue(tb, false) }, "expected true"},
		{"false", func(tb testing.TB) { AssertFalse(tb, true) }, "expected false"},
		{"squares", func(tb testing.TB) { AssertSquares(tb, chess.SquareSet(0), []string{"e4"}) }, "squares mismatch"},
		{"board", func(tb testing.TB) { AssertBoardEqual(tb, moved, chess.NewInitialBoard()) }, "board mismatch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{TB: t}
			tt.assert(r)
			if len(r.failures) != 1 {
				t.Fatalf("failures = %v; want exactly one", r.failures)
			}
			AssertContains(t, r.failures[0], tt.want)
		})
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"hello %s", "world"}, "hello world"},
		{"format multiple", []interface{}{"%s %d %s", "test", 42, "end"}, "test 42 end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestPositionNamed(t *testing.T) {
	p := PositionNamed("FoolsMate")
	if p.FEN != FoolsMateFEN || p.Status != chess.Checkmate {
		t.Errorf("PositionNamed(FoolsMate) = %+v", p)
	}

	defer func() {
		if recover() == nil {
			t.Error("PositionNamed(unknown) did not panic")
		}
	}()
	PositionNamed("unknown")
}
