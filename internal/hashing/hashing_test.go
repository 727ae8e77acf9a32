package hashing

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

func initialPosition() Position {
	return Position{
		Board:    chess.NewInitialBoard(),
		Active:   chess.White,
		Castling: chess.AllCastling,
	}
}

// afterE4 returns the position after 1. e4 with the en-passant target set.
func afterE4() Position {
	p := initialPosition()
	p.Board.Clear(chess.MustParseSquare("e2"))
	p.Board.Set(chess.MustParseSquare("e4"), chess.Piece{Colour: chess.White, Kind: chess.Pawn, HasMoved: true})
	p.Active = chess.Black
	ep := chess.MustParseSquare("e3")
	p.EnPassant = &ep
	return p
}

func TestKeyDeterministic(t *testing.T) {
	a := Key(initialPosition())
	b := Key(initialPosition())
	if a != b {
		t.Errorf("Key() = %x and %x for the same position", a, b)
	}
	if a == 0 {
		t.Error("Key() of the initial position is zero")
	}
}

func TestKeyDistinguishes(t *testing.T) {
	base := initialPosition()
	baseKey := Key(base)

	tests := []struct {
		name   string
		modify func(p *Position)
	}{
		{"side to move", func(p *Position) { p.Active = chess.Black }},
		{"castling rights", func(p *Position) { p.Castling = chess.WhiteKingside }},
		{"en passant", func(p *Position) {
			sq := chess.MustParseSquare("e3")
			p.EnPassant = &sq
		}},
		{"placement", func(p *Position) {
			p.Board = p.Board.Clone()
			p.Board.Clear(chess.MustParseSquare("g1"))
			p.Board.Set(chess.MustParseSquare("f3"), chess.W(chess.Knight))
		}},
		{"piece colour", func(p *Position) {
			p.Board = p.Board.Clone()
			p.Board.Set(chess.MustParseSquare("a2"), chess.B(chess.Pawn))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := initialPosition()
			tt.modify(&p)
			if Key(p) == baseKey {
				t.Errorf("Key() unchanged after modifying %s", tt.name)
			}
		})
	}
}

func TestKeyIgnoresMovedFlag(t *testing.T) {
	a := initialPosition()
	b := initialPosition()
	knight := b.Board.Get(chess.MustParseSquare("b1"))
	knight.HasMoved = true
	b.Board.Set(chess.MustParseSquare("b1"), knight)

	if Key(a) != Key(b) {
		t.Error("Key() depends on HasMoved; only placement should count")
	}
}

func TestWeakHash(t *testing.T) {
	if got := WeakHash(nil); got != 0 {
		t.Errorf("WeakHash(nil) = %d; want 0", got)
	}
	if WeakHash(initialPosition().Board) == WeakHash(afterE4().Board) {
		t.Error("WeakHash() identical for different placements")
	}
}

func TestDuplicateDetectorSamePosition(t *testing.T) {
	detector := NewDuplicateDetector(0)

	if detector.CheckAndAdd(initialPosition()) {
		t.Error("First position was incorrectly marked as duplicate")
	}
	if !detector.CheckAndAdd(initialPosition()) {
		t.Error("Second identical position was not detected as duplicate")
	}

	if detector.DuplicateCount() != 1 {
		t.Errorf("DuplicateCount() = %d; want 1", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 1 {
		t.Errorf("UniqueCount() = %d; want 1", detector.UniqueCount())
	}
}

func TestDuplicateDetectorDifferentPositions(t *testing.T) {
	detector := NewDuplicateDetector(0)

	if detector.CheckAndAdd(initialPosition()) {
		t.Error("Initial position was incorrectly marked as duplicate")
	}
	if detector.CheckAndAdd(afterE4()) {
		t.Error("Position after e4 was incorrectly marked as duplicate")
	}

	if detector.DuplicateCount() != 0 {
		t.Errorf("DuplicateCount() = %d; want 0", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 2 {
		t.Errorf("UniqueCount() = %d; want 2", detector.UniqueCount())
	}
}

func TestDuplicateDetectorNilBoard(t *testing.T) {
	detector := NewDuplicateDetector(0)
	if detector.CheckAndAdd(Position{}) {
		t.Error("CheckAndAdd() with nil board = true; want false")
	}
	if detector.UniqueCount() != 0 {
		t.Errorf("UniqueCount() = %d; want 0", detector.UniqueCount())
	}
}

func TestDuplicateDetectorCapacity(t *testing.T) {
	detector := NewDuplicateDetector(1)

	detector.CheckAndAdd(initialPosition())
	if !detector.IsFull() {
		t.Fatal("IsFull() = false after reaching capacity")
	}

	// Not stored, so a second sighting is not a duplicate either.
	if detector.CheckAndAdd(afterE4()) {
		t.Error("new position marked as duplicate in a full detector")
	}
	if detector.CheckAndAdd(afterE4()) {
		t.Error("unstored position marked as duplicate")
	}
	if !detector.CheckAndAdd(initialPosition()) {
		t.Error("stored position not detected in a full detector")
	}
	if detector.UniqueCount() != 1 {
		t.Errorf("UniqueCount() = %d; want 1", detector.UniqueCount())
	}
}

func TestDuplicateDetectorReset(t *testing.T) {
	detector := NewDuplicateDetector(0)

	detector.CheckAndAdd(initialPosition())
	detector.CheckAndAdd(initialPosition())

	if detector.DuplicateCount() != 1 {
		t.Errorf("Expected 1 duplicate before reset, got %d", detector.DuplicateCount())
	}

	detector.Reset()

	if detector.DuplicateCount() != 0 {
		t.Errorf("Expected 0 duplicates after reset, got %d", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 0 {
		t.Errorf("Expected 0 unique positions after reset, got %d", detector.UniqueCount())
	}
}

func TestRepetitionCounter(t *testing.T) {
	counter := NewRepetitionCounter()
	a := Key(initialPosition())
	b := Key(afterE4())

	steps := []struct {
		key  uint64
		want int
	}{
		{a, 1},
		{b, 1},
		{a, 2},
		{b, 2},
		{a, 3},
	}
	for i, step := range steps {
		if got := counter.Add(step.key); got != step.want {
			t.Errorf("step %d: Add() = %d; want %d", i, got, step.want)
		}
	}

	if got := counter.Count(b); got != 2 {
		t.Errorf("Count(b) = %d; want 2", got)
	}
	if got := counter.Max(); got != 3 {
		t.Errorf("Max() = %d; want 3", got)
	}
	if got := counter.Count(12345); got != 0 {
		t.Errorf("Count(unknown) = %d; want 0", got)
	}
}
