package chess

import (
	"fmt"
	"math/bits"
	"sort"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Square is a (row, column) pair. Row 0 is black's back rank (rank 8) and
// column 0 is the a-file.
type Square struct {
	Rank int
	File int
}

// Sq creates a square from row and column indices.
func Sq(rank, file int) Square {
	return Square{Rank: rank, File: file}
}

// Valid returns true if the square lies on the board.
func (s Square) Valid() bool {
	return s.Rank >= 0 && s.Rank < BoardSize && s.File >= 0 && s.File < BoardSize
}

// Add returns the square reached by one step in direction d.
func (s Square) Add(d Direction) Square {
	return Square{Rank: s.Rank + d.DRank, File: s.File + d.DFile}
}

// String returns the square in coordinate notation (e.g. "e4").
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Rank, s.File)
	}
	return string([]byte{byte(FileBase + s.File), byte(RankBase + BoardSize - 1 - s.Rank)})
}

// ParseSquare converts coordinate notation such as "e4" into a square.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", text, errors.ErrInvalidNotation)
	}
	file := int(text[0]) - FileBase
	rank := BoardSize - 1 - (int(text[1]) - RankBase)
	sq := Square{Rank: rank, File: file}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("square %q: %w", text, errors.ErrInvalidNotation)
	}
	return sq, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for fixed positions in tests and tables.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// index returns the square's bit position within a SquareSet.
func (s Square) index() uint {
	return uint(s.Rank*BoardSize + s.File)
}

// SquareSet is an unordered set of squares.
type SquareSet uint64

// Add inserts a square into the set.
func (ss *SquareSet) Add(s Square) {
	*ss |= 1 << s.index()
}

// Has returns true if the square is in the set.
func (ss SquareSet) Has(s Square) bool {
	return s.Valid() && ss&(1<<s.index()) != 0
}

// Len returns the number of squares in the set.
func (ss SquareSet) Len() int {
	return bits.OnesCount64(uint64(ss))
}

// IsEmpty returns true if the set holds no squares.
func (ss SquareSet) IsEmpty() bool {
	return ss == 0
}

// Squares returns the members ordered by row then column.
func (ss SquareSet) Squares() []Square {
	out := make([]Square, 0, ss.Len())
	for v := uint64(ss); v != 0; v &= v - 1 {
		i := bits.TrailingZeros64(v)
		out = append(out, Square{Rank: i / BoardSize, File: i % BoardSize})
	}
	return out
}

// Strings returns the members in coordinate notation, sorted.
func (ss SquareSet) Strings() []string {
	squares := ss.Squares()
	out := make([]string, len(squares))
	for i, s := range squares {
		out[i] = s.String()
	}
	sort.Strings(out)
	return out
}

// Selection is the transient result of selecting a square: the piece's
// legal quiet moves and legal captures.
type Selection struct {
	Square  Square
	Moves   SquareSet
	Attacks SquareSet
}

// Allows returns true if target is a legal move or capture.
func (s Selection) Allows(target Square) bool {
	return s.Moves.Has(target) || s.Attacks.Has(target)
}

// IsEmpty returns true if the selected piece cannot move.
func (s Selection) IsEmpty() bool {
	return s.Moves.IsEmpty() && s.Attacks.IsEmpty()
}

// Move is a source-destination square pair.
type Move struct {
	From Square
	To   Square
}

// String returns the move in coordinate notation (e.g. "e2e4").
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
