package chess

import (
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Board is the 8x8 grid of pieces. It is a value type: assigning or
// cloning a Board copies every square.
type Board struct {
	// Cells is indexed [row][column]; row 0 is black's back rank.
	Cells [BoardSize][BoardSize]Piece
}

// backRank lists the pieces on each back rank from the a-file to the h-file.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Cells = [BoardSize][BoardSize]Piece{}
	for file := 0; file < BoardSize; file++ {
		b.Cells[Black.HomeRow()][file] = B(backRank[file])
		b.Cells[Black.PawnRow()][file] = B(Pawn)
		b.Cells[White.PawnRow()][file] = W(Pawn)
		b.Cells[White.HomeRow()][file] = W(backRank[file])
	}
}

// Get returns the piece at the square. An off-board square is a
// programming error and panics with a *errors.SquareError.
func (b *Board) Get(s Square) Piece {
	if !s.Valid() {
		panic(&errors.SquareError{Err: errors.ErrOutOfBounds, Rank: s.Rank, File: s.File, Op: "get"})
	}
	return b.Cells[s.Rank][s.File]
}

// Set places a piece (or an empty Piece{}) on the square. Off-board
// squares panic like Get.
func (b *Board) Set(s Square, p Piece) {
	if !s.Valid() {
		panic(&errors.SquareError{Err: errors.ErrOutOfBounds, Rank: s.Rank, File: s.File, Op: "set"})
	}
	b.Cells[s.Rank][s.File] = p
}

// Clear empties the square.
func (b *Board) Clear(s Square) {
	b.Set(s, Piece{})
}

// IsEmpty returns true if the square holds no piece.
func (b *Board) IsEmpty(s Square) bool {
	return b.Get(s).IsEmpty()
}

// Clone creates a deep copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Find returns the first square, scanning row by row, that holds the
// given colour and kind.
func (b *Board) Find(colour Colour, kind Kind) (Square, bool) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if b.Cells[rank][file].Is(colour, kind) {
				return Square{Rank: rank, File: file}, true
			}
		}
	}
	return Square{}, false
}

// Occupied returns every square holding a piece of the colour, ordered
// row by row.
func (b *Board) Occupied(colour Colour) []Square {
	var out []Square
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			p := b.Cells[rank][file]
			if !p.IsEmpty() && p.Colour == colour {
				out = append(out, Square{Rank: rank, File: file})
			}
		}
	}
	return out
}

// String renders the board as an 8-line diagram from rank 8 down to rank 1.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 0; rank < BoardSize; rank++ {
		sb.WriteByte(byte(RankBase + BoardSize - 1 - rank))
		sb.WriteByte(' ')
		for file := 0; file < BoardSize; file++ {
			sb.WriteByte(b.Cells[rank][file].Letter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh\n")
	return sb.String()
}

// CastlingRights is a bit set of the four castling options.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// CastlingRight returns the right for a colour and side.
func CastlingRight(colour Colour, kingside bool) CastlingRights {
	switch {
	case colour == White && kingside:
		return WhiteKingside
	case colour == White:
		return WhiteQueenside
	case kingside:
		return BlackKingside
	default:
		return BlackQueenside
	}
}

// Has returns true if every right in r is present.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// String returns the FEN castling field ("KQkq", "-", ...).
func (c CastlingRights) String() string {
	var sb strings.Builder
	for _, r := range []struct {
		right  CastlingRights
		letter byte
	}{
		{WhiteKingside, 'K'},
		{WhiteQueenside, 'Q'},
		{BlackKingside, 'k'},
		{BlackQueenside, 'q'},
	} {
		if c.Has(r.right) {
			sb.WriteByte(r.letter)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// KingHome returns the standard starting square of the colour's king.
func KingHome(colour Colour) Square {
	return Square{Rank: colour.HomeRow(), File: 4}
}

// RookHome returns the standard starting square of the rook on the given side.
func RookHome(colour Colour, kingside bool) Square {
	if kingside {
		return Square{Rank: colour.HomeRow(), File: BoardSize - 1}
	}
	return Square{Rank: colour.HomeRow(), File: 0}
}
