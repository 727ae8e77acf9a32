// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Letter returns the FEN side-to-move letter.
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Forward returns the row delta of a pawn step for the colour.
// Row 0 is black's back rank, so White advances toward lower rows.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRow returns the row holding the colour's back rank.
func (c Colour) HomeRow() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRow returns the row the colour's pawns start on.
func (c Colour) PawnRow() int {
	return c.HomeRow() + c.Forward()
}

// PromotionRow returns the farthest row for the colour's pawns.
func (c Colour) PromotionRow() int {
	return c.Opposite().HomeRow()
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Kinds lists every piece kind in a fixed order.
var Kinds = [...]Kind{Pawn, Knight, Bishop, Rook, Queen, King}

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
// Knights use N so they cannot be confused with kings.
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter of either case to a kind.
func KindFromLetter(c byte) (Kind, bool) {
	switch c {
	case 'K', 'k':
		return King, true
	case 'Q', 'q':
		return Queen, true
	case 'R', 'r':
		return Rook, true
	case 'B', 'b':
		return Bishop, true
	case 'N', 'n':
		return Knight, true
	case 'P', 'p':
		return Pawn, true
	default:
		return NoKind, false
	}
}

// CanPromoteTo reports whether a pawn may be replaced by the kind.
func (k Kind) CanPromoteTo() bool {
	switch k {
	case Queen, Rook, Bishop, Knight:
		return true
	default:
		return false
	}
}

// Direction is a (row, column) step.
type Direction struct {
	DRank int
	DFile int
}

var (
	orthogonal = []Direction{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	diagonal   = []Direction{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	allLines   = append(append([]Direction{}, orthogonal...), diagonal...)
	knightJump = []Direction{{2, 1}, {2, -1}, {1, 2}, {-1, 2}, {-2, -1}, {-2, 1}, {-1, -2}, {1, -2}}

	// Pawn tables are expressed relative to the pawn's forward direction.
	pawnPush   = []Direction{{1, 0}}
	pawnAttack = []Direction{{1, 1}, {1, -1}}
)

// Moves returns the kind's movement table. Pawn entries are relative to
// the pawn's forward direction; see Orient.
func (k Kind) Moves() []Direction {
	switch k {
	case King, Queen:
		return allLines
	case Rook:
		return orthogonal
	case Bishop:
		return diagonal
	case Knight:
		return knightJump
	case Pawn:
		return pawnPush
	default:
		return nil
	}
}

// Attacks returns the kind's capture table. Only pawns capture differently
// from how they move.
func (k Kind) Attacks() []Direction {
	if k == Pawn {
		return pawnAttack
	}
	return k.Moves()
}

// Slides reports whether the kind repeats its steps until blocked.
func (k Kind) Slides() bool {
	switch k {
	case Queen, Rook, Bishop:
		return true
	default:
		return false
	}
}

// MaxSteps returns how many times a direction may be repeated.
func (k Kind) MaxSteps() int {
	if k.Slides() {
		return BoardSize - 1
	}
	return 1
}

// Orient maps a pawn-relative direction onto board rows for the colour.
func Orient(d Direction, colour Colour) Direction {
	return Direction{DRank: d.DRank * colour.Forward(), DFile: d.DFile}
}

// Piece is a coloured piece together with its move history flag.
// The zero value is an empty square.
type Piece struct {
	Colour   Colour
	Kind     Kind
	HasMoved bool
}

// NewPiece creates an unmoved piece.
func NewPiece(colour Colour, kind Kind) Piece {
	return Piece{Colour: colour, Kind: kind}
}

// W creates an unmoved white piece.
func W(kind Kind) Piece {
	return NewPiece(White, kind)
}

// B creates an unmoved black piece.
func B(kind Kind) Piece {
	return NewPiece(Black, kind)
}

// IsEmpty returns true if the piece represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Is reports whether the piece has the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p.Kind == kind && p.Colour == colour
}

// IsEnemyOf reports whether the square holds a piece of the other colour.
func (p Piece) IsEnemyOf(colour Colour) bool {
	return !p.IsEmpty() && p.Colour != colour
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable description of the piece.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '1'
)

// Status is the classification of a position for the side to move.
type Status int

const (
	Normal Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Normal:
		return "Normal"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	}
	return "Unknown"
}

// GameStatus pairs a status with the colour it was computed for.
type GameStatus struct {
	Status Status
	Active Colour
}

// IsOver returns true if the active colour has no legal move.
func (g GameStatus) IsOver() bool {
	return g.Status == Checkmate || g.Status == Stalemate
}

// Winner returns the winning colour after checkmate.
func (g GameStatus) Winner() (Colour, bool) {
	if g.Status != Checkmate {
		return 0, false
	}
	return g.Active.Opposite(), true
}

// String renders the status the way a scoreboard would show it.
func (g GameStatus) String() string {
	switch g.Status {
	case Check:
		return g.Active.String() + "'s turn - check"
	case Checkmate:
		return g.Active.Opposite().String() + " won"
	case Stalemate:
		return "Draw by stalemate"
	}
	return g.Active.String() + "'s turn"
}
