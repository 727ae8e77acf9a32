package chess

// MoveRecord is a reversible log entry for one applied relocation.
// Castling rook moves and en-passant pawn removals are kept as nested
// records in SideEffects so undoing is structurally recursive.
type MoveRecord struct {
	Source       Square
	SourceBefore Piece
	Target       Square
	TargetBefore Piece

	// Capture is true if the move took a piece, including en passant.
	Capture bool

	SideEffects []MoveRecord
}

// Mover returns the colour that made the move.
func (m *MoveRecord) Mover() Colour {
	return m.SourceBefore.Colour
}

// IsPawnMove returns true if the moved piece was a pawn.
func (m *MoveRecord) IsPawnMove() bool {
	return m.SourceBefore.Kind == Pawn
}

// IsDoublePawnPush returns true if a pawn advanced two rows.
func (m *MoveRecord) IsDoublePawnPush() bool {
	return m.IsPawnMove() && abs(m.Target.Rank-m.Source.Rank) == 2
}

// IsCastle returns true if a king moved two files.
func (m *MoveRecord) IsCastle() bool {
	return m.SourceBefore.Kind == King && abs(m.Target.File-m.Source.File) == 2
}

// Captured returns the piece removed from the board by this move, if any.
// For en passant that piece sits in the side-effect record.
func (m *MoveRecord) Captured() (Piece, bool) {
	if !m.Capture {
		return Piece{}, false
	}
	if !m.TargetBefore.IsEmpty() {
		return m.TargetBefore, true
	}
	for _, fx := range m.SideEffects {
		if fx.SourceBefore.Kind == Pawn && fx.SourceBefore.Colour != m.Mover() {
			return fx.SourceBefore, true
		}
	}
	return Piece{}, false
}

// Move returns the primary source-destination pair.
func (m *MoveRecord) Move() Move {
	return Move{From: m.Source, To: m.Target}
}

// EnPassant describes a pawn that may be captured en passant.
type EnPassant struct {
	// Target is the square passed over; a capturing pawn lands here.
	Target Square
	// Victim is the square of the pawn that would be removed.
	Victim Square
	// Colour is the colour of the victim pawn.
	Colour Colour
}

// Origin holds the state a history starts from when a game does not begin
// at the standard position.
type Origin struct {
	// Ply is the number of half-moves played before the first record.
	Ply int
	// HalfmoveClock is the clock value before the first record.
	HalfmoveClock int
	// EnPassant, if set, is the en-passant opportunity before the first record.
	EnPassant *EnPassant
}

// History is the ordered list of applied moves for one game.
type History struct {
	Origin  Origin
	Records []*MoveRecord
}

// NewHistory creates an empty history starting from the standard position.
func NewHistory() *History {
	return &History{}
}

// Len returns the number of recorded moves.
func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return len(h.Records)
}

// Plies returns the number of half-moves since the game started,
// including those played before the origin.
func (h *History) Plies() int {
	if h == nil {
		return 0
	}
	return h.Origin.Ply + len(h.Records)
}

// Last returns the most recent record, or nil if there is none.
func (h *History) Last() *MoveRecord {
	if h.Len() == 0 {
		return nil
	}
	return h.Records[len(h.Records)-1]
}

// Push appends a record.
func (h *History) Push(m *MoveRecord) {
	h.Records = append(h.Records, m)
}

// Pop removes and returns the most recent record, or nil if there is none.
func (h *History) Pop() *MoveRecord {
	last := h.Last()
	if last != nil {
		h.Records[len(h.Records)-1] = nil
		h.Records = h.Records[:len(h.Records)-1]
	}
	return last
}

// EnPassant returns the en-passant opportunity created by the most recent
// move: a pawn that just advanced two rows can be taken on the square it
// passed over.
func (h *History) EnPassant() (EnPassant, bool) {
	if h == nil {
		return EnPassant{}, false
	}
	last := h.Last()
	if last == nil {
		if h.Origin.EnPassant != nil {
			return *h.Origin.EnPassant, true
		}
		return EnPassant{}, false
	}
	if !last.IsDoublePawnPush() {
		return EnPassant{}, false
	}
	return EnPassant{
		Target: Square{Rank: (last.Source.Rank + last.Target.Rank) / 2, File: last.Target.File},
		Victim: last.Target,
		Colour: last.Mover(),
	}, true
}

// HalfmoveClock counts the consecutive moves, scanning backward, that were
// neither captures nor pawn moves.
func (h *History) HalfmoveClock() int {
	if h == nil {
		return 0
	}
	clock := 0
	for i := len(h.Records) - 1; i >= 0; i-- {
		rec := h.Records[i]
		if rec.Capture || rec.IsPawnMove() {
			return clock
		}
		clock++
	}
	return clock + h.Origin.HalfmoveClock
}

// FullmoveNumber returns the FEN fullmove counter.
func (h *History) FullmoveNumber() int {
	return h.Plies()/2 + 1
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
