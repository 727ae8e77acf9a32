// Package hashing provides position keys, repetition counting and duplicate
// position detection.
package hashing

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// Position is everything that distinguishes two positions for repetition:
// placement, side to move, castling rights and the en-passant target.
type Position struct {
	Board     *chess.Board
	Active    chess.Colour
	Castling  chess.CastlingRights
	EnPassant *chess.Square
}

// Zobrist tables. Index order is colour, kind, square.
var (
	pieceKeys     [2][len(chess.Kinds) + 1][chess.BoardSize * chess.BoardSize]uint64
	whiteToMove   uint64
	castlingKeys  [16]uint64
	enPassantKeys [chess.BoardSize]uint64
)

// zobristSeed fixes the tables so keys are stable across runs.
const zobristSeed = 0x9E3779B97F4A7C15

func init() {
	state := uint64(zobristSeed)
	next := func() uint64 {
		// splitmix64
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = next()
			}
		}
	}
	whiteToMove = next()
	for i := range castlingKeys {
		castlingKeys[i] = next()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = next()
	}
}

// Key returns the Zobrist key of a position.
func Key(p Position) uint64 {
	var key uint64
	if p.Board != nil {
		for rank := 0; rank < chess.BoardSize; rank++ {
			for file := 0; file < chess.BoardSize; file++ {
				piece := p.Board.Cells[rank][file]
				if piece.IsEmpty() {
					continue
				}
				key ^= pieceKeys[piece.Colour][piece.Kind][rank*chess.BoardSize+file]
			}
		}
	}
	if p.Active == chess.White {
		key ^= whiteToMove
	}
	key ^= castlingKeys[p.Castling&chess.AllCastling]
	if p.EnPassant != nil {
		key ^= enPassantKeys[p.EnPassant.File]
	}
	return key
}

// WeakHash is a cheap placement-only checksum used to confirm Zobrist
// matches.
func WeakHash(board *chess.Board) uint32 {
	if board == nil {
		return 0
	}
	var h uint32
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Cells[rank][file]
			if piece.IsEmpty() {
				continue
			}
			h += uint32(piece.Letter()) * uint32(rank*chess.BoardSize+file+1)
		}
	}
	return h
}

// Signature identifies a stored position.
type Signature struct {
	// Key is the Zobrist key of the position
	Key uint64
	// Weak is the placement checksum
	Weak uint32
}

// SignatureOf builds the signature of a position.
func SignatureOf(p Position) Signature {
	return Signature{Key: Key(p), Weak: WeakHash(p.Board)}
}

// DuplicateDetector tracks seen positions.
type DuplicateDetector struct {
	// hashTable stores seen signatures by key
	hashTable map[uint64][]Signature
	// maxCapacity caps stored signatures; 0 means unlimited
	maxCapacity    int
	entries        int
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]Signature),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd checks if a position was seen before and records it.
// Returns true if the position is a duplicate. Once the detector is full,
// new positions are still checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(p Position) bool {
	if p.Board == nil {
		return false
	}
	return d.checkAndAddSignature(SignatureOf(p))
}

func (d *DuplicateDetector) checkAndAddSignature(sig Signature) bool {
	for _, existing := range d.hashTable[sig.Key] {
		if existing == sig {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Key] = append(d.hashTable[sig.Key], sig)
	d.entries++
	return false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.entries
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.entries >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.entries = 0
	d.duplicateCount = 0
}

// RepetitionCounter counts how often each position key occurs in a game.
type RepetitionCounter struct {
	counts map[uint64]int
	max    int
}

// NewRepetitionCounter creates an empty counter.
func NewRepetitionCounter() *RepetitionCounter {
	return &RepetitionCounter{counts: make(map[uint64]int)}
}

// Add records one occurrence of key and returns its new count.
func (r *RepetitionCounter) Add(key uint64) int {
	r.counts[key]++
	n := r.counts[key]
	if n > r.max {
		r.max = n
	}
	return n
}

// Count returns the occurrences of key so far.
func (r *RepetitionCounter) Count(key uint64) int {
	return r.counts[key]
}

// Max returns the highest count of any key.
func (r *RepetitionCounter) Max() int {
	return r.max
}
