package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/session"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// JSONPosition represents an analysed position in JSON format.
type JSONPosition struct {
	Index      int       `json:"index"`
	FEN        string    `json:"fen"`
	Active     string    `json:"active,omitempty"`
	Status     string    `json:"status,omitempty"`
	Result     string    `json:"result,omitempty"`
	LegalMoves []string  `json:"legalMoves,omitempty"`
	MoveCount  int       `json:"moveCount"`
	Draws      *JSONDraw `json:"draws,omitempty"`
	Duplicate  bool      `json:"duplicate,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// JSONDraw represents the draw conditions of a position.
type JSONDraw struct {
	HalfmoveClock int      `json:"halfmoveClock"`
	Repetitions   int      `json:"repetitions"`
	Claimable     bool     `json:"claimable,omitempty"`
	Automatic     bool     `json:"automatic,omitempty"`
	Reasons       []string `json:"reasons,omitempty"`
}

// JSONGame represents a played game in JSON format.
type JSONGame struct {
	InitialFEN string     `json:"initialFEN"`
	FinalFEN   string     `json:"finalFEN"`
	Moves      []JSONMove `json:"moves"`
	PlyCount   int        `json:"plyCount"`
	Status     string     `json:"status"`
	Result     string     `json:"result"`
	Captured   []string   `json:"captured,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	FEN        string `json:"fen,omitempty"`
}

// JSONOutput holds multiple positions for array output.
type JSONOutput struct {
	Positions []*JSONPosition `json:"positions"`
}

// PositionToJSON converts an analysis result to JSON format.
func PositionToJSON(r worker.ProcessResult, cfg *config.Config) *JSONPosition {
	jp := &JSONPosition{Index: r.Index, FEN: r.FEN}
	switch {
	case r.Error != nil:
		jp.Error = r.Error.Error()
		return jp
	case r.Duplicate:
		jp.Duplicate = true
		return jp
	}

	jp.Active = colorName(r.Status.Active)
	jp.Status = r.Status.Status.String()
	jp.Result = GameResult(r.Status, r.Draws)
	jp.MoveCount = len(r.LegalMoves)
	if cfg.Analysis.ListMoves {
		jp.LegalMoves = make([]string, len(r.LegalMoves))
		for i, m := range r.LegalMoves {
			jp.LegalMoves[i] = m.String()
		}
	}
	jp.Draws = &JSONDraw{
		HalfmoveClock: r.Draws.HalfmoveClock,
		Repetitions:   r.Draws.Repetitions,
		Claimable:     r.Draws.Claimable(),
		Automatic:     r.Draws.Automatic(),
		Reasons:       DrawReasons(r.Draws),
	}
	return jp
}

// GameToJSON converts a game to JSON format by replaying its line from the
// starting position.
func GameToJSON(g *session.Session, cfg *config.Config) (*JSONGame, error) {
	status, err := g.Status()
	if err != nil {
		return nil, err
	}

	jg := &JSONGame{
		InitialFEN: g.StartFEN(),
		FinalFEN:   g.FEN(),
		PlyCount:   g.History().Len(),
		Status:     status.String(),
		Result:     GameResult(status, g.Draws()),
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range g.Captured(colour) {
			jg.Captured = append(jg.Captured, colorName(p.Colour)+" "+pieceTypeName(p.Kind))
		}
	}

	jg.Moves, err = convertLine(g, cfg)
	if err != nil {
		return nil, err
	}
	return jg, nil
}

// convertLine replays the game's line and describes every move.
func convertLine(g *session.Session, cfg *config.Config) ([]JSONMove, error) {
	replay, err := session.FromFEN(g.StartFEN())
	if err != nil {
		return nil, err
	}

	line := g.Line()
	moves := make([]JSONMove, 0, len(line))
	records := g.History().Records
	for i, s := range line {
		rec := records[i]
		jm := JSONMove{
			Color: colorName(rec.Mover()),
			UCI:   s.String(),
			From:  s.From,
			To:    s.To,
			Piece: pieceTypeName(rec.SourceBefore.Kind),
		}
		if rec.Mover() == chess.White {
			jm.MoveNumber = replay.History().FullmoveNumber()
		}
		if p, ok := rec.Captured(); ok {
			jm.Captured = pieceTypeName(p.Kind)
		}
		if s.Promotion != 0 {
			if kind, err := s.PromotionKind(); err == nil {
				jm.Promotion = pieceTypeName(kind)
			}
		}

		if _, err := replay.ApplySuggestion(s); err != nil {
			return nil, err
		}
		if cfg.Output.ShowFEN {
			jm.FEN = replay.FEN()
		}
		moves = append(moves, jm)
	}
	return moves, nil
}

// OutputGameJSON writes a single game in JSON format.
func OutputGameJSON(g *session.Session, cfg *config.Config, w io.Writer) error {
	jg, err := GameToJSON(g, cfg)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jg)
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// pieceTypeName returns the piece kind as a lowercase word.
func pieceTypeName(k chess.Kind) string {
	switch k {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	default:
		return ""
	}
}
