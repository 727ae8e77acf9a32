// Package output formats analysis results and played games as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/session"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// LineWriter handles formatted output with line length control.
type LineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewLineWriter creates a new line writer.
func NewLineWriter(w io.Writer, maxLineLength int) *LineWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &LineWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, separated from the previous one by a space or a
// line break.
func (o *LineWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *LineWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// GameResult returns the PGN result token for a position.
func GameResult(status chess.GameStatus, draws engine.DrawReport) string {
	if winner, ok := status.Winner(); ok {
		if winner == chess.White {
			return "1-0"
		}
		return "0-1"
	}
	if status.Status == chess.Stalemate || draws.Automatic() {
		return "1/2-1/2"
	}
	return "*"
}

// DrawReasons names the draw conditions present in a report.
func DrawReasons(d engine.DrawReport) []string {
	var reasons []string
	switch {
	case d.SeventyFiveMove:
		reasons = append(reasons, "seventy-five-move")
	case d.FiftyMove:
		reasons = append(reasons, "fifty-move")
	}
	switch {
	case d.Fivefold:
		reasons = append(reasons, "fivefold repetition")
	case d.Threefold:
		reasons = append(reasons, "threefold repetition")
	}
	if d.InsufficientMaterial {
		reasons = append(reasons, "insufficient material")
	}
	return reasons
}

// FormatResult renders an analysed position as one line of text.
func FormatResult(r worker.ProcessResult, cfg *config.Config) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d. %s: ", r.Index+1, r.FEN)

	switch {
	case r.Error != nil:
		fmt.Fprintf(&sb, "error: %v", r.Error)
		return sb.String()
	case r.Duplicate:
		sb.WriteString("duplicate")
		return sb.String()
	}

	sb.WriteString(r.Status.String())
	fmt.Fprintf(&sb, "; %d legal move", len(r.LegalMoves))
	if len(r.LegalMoves) != 1 {
		sb.WriteByte('s')
	}
	if reasons := DrawReasons(r.Draws); len(reasons) > 0 {
		sb.WriteString("; draw: ")
		sb.WriteString(strings.Join(reasons, ", "))
	}
	if cfg.Analysis.ListMoves && len(r.LegalMoves) > 0 {
		moves := make([]string, len(r.LegalMoves))
		for i, m := range r.LegalMoves {
			moves[i] = m.String()
		}
		sb.WriteString("; ")
		sb.WriteString(strings.Join(moves, " "))
	}
	return sb.String()
}

// OutputGame writes a game as PGN-style tags followed by its move list in
// coordinate notation.
func OutputGame(g *session.Session, cfg *config.Config, w io.Writer) error {
	status, err := g.Status()
	if err != nil {
		return err
	}
	result := GameResult(status, g.Draws())

	outputTags(g, status, result, w)
	fmt.Fprintln(w)

	if err := outputMoves(g, cfg, result, w); err != nil {
		return err
	}

	if cfg.Output.ShowBoard {
		board := g.Board()
		fmt.Fprintln(w)
		fmt.Fprint(w, board.String())
	}
	fmt.Fprintln(w)
	return nil
}

// outputTags writes the tags describing how the game started and ended.
func outputTags(g *session.Session, status chess.GameStatus, result string, w io.Writer) {
	if start := g.StartFEN(); start != engine.InitialFEN {
		fmt.Fprintf(w, "[SetUp \"1\"]\n")
		fmt.Fprintf(w, "[FEN \"%s\"]\n", start)
	}
	fmt.Fprintf(w, "[PlyCount \"%d\"]\n", g.History().Len())
	fmt.Fprintf(w, "[Termination \"%s\"]\n", status)
	fmt.Fprintf(w, "[Result \"%s\"]\n", result)
}

// outputMoves writes the move list. With ShowFEN set, each move is followed
// by a comment holding the position it reached.
func outputMoves(g *session.Session, cfg *config.Config, result string, w io.Writer) error {
	ow := NewLineWriter(w, int(cfg.Output.MaxLineLength))

	var replay *session.Session
	if cfg.Output.ShowFEN {
		var err error
		if replay, err = session.FromFEN(g.StartFEN()); err != nil {
			return err
		}
	}

	ply := g.History().Origin.Ply
	for i, move := range g.Line() {
		if cfg.Output.KeepMoveNumbers {
			switch {
			case ply%2 == 0:
				ow.Write(fmt.Sprintf("%d.", ply/2+1))
			case i == 0:
				ow.Write(fmt.Sprintf("%d...", ply/2+1))
			}
		}
		ow.Write(move.String())

		if replay != nil {
			if _, err := replay.ApplySuggestion(move); err != nil {
				return err
			}
			ow.Write("{" + replay.FEN() + "}")
		}
		ply++
	}

	ow.Write(result)
	ow.NewLine()
	return nil
}
