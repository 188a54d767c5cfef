package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/game"
)

// JSONReport is the JSON form of a Report.
type JSONReport struct {
	FEN           string     `json:"fen"`
	StartFEN      string     `json:"startFen"`
	ToMove        string     `json:"toMove"`
	InCheck       bool       `json:"inCheck"`
	Outcome       string     `json:"outcome"`
	Winner        string     `json:"winner,omitempty"`
	Result        string     `json:"result"`
	DrawRule      string     `json:"drawRule,omitempty"`
	ClaimableDraw string     `json:"claimableDraw,omitempty"`
	LegalMoves    []string   `json:"legalMoves"`
	Moves         []JSONMove `json:"moves,omitempty"`
}

// JSONMove represents a played move in JSON format.
type JSONMove struct {
	MoveNumber uint   `json:"moveNumber"`
	Colour     string `json:"colour"`
	UCI        string `json:"uci"`
	Piece      string `json:"piece"`
	Capture    bool   `json:"capture,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
}

// JSONPerft is the JSON form of a perft divide.
type JSONPerft struct {
	FEN   string         `json:"fen"`
	Depth int            `json:"depth"`
	Nodes uint64         `json:"nodes"`
	Moves []JSONPerftRow `json:"moves"`
}

// JSONPerftRow is the leaf count below one root move.
type JSONPerftRow struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

func pieceName(t chess.PieceType) string {
	return strings.ToLower(t.String())
}

// ToJSONReport converts a Report for encoding.
func ToJSONReport(r *Report) *JSONReport {
	jr := &JSONReport{
		FEN:        r.FEN,
		StartFEN:   r.StartFEN,
		ToMove:     colourName(r.ToMove),
		InCheck:    r.InCheck,
		Outcome:    r.Outcome.Kind.String(),
		Result:     r.Outcome.Result(),
		LegalMoves: r.LegalMoves,
	}
	if jr.LegalMoves == nil {
		jr.LegalMoves = []string{}
	}
	if r.Outcome.IsDecisive() {
		jr.Winner = colourName(r.Outcome.Winner)
	}
	if r.DrawRule != game.NoDrawRule {
		jr.DrawRule = r.DrawRule.String()
	}
	if r.Claimable != game.NoDrawRule {
		jr.ClaimableDraw = r.Claimable.String()
	}

	for _, nm := range numberMoves(r.StartFEN, r.History) {
		rec := nm.Record
		jm := JSONMove{
			MoveNumber: nm.Number,
			Colour:     colourName(rec.Colour),
			UCI:        rec.Move().String(),
			Piece:      pieceName(rec.Piece.Type),
			Capture:    rec.Capture,
		}
		if rec.Promotion != chess.NoPiece {
			jm.Promotion = pieceName(rec.Promotion)
		}
		jr.Moves = append(jr.Moves, jm)
	}
	return jr
}

// ToJSONPerft converts a PerftResult for encoding.
func ToJSONPerft(p *PerftResult) *JSONPerft {
	jp := &JSONPerft{
		FEN:   p.FEN,
		Depth: p.Depth,
		Nodes: p.Total,
		Moves: make([]JSONPerftRow, 0, len(p.Entries)),
	}
	for _, e := range p.Entries {
		jp.Moves = append(jp.Moves, JSONPerftRow{Move: e.Move.String(), Nodes: e.Nodes})
	}
	return jp
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// WriteReportJSON writes a report as indented JSON.
func WriteReportJSON(w io.Writer, r *Report) error {
	return writeJSON(w, ToJSONReport(r))
}

// WritePerftJSON writes a perft divide as indented JSON.
func WritePerftJSON(w io.Writer, p *PerftResult) error {
	return writeJSON(w, ToJSONPerft(p))
}
