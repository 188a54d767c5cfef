package output

import (
	"io"

	"github.com/lgbarn/chess-referee-go/internal/config"
)

// ReportWriter writes status reports and perft results in some format.
type ReportWriter interface {
	WriteReport(r *Report) error
	WritePerft(p *PerftResult) error
}

// TextWriter writes human readable output.
type TextWriter struct {
	w         io.Writer
	showBoard bool
}

// NewTextWriter creates a text writer. The board diagram is drawn
// only when showBoard is set.
func NewTextWriter(w io.Writer, showBoard bool) *TextWriter {
	return &TextWriter{w: w, showBoard: showBoard}
}

// WriteReport writes a status report.
func (tw *TextWriter) WriteReport(r *Report) error {
	WriteReportText(tw.w, r, tw.showBoard)
	return nil
}

// WritePerft writes a perft divide.
func (tw *TextWriter) WritePerft(p *PerftResult) error {
	WritePerftText(tw.w, p)
	return nil
}

// JSONWriter writes one JSON document per call.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteReport writes a status report.
func (jw *JSONWriter) WriteReport(r *Report) error {
	return WriteReportJSON(jw.w, r)
}

// WritePerft writes a perft divide.
func (jw *JSONWriter) WritePerft(p *PerftResult) error {
	return WritePerftJSON(jw.w, p)
}

// NewWriter picks the writer the configuration asks for.
func NewWriter(cfg *config.Config) ReportWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(cfg.OutputFile)
	}
	return NewTextWriter(cfg.OutputFile, cfg.Output.ShowBoard)
}
