package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Line glyphs. The status marks double as list view markers.
const (
	GlyphSuccess  = "[✓]"
	GlyphPartial  = "[~]"
	GlyphEmpty    = "[ ]"
	GlyphInfo     = "[i]"
	GlyphWarn     = "[!]"
	GlyphQuestion = "[?]"
	GlyphCreated  = "[+]"
)

// Printer handles formatted output to a writer.
// It supports both JSON and human-readable output modes.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	json   bool
	isTTY  bool
	styles *Styles
}

// Styles holds lipgloss styles for human-readable output.
type Styles struct {
	Error    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	Question lipgloss.Style
	Bold     lipgloss.Style
	Dim      lipgloss.Style
	Key      lipgloss.Style
}

// NewPrinter creates a new Printer.
// If jsonMode is true, line helpers are silent and WriteJSON carries the result.
// If isTTY is true, glyphs are coloured.
func NewPrinter(writer io.Writer, jsonMode bool, isTTY bool) *Printer {
	styles := &Styles{
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true), // Red
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),           // Green
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),            // Red, like errors
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),           // Blue
		Question: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),           // Yellow
		Bold:     lipgloss.NewStyle().Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Key:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")), // Cyan
	}

	if !isTTY {
		plain := lipgloss.NewStyle()
		styles = &Styles{
			Error: plain, Success: plain, Warning: plain, Info: plain,
			Question: plain, Bold: plain, Dim: plain, Key: plain,
		}
	}

	return &Printer{
		w:      writer,
		errW:   writer,
		json:   jsonMode,
		isTTY:  isTTY,
		styles: styles,
	}
}

// WithStderr sets a separate writer for errors and warnings.
// In JSON mode, errors still go to the main writer; warnings do not.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// IsJSON returns true if the printer is in JSON mode.
func (p *Printer) IsJSON() bool {
	return p.json
}

// IsTTY returns true if styling is enabled.
func (p *Printer) IsTTY() bool {
	return p.isTTY
}

// Styles exposes the active styles.
func (p *Printer) Styles() *Styles {
	return p.styles
}

// Success prints a "[✓]" line. Silent in JSON mode.
func (p *Printer) Success(format string, args ...any) {
	p.line(p.w, p.styles.Success, GlyphSuccess, format, args...)
}

// Created prints a "[+]" line. Silent in JSON mode.
func (p *Printer) Created(format string, args ...any) {
	p.line(p.w, p.styles.Success, GlyphCreated, format, args...)
}

// Info prints an "[i]" line. Silent in JSON mode.
func (p *Printer) Info(format string, args ...any) {
	p.line(p.w, p.styles.Info, GlyphInfo, format, args...)
}

// Notice prints an unprefixed line. Silent in JSON mode.
func (p *Printer) Notice(format string, args ...any) {
	if p.json {
		return
	}
	mustWrite(fmt.Fprintf(p.w, format+"\n", args...))
}

// Error outputs an error.
// For JSON mode, outputs {"error": "...", "code": N} to the main writer.
// For human mode, outputs "[!] message" to the error writer.
func (p *Printer) Error(err error) {
	exitErr := &ExitError{}
	if !errors.As(err, &exitErr) {
		exitErr = &ExitError{
			Code:    ExitUserError,
			Message: err.Error(),
		}
	}

	if p.json {
		mustWrite(p.w.Write(ErrorJSON(exitErr.Message, exitErr.Code)))
		mustWrite(fmt.Fprintln(p.w))
		return
	}

	mustWrite(fmt.Fprintf(p.errW, "%s\n", p.styles.Error.Render(GlyphWarn+" "+exitErr.Message)))
}

// Warn outputs a warning message to the error writer.
// For JSON mode, outputs {"warning": "..."} so the main writer keeps a
// single result document.
// For human mode, outputs "[!] message".
func (p *Printer) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.json {
		_ = encodeJSON(p.errW, map[string]any{"warning": msg})
		return
	}
	mustWrite(fmt.Fprintf(p.errW, "%s\n", p.styles.Warning.Render(GlyphWarn+" "+msg)))
}

// Heading prints a bold line. Silent in JSON mode.
func (p *Printer) Heading(text string) {
	if p.json {
		return
	}
	mustWrite(fmt.Fprintln(p.w, p.styles.Bold.Render(text)))
}

// Mark styles a status glyph for inline use.
func (p *Printer) Mark(glyph string) string {
	switch glyph {
	case GlyphSuccess:
		return p.styles.Success.Render(glyph)
	case GlyphPartial:
		return p.styles.Question.Render(glyph)
	default:
		return p.styles.Dim.Render(glyph)
	}
}

// Println writes a line to the output.
func (p *Printer) Println(args ...any) {
	mustWrite(fmt.Fprintln(p.w, args...))
}

// WriteJSON writes data as indented JSON to the main writer.
func (p *Printer) WriteJSON(data any) error {
	return p.writeJSON(data)
}

func (p *Printer) line(w io.Writer, style lipgloss.Style, glyph, format string, args ...any) {
	if p.json {
		return
	}
	msg := fmt.Sprintf(format, args...)
	mustWrite(fmt.Fprintln(w, style.Render(glyph+" "+msg)))
}

// writeJSON encodes data as JSON and writes it.
func (p *Printer) writeJSON(data any) error {
	return encodeJSON(p.w, data)
}

func encodeJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ErrorJSON returns JSON-formatted error bytes.
// Format: {"error": "message", "code": N}
func ErrorJSON(message string, code int) []byte {
	data := map[string]any{
		"error": message,
		"code":  code,
	}
	result, _ := json.Marshal(data)
	return result
}

// mustWrite panics if a write operation fails.
// Writes go to stdout/stderr or buffers, which should never fail.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}

// Table renders a simple table with column alignment.
// Headers are rendered in Bold style. Silent in JSON mode.
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 || p.json {
		return
	}

	widths := calcColumnWidths(headers, rows)
	p.printTableRow(headers, widths, p.styles.Bold)
	for _, row := range rows {
		p.printTableRow(row, widths, lipgloss.NewStyle())
	}
}

// calcColumnWidths computes the max width for each column.
func calcColumnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}
	return widths
}

func (p *Printer) printTableRow(row []string, widths []int, style lipgloss.Style) {
	cells := make([]string, 0, len(widths))
	for i, cell := range row {
		if i >= len(widths) {
			break
		}
		cells = append(cells, style.Render(padRight(cell, widths[i])))
	}
	mustWrite(fmt.Fprintln(p.w, strings.TrimRight(strings.Join(cells, "  "), " ")))
}

// KeyValue renders "Key: Value". Silent in JSON mode.
func (p *Printer) KeyValue(key string, value string) {
	if p.json {
		return
	}
	mustWrite(fmt.Fprintf(p.w, "%s %s\n", p.styles.Key.Render(key+":"), value))
}

// padRight pads a string with spaces to reach the target width.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
