// Package confirm implements the yes/no gate that guards destructive
// list operations.
//
// The answer is classified three ways. "y" affirms, "n" or an empty line
// declines, and anything else is an invalid answer. Callers treat Invalid
// like Declined but report it differently.
package confirm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gorewood/blogtools/internal/output"
)

// Outcome is the result of asking for confirmation.
type Outcome int

const (
	// Declined means the user answered "n" or pressed enter.
	Declined Outcome = iota
	// Affirmed means the user answered "y".
	Affirmed
	// Invalid means the answer was neither; nothing is changed.
	Invalid
)

// String returns the outcome name used in JSON output.
func (o Outcome) String() string {
	switch o {
	case Affirmed:
		return "affirmed"
	case Invalid:
		return "invalid"
	default:
		return "declined"
	}
}

// Confirmer asks a question and reports the outcome.
type Confirmer interface {
	Confirm(question string) (Outcome, error)
}

// Classify maps an answer to an Outcome, ignoring case and surrounding space.
func Classify(answer string) Outcome {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y":
		return Affirmed
	case "n", "":
		return Declined
	default:
		return Invalid
	}
}

// Gate is the interactive Confirmer. It blocks until a line is read.
type Gate struct {
	in    *bufio.Reader
	out   io.Writer
	style lipgloss.Style
}

// NewGate creates a Gate reading answers from in and writing prompts to out.
// Prompt lines are rendered with style.
func NewGate(in io.Reader, out io.Writer, style lipgloss.Style) *Gate {
	return &Gate{in: bufio.NewReader(in), out: out, style: style}
}

// Confirm prints the question and the irreversibility warning, then reads
// one line. End of input counts as the end of the line, so a closed stdin
// declines.
func (g *Gate) Confirm(question string) (Outcome, error) {
	// lines are rendered one by one so styling does not pad them to a block
	prompt := g.style.Render(output.GlyphQuestion+" "+question) + "\n" +
		g.style.Render(output.GlyphQuestion+" This action cannot be undone. Proceed? (y/N)") + "\n" +
		g.style.Render(">") + " "
	if _, err := fmt.Fprint(g.out, prompt); err != nil {
		return Declined, fmt.Errorf("writing prompt: %w", err)
	}

	answer, err := g.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return Declined, fmt.Errorf("reading answer: %w", err)
	}
	return Classify(answer), nil
}

// Fixed is a Confirmer that always returns the same outcome without asking.
// It backs --yes and callers that carry the decision in their request.
type Fixed Outcome

// Confirm returns the fixed outcome.
func (f Fixed) Confirm(string) (Outcome, error) {
	return Outcome(f), nil
}
