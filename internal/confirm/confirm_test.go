package confirm

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		answer string
		want   Outcome
	}{
		{"y", Affirmed},
		{"Y", Affirmed},
		{"  y \n", Affirmed},
		{"n", Declined},
		{"N", Declined},
		{"", Declined},
		{"\n", Declined},
		{"yes", Invalid},
		{"xyz", Invalid},
		{"u", Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			if got := Classify(tt.answer); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestGate_Confirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Outcome
	}{
		{name: "affirmed", input: "y\n", want: Affirmed},
		{name: "affirmed uppercase", input: "Y\n", want: Affirmed},
		{name: "declined", input: "n\n", want: Declined},
		{name: "enter declines", input: "\n", want: Declined},
		{name: "closed input declines", input: "", want: Declined},
		{name: "answer without newline", input: "y", want: Affirmed},
		{name: "invalid", input: "xyz\n", want: Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			gate := NewGate(strings.NewReader(tt.input), &out, lipgloss.NewStyle())

			got, err := gate.Confirm("Are you sure you want to delete the 'ideas' list?")
			if err != nil {
				t.Fatalf("Confirm() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}

			wantPrompt := "[?] Are you sure you want to delete the 'ideas' list?\n" +
				"[?] This action cannot be undone. Proceed? (y/N)\n> "
			if out.String() != wantPrompt {
				t.Errorf("prompt = %q, want %q", out.String(), wantPrompt)
			}
		})
	}
}

func TestGate_ReadsOneLinePerQuestion(t *testing.T) {
	gate := NewGate(strings.NewReader("n\ny\n"), &bytes.Buffer{}, lipgloss.NewStyle())

	first, _ := gate.Confirm("first?")
	second, _ := gate.Confirm("second?")
	if first != Declined || second != Affirmed {
		t.Errorf("got %v then %v, want declined then affirmed", first, second)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestGate_ReadError(t *testing.T) {
	gate := NewGate(failingReader{}, &bytes.Buffer{}, lipgloss.NewStyle())
	outcome, err := gate.Confirm("delete?")
	if err == nil {
		t.Fatal("expected read error")
	}
	if outcome != Declined {
		t.Errorf("outcome on error = %v, want declined", outcome)
	}
}

func TestFixed(t *testing.T) {
	for _, outcome := range []Outcome{Affirmed, Declined, Invalid} {
		got, err := Fixed(outcome).Confirm("ignored")
		if err != nil || got != outcome {
			t.Errorf("Fixed(%v).Confirm() = %v, %v", outcome, got, err)
		}
	}
}

func TestOutcome_String(t *testing.T) {
	if Affirmed.String() != "affirmed" || Declined.String() != "declined" || Invalid.String() != "invalid" {
		t.Error("unexpected outcome names")
	}
}
