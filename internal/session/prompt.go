package session

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Prompter wraps an input scanner and output writer for interactive prompts.
// Inject a custom reader/writer for tests.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter creates a Prompter using stdin/stdout.
func NewPrompter() *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(os.Stdin),
		out:     os.Stdout,
	}
}

// NewPrompterFromReader creates a Prompter with custom reader/writer (for tests).
func NewPrompterFromReader(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(r),
		out:     w,
	}
}

// String prompts for a string value. The bool is false when the input
// stream has ended.
func (p *Prompter) String(prompt string) (string, bool) {
	fmt.Fprintf(p.out, "%s: ", prompt)
	if !p.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.scanner.Text()), true
}

// Float prompts for a float64 value, re-prompting on malformed input.
// The bool is false when the input stream has ended.
func (p *Prompter) Float(prompt string) (float64, bool) {
	for {
		input, ok := p.String(prompt)
		if !ok {
			return 0, false
		}
		v, err := strconv.ParseFloat(input, 64)
		if err != nil {
			fmt.Fprintln(p.out, "  Invalid number, try again.")
			continue
		}
		return v, true
	}
}

// Int prompts for an integer value, re-prompting on malformed input.
// The bool is false when the input stream has ended.
func (p *Prompter) Int(prompt string) (int, bool) {
	for {
		input, ok := p.String(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(p.out, "  Invalid integer, try again.")
			continue
		}
		return n, true
	}
}
