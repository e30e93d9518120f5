package display

import (
	"fmt"
	"io"
	"os"

	"frizo/optionsim/internal/chain"

	"github.com/mattn/go-isatty"
)

// ANSI escape codes for cursor control.
const (
	clearScreen = "\033[2J"
	clearLine   = "\033[K"
	homeCursor  = "\033[1;1H"
	inputCursor = "\033[15;1H" // row where menu input resumes
)

// QuoteBoard renders the chain's first contract whenever the chain
// signals a premium update. It subscribes itself at construction.
type QuoteBoard struct {
	chain *chain.Chain
	out   io.Writer
	ansi  bool
}

// New creates a QuoteBoard writing to out and registers it on the
// chain. ANSI cursor control is used only when out is a terminal;
// otherwise each refresh is a plain block of lines so piped output
// and test buffers stay readable.
func New(ch *chain.Chain, out io.Writer) *QuoteBoard {
	qb := &QuoteBoard{
		chain: ch,
		out:   out,
		ansi:  isTerminal(out),
	}
	ch.Register(qb)
	return qb
}

// ForceANSI overrides terminal detection. Used when the operator
// knows the output supports escape codes (or knows it does not).
func (qb *QuoteBoard) ForceANSI(on bool) {
	qb.ansi = on
}

// Update implements chain.Observer. It redraws the single-quote view
// with the current first contract.
func (qb *QuoteBoard) Update() {
	if qb.ansi {
		fmt.Fprint(qb.out, homeCursor, clearScreen)
	}
	fmt.Fprintln(qb.out, "Latest Option Quote:")
	if quote, ok := qb.chain.FirstQuote(); ok {
		fmt.Fprintln(qb.out, quote.QuoteLine())
	}
	fmt.Fprintln(qb.out, "--------------------------------")
	if qb.ansi {
		fmt.Fprint(qb.out, inputCursor)
	}
}

// PromptHome moves the cursor to the input row and clears it, so the
// menu redraws in place between refreshes. No-op without ANSI.
func (qb *QuoteBoard) PromptHome() {
	if qb.ansi {
		fmt.Fprint(qb.out, inputCursor, clearLine)
	}
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
