package session

import (
	"bytes"
	"strings"
	"testing"

	"frizo/optionsim/internal/chain"
	"frizo/optionsim/internal/display"
	"frizo/optionsim/internal/logger"
	"frizo/optionsim/internal/option"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCall(t *testing.T, ch *chain.Chain) *option.Contract {
	t.Helper()
	c, err := option.New("Call", 100, 5, "2024-12-31")
	require.NoError(t, err)
	ch.Add(c)
	return c
}

// newTestSession builds a session over scripted input. Chain, session
// output and quote board all share one buffer, like a real terminal.
func newTestSession(t *testing.T, input string) (*Session, *chain.Chain, *bytes.Buffer) {
	t.Helper()
	ch := chain.New(1)
	var out bytes.Buffer
	board := display.New(ch, &out)
	prompt := NewPrompterFromReader(strings.NewReader(input), &out)
	sess := New(ch, board, prompt, &out, logger.New("error"))
	return sess, ch, &out
}

func TestRunExit(t *testing.T) {
	t.Run("MenuChoice", func(t *testing.T) {
		sess, _, out := newTestSession(t, "4\n")
		sess.Run()
		assert.Contains(t, out.String(), "Choose an action:")
	})

	t.Run("EndOfInput", func(t *testing.T) {
		sess, _, _ := newTestSession(t, "")
		sess.Run() // must return, not loop
	})

	t.Run("UnknownChoiceIgnored", func(t *testing.T) {
		sess, ch, _ := newTestSession(t, "9\n4\n")
		sess.Run()
		assert.Equal(t, 0, ch.Len())
	})
}

func TestRunQuoteRefresh(t *testing.T) {
	sess, ch, out := newTestSession(t, "1\n4\n")
	c := seedCall(t, ch)
	before := c.Premium

	sess.Run()

	assert.Contains(t, out.String(), "Latest Option Quote:")
	assert.Contains(t, out.String(), "Call Option - Strike Price: 100,")
	// One drift round happened.
	assert.True(t, c.Premium.GreaterThanOrEqual(before.Mul(decimal.NewFromFloat(0.95))))
	assert.True(t, c.Premium.LessThanOrEqual(before.Mul(decimal.NewFromFloat(1.04))))
}

func TestRunEnterTrade(t *testing.T) {
	t.Run("ValidTrade", func(t *testing.T) {
		input := "2\nPut\n100\n4\n2024-12-31\n2\n4\n"
		sess, ch, out := newTestSession(t, input)

		sess.Run()

		assert.Contains(t, out.String(), "Trade executed successfully.")
		require.Equal(t, 1, ch.Len())
		assert.Equal(t, 1, sess.Book().Len())

		quote, ok := ch.FirstQuote()
		require.True(t, ok)
		assert.Equal(t, "Put", quote.Type.String())
	})

	t.Run("InvalidTypeDiscarded", func(t *testing.T) {
		input := "2\nStraddle\n100\n5\n2024-12-31\n1\n4\n"
		sess, ch, out := newTestSession(t, input)

		sess.Run()

		assert.Contains(t, out.String(), "Invalid option type. Trade not executed.")
		assert.Equal(t, 0, ch.Len())
		assert.Equal(t, 0, sess.Book().Len())
	})

	t.Run("MalformedNumberReprompts", func(t *testing.T) {
		input := "2\nCall\nabc\n100\n5\n2024-12-31\n1\n4\n"
		sess, ch, out := newTestSession(t, input)

		sess.Run()

		assert.Contains(t, out.String(), "Invalid number, try again.")
		assert.Equal(t, 1, ch.Len())
	})

	t.Run("InputEndsMidTrade", func(t *testing.T) {
		sess, ch, _ := newTestSession(t, "2\nCall\n100\n")
		sess.Run()
		assert.Equal(t, 0, ch.Len())
	})
}

func TestRunValueBook(t *testing.T) {
	t.Run("EvaluatesTrades", func(t *testing.T) {
		// Put 100/4 x2, then value at market 90: ((100-90)-4)*2 = 12.
		input := "2\nPut\n100\n4\n2024-12-31\n2\n3\n90\n4\n"
		sess, _, out := newTestSession(t, input)

		sess.Run()

		assert.Contains(t, out.String(), "Quantity: 2, Payoff: 12")
		assert.Contains(t, out.String(), "Book total: 12")
	})

	t.Run("EmptyBook", func(t *testing.T) {
		sess, _, out := newTestSession(t, "3\n4\n")
		sess.Run()
		assert.Contains(t, out.String(), "No trades in the book.")
	})
}
