package session

import (
	"fmt"
	"io"

	"frizo/optionsim/internal/chain"
	"frizo/optionsim/internal/display"
	"frizo/optionsim/internal/logger"
	"frizo/optionsim/internal/option"
	"frizo/optionsim/internal/trade"

	"github.com/shopspring/decimal"
)

// Session drives the interactive menu loop: quote refresh, trade
// entry, and book valuation. One session is the sole owner of the
// chain; everything runs synchronously on the calling goroutine.
type Session struct {
	chain  *chain.Chain
	book   *trade.Book
	board  *display.QuoteBoard
	prompt *Prompter
	out    io.Writer
	log    *logger.Logger
}

// New creates a session over the given chain and display.
func New(ch *chain.Chain, board *display.QuoteBoard, prompt *Prompter, out io.Writer, log *logger.Logger) *Session {
	return &Session{
		chain:  ch,
		book:   trade.NewBook(),
		board:  board,
		prompt: prompt,
		out:    out,
		log:    log,
	}
}

// Book returns the session's trade book.
func (s *Session) Book() *trade.Book {
	return s.book
}

// Run executes the menu loop until the user exits or the input stream
// ends. Both paths are a normal return.
func (s *Session) Run() {
	for {
		s.board.PromptHome()
		fmt.Fprintln(s.out, "Choose an action:")
		fmt.Fprintln(s.out, "1. Get updated quote")
		fmt.Fprintln(s.out, "2. Enter a trade")
		fmt.Fprintln(s.out, "3. Value the book")
		fmt.Fprintln(s.out, "4. Exit")

		choice, ok := s.prompt.String("Enter your choice (1/2/3/4)")
		if !ok {
			s.log.Debug("input stream ended, exiting")
			return
		}

		switch choice {
		case "1":
			s.refreshQuote()
		case "2":
			if !s.enterTrade() {
				return
			}
		case "3":
			if !s.valueBook() {
				return
			}
		case "4":
			return
		}
	}
}

// refreshQuote applies one round of premium drift; the quote board
// redraws itself through the observer signal.
func (s *Session) refreshQuote() {
	s.chain.UpdatePremiums()
	s.log.Debug("premiums updated", "contracts", s.chain.Len())
}

// enterTrade prompts for the trade fields and adds the contract to
// the chain and the book. Returns false when input ended mid-prompt.
func (s *Session) enterTrade() bool {
	fmt.Fprintln(s.out)

	typeTag, ok := s.prompt.String("Enter option type (Call/Put)")
	if !ok {
		return false
	}
	strike, ok := s.prompt.Float("Enter strike price")
	if !ok {
		return false
	}
	premium, ok := s.prompt.Float("Enter premium")
	if !ok {
		return false
	}
	expiry, ok := s.prompt.String("Enter expiry date (YYYY-MM-DD)")
	if !ok {
		return false
	}
	quantity, ok := s.prompt.Int("Enter quantity")
	if !ok {
		return false
	}

	contract, err := option.New(typeTag, strike, premium, expiry)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid option type. Trade not executed.")
		s.log.Warn("trade rejected", "type", typeTag)
		return true
	}

	s.chain.Add(contract)
	s.book.Add(trade.New(contract, quantity))
	fmt.Fprintln(s.out, "Trade executed successfully.")
	s.log.Info("trade executed",
		"contract_id", contract.ID,
		"type", contract.Type.String(),
		"strike", contract.Strike.String(),
		"quantity", quantity,
	)
	return true
}

// valueBook prompts for a market price and prints the payoff of every
// trade in entry order plus the book total.
func (s *Session) valueBook() bool {
	if s.book.Len() == 0 {
		fmt.Fprintln(s.out, "No trades in the book.")
		return true
	}

	price, ok := s.prompt.Float("Enter market price")
	if !ok {
		return false
	}

	valuations, total := s.book.EvaluateAll(decimal.NewFromFloat(price))
	for _, v := range valuations {
		fmt.Fprintln(s.out, v.Trade.Contract.QuoteLine())
		fmt.Fprintf(s.out, "Quantity: %d, Payoff: %s\n", v.Trade.Quantity, v.Payoff)
	}
	fmt.Fprintf(s.out, "Book total: %s\n", total)
	return true
}
