package trade

import (
	"time"

	"frizo/optionsim/internal/common"
	"frizo/optionsim/internal/option"

	"github.com/shopspring/decimal"
)

// Trade 交易 (a contract plus the traded quantity)
type Trade struct {
	ID       string           `json:"id"`
	Contract *option.Contract `json:"contract"`
	Quantity int              `json:"quantity"`
	OpenedAt time.Time        `json:"opened_at"`
}

// New wraps a contract with a quantity.
func New(c *option.Contract, quantity int) *Trade {
	return &Trade{
		ID:       common.GenerateTradeID(),
		Contract: c,
		Quantity: quantity,
		OpenedAt: time.Now(),
	}
}

// Payoff values the trade at the given market price: contract payoff
// times quantity. Negative quantities are accepted and value short
// exposure the obvious way.
func (t *Trade) Payoff(marketPrice decimal.Decimal) decimal.Decimal {
	return t.Contract.Payoff(marketPrice).Mul(decimal.NewFromInt(int64(t.Quantity)))
}

// Valuation is the result of valuing one trade.
type Valuation struct {
	Trade  *Trade
	Payoff decimal.Decimal
}

// Book holds trades in entry order.
type Book struct {
	trades []*Trade
}

// NewBook creates an empty trade book.
func NewBook() *Book {
	return &Book{}
}

// Add appends a trade to the book.
func (b *Book) Add(t *Trade) {
	b.trades = append(b.trades, t)
}

// Len returns the number of trades in the book.
func (b *Book) Len() int {
	return len(b.trades)
}

// EvaluateAll values every trade in entry order at the given market
// price and returns the per-trade valuations plus the book total.
func (b *Book) EvaluateAll(marketPrice decimal.Decimal) ([]Valuation, decimal.Decimal) {
	valuations := make([]Valuation, 0, len(b.trades))
	total := decimal.Zero
	for _, t := range b.trades {
		payoff := t.Payoff(marketPrice)
		valuations = append(valuations, Valuation{Trade: t, Payoff: payoff})
		total = total.Add(payoff)
	}
	return valuations, total
}
