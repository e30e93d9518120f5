package chain

import (
	"math/rand"
	"time"

	"frizo/optionsim/internal/option"

	"github.com/shopspring/decimal"
)

// Observer receives a zero-argument signal after every premium update.
// Delivery is a direct synchronous call on the updating goroutine.
type Observer interface {
	Update()
}

// drift bounds: premium is multiplied by 1 + r/100 with r in [driftMin, driftMax].
const (
	driftMin = -5
	driftMax = 4
)

var hundred = decimal.NewFromInt(100)

// Chain holds an ordered collection of contracts and fans premium
// updates out to registered observers. Insertion order is preserved
// and there is no removal; contracts live until process exit.
type Chain struct {
	contracts []*option.Contract
	observers []Observer
	rng       *rand.Rand
}

// New creates a chain with its own pseudo-random generator.
// seed 0 means "seed from the clock"; any other value gives a
// reproducible drift sequence.
func New(seed int64) *Chain {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Chain{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Add appends a contract to the chain.
func (ch *Chain) Add(c *option.Contract) {
	ch.contracts = append(ch.contracts, c)
}

// Register adds an observer to the notification list. Observers are
// notified in registration order.
func (ch *Chain) Register(obs Observer) {
	ch.observers = append(ch.observers, obs)
}

// Notify delivers the update signal to every registered observer.
func (ch *Chain) Notify() {
	for _, obs := range ch.observers {
		obs.Update()
	}
}

// UpdatePremiums applies one round of random drift to every contract,
// then notifies observers exactly once.
//
// Each premium is multiplied by (100 + r) / 100 with r drawn uniformly
// from [-5, 4], i.e. a drift of -5% to +4% per round. There is no floor:
// a premium can drift below zero.
func (ch *Chain) UpdatePremiums() {
	for _, c := range ch.contracts {
		r := int64(ch.rng.Intn(driftMax-driftMin+1) + driftMin)
		factor := hundred.Add(decimal.NewFromInt(r)).Div(hundred)
		c.SetPremium(c.Premium.Mul(factor))
	}
	ch.Notify()
}

// FirstQuote returns the first contract in insertion order.
// The bool is false when the chain is empty.
func (ch *Chain) FirstQuote() (*option.Contract, bool) {
	if len(ch.contracts) == 0 {
		return nil, false
	}
	return ch.contracts[0], true
}

// Len returns the number of contracts in the chain.
func (ch *Chain) Len() int {
	return len(ch.contracts)
}

// Contracts returns the underlying contract slice in insertion order.
func (ch *Chain) Contracts() []*option.Contract {
	return ch.contracts
}
