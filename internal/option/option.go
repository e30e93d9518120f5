package option

import (
	"errors"
	"fmt"
	"time"

	"frizo/optionsim/internal/common"

	"github.com/shopspring/decimal"
)

// ErrInvalidContractType is returned by New for a type tag other than
// "Call" or "Put". It is the only domain error in the simulator.
var ErrInvalidContractType = errors.New("invalid contract type")

// Type CALL or PUT
type Type int

const (
	CALL Type = iota
	PUT
)

func (t Type) String() string {
	switch t {
	case CALL:
		return "Call"
	case PUT:
		return "Put"
	default:
		return "unknown"
	}
}

// ParseType maps a type tag to a Type. Only the exact literals
// "Call" and "Put" are recognized.
func ParseType(tag string) (Type, error) {
	switch tag {
	case "Call":
		return CALL, nil
	case "Put":
		return PUT, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidContractType, tag)
	}
}

// Contract 選擇權合約
type Contract struct {
	// basic info
	ID   string `json:"id"`
	Type Type   `json:"type"`

	// contract terms (decimal)
	Strike  decimal.Decimal `json:"strike"`
	Premium decimal.Decimal `json:"premium"` // mutated by market drift
	Expiry  string          `json:"expiry"`  // free-form, nominally YYYY-MM-DD

	// Timestamp
	CreatedAt time.Time `json:"created_at"`
}

// New creates a contract of the variant matching the type tag, or
// ErrInvalidContractType for anything else. Strike and premium are
// deliberately not range-checked: negative values are accepted, and
// the expiry string is stored as given.
func New(tag string, strike, premium float64, expiry string) (*Contract, error) {
	typ, err := ParseType(tag)
	if err != nil {
		return nil, err
	}

	return &Contract{
		ID:        common.GenerateContractID(),
		Type:      typ,
		Strike:    decimal.NewFromFloat(strike),
		Premium:   decimal.NewFromFloat(premium),
		Expiry:    expiry,
		CreatedAt: time.Now(),
	}, nil
}

// Payoff values the contract at the given market price.
//
// Call: max(0, marketPrice - strike) - premium
// Put:  max(0, strike - marketPrice) - premium
//
// Pure calculation, no state change.
func (c *Contract) Payoff(marketPrice decimal.Decimal) decimal.Decimal {
	var intrinsic decimal.Decimal
	switch c.Type {
	case CALL:
		intrinsic = decimal.Max(decimal.Zero, marketPrice.Sub(c.Strike))
	case PUT:
		intrinsic = decimal.Max(decimal.Zero, c.Strike.Sub(marketPrice))
	}
	return intrinsic.Sub(c.Premium)
}

// SetPremium replaces the premium. No floor is applied: repeated
// negative drift can push the premium below zero, matching the
// simulator's unbounded random walk.
func (c *Contract) SetPremium(premium decimal.Decimal) {
	c.Premium = premium
}

// QuoteLine formats the contract the way the quote board shows it.
func (c *Contract) QuoteLine() string {
	return fmt.Sprintf("%s Option - Strike Price: %s, Premium: %s, Expiry: %s",
		c.Type, c.Strike, c.Premium, c.Expiry)
}
