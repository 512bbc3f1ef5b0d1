package domain

import (
	"fmt"
	"strings"
)

// TokenAmount is a fungible currency quantity in the token's smallest
// denomination. A precision-4 token stores 1.0000 as Amount 10000.
type TokenAmount struct {
	Amount    int64  `json:"amount"`
	Symbol    string `json:"symbol"`
	Precision uint8  `json:"precision"`
}

// String renders the quantity the way the token contract prints it,
// e.g. "4.0000 GAME".
func (t TokenAmount) String() string {
	if t.Precision == 0 {
		return fmt.Sprintf("%d %s", t.Amount, t.Symbol)
	}
	div := int64(1)
	for i := uint8(0); i < t.Precision; i++ {
		div *= 10
	}
	whole := t.Amount / div
	frac := t.Amount % div
	if frac < 0 {
		frac = -frac
	}
	return fmt.Sprintf("%d.%0*d %s", whole, t.Precision, frac, strings.ToUpper(t.Symbol))
}
