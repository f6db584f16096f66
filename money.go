package housing

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Dollars is a USD amount. Home values in the source index are dollar
// figures, displayed as whole dollars.
type Dollars float64

// String formats the amount as whole US dollars, e.g. "$431,204".
func (d Dollars) String() string {
	cur := *money.New(0, money.USD).Currency()
	formatter := cur.Formatter()
	formatter.Fraction = 0 // home values are reported in whole dollars
	return formatter.Format(decimal.NewFromFloat(float64(d)).Round(0).IntPart())
}

// SignedString returns the string representation of the amount with a sign.
// 0 is represented as "-".
func (d Dollars) SignedString() string {
	switch {
	case d == 0:
		return "-"
	case d > 0:
		return "+" + d.String()
	default:
		return "-" + Dollars(-d).String()
	}
}
