package money

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/minicommerce/pkg/apperr"
)

// Monetary values travel as strings like "267.00" so precision never
// depends on float formatting.
var pricePattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// Amount is a non-negative monetary amount. The zero value is 0.00.
type Amount struct {
	d decimal.Decimal
}

func Zero() Amount { return Amount{} }

func Parse(s string) (Amount, error) {
	if !pricePattern.MatchString(s) {
		return Amount{}, apperr.Newf(apperr.InvalidArgument, "invalid monetary amount %q", s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, apperr.Wrap(apperr.InvalidArgument, "invalid monetary amount", err)
	}
	return Amount{d: d}, nil
}

// MustParse panics on malformed input. Reserved for literals in tests
// and seed data.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) Add(b Amount) Amount {
	return Amount{d: a.d.Add(b.d)}
}

func (a Amount) MulInt(n int) Amount {
	return Amount{d: a.d.Mul(decimal.NewFromInt(int64(n)))}
}

func (a Amount) Equal(b Amount) bool {
	return a.d.Equal(b.d)
}

// String formats the amount with exactly two decimal digits, rounding
// half away from zero.
func (a Amount) String() string {
	return a.d.StringFixed(2)
}
