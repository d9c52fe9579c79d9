package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseRate parses an interest rate argument. Accepted forms are a daily
// multiplier ("1.1") or a daily percentage ("10%"). Parsing goes through
// decimal so "0.1%" style inputs convert without float round-off before the
// engine ever sees the rate.
func ParseRate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty interest rate")
	}

	if pct, ok := strings.CutSuffix(s, "%"); ok {
		d, err := decimal.NewFromString(strings.TrimSpace(pct))
		if err != nil {
			return 0, fmt.Errorf("invalid interest rate %q: %w", s, err)
		}
		rate := decimal.NewFromInt(1).Add(d.Div(decimal.NewFromInt(100)))
		return rate.InexactFloat64(), nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid interest rate %q: %w", s, err)
	}
	return d.InexactFloat64(), nil
}
