package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value parsed from model output. Valid reports whether
// parsing succeeded; an invalid Amount is never a zero stand-in, callers must
// check Valid before using Decimal.
type Amount struct {
	Decimal decimal.Decimal
	Valid   bool
}

var eurToken = regexp.MustCompile(`(?i)eur`)

// NormalizeAmount parses a monetary scalar from the raw model output. The
// value may already be numeric, or a string carrying currency symbols,
// whitespace and comma- or dot-style separators. It never returns an error:
// a single bad amount must not abort extraction of the rest of the receipt,
// so unparseable input yields an invalid Amount.
func NormalizeAmount(v any) Amount {
	switch n := v.(type) {
	case float64:
		return validAmount(decimal.NewFromFloat(n))
	case float32:
		return validAmount(decimal.NewFromFloat32(n))
	case int:
		return validAmount(decimal.NewFromInt(int64(n)))
	case int64:
		return validAmount(decimal.NewFromInt(n))
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return Amount{}
		}
		return validAmount(d)
	case string:
		return parseAmountString(n)
	default:
		// nil, mappings, sequences and anything else the model invents.
		return Amount{}
	}
}

func parseAmountString(s string) Amount {
	// Currency noise: symbols, the EUR token, all whitespace.
	for _, sym := range []string{"€", "$", "£"} {
		s = strings.ReplaceAll(s, sym, "")
	}
	s = eurToken.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return Amount{}
	}

	// Comma is always a decimal separator once symbols are gone.
	s = strings.ReplaceAll(s, ",", ".")

	// More than one dot left: everything but the last is a thousands
	// separator ("1.234.56" -> "1234.56").
	if parts := strings.Split(s, "."); len(parts) > 2 {
		s = strings.Join(parts[:len(parts)-1], "") + "." + parts[len(parts)-1]
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}
	}
	return validAmount(d)
}

func validAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d.Round(2), Valid: true}
}
