package service

import (
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	decimalLiteral  = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	infinityLiteral = regexp.MustCompile(`^[+-]?Infinity$`)
	hexLiteral      = regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`)
	binaryLiteral   = regexp.MustCompile(`^0[bB][01]+$`)
	octalLiteral    = regexp.MustCompile(`^0[oO][0-7]+$`)
)

// toNumber coerces a decoded JSON value the way a loosely typed client
// would: strings are parsed, booleans count as 0/1, null is 0, single
// element arrays unwrap and everything else is NaN.
func toNumber(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return v
	case json.Number:
		return parseNumber(string(v))
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		return parseNumber(v)
	case []any:
		return parseNumber(joinArray(v))
	default:
		return math.NaN()
	}
}

func parseNumber(s string) float64 {
	s = strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})

	switch {
	case s == "":
		return 0
	case infinityLiteral.MatchString(s):
		if strings.HasPrefix(s, "-") {
			return math.Inf(-1)
		}
		return math.Inf(1)
	case decimalLiteral.MatchString(s):
		f, err := strconv.ParseFloat(s, 64)
		var numErr *strconv.NumError
		if err != nil && !(errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange)) {
			return math.NaN()
		}
		// ErrRange deja ±Inf o 0, igual que un cliente JSON
		return f
	case hexLiteral.MatchString(s):
		return parseRadix(s[2:], 16)
	case binaryLiteral.MatchString(s):
		return parseRadix(s[2:], 2)
	case octalLiteral.MatchString(s):
		return parseRadix(s[2:], 8)
	}
	return math.NaN()
}

func parseRadix(digits string, base int) float64 {
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return math.NaN()
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return f
}

func joinArray(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = stringify(v)
	}
	return strings.Join(parts, ",")
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return stringify(parseNumber(string(v)))
	case float64:
		switch {
		case math.IsNaN(v):
			return "NaN"
		case math.IsInf(v, 1):
			return "Infinity"
		case math.IsInf(v, -1):
			return "-Infinity"
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	case []any:
		return joinArray(v)
	default:
		return "[object Object]"
	}
}
