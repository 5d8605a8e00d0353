// Package subnet holds the core reconciliation logic: it normalizes the
// partially-available, differently-shaped fields of the dynamic subnet
// descriptor and the metagraph snapshot into one consistent record per
// subnet.
package subnet

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/graytensor/subnetscan/internal/rpc"
)

// amountKeys are the candidate field names probed, in order, when an
// amount arrives wrapped in an object instead of as a plain number.
var amountKeys = [...]string{"tao", "value", "amount", "rao"}

// CoerceAmount extracts a finite non-negative float magnitude from an
// arbitrary decoded value, or 0 if none can be determined. Subtensor
// versions disagree on how amounts are represented — plain numbers,
// numeric strings, balance objects, or maps with a handful of known
// keys — and this is the single place that disagreement is absorbed.
// It never panics and never returns NaN, Inf, or a negative value.
func CoerceAmount(v any) float64 {
	f, _ := coerce(v)
	return f
}

// coerce reports whether the value yielded a usable magnitude. A
// failed candidate is not an error, just a signal to try the next one.
func coerce(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false

	case float64:
		return clampAmount(x), true
	case float32:
		return clampAmount(float64(x)), true
	case int:
		return clampAmount(float64(x)), true
	case int32:
		return clampAmount(float64(x)), true
	case int64:
		return clampAmount(float64(x)), true
	case uint32:
		return clampAmount(float64(x)), true
	case uint64:
		return clampAmount(float64(x)), true

	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return clampAmount(f), true

	// A balance object always answers with its major-unit field. Rao
	// is the same quantity at 1e9 scale, never a substitute value.
	case rpc.Balance:
		return clampAmount(x.Tao), true
	case *rpc.Balance:
		if x == nil {
			return 0, false
		}
		return clampAmount(x.Tao), true

	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, false
		}
		return clampAmount(f), true

	case map[string]any:
		for _, key := range amountKeys {
			inner, ok := x[key]
			if !ok {
				continue
			}
			if f, ok := coerce(inner); ok {
				return f, true
			}
		}
		return 0, false
	}

	return 0, false
}

func clampAmount(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}
