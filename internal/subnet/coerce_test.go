package subnet

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/graytensor/subnetscan/internal/rpc"
)

func TestCoerceAmount(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"nil", nil, 0},
		{"float", 1.5, 1.5},
		{"int", 42, 42},
		{"uint64", uint64(7), 7},
		{"json number", json.Number("3.25"), 3.25},
		{"numeric string", "12.5", 12.5},
		{"garbage string", "not a number", 0},
		{"balance tao", rpc.Balance{Tao: 2.5, Rao: 2500000000}, 2.5},
		{"balance zero tao keeps major unit", rpc.Balance{Tao: 0, Rao: 20000000}, 0},
		{"balance pointer", &rpc.Balance{Tao: 0.5}, 0.5},
		{"nil balance pointer", (*rpc.Balance)(nil), 0},
		{"map tao key", map[string]any{"tao": 9.0}, 9},
		{"map value key", map[string]any{"value": "4.5"}, 4.5},
		{"map key order", map[string]any{"rao": 100.0, "tao": 1.0}, 1},
		{"map first success wins", map[string]any{"tao": 0.0, "rao": 5.0}, 0},
		{"map skips failed candidate", map[string]any{"tao": "junk", "rao": 5.0}, 5},
		{"map nested balance", map[string]any{"amount": map[string]any{"tao": 6.0}}, 6},
		{"map no known keys", map[string]any{"foo": 1.0}, 0},
		{"bool", true, 0},
		{"slice", []any{1.0}, 0},
		{"negative", -3.0, 0},
		{"nan", math.NaN(), 0},
		{"inf", math.Inf(1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoerceAmount(tt.in)
			if got != tt.want {
				t.Errorf("CoerceAmount(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if math.IsNaN(got) || math.IsInf(got, 0) || got < 0 {
				t.Errorf("CoerceAmount(%v) = %v, not a finite non-negative float", tt.in, got)
			}
		})
	}
}

func TestCoerceAmountDecodedJSON(t *testing.T) {
	// Values as they actually arrive from encoding/json with interface{} targets.
	var v any
	if err := json.Unmarshal([]byte(`{"tao": "1.75"}`), &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := CoerceAmount(v); got != 1.75 {
		t.Errorf("CoerceAmount(decoded map) = %v, want 1.75", got)
	}
}
