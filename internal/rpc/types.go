// Package rpc implements the JSON-RPC client for subtensor endpoints,
// including the request/response envelope and the typed subnet data
// structures returned by the registry and metagraph calls.
package rpc

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Request represents a JSON-RPC 2.0 request sent to a subtensor node.
type Request struct {
	JSONRPC string        `json:"jsonrpc"` // Always "2.0"
	Method  string        `json:"method"`  // RPC method name, e.g., "subnetInfo_getDynamicInfo"
	Params  []interface{} `json:"params"`  // Method arguments
	ID      int           `json:"id"`      // Request identifier (always 1 in this codebase)
}

// Response represents a JSON-RPC 2.0 response.
// Result is kept as raw JSON so each method wrapper can decode into its own type.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError is the error object inside a JSON-RPC response.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Balance is an on-chain token amount. Rao is the raw integer unit,
// Tao the major unit (1 TAO = 1e9 rao). Endpoints differ on which of
// the two they populate.
type Balance struct {
	Tao float64 `json:"tao"`
	Rao uint64  `json:"rao"`
}

// SubnetInfo is the rich per-subnet descriptor returned by the dynamic
// info calls. Every field except NetUID is optional: the shape has
// drifted across subtensor versions, so absence is the normal case, not
// an error. Emission-like fields are deliberately untyped — depending
// on the node version they arrive as plain numbers, strings, or wrapped
// balance objects, and the caller coerces them.
type SubnetInfo struct {
	NetUID     int      `json:"netuid"`
	SubnetName *string  `json:"subnet_name,omitempty"`
	Symbol     *string  `json:"symbol,omitempty"`
	Tempo      *uint64  `json:"tempo,omitempty"`
	LastStep   *uint64  `json:"last_step,omitempty"`
	Price      *Balance `json:"price,omitempty"`

	Emission             any `json:"emission,omitempty"`
	AlphaInEmission      any `json:"alpha_in_emission,omitempty"`
	TaoInEmission        any `json:"tao_in_emission,omitempty"`
	PendingAlphaEmission any `json:"pending_alpha_emission,omitempty"`
	PendingRootEmission  any `json:"pending_root_emission,omitempty"`
}

// Diagnostics returns a best-effort string dump of every populated
// optional field, keyed "dynamic_info.<field>". Used only under deep
// inspection; absent fields are simply omitted.
func (s *SubnetInfo) Diagnostics() map[string]string {
	d := map[string]string{
		"dynamic_info.netuid": strconv.Itoa(s.NetUID),
	}
	if s.SubnetName != nil {
		d["dynamic_info.subnet_name"] = *s.SubnetName
	}
	if s.Symbol != nil {
		d["dynamic_info.symbol"] = *s.Symbol
	}
	if s.Tempo != nil {
		d["dynamic_info.tempo"] = strconv.FormatUint(*s.Tempo, 10)
	}
	if s.LastStep != nil {
		d["dynamic_info.last_step"] = strconv.FormatUint(*s.LastStep, 10)
	}
	if s.Price != nil {
		d["dynamic_info.price"] = fmt.Sprintf("%+v", *s.Price)
	}
	for name, v := range map[string]any{
		"emission":               s.Emission,
		"alpha_in_emission":      s.AlphaInEmission,
		"tao_in_emission":        s.TaoInEmission,
		"pending_alpha_emission": s.PendingAlphaEmission,
		"pending_root_emission":  s.PendingRootEmission,
	} {
		if v != nil {
			d["dynamic_info."+name] = fmt.Sprintf("%v", v)
		}
	}
	return d
}

// Metagraph is the per-subnet network snapshot: who participates and
// with what stake. Like SubnetInfo, most fields are optional and which
// ones are populated depends on the node version.
type Metagraph struct {
	NetUID          int       `json:"netuid"`
	N               *uint64   `json:"n,omitempty"`
	Tempo           uint64    `json:"tempo,omitempty"`
	ValidatorPermit []bool    `json:"validator_permit,omitempty"`
	Validators      []string  `json:"validators,omitempty"`
	Stakes          []float64 `json:"stake,omitempty"`
	Hotkeys         []string  `json:"hotkeys,omitempty"`

	// Raw per-block emission; shape varies like the SubnetInfo emission fields.
	Emission any `json:"emission,omitempty"`
}

// Diagnostics returns a best-effort dump of the populated snapshot
// fields, keyed "metagraph.<field>". List-valued fields report their
// lengths rather than contents to keep the dump readable.
func (m *Metagraph) Diagnostics() map[string]string {
	d := map[string]string{
		"metagraph.netuid": strconv.Itoa(m.NetUID),
		"metagraph.tempo":  strconv.FormatUint(m.Tempo, 10),
	}
	if m.N != nil {
		d["metagraph.n"] = strconv.FormatUint(*m.N, 10)
	}
	if m.ValidatorPermit != nil {
		d["metagraph.validator_permit"] = fmt.Sprintf("len=%d", len(m.ValidatorPermit))
	}
	if m.Validators != nil {
		d["metagraph.validators"] = fmt.Sprintf("len=%d", len(m.Validators))
	}
	if m.Stakes != nil {
		d["metagraph.stake"] = fmt.Sprintf("len=%d", len(m.Stakes))
	}
	if m.Hotkeys != nil {
		d["metagraph.hotkeys"] = fmt.Sprintf("len=%d", len(m.Hotkeys))
	}
	if m.Emission != nil {
		d["metagraph.emission"] = fmt.Sprintf("%v", m.Emission)
	}
	return d
}
