package subnet

// Record is the normalized per-subnet result. JSON tags match the
// historical export format consumed by downstream tooling.
type Record struct {
	NetUID         int     `json:"netuid"`
	Name           string  `json:"subnet_name"`
	Symbol         string  `json:"symbol"`
	Validators     int     `json:"validators_count"`
	Miners         int     `json:"miners_count"`
	EmissionPerDay float64 `json:"emission_value"` // TAO-equivalent per day
	Tempo          uint64  `json:"tempo"`
	LastUpdate     uint64  `json:"last_update"`
	Price          float64 `json:"price"`

	// Diagnostics is populated only under deep inspection. Purely
	// informational; never feeds back into the displayed fields.
	Diagnostics map[string]string `json:"debug,omitempty"`

	// Error is set only when reconciliation hit an unrecoverable
	// failure for this subnet. The rest of the record still carries
	// whatever data was gathered before the failure.
	Error string `json:"error,omitempty"`
}

// Unknown is the sentinel for display fields with no upstream value.
const Unknown = "Unknown"

// newRecord returns a record with every field at its default.
func newRecord(netuid int) *Record {
	return &Record{
		NetUID: netuid,
		Name:   Unknown,
		Symbol: Unknown,
	}
}

// HasData reports whether any field moved off its default. Rows without
// data are hidden from the table unless debug output is requested.
func (r *Record) HasData() bool {
	return r.Validators > 0 ||
		r.Miners > 0 ||
		r.EmissionPerDay > 0 ||
		r.Name != Unknown ||
		r.Symbol != Unknown
}
