package subnet

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/graytensor/subnetscan/internal/rpc"
)

// Chain is the connection surface the reconciler and walker consume.
// *rpc.Client satisfies it; tests substitute a fake.
type Chain interface {
	SubnetInfo(ctx context.Context, netuid int) (*rpc.SubnetInfo, error)
	AllSubnets(ctx context.Context) ([]rpc.SubnetInfo, error)
	TotalSubnets(ctx context.Context) (int, error)
	Metagraph(ctx context.Context, netuid int) (*rpc.Metagraph, error)
}

// blocksPerDay assumes a 12 second block time. This is a known
// approximation: the chain's actual block time is a runtime parameter
// the connection surface does not expose.
const blocksPerDay = float64(24*60*60) / 12

// emissionFallbacks are the descriptor fields probed, in order, when
// the primary emission field yields nothing. The first positive value
// wins; later candidates are not consulted.
var emissionFallbacks = [...]string{
	"alpha_in_emission",
	"tao_in_emission",
	"pending_alpha_emission",
	"pending_root_emission",
}

// Reconciler merges the dynamic descriptor and the metagraph snapshot
// for one subnet into a Record, applying ordered fallbacks when either
// source is missing, malformed, or partially populated.
type Reconciler struct {
	chain Chain
	log   *zap.Logger
	deep  bool
}

func NewReconciler(chain Chain, log *zap.Logger, deep bool) *Reconciler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reconciler{chain: chain, log: log, deep: deep}
}

// Reconcile builds the record for one subnet. It never returns an
// error: a failure of either upstream source degrades to defaults, and
// anything unrecoverable is recorded in the record's Error field.
func (r *Reconciler) Reconcile(ctx context.Context, netuid int) (rec *Record) {
	rec = newRecord(netuid)
	if r.deep {
		rec.Diagnostics = map[string]string{}
	}

	defer func() {
		if p := recover(); p != nil {
			rec.Error = fmt.Sprint(p)
			r.log.Warn("subnet reconciliation failed",
				zap.Int("netuid", netuid),
				zap.String("error", rec.Error))
		}
	}()

	r.applyDescriptor(ctx, rec)
	r.applySnapshot(ctx, rec)
	return rec
}

// applyDescriptor copies the display fields, emission and price from
// the dynamic descriptor. Fetch failure is not fatal; every field stays
// at its default when absent.
func (r *Reconciler) applyDescriptor(ctx context.Context, rec *Record) {
	info, err := r.chain.SubnetInfo(ctx, rec.NetUID)
	if err != nil {
		r.log.Debug("dynamic info unavailable",
			zap.Int("netuid", rec.NetUID), zap.Error(err))
		return
	}

	if info.SubnetName != nil {
		rec.Name = *info.SubnetName
	}
	if info.Symbol != nil {
		rec.Symbol = *info.Symbol
	}
	if info.Tempo != nil {
		rec.Tempo = *info.Tempo
	}
	if info.LastStep != nil {
		rec.LastUpdate = *info.LastStep
	}

	rec.EmissionPerDay = descriptorEmission(info)

	if info.Price != nil {
		rec.Price = CoerceAmount(info.Price)
	}

	if r.deep {
		for k, v := range info.Diagnostics() {
			rec.Diagnostics[k] = v
		}
	}
}

// descriptorEmission probes the primary emission field first, then the
// fixed fallback list, stopping at the first positive value.
func descriptorEmission(info *rpc.SubnetInfo) float64 {
	if v := CoerceAmount(info.Emission); v > 0 {
		return v
	}

	for _, name := range emissionFallbacks {
		var field any
		switch name {
		case "alpha_in_emission":
			field = info.AlphaInEmission
		case "tao_in_emission":
			field = info.TaoInEmission
		case "pending_alpha_emission":
			field = info.PendingAlphaEmission
		case "pending_root_emission":
			field = info.PendingRootEmission
		}
		if v := CoerceAmount(field); v > 0 {
			return v
		}
	}
	return 0
}

// applySnapshot derives validator/miner counts from the metagraph and,
// when the descriptor produced no emission, a daily emission rate from
// the raw per-block figure. Each sub-step tolerates missing fields
// independently; fetch failure leaves the record as the descriptor
// pass produced it.
func (r *Reconciler) applySnapshot(ctx context.Context, rec *Record) {
	mg, err := r.chain.Metagraph(ctx, rec.NetUID)
	if err != nil {
		r.log.Debug("metagraph unavailable",
			zap.Int("netuid", rec.NetUID), zap.Error(err))
		return
	}

	rec.Validators = validatorCount(mg)
	rec.Miners = max(0, participantCount(mg)-rec.Validators)

	if rec.EmissionPerDay == 0 {
		if perBlock := CoerceAmount(mg.Emission); perBlock > 0 && mg.Tempo > 0 {
			rec.EmissionPerDay = perBlock * (blocksPerDay / float64(mg.Tempo))
		}
	}

	if r.deep {
		for k, v := range mg.Diagnostics() {
			rec.Diagnostics[k] = v
		}
	}
}

// validatorCount probes, in order: explicit permit flags, an explicit
// validator list, and finally participants holding positive stake.
func validatorCount(mg *rpc.Metagraph) int {
	if mg.ValidatorPermit != nil {
		n := 0
		for _, permit := range mg.ValidatorPermit {
			if permit {
				n++
			}
		}
		return n
	}

	if mg.Validators != nil {
		return len(mg.Validators)
	}

	n := 0
	for _, stake := range mg.Stakes {
		if stake > 0 {
			n++
		}
	}
	return n
}

// participantCount prefers the explicit count field over the hotkey
// list length.
func participantCount(mg *rpc.Metagraph) int {
	if mg.N != nil {
		return int(*mg.N)
	}
	if mg.Hotkeys != nil {
		return len(mg.Hotkeys)
	}
	return 0
}
