package subnet

import (
	"context"

	"go.uber.org/zap"
)

// Walker enumerates every registered subnet and drives the reconciler
// over each, one at a time. Enumeration prefers the bulk listing call
// and falls back to sequential netuids from the total count.
type Walker struct {
	chain Chain
	rec   *Reconciler
	log   *zap.Logger

	// Progress, when set, is called after each subnet completes.
	Progress func(done, total int)
}

func NewWalker(chain Chain, rec *Reconciler, log *zap.Logger) *Walker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Walker{chain: chain, rec: rec, log: log}
}

// Walk returns one record per known subnet, in the chain's enumeration
// order. If no subnet identifiers can be determined at all it returns
// an empty slice; no failure mode raises an error to the caller.
func (w *Walker) Walk(ctx context.Context) []*Record {
	if infos, err := w.chain.AllSubnets(ctx); err == nil {
		w.log.Info("retrieved subnet list via bulk dynamic info",
			zap.Int("subnets", len(infos)))

		records := make([]*Record, 0, len(infos))
		for i, info := range infos {
			// The bulk descriptor is only used for its netuid; the
			// reconciler re-fetches per subnet so field extraction is
			// uniform across both enumeration paths.
			records = append(records, w.rec.Reconcile(ctx, info.NetUID))
			w.report(i+1, len(infos))
		}
		return records
	} else {
		w.log.Warn("bulk dynamic info unavailable, falling back to sequential enumeration",
			zap.Error(err))
	}

	total, err := w.chain.TotalSubnets(ctx)
	if err != nil {
		w.log.Error("could not determine subnet count", zap.Error(err))
		return []*Record{}
	}
	w.log.Info("enumerating subnets sequentially", zap.Int("total", total))

	records := make([]*Record, 0, total)
	for netuid := 0; netuid < total; netuid++ {
		records = append(records, w.rec.Reconcile(ctx, netuid))
		w.report(netuid+1, total)
	}
	return records
}

func (w *Walker) report(done, total int) {
	if w.Progress != nil {
		w.Progress(done, total)
	}
}
