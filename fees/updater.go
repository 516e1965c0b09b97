package fees

import (
	"sync"

	"go.uber.org/zap"

	"github.com/weighbridge/go-weighbridge/ratio"
	"github.com/weighbridge/go-weighbridge/weights"
)

// FromBlockFullness derives the per-block adjustment from how full a block
// was relative to IdealBlockWeight. Blocks above the ideal push fees up in
// proportion to the excess, blocks below pull them down, and an exactly
// ideal block yields the neutral multiplier. An empty block yields the full
// -100% adjustment.
func FromBlockFullness(actual weights.Weight) Multiplier {
	ideal := uint64(weights.IdealBlockWeight)
	if uint64(actual) >= ideal {
		excess := uint64(actual) - ideal
		return NewPositive(partOfIdeal(excess%ideal), excess/ideal)
	}
	return NewNegative(partOfIdeal(ideal - uint64(actual)))
}

// partOfIdeal converts a weight not exceeding IdealBlockWeight into ratio
// parts of it.
func partOfIdeal(w uint64) ratio.Ratio {
	return ratio.FromParts(uint32(w * uint64(ratio.Unit) / uint64(weights.IdealBlockWeight)))
}

// Updater folds per-block fullness adjustments into the running fee
// multiplier. One Updater serves one chain. OnBlock is safe for concurrent
// use, although blocks are expected to arrive in order.
type Updater struct {
	logger *zap.Logger

	mu      sync.Mutex
	current Multiplier
}

// NewUpdater creates an Updater starting from the given multiplier,
// normally Neutral at genesis.
func NewUpdater(logger *zap.Logger, start Multiplier) *Updater {
	return &Updater{logger: logger, current: start}
}

// Current returns the multiplier in effect.
func (u *Updater) Current() Multiplier {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.current
}

// OnBlock records the total weight of a produced block and returns the
// multiplier to price transactions with from the next block on.
func (u *Updater) OnBlock(actual weights.Weight) Multiplier {
	adjustment := FromBlockFullness(actual)

	u.mu.Lock()
	next := u.current.Sum(adjustment)
	u.current = next
	u.mu.Unlock()

	switch {
	case actual > weights.IdealBlockWeight:
		blocksOverIdeal.Inc()
	case actual < weights.IdealBlockWeight:
		blocksUnderIdeal.Inc()
	}
	currentMultiplier.Set(multiplierValue(next))

	u.logger.Debug("fee multiplier updated",
		zap.Uint64("block_weight", uint64(actual)),
		zap.Object("adjustment", adjustment),
		zap.Object("multiplier", next),
	)
	return next
}
