package engine

import (
	"errors"
	"fmt"
	"math/rand"
)

// Tier - bot strength. Dispatch is by tag through ChooseMove, so tiers stay
// interchangeable at the call site.
type Tier int

const (
	// TierEasy - uniform random over the open squares.
	TierEasy Tier = iota
	// TierMedium - takes an immediate win, blocks an immediate loss, else
	// plays random.
	TierMedium
	// TierImpossible - full minimax with a least-forcing tie-break; never
	// loses.
	TierImpossible
)

var ErrUnknownTier = errors.New("unknown difficulty tier")

// ParseTier - maps a config difficulty string to its tier.
func ParseTier(difficulty string) (Tier, error) {
	switch difficulty {
	case "easy":
		return TierEasy, nil
	case "medium":
		return TierMedium, nil
	case "impossible":
		return TierImpossible, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTier, difficulty)
	}
}

func (that Tier) String() string {
	switch that {
	case TierEasy:
		return "easy"
	case TierMedium:
		return "medium"
	case TierImpossible:
		return "impossible"
	default:
		return "unknown"
	}
}

// Engine - move evaluation over an injected random source, so every sampled
// decision is reproducible under test via seeding.
type Engine struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Engine {
	return &Engine{rng: rng}
}

// pick - samples one key uniformly.
func (that *Engine) pick(keys []int) int {
	return keys[that.rng.Intn(len(keys))]
}
