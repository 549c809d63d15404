package session

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arena/internal/engine"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

// MoveSource - where a player's moves come from: the terminal for a human,
// an engine policy for the bot. Implementations must return a key from the
// board's unmarked set.
type MoveSource interface {
	NextMove(ctx context.Context, board *entity.Board, self, opponent *entity.Player) (int, error)
}

// BotSource - drives a player from an engine difficulty policy.
type BotSource struct {
	engine *engine.Engine
	tier   engine.Tier
}

func NewBotSource(gameEngine *engine.Engine, tier engine.Tier) *BotSource {
	return &BotSource{
		engine: gameEngine,
		tier:   tier,
	}
}

func (that *BotSource) NextMove(_ context.Context, board *entity.Board, self, opponent *entity.Player) (int, error) {
	key, err := that.engine.ChooseMove(that.tier, board, self.Mark, opponent.Mark)
	if err != nil {
		return 0, fmt.Errorf("bot failed to choose move: %w", err)
	}

	return key, nil
}
