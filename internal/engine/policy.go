package engine

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// ChooseMove - picks a key for self on the board at the given tier. Policies
// only ever return unmarked keys.
func (that *Engine) ChooseMove(tier Tier, board *entity.Board, self, opponent string) (int, error) {
	switch tier {
	case TierEasy:
		return that.randomMove(board)
	case TierMedium:
		return that.heuristicMove(board, self, opponent)
	case TierImpossible:
		return that.optimalMove(board, self, opponent)
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownTier, tier)
	}
}

func (that *Engine) randomMove(board *entity.Board) (int, error) {
	keys := board.UnmarkedKeys()
	if len(keys) == 0 {
		return 0, ErrNoAvailableMoves
	}

	return that.pick(keys), nil
}

// heuristicMove - win now if possible, block the opponent winning next, else
// random.
func (that *Engine) heuristicMove(board *entity.Board, self, opponent string) (int, error) {
	if wins := immediateWins(board, self); len(wins) > 0 {
		return that.pick(wins), nil
	}

	if blocks := immediateWins(board, opponent); len(blocks) > 0 {
		return that.pick(blocks), nil
	}

	return that.randomMove(board)
}

// optimalMove - never loses. Immediate wins are taken without searching; an
// empty board is opened at random since minimax is symmetric there and every
// opening draws. Everything else goes through full search with the
// least-forcing tie-break.
func (that *Engine) optimalMove(board *entity.Board, self, opponent string) (int, error) {
	if wins := immediateWins(board, self); len(wins) > 0 {
		return that.pick(wins), nil
	}

	keys := board.UnmarkedKeys()
	if len(keys) == 0 {
		return 0, ErrNoAvailableMoves
	}

	if len(keys) == entity.BoardSize {
		return that.pick(keys), nil
	}

	candidates, _ := that.Minimax(board, self, opponent)

	return that.leastForcing(board, candidates, self, opponent), nil
}

// leastForcing - among equally optimal candidates, prefers ones that leave
// the opponent more than one equally good reply, so optimal play stays hard
// to read without giving up the no-loss guarantee. Falls back to the full
// candidate set when every candidate forces.
func (that *Engine) leastForcing(board *entity.Board, candidates []int, self, opponent string) int {
	var nonForcing []int

	for _, key := range candidates {
		next := board.Clone()
		next.Set(key, self)

		replies, _ := that.Minimax(next, opponent, self)
		if len(replies) > 1 {
			nonForcing = append(nonForcing, key)
		}
	}

	if len(nonForcing) > 0 {
		return that.pick(nonForcing)
	}

	return that.pick(candidates)
}

// Hints - the optimal squares for self, for the help overlay: immediate wins
// if any exist, every key on an empty board, otherwise the minimax candidate
// set. Nil on a finished board.
func (that *Engine) Hints(board *entity.Board, self, opponent string) []int {
	if board.HasWinner() || board.IsFull() {
		return nil
	}

	if wins := immediateWins(board, self); len(wins) > 0 {
		return wins
	}

	keys := board.UnmarkedKeys()
	if len(keys) == entity.BoardSize {
		return keys
	}

	candidates, _ := that.Minimax(board, self, opponent)

	return candidates
}
