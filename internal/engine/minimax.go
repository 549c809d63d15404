package engine

import (
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

const (
	scoreWin  = 10
	scoreDraw = 0
	scoreLoss = -10
)

// Minimax - exhaustively evaluates the position for mover and returns every
// key achieving the best score, with that score from mover's perspective.
//
// A child position is evaluated with the roles swapped, and its score is
// negated on the way back up: a board maximal for the next player is minimal
// for the current one. Ties are kept in full so downstream tie-breaks see the
// whole optimal set. On a terminal board the candidate set is nil.
func (that *Engine) Minimax(board *entity.Board, mover, opponent string) ([]int, int) {
	if board.HasWinner() || board.IsFull() {
		return nil, terminalScore(board, mover, opponent)
	}

	var best int
	var candidates []int

	for i, key := range board.UnmarkedKeys() {
		next := board.Clone()
		next.Set(key, mover)

		_, reply := that.Minimax(next, opponent, mover)

		value := -reply
		switch {
		case i == 0 || value > best:
			best = value
			candidates = append(candidates[:0], key)
		case value == best:
			candidates = append(candidates, key)
		}
	}

	return candidates, best
}

// terminalScore - scores a finished board for mover: +10 win, -10 loss, 0
// draw.
func terminalScore(board *entity.Board, mover, opponent string) int {
	switch board.WinningMark() {
	case mover:
		return scoreWin
	case opponent:
		return scoreLoss
	default:
		return scoreDraw
	}
}

// immediateWins - keys that complete a winning line for mark right now: a
// line holding exactly two of mark's cells with its third cell unmarked.
func immediateWins(board *entity.Board, mark string) []int {
	var keys []int

	for _, line := range entity.WinLines {
		marked, open := 0, 0
		openKey := 0

		for _, key := range line {
			switch board.Cell(key) {
			case mark:
				marked++
			case entity.EmptyCell:
				open++
				openKey = key
			}
		}

		if marked == 2 && open == 1 && !containsKey(keys, openKey) {
			keys = append(keys, openKey)
		}
	}

	return keys
}

func containsKey(keys []int, key int) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}

	return false
}
