package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"

	// MarkTie - recorded as the winner of a drawn round.
	MarkTie = "-"
)

// Round - one game between the two players: a board plus the turn state
// machine. While ongoing it is awaiting a move from the active player; once a
// move completes a line or fills the board it is finished with an outcome.
type Round struct {
	ID      string
	Board   *entity.Board
	Players [2]*entity.Player
	Status  string
	Winner  string

	active int
}

func NewRound(players [2]*entity.Player, firstMover int) *Round {
	return &Round{
		ID:      uuid.NewString(),
		Board:   entity.NewBoard(),
		Players: players,
		Status:  StatusOngoing,
		active:  firstMover,
	}
}

func (that *Round) ActiveIndex() int {
	return that.active
}

func (that *Round) ActivePlayer() *entity.Player {
	return that.Players[that.active]
}

func (that *Round) InactivePlayer() *entity.Player {
	return that.Players[1-that.active]
}

// ApplyMove - plays key for the active player and advances the state
// machine. Occupied or out-of-range keys are rejected; only the human input
// path can produce them, and it re-prompts instead of giving up the turn.
func (that *Round) ApplyMove(key int) error {
	if that.IsFinished() {
		return apperror.ErrRoundFinished
	}

	if key < 1 || key > entity.BoardSize {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidCell, key)
	}

	if that.Board.Cell(key) != entity.EmptyCell {
		return fmt.Errorf("%w: %d", apperror.ErrCellOccupied, key)
	}

	that.Board.Set(key, that.ActivePlayer().Mark)
	that.updateStatus()

	return nil
}

func (that *Round) updateStatus() {
	switch {
	case that.Board.HasWinner():
		that.Winner = that.Board.WinningMark()
		that.Status = StatusFinished
	case that.Board.IsFull():
		that.Winner = MarkTie
		that.Status = StatusFinished
	default:
		that.active = 1 - that.active
	}
}

func (that *Round) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Round) IsDraw() bool {
	return that.Winner == MarkTie
}

// WinningPlayer - the player holding the winning mark, or nil on a draw or
// an unfinished round.
func (that *Round) WinningPlayer() *entity.Player {
	for _, player := range that.Players {
		if player.Mark == that.Winner {
			return player
		}
	}

	return nil
}
