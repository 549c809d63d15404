package session

import (
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

// Tournament - repeated rounds between the same two players, first to the
// target win count. Draws score nothing; the starting player alternates
// every round.
type Tournament struct {
	Players    [2]*entity.Player
	TargetWins int

	wins       map[string]int
	rounds     int
	firstMover int
}

func NewTournament(players [2]*entity.Player, targetWins int) *Tournament {
	return &Tournament{
		Players:    players,
		TargetWins: targetWins,
		wins:       make(map[string]int, 2),
	}
}

// NextRound - starts a fresh round; whoever went second last round goes
// first.
func (that *Tournament) NextRound() *Round {
	round := NewRound(that.Players, that.firstMover)
	that.firstMover = 1 - that.firstMover

	return round
}

// RecordResult - tallies a finished round.
func (that *Tournament) RecordResult(round *Round) {
	that.rounds++

	if winner := round.WinningPlayer(); winner != nil {
		that.wins[winner.ID]++
	}
}

func (that *Tournament) Wins(player *entity.Player) int {
	return that.wins[player.ID]
}

func (that *Tournament) RoundsPlayed() int {
	return that.rounds
}

// Winner - the player who reached the target win count, or nil while the
// tournament is still running.
func (that *Tournament) Winner() *entity.Player {
	for _, player := range that.Players {
		if that.wins[player.ID] >= that.TargetWins {
			return player
		}
	}

	return nil
}

func (that *Tournament) IsFinished() bool {
	return that.Winner() != nil
}
