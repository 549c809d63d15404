package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

// Observer - presentation hooks fired as a session progresses. The session
// never depends on what observers do with them.
type Observer interface {
	RoundStarted(tournament *Tournament, round *Round)
	MoveApplied(round *Round, player *entity.Player, key int)
	RoundFinished(tournament *Tournament, round *Round)
	TournamentFinished(tournament *Tournament)
}

// NopObserver - an Observer that ignores every event.
type NopObserver struct{}

func (NopObserver) RoundStarted(*Tournament, *Round)        {}
func (NopObserver) MoveApplied(*Round, *entity.Player, int) {}
func (NopObserver) RoundFinished(*Tournament, *Round)       {}
func (NopObserver) TournamentFinished(*Tournament)          {}

// Session - alternates turns between the two move sources, applies their
// moves to the live board and detects end of round, until the tournament is
// decided.
type Session struct {
	logger *slog.Logger

	tournament *Tournament
	sources    [2]MoveSource
	observer   Observer
}

func New(logger *slog.Logger, tournament *Tournament, sources [2]MoveSource, observer Observer) *Session {
	if observer == nil {
		observer = NopObserver{}
	}

	return &Session{
		logger:     logger.With("component", "session"),
		tournament: tournament,
		sources:    sources,
		observer:   observer,
	}
}

// Run - plays rounds until the tournament is decided or ctx is canceled.
func (that *Session) Run(ctx context.Context) error {
	for !that.tournament.IsFinished() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("session interrupted: %w", err)
		}

		round := that.tournament.NextRound()
		that.observer.RoundStarted(that.tournament, round)

		if err := that.playRound(ctx, round); err != nil {
			return err
		}

		that.tournament.RecordResult(round)
		that.observer.RoundFinished(that.tournament, round)

		that.logger.Info("round finished",
			"roundID", round.ID,
			"winner", round.Winner,
			"roundsPlayed", that.tournament.RoundsPlayed(),
		)
	}

	that.observer.TournamentFinished(that.tournament)
	that.logger.Info("tournament finished", "winner", that.tournament.Winner().Name)

	return nil
}

func (that *Session) playRound(ctx context.Context, round *Round) error {
	for !round.IsFinished() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("round interrupted: %w", err)
		}

		player := round.ActivePlayer()
		source := that.sources[round.ActiveIndex()]

		key, err := source.NextMove(ctx, round.Board, player, round.InactivePlayer())
		if err != nil {
			return fmt.Errorf("failed to get move from source: %w", err)
		}

		if err = round.ApplyMove(key); err != nil {
			return fmt.Errorf("failed to apply move: %w", err)
		}

		that.observer.MoveApplied(round, player, key)
	}

	return nil
}
