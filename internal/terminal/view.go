package terminal

import (
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/session"
)

// View - prints session progress to the terminal. Implements
// session.Observer.
type View struct {
	out io.Writer
}

func NewView(out io.Writer) *View {
	return &View{out: out}
}

func (that *View) RoundStarted(tournament *session.Tournament, round *session.Round) {
	fmt.Fprintf(that.out, "\n=== Round %d - %s (%s) goes first ===\n",
		tournament.RoundsPlayed()+1, round.ActivePlayer().Name, round.ActivePlayer().Mark)
}

func (that *View) MoveApplied(round *session.Round, player *entity.Player, key int) {
	fmt.Fprintf(that.out, "%s (%s) takes square %d\n", player.Name, player.Mark, key)
}

func (that *View) RoundFinished(tournament *session.Tournament, round *session.Round) {
	fmt.Fprintf(that.out, "\n%s\n", Render(round.Board))

	if round.IsDraw() {
		fmt.Fprintln(that.out, "It's a draw.")
	} else {
		winner := round.WinningPlayer()
		fmt.Fprintf(that.out, "%s (%s) wins the round!\n", winner.Name, winner.Mark)
	}

	a, b := tournament.Players[0], tournament.Players[1]
	fmt.Fprintf(that.out, "Score: %s %d - %d %s (first to %d)\n",
		a.Name, tournament.Wins(a), tournament.Wins(b), b.Name, tournament.TargetWins)
}

func (that *View) TournamentFinished(tournament *session.Tournament) {
	fmt.Fprintf(that.out, "\n%s takes the tournament after %d rounds!\n",
		tournament.Winner().Name, tournament.RoundsPlayed())
}
