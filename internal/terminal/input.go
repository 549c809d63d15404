package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-arena/internal/engine"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

var ErrInputClosed = errors.New("input stream closed")

// HumanSource - reads the human player's moves from the terminal. Invalid
// input never reaches the session: the loop re-prompts until it has an
// unmarked key. Typing "hint" prints the optimal squares instead of moving.
type HumanSource struct {
	in     *bufio.Scanner
	out    io.Writer
	engine *engine.Engine
}

func NewHumanSource(in io.Reader, out io.Writer, gameEngine *engine.Engine) *HumanSource {
	return &HumanSource{
		in:     bufio.NewScanner(in),
		out:    out,
		engine: gameEngine,
	}
}

func (that *HumanSource) NextMove(ctx context.Context, board *entity.Board, self, opponent *entity.Player) (int, error) {
	fmt.Fprintf(that.out, "\n%s\n", Render(board))

	for {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("input interrupted: %w", err)
		}

		fmt.Fprintf(that.out, "%s (%s), pick a square (or \"hint\"): ", self.Name, self.Mark)

		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return 0, fmt.Errorf("failed to read input: %w", err)
			}

			return 0, ErrInputClosed
		}

		text := strings.TrimSpace(that.in.Text())

		if strings.EqualFold(text, "hint") {
			hints := that.engine.Hints(board, self.Mark, opponent.Mark)
			fmt.Fprintf(that.out, "best squares: %v\n", hints)

			continue
		}

		key, err := strconv.Atoi(text)
		if err != nil || key < 1 || key > entity.BoardSize {
			fmt.Fprintf(that.out, "pick a number from 1 to %d\n", entity.BoardSize)

			continue
		}

		if board.Cell(key) != entity.EmptyCell {
			fmt.Fprintf(that.out, "square %d is taken\n", key)

			continue
		}

		return key, nil
	}
}
