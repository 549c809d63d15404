package terminal

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

// Render - draws the board as a 3x3 grid; unmarked cells show their key
// digit so the prompt and the grid speak the same language.
func Render(board *entity.Board) string {
	cell := func(key int) string {
		if mark := board.Cell(key); mark != entity.EmptyCell {
			return mark
		}

		return string(rune('0' + key))
	}

	var b strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			b.WriteString("---+---+---\n")
		}

		first := row*3 + 1
		b.WriteString(" " + cell(first) + " | " + cell(first+1) + " | " + cell(first+2) + " \n")
	}

	return b.String()
}
