package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardWith(marks map[int]string) *Board {
	board := NewBoard()
	for key, mark := range marks {
		board.Set(key, mark)
	}

	return board
}

func TestBoard_UnmarkedKeys(t *testing.T) {
	t.Run("Returns all keys in order on an empty board", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: asking for the unmarked keys
		keys := board.UnmarkedKeys()

		// Then: every key is returned, ascending
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, keys)
	})

	t.Run("Skips marked keys", func(t *testing.T) {
		// Given: a board with squares 1 and 5 taken
		board := boardWith(map[int]string{1: "X", 5: "O"})

		// When: asking for the unmarked keys
		keys := board.UnmarkedKeys()

		// Then: the taken keys are absent
		assert.Equal(t, []int{2, 3, 4, 6, 7, 8, 9}, keys)
	})
}

func TestBoard_WinningMark(t *testing.T) {
	t.Run("Returns the mark of a completed diagonal", func(t *testing.T) {
		// Given: A holds the 1-5-9 diagonal
		board := boardWith(map[int]string{1: "A", 5: "A", 9: "A"})

		// When: scanning for a winner
		winner := board.WinningMark()

		// Then: A wins and the board is not full
		assert.Equal(t, "A", winner)
		assert.True(t, board.HasWinner())
		assert.False(t, board.IsFull())
	})

	t.Run("Returns no winner on a drawn full board", func(t *testing.T) {
		// Given: a fully marked board with no completed line
		board := boardWith(map[int]string{
			1: "A", 2: "B", 3: "A",
			4: "A", 5: "B", 6: "B",
			7: "B", 8: "A", 9: "A",
		})

		// When: scanning for a winner
		winner := board.WinningMark()

		// Then: there is none and the board is full
		assert.Equal(t, EmptyCell, winner)
		assert.False(t, board.HasWinner())
		assert.True(t, board.IsFull())
	})

	t.Run("Returns no winner on an incomplete line", func(t *testing.T) {
		// Given: two marks on a row with the third cell open
		board := boardWith(map[int]string{1: "X", 2: "X"})

		// When: scanning for a winner
		winner := board.WinningMark()

		// Then: there is none
		assert.Equal(t, EmptyCell, winner)
	})

	t.Run("Finds a winner on every line", func(t *testing.T) {
		for _, line := range WinLines {
			// Given: X holds one full line
			board := boardWith(map[int]string{line[0]: "X", line[1]: "X", line[2]: "X"})

			// Then: X is the winner
			require.Equal(t, "X", board.WinningMark(), "line %v", line)
		}
	})
}

func TestBoard_Clone(t *testing.T) {
	t.Run("Mutating the clone leaves the original unchanged", func(t *testing.T) {
		// Given: a board with one mark and its clone
		board := boardWith(map[int]string{1: "X"})
		clone := board.Clone()

		// When: mutating the clone
		clone.Set(2, "O")

		// Then: the original is untouched and the clone holds both marks
		assert.Equal(t, EmptyCell, board.Cell(2))
		assert.Equal(t, "X", clone.Cell(1))
		assert.Equal(t, "O", clone.Cell(2))
	})
}

func TestBoard_Reset(t *testing.T) {
	t.Run("Empties every cell", func(t *testing.T) {
		// Given: a board with marks on it
		board := boardWith(map[int]string{1: "X", 5: "O", 9: "X"})

		// When: resetting
		board.Reset()

		// Then: every key is unmarked again
		assert.Len(t, board.UnmarkedKeys(), BoardSize)
	})
}
