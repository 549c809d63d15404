package entity

const (
	EmptyCell = ""

	// BoardSize - number of cells on the board, keyed 1..9 row-major.
	BoardSize = 9
)

// WinLines - the 8 fixed winning lines over board keys: rows, then columns,
// then both diagonals.
var WinLines = [8][3]int{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
	{1, 4, 7},
	{2, 5, 8},
	{3, 6, 9},
	{1, 5, 9},
	{3, 5, 7},
}

// Board - holds the 9 cell states of a round. Cells hold EmptyCell or one of
// the two player marks; derived facts (unmarked keys, winner, fullness) are
// always recomputed, never cached.
type Board struct {
	cells [BoardSize]string
}

func NewBoard() *Board {
	return &Board{}
}

// Set - marks the cell at key. No validity check is done here: callers act
// only on keys they took from UnmarkedKeys.
func (that *Board) Set(key int, mark string) {
	that.cells[key-1] = mark
}

// Cell - returns the mark at key, or EmptyCell.
func (that *Board) Cell(key int) string {
	return that.cells[key-1]
}

// UnmarkedKeys - returns the keys still holding EmptyCell, in ascending order.
func (that *Board) UnmarkedKeys() []int {
	keys := make([]int, 0, BoardSize)
	for i, cell := range that.cells {
		if cell == EmptyCell {
			keys = append(keys, i+1)
		}
	}

	return keys
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// WinningMark - scans the 8 winning lines and returns the mark holding a
// completed line, or EmptyCell if none does. Legal alternating play never
// produces two completed lines of different marks.
func (that *Board) WinningMark() string {
	for _, line := range WinLines {
		a, b, c := that.Cell(line[0]), that.Cell(line[1]), that.Cell(line[2])
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

func (that *Board) HasWinner() bool {
	return that.WinningMark() != EmptyCell
}

// Clone - returns an independent copy; search mutates clones, never the live
// board.
func (that *Board) Clone() *Board {
	clone := *that
	return &clone
}

// Reset - empties every cell for the next round.
func (that *Board) Reset() {
	that.cells = [BoardSize]string{}
}
