package entity

const (
	BoardSize = 3

	EmptyCell = ""
)

// WinLines - the eight triples of cells that win the game: three rows, three columns, two diagonals.
var WinLines = [8][3]Cell{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

type Cell struct {
	Row    int
	Column int
}

func (that Cell) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Column >= 0 && that.Column < BoardSize
}

// Board - each cell is either EmptyCell or the connection ID of the participant who claimed it.
type Board [BoardSize][BoardSize]string

func (that Board) At(cell Cell) string {
	return that[cell.Row][cell.Column]
}

func (that Board) Occupied() int {
	count := 0
	for _, row := range that {
		for _, value := range row {
			if value != EmptyCell {
				count++
			}
		}
	}

	return count
}

func (that Board) IsFull() bool {
	return that.Occupied() == BoardSize*BoardSize
}

// Result - evaluates the board. The first completed line decides the winner,
// otherwise a full board is a draw.
func (that Board) Result() Outcome {
	for _, line := range WinLines {
		a, b, c := that.At(line[0]), that.At(line[1]), that.At(line[2])
		if a != EmptyCell && a == b && b == c {
			return Won(a)
		}
	}

	if that.IsFull() {
		return Drawn()
	}

	return InProgress()
}
