package game

// MakeIterator makes a generic row-major iterator of a board of colours with m rows and n columns.
// The rows alias the board. The iterator should be handed back with ReturnIterator.
func MakeIterator(board []Colour, m, n int32) (retVal [][]Colour) {
	retVal = borrowIterator(m)
	for i := range retVal {
		start := i * int(n)
		retVal[i] = board[start : start+int(n) : start+int(n)]
	}
	return
}
