package boardrules

// MakeIterator makes a generic iterator of a board of m rows and n columns. The rows alias the board.
func MakeIterator(board []float32, m, n int) (retVal [][]float32) {
	retVal = borrowIterator(m, n)
	for i := range retVal {
		start := i * n
		retVal[i] = board[start : start+n : start+n]
	}
	return
}
