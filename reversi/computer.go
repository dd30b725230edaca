package reversi

// CountFlips returns how many opponent stones a stone at (row, col) would capture for the
// player to move. It does not check that the square is empty.
func (s GameState) CountFlips(row, col int) int {
	total := 0
	for _, d := range directions {
		total += s.walk(row, col, d[0], d[1], s.Turn)
	}
	return total
}

// BestMove picks the legal move capturing the most stones. Squares are scanned row by
// row, column by column, and a later move only replaces the current best when it captures
// strictly more, so ties go to the lowest row and then the lowest column.
func (s GameState) BestMove() (Move, bool) {
	var best Move
	found := false
	maxFlips := 0

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if !s.IsValidMove(row, col) {
				continue
			}
			if flips := s.CountFlips(row, col); flips > maxFlips {
				maxFlips = flips
				best = Move{Row: row, Col: col}
				found = true
			}
		}
	}
	return best, found
}

// ComputerMove plays BestMove for the player to move. Without a legal move the state is
// returned unchanged.
func (s GameState) ComputerMove() GameState {
	move, ok := s.BestMove()
	if !ok {
		return s
	}
	next, err := s.Apply(move.Row, move.Col)
	if err != nil {
		return s
	}
	return next
}
