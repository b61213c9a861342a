package game

// EvaluateTiles tallies the tiles each side controls and returns the
// normalized differential from the current player's perspective. This is the
// same metric the win evaluator uses, so it points the search straight at
// the victory condition.
func EvaluateTiles(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	human, ai := gs.Board.TileCounts()
	mine, theirs := float64(human), float64(ai)
	if gs.CurrentPlayer == SideAI {
		mine, theirs = theirs, mine
	}
	return normalize(mine, theirs)
}

// EvaluateMobility blends the tile differential with a mobility differential:
// a side with more slide destinations left has more room to keep claiming
// tiles before getting boxed in.
func EvaluateMobility(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	human, ai := gs.Board.TileCounts()
	humanMoves := float64(len(gs.Board.AllMoves(SideHuman)))
	aiMoves := float64(len(gs.Board.AllMoves(SideAI)))

	mine, theirs := float64(human), float64(ai)
	myMoves, theirMoves := humanMoves, aiMoves
	if gs.CurrentPlayer == SideAI {
		mine, theirs = theirs, mine
		myMoves, theirMoves = theirMoves, myMoves
	}
	return (normalize(mine, theirs) + normalize(myMoves, theirMoves)) / 2.0
}

// normalize converts two tallies into a single score between -1 and 1.
func normalize(value, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	// [a/(a+b)-0.5]*2 = (a-b)/(a+b)
	return (value - otherValue) / total
}
