package game

import "fmt"

// Move is one action a side can take: claiming a start tile during the
// opening phase, or sliding part of a stack during play.
type Move interface {
	isMove()
	String() string
}

// PlaceMove claims the open start tile at board index At.
type PlaceMove struct {
	At int
}

func (PlaceMove) isMove() {}

func (m PlaceMove) String() string {
	return fmt.Sprintf("place@%d", m.At)
}

// StackMove slides Amount sheep from tile From to tile To. MaxAmount records
// the largest legal amount for this from/to pair (the source stack minus the
// one sheep that must stay behind).
type StackMove struct {
	From      int
	To        int
	Amount    int
	MaxAmount int
}

func (StackMove) isMove() {}

func (m StackMove) String() string {
	return fmt.Sprintf("move %d->%d x%d", m.From, m.To, m.Amount)
}
