package avl

// Rotation identifies the balance repair applied to a tree node.
type Rotation uint8

const (
	RotationSmallLeft Rotation = iota
	RotationSmallRight
	RotationBigLeft
	RotationBigRight
)

func (r Rotation) String() string {
	switch r {
	case RotationSmallLeft:
		return "small-left"
	case RotationSmallRight:
		return "small-right"
	case RotationBigLeft:
		return "big-left"
	case RotationBigRight:
		return "big-right"
	}
	return "unknown"
}

// Handler receives structural events of a set. All calls are made
// synchronously from the goroutine mutating the set.
//
//go:generate mockgen -destination=mocks/interfaces.go -package=mockavl . Handler
type Handler interface {
	// Called after a new element is linked and the tree is rebalanced.
	OnInsert(size int)
	// Called after an element is removed and the tree is rebalanced.
	OnErase(size int)
	// Called after every rotation.
	OnRotation(kind Rotation)
}
