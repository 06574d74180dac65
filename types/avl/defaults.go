package avl

const (
	// defaultReservedNodeSlots specifies initial capacity of the node arena.
	defaultReservedNodeSlots = 64
)
