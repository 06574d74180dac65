package avl

import (
	"errors"
)

var (
	ErrorIteratorEnd         = errors.New("iterator is at the end of the set")
	ErrorIteratorInvalidated = errors.New("iterator points to a released tree node")
)

// Errors reported by Verify.
var (
	ErrorOrderViolated = errors.New("tree order is violated")
	ErrorUnbalanced    = errors.New("tree node is unbalanced")
	ErrorAugmentation  = errors.New("tree node height or size is stale")
	ErrorMostLeft      = errors.New("cached most left node is wrong")
	ErrorParentLink    = errors.New("tree node parent link is inconsistent")
)
