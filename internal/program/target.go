package program

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/tidwall/hashmap"
	"lukechampine.com/uint128"

	"github.com/cryptonstudio/crypton-ordered-set/types/avl"
)

// KeyKind selects element type of the set programs are run against.
type KeyKind string

const (
	KeyKindInt     KeyKind = "int"
	KeyKindString  KeyKind = "string"
	KeyKindUint128 KeyKind = "uint128"
)

// ErrUnknownKeyKind is returned for unsupported key kinds.
var ErrUnknownKeyKind = errors.New("unknown key kind")

// ParseKeyKind converts a name into KeyKind.
func ParseKeyKind(name string) (KeyKind, error) {
	switch kind := KeyKind(name); kind {
	case KeyKindInt, KeyKindString, KeyKindUint128:
		return kind, nil
	}
	return "", errors.Wrapf(ErrUnknownKeyKind, "%q", name)
}

// Counters holds results of applied instructions.
type Counters struct {
	Inserted int64 // inserts which added an element
	Erased   int64 // erases which removed an element
	Found    int64 // finds and lower bounds which returned an element
	Missed   int64 // finds and lower bounds which returned End
	Cleared  int64
}

// Target is a set of some key kind programs can be run against.
type Target interface {
	// Check runs the program verifying results and tree invariants after every instruction.
	Check(p *Program) error
	// Apply runs the program without any verification.
	Apply(p *Program) Counters
	Size() int
	Height() int
}

// NewTarget creates an empty set of the given key kind. Handler may be nil.
func NewTarget(kind KeyKind, handler avl.Handler) (Target, error) {
	switch kind {
	case KeyKindInt:
		return newTarget(
			func(a, b int64) bool { return a < b },
			func(k int64) int64 { return k },
			handler,
		), nil
	case KeyKindString:
		// Zero padding keeps lexicographic order equal to numeric one
		return newTarget(
			func(a, b string) bool { return a < b },
			func(k int64) string { return fmt.Sprintf("%020d", k) },
			handler,
		), nil
	case KeyKindUint128:
		return newTarget(
			func(a, b uint128.Uint128) bool { return a.Cmp(b) < 0 },
			func(k int64) uint128.Uint128 { return uint128.New(uint64(k), uint64(k)) },
			handler,
		), nil
	}
	return nil, errors.Wrapf(ErrUnknownKeyKind, "%q", kind)
}

type target[K any] struct {
	set    *avl.Set[K]
	less   func(a, b K) bool
	encode func(int64) K
}

func newTarget[K any](less func(a, b K) bool, encode func(int64) K, handler avl.Handler) *target[K] {
	set := avl.NewSet[K](less)
	set.SetHandler(handler)
	return &target[K]{set: set, less: less, encode: encode}
}

func (t *target[K]) Size() int {
	return t.set.Size()
}

func (t *target[K]) Height() int {
	return t.set.Height()
}

func (t *target[K]) Apply(p *Program) (c Counters) {
	for _, ins := range p.Instructions {
		key := t.encode(ins.Key)
		switch ins.Op {
		case OpInsert:
			if t.set.Insert(key) {
				c.Inserted++
			}
		case OpErase:
			if t.set.Erase(key) {
				c.Erased++
			}
		case OpFind, OpLowerBound:
			var it avl.Iterator[K]
			if ins.Op == OpFind {
				it = t.set.Find(key)
			} else {
				it = t.set.LowerBound(key)
			}
			if it.IsEnd() {
				c.Missed++
			} else {
				c.Found++
			}
		case OpClear:
			t.set.Clear()
			c.Cleared++
		}
	}
	return
}

func (t *target[K]) Check(p *Program) error {
	oracle := hashmap.New[int64, struct{}](0)
	for i, ins := range p.Instructions {
		if ins.Op == OpClear {
			t.set.Clear()
			oracle = hashmap.New[int64, struct{}](0)
		} else if err := t.step(oracle, ins); err != nil {
			return errors.Wrapf(err, "instruction %d (%s)", i, ins)
		}
		if t.set.Size() != oracle.Len() {
			return errors.Errorf("instruction %d (%s): size %d, expected %d", i, ins, t.set.Size(), oracle.Len())
		}
		if h, limit := t.set.Height(), MaxHeight(t.set.Size()); h > limit {
			return errors.Errorf("instruction %d (%s): height %d exceeds %d", i, ins, h, limit)
		}
		if err := t.set.Verify(); err != nil {
			return errors.Wrapf(err, "instruction %d (%s)", i, ins)
		}
	}
	return t.compare(oracle)
}

func (t *target[K]) step(oracle *hashmap.Map[int64, struct{}], ins Instruction) error {
	key := t.encode(ins.Key)
	switch ins.Op {
	case OpInsert:
		_, existed := oracle.Set(ins.Key, struct{}{})
		if inserted := t.set.Insert(key); inserted == existed {
			return errors.Errorf("insert returned %t for existing=%t", inserted, existed)
		}
		if !t.set.Contains(key) {
			return errors.New("inserted key is not found")
		}
	case OpErase:
		_, existed := oracle.Delete(ins.Key)
		if erased := t.set.Erase(key); erased != existed {
			return errors.Errorf("erase returned %t for existing=%t", erased, existed)
		}
		if t.set.Contains(key) {
			return errors.New("erased key is still found")
		}
	case OpFind:
		_, existed := oracle.Get(ins.Key)
		if it := t.set.Find(key); it.IsEnd() == existed {
			return errors.Errorf("find returned end=%t for existing=%t", it.IsEnd(), existed)
		}
	case OpLowerBound:
		want, ok := int64(0), false
		oracle.Scan(func(k int64, _ struct{}) bool {
			if k >= ins.Key && (!ok || k < want) {
				want, ok = k, true
			}
			return true
		})
		it := t.set.LowerBound(key)
		if it.IsEnd() != !ok {
			return errors.Errorf("lower bound returned end=%t, expected %t", it.IsEnd(), !ok)
		}
		if ok && !t.equal(it.Value(), t.encode(want)) {
			return errors.Errorf("lower bound returned %v, expected %v", it.Value(), t.encode(want))
		}
	}
	return nil
}

// compare checks that in-order traversal equals sorted oracle keys.
func (t *target[K]) compare(oracle *hashmap.Map[int64, struct{}]) error {
	keys := make([]int64, 0, oracle.Len())
	oracle.Scan(func(k int64, _ struct{}) bool {
		keys = append(keys, k)
		return true
	})
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	values := t.set.Values()
	if len(values) != len(keys) {
		return errors.Errorf("traversal yields %d elements, expected %d", len(values), len(keys))
	}
	for i, k := range keys {
		if !t.equal(values[i], t.encode(k)) {
			return errors.Errorf("traversal position %d holds %v, expected %v", i, values[i], t.encode(k))
		}
	}
	if len(keys) > 0 && !t.equal(t.set.Begin().Value(), t.encode(keys[0])) {
		return errors.Errorf("begin holds %v, expected %v", t.set.Begin().Value(), t.encode(keys[0]))
	}
	return nil
}

func (t *target[K]) equal(a, b K) bool {
	return !t.less(a, b) && !t.less(b, a)
}
