// Package program generates random sequences of set operations and runs them
// against avl.Set, either checked against a hash set oracle or as a plain
// workload for benchmarking.
package program

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
)

type Op uint8

const (
	OpInsert Op = iota
	OpErase
	OpFind
	OpLowerBound
	OpClear
)

func (op Op) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpErase:
		return "erase"
	case OpFind:
		return "find"
	case OpLowerBound:
		return "lower_bound"
	case OpClear:
		return "clear"
	}
	return "unknown"
}

// Instruction is a single operation applied to a set.
type Instruction struct {
	Op  Op
	Key int64
}

func (i Instruction) String() string {
	if i.Op == OpClear {
		return i.Op.String()
	}
	return fmt.Sprintf("%s %d", i.Op, i.Key)
}

// Program is a sequence of instructions.
type Program struct {
	Instructions []Instruction
}

func (p *Program) String() string {
	var sb strings.Builder
	for i, ins := range p.Instructions {
		fmt.Fprintf(&sb, "%4d: %s\n", i, ins)
	}
	return sb.String()
}

// Generate creates a random program of given size using keys from [0, keySpace).
// Inserts dominate so the set grows, clears are rare.
func Generate(rng *rand.Rand, size int, keySpace int64) *Program {
	p := &Program{Instructions: make([]Instruction, 0, size)}
	if keySpace < 1 {
		keySpace = 1
	}
	for i := 0; i < size; i++ {
		ins := Instruction{Key: rng.Int64N(keySpace)}
		switch r := rng.IntN(100); {
		case r < 50:
			ins.Op = OpInsert
		case r < 75:
			ins.Op = OpErase
		case r < 87:
			ins.Op = OpFind
		case r < 99:
			ins.Op = OpLowerBound
		default:
			ins.Op = OpClear
		}
		p.Instructions = append(p.Instructions, ins)
	}
	return p
}

// MaxHeight returns the upper bound of AVL tree height holding n elements.
func MaxHeight(n int) int {
	return int(math.Ceil(1.44 * math.Log2(float64(n+2))))
}
