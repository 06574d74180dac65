package main

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/dustin/go-humanize"

	"github.com/cryptonstudio/crypton-ordered-set/types/avl"
)

// Counter collects structural events of a set.
type Counter struct {
	inserts   uint64
	erases    uint64
	rotations [4]uint64
	maxSize   uint64
}

func (c *Counter) OnInsert(size int) {
	atomic.AddUint64(&c.inserts, 1)
	for {
		prev := atomic.LoadUint64(&c.maxSize)
		if uint64(size) <= prev || atomic.CompareAndSwapUint64(&c.maxSize, prev, uint64(size)) {
			return
		}
	}
}

func (c *Counter) OnErase(size int) {
	atomic.AddUint64(&c.erases, 1)
}

func (c *Counter) OnRotation(kind avl.Rotation) {
	if int(kind) < len(c.rotations) {
		atomic.AddUint64(&c.rotations[kind], 1)
	}
}

func (c *Counter) Rotations() uint64 {
	var total uint64
	for i := range c.rotations {
		total += atomic.LoadUint64(&c.rotations[i])
	}
	return total
}

func (c *Counter) PrintStatistics(w io.Writer) {
	fmt.Fprintf(w, "SET HANDLER:\n")
	fmt.Fprintf(w, "Inserts %21s\n", humanize.Comma(int64(c.inserts)))
	fmt.Fprintf(w, "Erases %22s\n", humanize.Comma(int64(c.erases)))
	fmt.Fprintf(w, "Max size %20s\n", humanize.Comma(int64(c.maxSize)))
	for kind := avl.RotationSmallLeft; kind <= avl.RotationBigRight; kind++ {
		fmt.Fprintf(w, "Rotations %-11s %7s\n", kind, humanize.Comma(int64(c.rotations[kind])))
	}
	fmt.Fprintf(w, "Total rotations %13s\n", humanize.Comma(int64(c.Rotations())))
}
