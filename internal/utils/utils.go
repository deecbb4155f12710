package utils

import (
	"fmt"
	"io"

	"github.com/gostonefire/kvengine/model"
)

// PrintRange - Writes all entries from first up to (not including) last to w, placing separator between each pair
// of entries. The first cursor is advanced in the process.
func PrintRange[K comparable, V any](w io.Writer, first, last model.Cursor[K, V], separator string) (err error) {
	var entry model.Entry[K, V]
	for i := 0; !first.Equal(last); i++ {
		entry, err = first.Elem()
		if err != nil {
			return
		}
		if i > 0 {
			if _, err = io.WriteString(w, separator); err != nil {
				return
			}
		}
		if _, err = fmt.Fprint(w, entry); err != nil {
			return
		}
		if err = first.Next(); err != nil {
			return
		}
	}

	return
}

// CompleteTreeCapacity - Returns the number of nodes a perfectly balanced binary tree holds when all levels
// above depth are full, i.e. 2^0 + 2^1 + ... + 2^(depth-1).
func CompleteTreeCapacity(depth int) uint64 {
	var capacity uint64
	for i := 0; i < depth; i++ {
		capacity += 1 << i
	}
	return capacity
}
