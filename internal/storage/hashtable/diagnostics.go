package hashtable

import (
	"fmt"
	"io"
)

// Print - Writes one line per bin listing its entries in chain order, formatted as
// "bin <i>: [<entry>], [<entry>]".
func (H *HashTable[K, V]) Print(w io.Writer) (err error) {
	for i := range H.bins {
		if _, err = fmt.Fprintf(w, "bin %d: [", i); err != nil {
			return
		}
		iter := H.bins[i].Iterator()
		for first := true; iter.HasNext(); first = false {
			entry, _ := iter.Next()
			if !first {
				if _, err = io.WriteString(w, "], ["); err != nil {
					return
				}
			}
			if _, err = fmt.Fprint(w, entry); err != nil {
				return
			}
		}
		if _, err = io.WriteString(w, "]\n"); err != nil {
			return
		}
	}

	return
}

// Histogram - Writes the distribution of chain lengths, one line per length with the number of bins having it.
func (H *HashTable[K, V]) Histogram(w io.Writer) (err error) {
	stat := H.Stat()

	_, err = fmt.Fprintf(w, "%d bins total; chain sizes range from 0 to %d:\n", stat.Bins, len(stat.ChainSizes)-1)
	if err != nil {
		return
	}
	for i, n := range stat.ChainSizes {
		if _, err = fmt.Fprintf(w, "%2d: %d\n", i, n); err != nil {
			return
		}
	}

	return
}

// Diagnose - Writes the diagnostics for the hash table, which is its chain length histogram
func (H *HashTable[K, V]) Diagnose(w io.Writer) error {
	return H.Histogram(w)
}
