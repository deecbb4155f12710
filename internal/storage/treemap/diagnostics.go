package treemap

import (
	"fmt"
	"io"
	"strings"

	"github.com/gostonefire/kvengine/internal/conf"
	"github.com/gostonefire/kvengine/internal/utils"
)

// TreeMapStat - Path length statistics of the tree
//   - Entries is the total number of entries stored
//   - MaxPathLength is the number of nodes on the longest root to leaf path
//   - AvgPathLength is the average number of nodes from the root to a node, over all nodes
//   - Density is the percentage of entries against the capacity of a complete tree as deep as the average path
type TreeMapStat struct {
	Entries       int
	MaxPathLength int
	AvgPathLength float64
	Density       float64
}

// Stat - Walks through the entire tree and produces a TreeMapStat. The figures are for observation only,
// the tree never rebalances itself.
func (T *TreeMap[K, V]) Stat() (treeMapStat TreeMapStat) {
	treeMapStat.Entries = T.entryCount
	if T.entryCount == 0 {
		return
	}

	var total uint64
	pathLengths(T.root, 0, &treeMapStat.MaxPathLength, &total)

	avg := float32(1.0 / float64(T.entryCount) * float64(total))
	capacity := utils.CompleteTreeCapacity(int(avg))
	treeMapStat.AvgPathLength = float64(avg)
	treeMapStat.Density = 100.0 * float64(T.entryCount) / float64(float32(capacity))

	return
}

// Diagnose - Writes "total of <n> nodes; avg path length is <avg> max is <max> density is <pct>%"
func (T *TreeMap[K, V]) Diagnose(w io.Writer) (err error) {
	stat := T.Stat()
	_, err = fmt.Fprintf(w, "total of %d nodes; avg path length is %.6g max is %d density is %.6g%%\n",
		stat.Entries, stat.AvgPathLength, stat.MaxPathLength, stat.Density)
	return
}

// Print - Pretty prints the tree, one node per line. The root is marked "*-", the first of two children "+-",
// a sole left child "~-" and the last child of a node "`-". Bars connect a first child's siblings across the
// lines of its subtree. Empty children are not printed.
func (T *TreeMap[K, V]) Print(w io.Writer) (err error) {
	if T.root == nil {
		return
	}

	if _, err = fmt.Fprintf(w, "%c- %v\n", conf.RootMarker, T.root.entry); err != nil {
		return
	}
	bars := []byte{' '}
	if err = printNode(w, T.root.left, bars, firstChildMarker(T.root)); err != nil {
		return
	}
	err = printNode(w, T.root.right, bars, conf.LastChildMarker)

	return
}

// printNode - Prints n and its subtree, prefixed by the bars of its ascendants and its own marker
func printNode[K comparable, V any](w io.Writer, n *node[K, V], bars []byte, marker byte) (err error) {
	if n == nil {
		return
	}

	var line strings.Builder
	line.WriteByte(bars[0])
	for _, b := range bars[1:] {
		line.WriteString("  ")
		line.WriteByte(b)
	}
	line.WriteString("  ")
	line.WriteByte(marker)
	if _, err = fmt.Fprintf(w, "%s- %v\n", line.String(), n.entry); err != nil {
		return
	}

	bar := conf.ContinuationBar
	if marker == conf.LastChildMarker || marker == conf.SoleChildMarker {
		bar = ' '
	}
	bars = append(bars, bar)
	if err = printNode(w, n.left, bars, firstChildMarker(n)); err != nil {
		return
	}
	err = printNode(w, n.right, bars, conf.LastChildMarker)

	return
}

// firstChildMarker - Marker for the left child of n, depending on whether it has a sibling
func firstChildMarker[K comparable, V any](n *node[K, V]) byte {
	if n.left != nil && n.right != nil {
		return conf.FirstOfTwoMarker
	}
	return conf.SoleChildMarker
}

// pathLengths - Accumulates the depth of every node below n into total and tracks the deepest one in maxDepth
func pathLengths[K comparable, V any](n *node[K, V], depth int, maxDepth *int, total *uint64) {
	if n == nil {
		return
	}

	depth++
	*total += uint64(depth)
	if depth > *maxDepth {
		*maxDepth = depth
	}
	pathLengths(n.left, depth, maxDepth, total)
	pathLengths(n.right, depth, maxDepth, total)
}

// Height - Returns the number of nodes on the longest root to leaf path, zero for an empty tree
func (T *TreeMap[K, V]) Height() int {
	return T.Stat().MaxPathLength
}
