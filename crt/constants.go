package crt

// HashTable - Backend using an open-chained hash table, iteration order is unspecified
const HashTable int = 1

// BinaryTree - Backend using an unbalanced binary search tree, iteration follows descending key order
const BinaryTree int = 2

// BackendName - Returns a printable name for a backend identifier
func BackendName(backend int) string {
	switch backend {
	case HashTable:
		return "hash"
	case BinaryTree:
		return "tree"
	default:
		return "unknown"
	}
}
