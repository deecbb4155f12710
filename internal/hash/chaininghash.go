package hash

// SeparateChainingBucketSelector - The internally used bucket selection for the chained hash table. The raw key hash
// is first run through Rehash, so that identity hashed integer keys do not cluster in the low bins, and then reduced
// modulo the current table size.
type SeparateChainingBucketSelector struct {
	tableSize uint32
}

// NewSeparateChainingBucketSelector - Returns a pointer to a new SeparateChainingBucketSelector instance
func NewSeparateChainingBucketSelector(tableSize int) *SeparateChainingBucketSelector {
	bs := &SeparateChainingBucketSelector{}
	bs.SetTableSize(tableSize)
	return bs
}

// SetTableSize - Sets the table size for the bucket selection, it is called every time the hash table grows.
//   - tableSize is the number of bins to distribute over, values below 1 are treated as 1
func (O *SeparateChainingBucketSelector) SetTableSize(tableSize int) {
	if tableSize < 1 {
		tableSize = 1
	}
	O.tableSize = uint32(tableSize)
}

// GetTableSize - Returns the table size the bucket selection is currently distributing over
func (O *SeparateChainingBucketSelector) GetTableSize() int {
	return int(O.tableSize)
}

// BucketNumber - Given the raw hash of a key it returns a bin index between 0 and table size - 1
func (O *SeparateChainingBucketSelector) BucketNumber(h uint32) int {
	return int(Rehash(h) % O.tableSize)
}

// Rehash - Avalanche finalizer based on FastHash. It is deterministic and independent of the table size.
func Rehash(h uint32) uint32 {
	h ^= h >> 11
	h *= 4294967291 // large 32-bit prime
	h ^= h >> 23
	return h
}
