package hashtable

import (
	"fmt"

	"github.com/gostonefire/kvengine/crt"
	"github.com/gostonefire/kvengine/hashfunc"
	"github.com/gostonefire/kvengine/internal/chain"
	"github.com/gostonefire/kvengine/internal/conf"
	"github.com/gostonefire/kvengine/internal/hash"
	"github.com/gostonefire/kvengine/model"
	"go.uber.org/zap"
)

// Conf - Is a struct to be passed in the call to NewHashTable and contains configuration that affects
// bucket selection and growth.
//   - InitialBins is the number of bins to start with, zero selects conf.InitialBins
//   - HashFunc is the hash function to use, nil resolves a built-in rule (or the Hashable capability) for K
//   - Logger receives growth events at debug level, nil disables logging
type Conf[K comparable] struct {
	InitialBins int
	HashFunc    hashfunc.Hasher[K]
	Logger      *zap.Logger
}

// bin - Chain of entries whose keys select the same bucket
type bin[K comparable, V any] struct {
	chain.Chain[model.Entry[K, V]]
}

// HashTable - An open hash table. Keys are hashed to one of a number of bins, each bin keeps its entries in a chain
// in insertion order. When the number of entries reaches MaxLoadFactor times the number of bins, the number of bins
// is doubled and every entry is redistributed.
//
// A HashTable is not safe for concurrent use.
type HashTable[K comparable, V any] struct {
	bins           []bin[K, V]
	entryCount     int
	initialBins    int
	hashFunc       hashfunc.Hasher[K]
	bucketSelector *hash.SeparateChainingBucketSelector
	logger         *zap.Logger
}

// HashTableStat - Statistics on the overall usage and distribution over bins
//   - Entries is the total number of entries stored
//   - Bins is the current number of bins
//   - ChainSizes holds at index i the number of bins whose chain has exactly i entries
type HashTableStat struct {
	Entries    int
	Bins       int
	ChainSizes []int
}

// NewHashTable - Returns a new empty hash table.
//   - hashTableConf holds initial bin count, hash function and logger, all optional
//
// It returns:
//   - hashTable is a pointer to the new HashTable
//   - err is a standard error if the configuration is invalid or no hash function could be resolved for K
func NewHashTable[K comparable, V any](hashTableConf Conf[K]) (hashTable *HashTable[K, V], err error) {
	if hashTableConf.InitialBins < 0 {
		err = fmt.Errorf("initial bins must be a positive value or 0 (zero) for default")
		return
	}
	initialBins := hashTableConf.InitialBins
	if initialBins == 0 {
		initialBins = conf.InitialBins
	}

	hashFunc := hashTableConf.HashFunc
	if hashFunc == nil {
		hashFunc, err = hashfunc.For[K]()
		if err != nil {
			return
		}
	}

	logger := hashTableConf.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	hashTable = &HashTable[K, V]{
		bins:           make([]bin[K, V], initialBins),
		initialBins:    initialBins,
		hashFunc:       hashFunc,
		bucketSelector: hash.NewSeparateChainingBucketSelector(initialBins),
		logger:         logger,
	}

	return
}

// Size - Returns the number of entries stored
func (H *HashTable[K, V]) Size() int {
	return H.entryCount
}

// Bins - Returns the current number of bins
func (H *HashTable[K, V]) Bins() int {
	return len(H.bins)
}

// Begin - Returns a cursor at the first entry, or at the end if the table is empty
func (H *HashTable[K, V]) Begin() model.Cursor[K, V] {
	return newIterator(H, 0, H.bins[0].Front())
}

// End - Returns a cursor at the logical end of the table
func (H *HashTable[K, V]) End() model.Cursor[K, V] {
	return &Iterator[K, V]{table: H, binNo: len(H.bins) - 1}
}

// Find - Returns a cursor at the entry with key, or End if there is no such entry
func (H *HashTable[K, V]) Find(key K) model.Cursor[K, V] {
	binNo := H.binFor(key)
	n := H.bins[binNo].findIn(key)
	if n == nil {
		return H.End()
	}

	return newIterator(H, binNo, n)
}

// At - Returns the value stored under key.
// It returns an error of type crt.NoSuchElement if key is not present.
func (H *HashTable[K, V]) At(key K) (value V, err error) {
	n := H.bins[H.binFor(key)].findIn(key)
	if n == nil {
		err = crt.NewNoSuchElement("at")
		return
	}

	value = n.Value.Value
	return
}

// Insert - Updates the value of an existing entry with key, or appends a new entry to its bin. Adding an entry
// may trigger growth, after which entries / bins is below MaxLoadFactor again.
func (H *HashTable[K, V]) Insert(key K, value V) {
	b := &H.bins[H.binFor(key)]
	if n := b.findIn(key); n != nil {
		n.Value.Value = value
		return
	}

	b.PushBack(model.Entry[K, V]{Key: key, Value: value})
	H.entryCount++
	if H.entryCount/len(H.bins) >= conf.MaxLoadFactor {
		H.grow()
	}
}

// Erase - Removes the entry with key.
// It returns an error of type crt.NoSuchElement if key is not present, the table is then left unchanged.
func (H *HashTable[K, V]) Erase(key K) (err error) {
	b := &H.bins[H.binFor(key)]
	n := b.findIn(key)
	if n == nil {
		err = crt.NewNoSuchElement("erase")
		return
	}

	b.Remove(n)
	H.entryCount--

	return
}

// Clone - Returns a deep copy of the table, sharing no bins, chains or entries with the original
func (H *HashTable[K, V]) Clone() *HashTable[K, V] {
	c := &HashTable[K, V]{
		bins:           make([]bin[K, V], len(H.bins)),
		entryCount:     H.entryCount,
		initialBins:    H.initialBins,
		hashFunc:       H.hashFunc,
		bucketSelector: hash.NewSeparateChainingBucketSelector(len(H.bins)),
		logger:         H.logger,
	}
	for i := range H.bins {
		c.bins[i].Chain = *H.bins[i].Clone()
	}

	return c
}

// Clear - Removes all entries and goes back to the initial number of bins
func (H *HashTable[K, V]) Clear() {
	H.bins = make([]bin[K, V], H.initialBins)
	H.bucketSelector.SetTableSize(H.initialBins)
	H.entryCount = 0
}

// BinEntries - Returns copies of the entries in bin binNo, in chain order.
// It returns an error of type crt.InvalidIndex if binNo is outside [0, Bins()).
func (H *HashTable[K, V]) BinEntries(binNo int) (entries []model.Entry[K, V], err error) {
	if binNo < 0 || binNo >= len(H.bins) {
		err = crt.NewInvalidIndex("bin entries")
		return
	}

	entries = make([]model.Entry[K, V], 0, H.bins[binNo].Len())
	iter := H.bins[binNo].Iterator()
	for iter.HasNext() {
		var entry model.Entry[K, V]
		entry, err = iter.Next()
		if err != nil {
			return
		}
		entries = append(entries, entry)
	}

	return
}

// Stat - Walks through all bins and produces a HashTableStat. Bins is the table size bucket selection currently
// distributes over, which always equals the number of bins walked.
func (H *HashTable[K, V]) Stat() (hashTableStat HashTableStat) {
	hashTableStat.Entries = H.entryCount
	hashTableStat.Bins = H.bucketSelector.GetTableSize()
	for i := range H.bins {
		s := H.bins[i].Len()
		for s >= len(hashTableStat.ChainSizes) {
			hashTableStat.ChainSizes = append(hashTableStat.ChainSizes, 0)
		}
		hashTableStat.ChainSizes[s]++
	}

	return
}

// binFor - Returns the bin index for key given the current number of bins
func (H *HashTable[K, V]) binFor(key K) int {
	return H.bucketSelector.BucketNumber(H.hashFunc(key))
}

// grow - Doubles the number of bins. All chains are first drained into one temporary chain, then the entries are
// moved back one by one from its end into their new bins. Entries are moved, never copied, so none can be lost or
// duplicated.
func (H *HashTable[K, V]) grow() {
	allEntries := &chain.Chain[model.Entry[K, V]]{}
	for i := range H.bins {
		allEntries.Concat(&H.bins[i].Chain)
	}

	oldBins := len(H.bins)
	H.bins = make([]bin[K, V], oldBins*conf.GrowthFactor)
	H.bucketSelector.SetTableSize(len(H.bins))
	H.entryCount = 0

	for allEntries.Len() > 0 {
		entry, _ := allEntries.Back()
		_ = allEntries.MoveBackTo(&H.bins[H.binFor(entry.Key)].Chain)
		H.entryCount++
	}

	H.logger.Debug("hash table grown",
		zap.Int("oldBins", oldBins),
		zap.Int("newBins", len(H.bins)),
		zap.Int("entries", H.entryCount),
	)
}

// findIn - Returns the node in the bin holding key, or nil
func (B *bin[K, V]) findIn(key K) *chain.Node[model.Entry[K, V]] {
	return B.Find(func(entry model.Entry[K, V]) bool { return entry.Key == key })
}
