package conf

// MaxLoadFactor - The hash table grows (doubles its bins) when entries / bins reaches this value after an insert
const MaxLoadFactor int = 4

// InitialBins - Number of bins of a hash table created without an explicit size
const InitialBins int = 16

// GrowthFactor - Multiplier applied to the number of bins when the hash table grows
const GrowthFactor int = 2

// Tree pretty print markers
const (
	// RootMarker - Precedes the root line
	RootMarker byte = '*'
	// FirstOfTwoMarker - Precedes the first of two children
	FirstOfTwoMarker byte = '+'
	// SoleChildMarker - Precedes a left child that has no sibling
	SoleChildMarker byte = '~'
	// LastChildMarker - Precedes the last child on any line
	LastChildMarker byte = '`'
	// ContinuationBar - Drawn under a first of two children while its subtree is printed
	ContinuationBar byte = '|'
)
