package hashfunc

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Hashable - Capability that user defined key types must expose to be usable in a hash table backend when
// no built-in hash rule covers their kind and no custom Hasher is supplied.
type Hashable interface {
	// Hash - Returns a deterministic hash value for the key. Equal keys must return equal values.
	Hash() uint32
}

// Hasher - A hash function for keys of type K. The value returned is the raw hash, bucket selection
// (finalizing and reducing to a bin index) is done by the hash table itself.
type Hasher[K any] func(key K) uint32

var hashableType = reflect.TypeOf((*Hashable)(nil)).Elem()

// For - Resolves the hash function to use for key type K. Types implementing Hashable use their Hash method,
// otherwise built-in rules are picked by the kind of K (so named types such as "type UserID int64" are covered):
//   - integers and characters hash to themselves, 64-bit values outside the 32-bit range are folded
//   - strings use String, a base-31 polynomial over the string bytes
//   - floats hash their IEEE 754 bits, booleans hash to 0 or 1
//
// It returns an error for any other key type, in which case a custom Hasher has to be supplied.
func For[K comparable]() (hasher Hasher[K], err error) {
	t := reflect.TypeOf((*K)(nil)).Elem()

	if t.Implements(hashableType) {
		hasher = func(key K) uint32 { return any(key).(Hashable).Hash() }
		return
	}

	switch t.Kind() {
	case reflect.Int8:
		hasher = func(key K) uint32 { return uint32(*(*int8)(unsafe.Pointer(&key))) }
	case reflect.Int16:
		hasher = func(key K) uint32 { return uint32(*(*int16)(unsafe.Pointer(&key))) }
	case reflect.Int32:
		hasher = func(key K) uint32 { return uint32(*(*int32)(unsafe.Pointer(&key))) }
	case reflect.Int64:
		hasher = func(key K) uint32 { return Integer(*(*int64)(unsafe.Pointer(&key))) }
	case reflect.Int:
		hasher = func(key K) uint32 { return Integer(*(*int)(unsafe.Pointer(&key))) }
	case reflect.Uint8:
		hasher = func(key K) uint32 { return uint32(*(*uint8)(unsafe.Pointer(&key))) }
	case reflect.Uint16:
		hasher = func(key K) uint32 { return uint32(*(*uint16)(unsafe.Pointer(&key))) }
	case reflect.Uint32:
		hasher = func(key K) uint32 { return *(*uint32)(unsafe.Pointer(&key)) }
	case reflect.Uint64:
		hasher = func(key K) uint32 { return Integer(*(*uint64)(unsafe.Pointer(&key))) }
	case reflect.Uint:
		hasher = func(key K) uint32 { return Integer(*(*uint)(unsafe.Pointer(&key))) }
	case reflect.Uintptr:
		hasher = func(key K) uint32 { return Integer(*(*uintptr)(unsafe.Pointer(&key))) }
	case reflect.String:
		hasher = func(key K) uint32 { return String(*(*string)(unsafe.Pointer(&key))) }
	case reflect.Float32:
		hasher = func(key K) uint32 { return math.Float32bits(*(*float32)(unsafe.Pointer(&key))) }
	case reflect.Float64:
		hasher = func(key K) uint32 { return Integer(math.Float64bits(*(*float64)(unsafe.Pointer(&key)))) }
	case reflect.Bool:
		hasher = func(key K) uint32 {
			if *(*bool)(unsafe.Pointer(&key)) {
				return 1
			}
			return 0
		}
	default:
		err = fmt.Errorf("no built-in hash rule for key type %s, implement hashfunc.Hashable or supply a hash function", t)
	}

	return
}

// Integer - Identity hash for integers. Any value representable in 32 bits (int32 range for signed types,
// below 1<<32 for unsigned ones) hashes to its 32-bit two's complement pattern. Only wider values are folded so
// that the upper half still contributes.
func Integer[T constraints.Integer](key T) uint32 {
	var one T = 1
	if -one < 0 {
		if v := int64(key); v == int64(int32(v)) {
			return uint32(v)
		}
	} else if x := uint64(key); x < 1<<32 {
		return uint32(x)
	}

	x := uint64(key)
	return uint32(x ^ x>>32)
}

// String - Base-31 polynomial accumulator over the bytes of key (h = 31*h + c, left to right, zero seed).
func String(key string) uint32 {
	var h uint32
	for i := 0; i < len(key); i++ {
		h = 31*h + uint32(key[i])
	}
	return h
}

// XXHash - Alternative string hash using xxhash64 folded to 32 bits. It can be supplied as a custom hash function
// when string keys share long common prefixes that make the polynomial hash cluster.
func XXHash(key string) uint32 {
	h := xxhash.Sum64String(key)
	return uint32(h ^ h>>32)
}
