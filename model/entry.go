package model

import "fmt"

// Entry - A key/value pair, the unit stored by both backends. Equality and ordering are defined over Key only.
// Entries are owned by the chain or tree node holding them and are copied, never shared, between containers.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// String - Renders the entry as "key: value", or just "key" when the value is the set placeholder struct{}
func (E Entry[K, V]) String() string {
	if _, ok := any(E.Value).(struct{}); ok {
		return fmt.Sprint(E.Key)
	}
	return fmt.Sprintf("%v: %v", E.Key, E.Value)
}
