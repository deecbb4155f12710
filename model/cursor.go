package model

// Cursor - Iteration handle over the entries of a container.
//
// A cursor obtained from a container is invalidated by any structural mutation of that container (an insert of a
// new key, which may trigger growth, or any erase). Using an invalidated cursor is a precondition violation and its
// behaviour is undefined, it is not reported as an error.
type Cursor[K comparable, V any] interface {
	// Elem - Returns the entry the cursor is positioned at, or an error of type crt.InvalidAccess at the end.
	Elem() (entry Entry[K, V], err error)

	// Next - Advances the cursor one entry. Advancing a cursor already at the end returns crt.InvalidAccess.
	Next() (err error)

	// Done - Returns true if the cursor is at the logical end of the container.
	Done() bool

	// Equal - Returns true if both cursors are positioned at the same entry, or both are at the end.
	Equal(other Cursor[K, V]) bool
}
