package crt

// NoSuchElement - Custom error to inform that a key (or position) addressed by an operation is not present
type NoSuchElement struct {
	msg string
}

// NewNoSuchElement - Returns a NoSuchElement error carrying the name of the failing operation
func NewNoSuchElement(op string) NoSuchElement {
	return NoSuchElement{msg: op}
}

// Error - Used to notify that no element was found
func (E NoSuchElement) Error() string {
	if E.msg == "" {
		return "no such element"
	}
	return "no such element: " + E.msg
}

// Is - Matches any NoSuchElement regardless of message
func (E NoSuchElement) Is(target error) bool {
	_, ok := target.(NoSuchElement)
	return ok
}

// EmptyCollection - Custom error to inform that front/back/pop style access was made on an empty collection
type EmptyCollection struct {
	msg string
}

// NewEmptyCollection - Returns an EmptyCollection error carrying the name of the failing operation
func NewEmptyCollection(op string) EmptyCollection {
	return EmptyCollection{msg: op}
}

// Error - Used to notify that the collection is empty
func (E EmptyCollection) Error() string {
	if E.msg == "" {
		return "empty collection"
	}
	return "empty collection: " + E.msg
}

// Is - Matches any EmptyCollection regardless of message
func (E EmptyCollection) Is(target error) bool {
	_, ok := target.(EmptyCollection)
	return ok
}

// InvalidIndex - Custom error to inform that a positional access was made outside [0, size)
type InvalidIndex struct {
	msg string
}

// NewInvalidIndex - Returns an InvalidIndex error carrying the name of the failing operation
func NewInvalidIndex(op string) InvalidIndex {
	return InvalidIndex{msg: op}
}

// Error - Used to notify that an index was out of range
func (I InvalidIndex) Error() string {
	if I.msg == "" {
		return "invalid index"
	}
	return "invalid index: " + I.msg
}

// Is - Matches any InvalidIndex regardless of message
func (I InvalidIndex) Is(target error) bool {
	_, ok := target.(InvalidIndex)
	return ok
}

// InvalidAccess - Custom error to inform that a cursor was read or advanced past its logical end
type InvalidAccess struct {
	msg string
}

// NewInvalidAccess - Returns an InvalidAccess error carrying the name of the failing operation
func NewInvalidAccess(op string) InvalidAccess {
	return InvalidAccess{msg: op}
}

// Error - Used to notify that a cursor was used past its end
func (I InvalidAccess) Error() string {
	if I.msg == "" {
		return "invalid access"
	}
	return "invalid access: " + I.msg
}

// Is - Matches any InvalidAccess regardless of message
func (I InvalidAccess) Is(target error) bool {
	_, ok := target.(InvalidAccess)
	return ok
}
