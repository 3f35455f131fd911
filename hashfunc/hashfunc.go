package hashfunc

// Hasher - Interface that permits a HashMap to work with any key type, given a hash function and an
// equality predicate that agree with each other.
//
// The following is the implementer's responsibility:
//   - Equal(a, b) implies Hash(a) == Hash(b)
//   - Equal(a, a) is true for every a
//   - neither function may depend on state that changes while a key is stored in a map
type Hasher[K any] interface {
	// Hash - Returns the raw 32-bit hash code for key.
	// The code does not need to be well distributed in its lower bits, the map disperses it before
	// using it as an index.
	Hash(key K) uint32

	// Equal - Returns true if a and b are to be considered the same key
	Equal(a, b K) bool
}
