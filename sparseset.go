package hangar

import "github.com/bitforge-labs/hangar/internal/invariant"

// SparseSet is a sparse-set container associating an EntityID key with a
// value of T. It provides O(1) Bind/Unbind/Get/Has, with data packed
// contiguously in dense/data for cache-friendly iteration, at the cost of a
// sparse lookup array indexed by key.
//
// SparseSet is the sole owner of its values until Unbind transfers one to
// the caller, or the set (or its owning Registry) is discarded.
type SparseSet[T any] struct {
	sparse []EntityID // key -> dense index, or NullID
	dense  []EntityID // dense index -> key, in bind order
	data   []T        // dense index -> value, parallel to dense
}

// NewSparseSet returns an empty set.
func NewSparseSet[T any]() *SparseSet[T] {
	return &SparseSet[T]{}
}

// Has reports whether key has a value bound in this set.
func (s *SparseSet[T]) Has(key EntityID) bool {
	return key != NullID && int(key) < len(s.sparse) && s.sparse[key] != NullID
}

// Get returns a read-only reference to the value bound to key. The returned
// pointer is valid only until the next mutating call (Bind/Unbind) on this
// set.
func (s *SparseSet[T]) Get(key EntityID) Option[*T] {
	if !s.Has(key) {
		return None[*T]()
	}
	return Some(&s.data[s.sparse[key]])
}

// Bind associates key with value, constructing a new entry if key has none
// bound yet, or overwriting the existing value otherwise (the dense array
// does not grow on overwrite). Reports InvalidKey for NullID and leaves the
// set unchanged.
func (s *SparseSet[T]) Bind(key EntityID, value T) error {
	if key == NullID {
		return InvalidKey
	}

	if int(key) >= len(s.sparse) {
		s.grow(key)
	}

	if !s.Has(key) {
		s.sparse[key] = EntityID(len(s.dense))
		s.dense = append(s.dense, key)
		s.data = append(s.data, value)
	} else {
		s.data[s.sparse[key]] = value
	}
	if invariant.Enabled {
		invariant.That(s.checkInvariants(), "hangar: sparse/dense bijection broken after Bind(%d)", key)
	}
	return nil
}

// Unbind removes key's association, if any, and returns the value that was
// bound. A second Unbind with no intervening Bind returns an absent Option.
func (s *SparseSet[T]) Unbind(key EntityID) Option[T] {
	if !s.Has(key) {
		return None[T]()
	}

	i := s.sparse[key]
	last := EntityID(len(s.dense) - 1)

	s.dense[i], s.dense[last] = s.dense[last], s.dense[i]
	s.data[i], s.data[last] = s.data[last], s.data[i]

	// Fix the back element's sparse cell before popping; a no-op when i == last.
	s.sparse[s.dense[i]] = i
	s.sparse[key] = NullID

	value := s.data[last]
	s.data = s.data[:last]
	s.dense = s.dense[:last]

	if invariant.Enabled {
		invariant.That(s.checkInvariants(), "hangar: sparse/dense bijection broken after Unbind(%d)", key)
	}
	return Some(value)
}

// purge implements erasedStore: it unbinds key and discards the value.
// Absent keys are a no-op, matching Unbind's semantics.
func (s *SparseSet[T]) purge(key EntityID) {
	s.Unbind(key)
}

// grow extends sparse to hold key, filling new cells with NullID. append
// already grows the backing array geometrically, keeping growth amortized
// O(1).
func (s *SparseSet[T]) grow(key EntityID) {
	from := len(s.sparse)
	for i := from; i <= int(key); i++ {
		s.sparse = append(s.sparse, NullID)
	}
}

// checkInvariants verifies the sparse<->dense bijection. Used by tests and,
// in non-release builds, after every mutating call.
func (s *SparseSet[T]) checkInvariants() bool {
	if len(s.dense) != len(s.data) {
		return false
	}
	for i, key := range s.dense {
		if int(key) >= len(s.sparse) || s.sparse[key] != EntityID(i) {
			return false
		}
	}
	return true
}
