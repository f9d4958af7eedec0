package hangar

import (
	"errors"
	"testing"
	"testing/quick"
)

func TestSparseSetBindGet(t *testing.T) {
	tests := []struct {
		name string
		key  EntityID
		want int
	}{
		{"first key", 0, 42},
		{"sparse key leaves a gap", 7, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSparseSet[int]()
			if err := s.Bind(tt.key, tt.want); err != nil {
				t.Fatalf("Bind() error = %v", err)
			}
			got := s.Get(tt.key)
			if !got.Present() {
				t.Fatalf("Get() absent after Bind()")
			}
			if *got.MustValue() != tt.want {
				t.Errorf("Get() = %d, want %d", *got.MustValue(), tt.want)
			}
		})
	}
}

func TestSparseSetBindInvalidKey(t *testing.T) {
	s := NewSparseSet[int]()
	err := s.Bind(NullID, 1)
	if !errors.Is(err, InvalidKey) {
		t.Fatalf("Bind(NullID) error = %v, want InvalidKey", err)
	}
	if s.Has(NullID) {
		t.Errorf("Has(NullID) = true after rejected Bind")
	}
}

func TestSparseSetBindOverwriteKeepsDenseSize(t *testing.T) {
	s := NewSparseSet[int]()
	_ = s.Bind(3, 1)
	_ = s.Bind(3, 2)

	if len(s.dense) != 1 {
		t.Fatalf("dense has %d entries after overwrite, want 1", len(s.dense))
	}
	got := s.Get(3)
	if *got.MustValue() != 2 {
		t.Errorf("Get(3) = %d, want 2", *got.MustValue())
	}
}

func TestSparseSetUnbindSwapRemove(t *testing.T) {
	s := NewSparseSet[string]()
	_ = s.Bind(1, "a")
	_ = s.Bind(2, "b")
	_ = s.Bind(3, "c")

	removed := s.Unbind(2)
	if !removed.Present() || removed.MustValue() != "b" {
		t.Fatalf("Unbind(2) = %#v, want present \"b\"", removed)
	}
	if s.Has(2) {
		t.Errorf("Has(2) = true after Unbind")
	}
	if !s.Has(1) || !s.Has(3) {
		t.Errorf("Unbind(2) disturbed unrelated keys")
	}
	if got := s.Get(3); !got.Present() || *got.MustValue() != "c" {
		t.Errorf("Get(3) = %#v after swap-remove, want present \"c\"", got)
	}
	if !s.checkInvariants() {
		t.Errorf("sparse/dense bijection broken after Unbind")
	}
}

func TestSparseSetUnbindAbsentIsNoop(t *testing.T) {
	s := NewSparseSet[int]()
	_ = s.Bind(5, 1)

	got := s.Unbind(99)
	if got.Present() {
		t.Errorf("Unbind(99) = %#v, want absent", got)
	}
	if !s.Has(5) {
		t.Errorf("unrelated key lost after no-op Unbind")
	}
}

func TestSparseSetUnbindLastElement(t *testing.T) {
	s := NewSparseSet[int]()
	_ = s.Bind(1, 10)

	got := s.Unbind(1)
	if !got.Present() || got.Value() != 10 {
		t.Fatalf("Unbind(1) = %#v, want present 10", got)
	}
	if len(s.dense) != 0 || len(s.data) != 0 {
		t.Errorf("dense/data not emptied after removing sole element")
	}
}

// TestSparseSetInvariantsUnderRandomOps checks that an arbitrary sequence of
// Bind/Unbind calls, restricted to a small key space, never breaks the
// sparse<->dense bijection.
func TestSparseSetInvariantsUnderRandomOps(t *testing.T) {
	f := func(ops []uint8) bool {
		s := NewSparseSet[uint8]()
		for _, op := range ops {
			key := EntityID((op >> 1) % 16)
			if op%2 == 0 {
				_ = s.Bind(key, op)
			} else {
				s.Unbind(key)
			}
			if !s.checkInvariants() {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestSparseSetHasOnEmptySet(t *testing.T) {
	s := NewSparseSet[int]()
	if s.Has(0) {
		t.Errorf("Has(0) on empty set = true")
	}
	if s.Has(NullID) {
		t.Errorf("Has(NullID) = true")
	}
}
