package hangar

import "github.com/bitforge-labs/hangar/internal/invariant"

// Query composes a must-have set and a must-not-have set of component
// types. Build one with Factory.NewQuery, then extract typed result tuples
// with Tuples1..Tuples4 (or just the matching ids via Run, when the caller
// only needs identity).
type Query struct {
	mustHave []ComponentKey
	mustNot  []ComponentKey
}

// And adds keys to the must-have set.
func (q *Query) And(keys ...ComponentKey) *Query {
	q.mustHave = append(q.mustHave, keys...)
	return q
}

// Not adds keys to the must-not-have set.
func (q *Query) Not(keys ...ComponentKey) *Query {
	q.mustNot = append(q.mustNot, keys...)
	return q
}

// Run returns the matching entity ids in ascending order. An empty
// must-have set yields an empty result: a query with no positive
// constraints expresses no projection, so there is nothing to emit, even
// though every entity vacuously satisfies "has all zero components".
func (q *Query) Run(r *Registry) []EntityID {
	if len(q.mustHave) == 0 {
		return nil
	}

	have := q.mustHave[0].entitiesWith(r)
	for _, key := range q.mustHave[1:] {
		have = intersectSorted(have, key.entitiesWith(r))
	}
	for _, key := range q.mustNot {
		have = subtractSorted(have, key.entitiesWith(r))
	}
	return have
}

// intersectSorted returns the sorted intersection of two ascending,
// duplicate-free id slices.
func intersectSorted(a, b []EntityID) []EntityID {
	out := make([]EntityID, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// subtractSorted returns a \ b for sorted, duplicate-free id slices.
func subtractSorted(a, b []EntityID) []EntityID {
	out := make([]EntityID, 0, len(a))
	i, j := 0, 0
	for i < len(a) {
		for j < len(b) && b[j] < a[i] {
			j++
		}
		if j < len(b) && b[j] == a[i] {
			i++
			continue
		}
		out = append(out, a[i])
		i++
	}
	return out
}

// Result1 through Result4 carry a matched entity id plus guaranteed-present
// references to its must-have components.
type Result1[A any] struct {
	ID EntityID
	A  *A
}

type Result2[A, B any] struct {
	ID EntityID
	A  *A
	B  *B
}

type Result3[A, B, C any] struct {
	ID EntityID
	A  *A
	B  *B
	C  *C
}

type Result4[A, B, C, D any] struct {
	ID EntityID
	A  *A
	B  *B
	C  *C
	D  *D
}

// Tuples1 runs q and pairs each surviving id with its A component. Each
// id in q's must-have set is guaranteed present; a missing reference is a
// programmer bug (e.g. an unbind racing the query on a single-threaded
// caller, which is itself a misuse of the concurrency model) and aborts.
func Tuples1[A any](r *Registry, q *Query) []Result1[A] {
	ids := q.Run(r)
	out := make([]Result1[A], 0, len(ids))
	for _, id := range ids {
		a := Get[A](r, id)
		invariant.That(a.Present(), "hangar: must-have component A missing for queried entity %d", id)
		out = append(out, Result1[A]{ID: id, A: a.MustValue()})
	}
	return out
}

// Tuples2 is Tuples1 for two must-have component types.
func Tuples2[A, B any](r *Registry, q *Query) []Result2[A, B] {
	ids := q.Run(r)
	out := make([]Result2[A, B], 0, len(ids))
	for _, id := range ids {
		a, b := Get[A](r, id), Get[B](r, id)
		invariant.That(a.Present() && b.Present(), "hangar: must-have component missing for queried entity %d", id)
		out = append(out, Result2[A, B]{ID: id, A: a.MustValue(), B: b.MustValue()})
	}
	return out
}

// Tuples3 is Tuples1 for three must-have component types.
func Tuples3[A, B, C any](r *Registry, q *Query) []Result3[A, B, C] {
	ids := q.Run(r)
	out := make([]Result3[A, B, C], 0, len(ids))
	for _, id := range ids {
		a, b, c := Get[A](r, id), Get[B](r, id), Get[C](r, id)
		invariant.That(a.Present() && b.Present() && c.Present(),
			"hangar: must-have component missing for queried entity %d", id)
		out = append(out, Result3[A, B, C]{ID: id, A: a.MustValue(), B: b.MustValue(), C: c.MustValue()})
	}
	return out
}

// Tuples4 is Tuples1 for four must-have component types.
func Tuples4[A, B, C, D any](r *Registry, q *Query) []Result4[A, B, C, D] {
	ids := q.Run(r)
	out := make([]Result4[A, B, C, D], 0, len(ids))
	for _, id := range ids {
		a, b, c, d := Get[A](r, id), Get[B](r, id), Get[C](r, id), Get[D](r, id)
		invariant.That(a.Present() && b.Present() && c.Present() && d.Present(),
			"hangar: must-have component missing for queried entity %d", id)
		out = append(out, Result4[A, B, C, D]{ID: id, A: a.MustValue(), B: b.MustValue(), C: c.MustValue(), D: d.MustValue()})
	}
	return out
}
