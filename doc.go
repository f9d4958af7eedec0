/*
Package hangar provides a sparse-set Entity-Component-System (ECS) registry.

Hangar keeps one contiguous, cache-friendly array per component type (a
"sparse set") instead of grouping entities into archetypes. Binding,
unbinding and lookup are all O(1); iteration over a component type walks its
dense array with no indirection through an entity's full component set.

Core Concepts:

  - EntityID: an integer identifier recycled through an implicit free-list.
  - Component: any value type bound to an entity through a typed sparse set.
  - Registry: owns the entity allocator and one sparse set per bound type.
  - Query: a must-have/must-not-have predicate over component types.

Basic Usage:

	reg := hangar.Factory.NewRegistry()

	e := reg.MakeEntity()
	hangar.Bind(reg, e, Position{X: 1, Y: 2})
	hangar.Bind(reg, e, Velocity{X: 1, Y: 0})

	q := hangar.Factory.NewQuery().And(hangar.Key[Position](), hangar.Key[Velocity]())
	for _, row := range hangar.Tuples2[Position, Velocity](reg, q) {
		row.A.X += row.B.X
		row.A.Y += row.B.Y
	}

Hangar is a standalone core: it has no opinion on rendering, networking,
persistence or system scheduling.
*/
package hangar
