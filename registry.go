package hangar

import (
	"iter"
	"reflect"
	"sort"

	iter_util "github.com/TheBitDrifter/util/iter"
	"github.com/rotisserie/eris"
)

// Registry owns the entity allocator and one SparseSet per component type
// ever bound, erased behind erasedStore for uniform purge on KillEntity.
type Registry struct {
	ents   *entities
	stores map[reflect.Type]erasedStore
	logger Logger
}

type factory struct{}

// Factory is the single construction surface for Registry and Query.
var Factory factory

// NewRegistry returns an empty Registry.
func (factory) NewRegistry() *Registry {
	return &Registry{
		ents:   newEntities(),
		stores: make(map[reflect.Type]erasedStore),
		logger: Config.logger,
	}
}

// NewQuery returns an empty Query.
func (factory) NewQuery() *Query {
	return &Query{}
}

// SetLogger replaces this Registry's logger.
func (r *Registry) SetLogger(l Logger) {
	r.logger = l
}

// MakeEntity allocates a fresh or recycled entity id.
func (r *Registry) MakeEntity() EntityID {
	id := r.ents.MakeEntity()
	r.logger.Trace().Uint32("entity", id).Msg("made entity")
	return id
}

// IsAlive reports whether e currently names a live entity.
func (r *Registry) IsAlive(e EntityID) bool {
	return r.ents.Alive(e)
}

// KillEntity marks e dead and purges it from every component store. A
// no-op if e is not alive.
func (r *Registry) KillEntity(e EntityID) {
	if !r.ents.Alive(e) {
		r.logger.Warn().Uint32("entity", e).Msg("kill of entity that is not alive")
		return
	}
	r.ents.KillEntity(e)
	for _, store := range r.stores {
		store.purge(e)
	}
	r.logger.Trace().Uint32("entity", e).Msg("killed entity")
}

// Reset purges every live entity from every component store, as KillEntity
// does, and then returns the allocator to empty.
func (r *Registry) Reset() {
	for id := EntityID(0); id < EntityID(len(r.ents.slots)); id++ {
		if r.ents.Alive(id) {
			for _, store := range r.stores {
				store.purge(id)
			}
		}
	}
	r.ents.reset()
}

// Has reports whether e has a component of type T bound.
func Has[T any](r *Registry, e EntityID) bool {
	store, ok := lookupStoreOf[T](r)
	if !ok {
		return false
	}
	return store.Has(e)
}

// Get returns a read-only reference to e's T component, if any. The
// returned pointer is invalidated by the next Bind[T]/Unbind[T]/KillEntity
// call on this Registry.
func Get[T any](r *Registry, e EntityID) Option[*T] {
	store, ok := lookupStoreOf[T](r)
	if !ok {
		return None[*T]()
	}
	return store.Get(e)
}

// Bind associates e with a T component, constructing the T-store on first
// use. Fails with DeadEntity, without mutating any state, when e is not
// alive; NullID is never alive, so it is reported as DeadEntity too.
func Bind[T any](r *Registry, e EntityID, value T) error {
	if !r.ents.Alive(e) {
		return DeadEntity
	}
	store := storeOf[T](r)
	if err := store.Bind(e, value); err != nil {
		// Only reachable if e == NullID slips past the liveness check above,
		// which Alive never reports true for; kept as defense in depth.
		return eris.Wrapf(err, "bind entity %d", e)
	}
	r.logger.Trace().Uint32("entity", e).Msg("bound component")
	return nil
}

// Unbind removes e's T component, if any, and returns it. Succeeds
// independently of e's liveness: a just-killed entity has already been
// purged from every store, so Unbind on it returns absent in practice.
func Unbind[T any](r *Registry, e EntityID) Option[T] {
	store, ok := lookupStoreOf[T](r)
	if !ok {
		return None[T]()
	}
	return store.Unbind(e)
}

// EntitiesWith returns, in ascending id order, every entity that has a T
// component bound.
func EntitiesWith[T any](r *Registry) []EntityID {
	return iter_util.Collect(EntitiesWithSeq[T](r))
}

// EntitiesWithSeq is the iterator form of EntitiesWith. Each iteration
// copies the T-store's ids and sorts the copy before yielding.
func EntitiesWithSeq[T any](r *Registry) iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		store, ok := lookupStoreOf[T](r)
		if !ok {
			return
		}
		ids := make([]EntityID, len(store.dense))
		copy(ids, store.dense)
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		for _, id := range ids {
			// KillEntity purges every store, so dense ids are live in
			// practice; the check guards a store mutated mid-iteration.
			if !r.ents.Alive(id) {
				continue
			}
			if !yield(id) {
				return
			}
		}
	}
}
