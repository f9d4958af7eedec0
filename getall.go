package hangar

// GetAll1 through GetAll4 retrieve several components of one entity at
// once, componentwise via Get. Go has no variadic heterogeneous tuple, so
// fixed arities cover the overwhelming majority of real call sites;
// callers needing more can chain individual Get calls.

// GetAll1 retrieves a single component, for symmetry with GetAll2..4.
func GetAll1[A any](r *Registry, e EntityID) Option[*A] {
	return Get[A](r, e)
}

// GetAll2 retrieves two components of e.
func GetAll2[A, B any](r *Registry, e EntityID) (Option[*A], Option[*B]) {
	return Get[A](r, e), Get[B](r, e)
}

// GetAll3 retrieves three components of e.
func GetAll3[A, B, C any](r *Registry, e EntityID) (Option[*A], Option[*B], Option[*C]) {
	return Get[A](r, e), Get[B](r, e), Get[C](r, e)
}

// GetAll4 retrieves four components of e.
func GetAll4[A, B, C, D any](r *Registry, e EntityID) (Option[*A], Option[*B], Option[*C], Option[*D]) {
	return Get[A](r, e), Get[B](r, e), Get[C](r, e), Get[D](r, e)
}
