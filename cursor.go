package hangar

// Cursor is a stateful, restartable walk over a Query's matches, for
// callers that want imperative Next()/CurrentEntity() iteration instead of
// the Tuples1..4 slices or EntitiesWithSeq's range-over-func form.
type Cursor struct {
	query *Query
	reg   *Registry

	ids         []EntityID
	index       int
	initialized bool
	exhausted   bool
}

// NewCursor returns a Cursor over q's matches against r, evaluated lazily
// on the first Next, RemainingMatched or TotalMatched call.
func NewCursor(r *Registry, q *Query) *Cursor {
	return &Cursor{query: q, reg: r}
}

// Next advances the cursor and reports whether a match remains. Call
// CurrentEntity to read it.
func (c *Cursor) Next() bool {
	if !c.initialized {
		c.initialize()
	}
	if c.index < len(c.ids) {
		c.index++
		return true
	}
	c.exhausted = true
	return false
}

func (c *Cursor) initialize() {
	if c.initialized {
		return
	}
	c.ids = c.query.Run(c.reg)
	c.index = 0
	c.initialized = true
}

// Reset rewinds the cursor so the next Next call re-evaluates the query
// from the beginning, picking up any binds or kills made since the last
// pass.
func (c *Cursor) Reset() {
	c.index = 0
	c.initialized = false
	c.exhausted = false
	c.ids = nil
}

// CurrentEntity returns the id Next last advanced onto. Calling it before
// any successful Next, or after Next has returned false, returns NullID.
func (c *Cursor) CurrentEntity() EntityID {
	if !c.initialized || c.index == 0 || c.exhausted {
		return NullID
	}
	return c.ids[c.index-1]
}

// RemainingMatched reports how many matches are left after the current
// position.
func (c *Cursor) RemainingMatched() int {
	if !c.initialized {
		c.initialize()
	}
	return len(c.ids) - c.index
}

// TotalMatched reports the total number of entities the query matched,
// evaluating it if this is the first call.
func (c *Cursor) TotalMatched() int {
	if !c.initialized {
		c.initialize()
	}
	return len(c.ids)
}
