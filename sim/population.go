package sim

import (
	"fmt"
)

// Population is an insertion-ordered collection of active agents keyed by
// uid, plus a side collection holding agents removed after diagnosis.
//
// Iteration order is insertion order (crew first, then guests, in seeding
// sequence) and is semantically significant: the day loop both iterates and
// selects contact targets positionally over this order, so agents mutated
// earlier in a day's pass are visible to agents processed later in the same
// pass. The active collection only shrinks as agents are diagnosed; uids
// are never reused.
type Population struct {
	order   []string
	active  map[string]*Person
	removed map[string]*Person
}

// NewPopulation returns an empty population.
func NewPopulation() *Population {
	return &Population{
		active:  make(map[string]*Person),
		removed: make(map[string]*Person),
	}
}

// Add appends an agent to the active population. Duplicate uids are
// rejected: silently overwriting an agent would corrupt positional
// selection.
func (pop *Population) Add(p *Person) error {
	if _, ok := pop.active[p.UID]; ok {
		return fmt.Errorf("population: duplicate uid %q", p.UID)
	}
	if _, ok := pop.removed[p.UID]; ok {
		return fmt.Errorf("population: uid %q already removed", p.UID)
	}
	pop.order = append(pop.order, p.UID)
	pop.active[p.UID] = p
	return nil
}

// Len returns the number of active agents.
func (pop *Population) Len() int {
	return len(pop.order)
}

// At returns the active agent at position i in insertion order.
func (pop *Population) At(i int) *Person {
	return pop.active[pop.order[i]]
}

// Get returns the active agent with the given uid, or nil.
func (pop *Population) Get(uid string) *Person {
	return pop.active[uid]
}

// Has reports whether uid is in the active population.
func (pop *Population) Has(uid string) bool {
	_, ok := pop.active[uid]
	return ok
}

// RemoveAll moves the listed agents from the active population to the
// removed collection, preserving the relative order of survivors. Removal
// is batched so callers can finish sampling a day's pass before mutating
// the collection.
func (pop *Population) RemoveAll(uids []string) {
	if len(uids) == 0 {
		return
	}
	gone := make(map[string]bool, len(uids))
	for _, uid := range uids {
		if p, ok := pop.active[uid]; ok {
			pop.removed[uid] = p
			delete(pop.active, uid)
			gone[uid] = true
		}
	}
	kept := pop.order[:0]
	for _, uid := range pop.order {
		if !gone[uid] {
			kept = append(kept, uid)
		}
	}
	pop.order = kept
}

// Removed returns the diagnosed agent with the given uid, or nil.
func (pop *Population) Removed(uid string) *Person {
	return pop.removed[uid]
}

// RemovedLen returns the number of removed agents.
func (pop *Population) RemovedLen() int {
	return len(pop.removed)
}

// Merge unions another population's active and removed agents into this
// one, preserving the other's insertion order after this one's. A uid
// collision across populations is an error.
func (pop *Population) Merge(other *Population) error {
	for _, uid := range other.order {
		if err := pop.Add(other.active[uid]); err != nil {
			return err
		}
	}
	for uid, p := range other.removed {
		if _, ok := pop.active[uid]; ok {
			return fmt.Errorf("population: duplicate uid %q", uid)
		}
		if _, ok := pop.removed[uid]; ok {
			return fmt.Errorf("population: duplicate uid %q", uid)
		}
		pop.removed[uid] = p
	}
	return nil
}
