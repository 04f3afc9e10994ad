package blue

import "slices"

// registry is the deferred-commit ordered set shared by the updater, the
// renderer and the coroutine scheduler. Structural changes requested while
// the live list is being iterated are staged in pending sets and applied only
// at the next commit point, so every live member is visited exactly once per
// cycle no matter when it was registered or unregistered.
//
// pendingAdd keeps both a slice and a set: the set gives O(1) membership, the
// slice preserves registration order so that a later stable sort keeps
// equal-key members in the order they were registered.
type registry[M comparable] struct {
	live          []M
	liveSet       map[M]struct{}
	pendingAdd    []M
	pendingAddSet map[M]struct{}
	pendingRemove map[M]struct{}
	orderDirty    bool
}

func newRegistry[M comparable]() *registry[M] {
	return &registry[M]{
		liveSet:       make(map[M]struct{}),
		pendingAddSet: make(map[M]struct{}),
		pendingRemove: make(map[M]struct{}),
	}
}

// register stages m for addition at the next commit. Registering a member
// that is pending removal cancels the removal instead of re-adding it.
// It returns false for the zero member, for a member that is already live
// (and not pending removal), or for a member already staged for addition.
func (r *registry[M]) register(m M) bool {
	var zero M
	if m == zero {
		return false
	}
	if _, ok := r.liveSet[m]; ok {
		if _, removing := r.pendingRemove[m]; removing {
			delete(r.pendingRemove, m)
			return true
		}
		return false
	}
	if _, ok := r.pendingAddSet[m]; ok {
		return false
	}
	r.pendingAddSet[m] = struct{}{}
	r.pendingAdd = append(r.pendingAdd, m)
	return true
}

// unregister stages m for removal at the next commit. Unregistering a member
// that is pending addition cancels the addition instead of queuing a removal.
// It returns false if m is neither live nor pending addition.
func (r *registry[M]) unregister(m M) bool {
	var zero M
	if m == zero {
		return false
	}
	if r.cancelPending(m) {
		return true
	}
	if _, ok := r.liveSet[m]; !ok {
		return false
	}
	if _, ok := r.pendingRemove[m]; ok {
		return false
	}
	r.pendingRemove[m] = struct{}{}
	return true
}

// cancelPending drops m from the pending-add stage without touching the live
// list. Returns false if m is not pending addition. A cancelled member never
// reaches live, so it never passes through commit's release callback; callers
// that own the member's lifecycle must dispose of it themselves.
func (r *registry[M]) cancelPending(m M) bool {
	if _, ok := r.pendingAddSet[m]; !ok {
		return false
	}
	delete(r.pendingAddSet, m)
	if i := slices.Index(r.pendingAdd, m); i >= 0 {
		r.pendingAdd = slices.Delete(r.pendingAdd, i, i+1)
	}
	return true
}

// commit applies all staged additions and removals. Additions mark the order
// dirty; removals invoke release (if non-nil) once per removed member after
// it has left the live list.
func (r *registry[M]) commit(release func(M)) {
	if len(r.pendingAdd) > 0 {
		for _, m := range r.pendingAdd {
			r.live = append(r.live, m)
			r.liveSet[m] = struct{}{}
		}
		r.pendingAdd = r.pendingAdd[:0]
		clear(r.pendingAddSet)
		r.orderDirty = true
	}

	if len(r.pendingRemove) > 0 {
		r.live = slices.DeleteFunc(r.live, func(m M) bool {
			_, remove := r.pendingRemove[m]
			return remove
		})
		for m := range r.pendingRemove {
			delete(r.liveSet, m)
			if release != nil {
				release(m)
			}
		}
		clear(r.pendingRemove)
	}
}

// ensureSorted stable-sorts the live list if the order is dirty. Callers that
// depend on iteration order must call this after commit and before iterating.
func (r *registry[M]) ensureSorted(cmp func(a, b M) int) {
	if !r.orderDirty {
		return
	}
	slices.SortStableFunc(r.live, cmp)
	r.orderDirty = false
}

// markDirty forces a re-sort on the next ensureSorted. Used when a member's
// order key changed after registration.
func (r *registry[M]) markDirty() {
	r.orderDirty = true
}

// contains reports whether m is live or staged for addition.
func (r *registry[M]) contains(m M) bool {
	if _, ok := r.liveSet[m]; ok {
		_, removing := r.pendingRemove[m]
		return !removing
	}
	_, ok := r.pendingAddSet[m]
	return ok
}

func (r *registry[M]) liveLen() int {
	return len(r.live)
}
