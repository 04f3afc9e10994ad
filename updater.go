package blue

import (
	"cmp"
	"time"
)

// UpdaterStats provides statistics about the last update pass.
type UpdaterStats struct {
	Live         int
	Updated      int
	LastDuration time.Duration
}

// Updater maintains the active, order-sorted set of updatable components and
// invokes their per-frame update. Registration and removal are deferred to
// the start of the next Update call, so components may freely add or remove
// updatables from inside an update callback.
type Updater struct {
	reg   *registry[Updatable]
	stats UpdaterStats
}

// NewUpdater creates an empty updater.
func NewUpdater() *Updater {
	return &Updater{reg: newRegistry[Updatable]()}
}

// Register stages u for addition at the next Update. Registering an
// updatable that is pending removal cancels the removal. Returns false for
// nil or already-registered members.
func (up *Updater) Register(u Updatable) bool {
	if u == nil {
		return false
	}
	u.base().ensureID()
	return up.reg.register(u)
}

// Unregister stages u for removal at the next Update. Unregistering a
// pending addition cancels it.
func (up *Updater) Unregister(u Updatable) bool {
	if u == nil {
		return false
	}
	return up.reg.unregister(u)
}

// Contains reports whether u is live or staged for addition.
func (up *Updater) Contains(u Updatable) bool {
	if u == nil {
		return false
	}
	return up.reg.contains(u)
}

// ApplyUpdateOrderChanges marks the order dirty so the next Update re-sorts.
// Changing a member's update order key has no effect until this is called.
func (up *Updater) ApplyUpdateOrderChanges() {
	up.reg.markDirty()
}

// Update applies pending changes, sorts by ascending update order (stable:
// equal keys keep registration order) and updates every member whose
// ActiveInHierarchy flag is true.
func (up *Updater) Update(frame *UpdateFrame) {
	start := time.Now()

	up.reg.commit(nil)
	up.reg.ensureSorted(func(a, b Updatable) int {
		return cmp.Compare(a.base().updateOrder, b.base().updateOrder)
	})

	updated := 0
	for _, u := range up.reg.live {
		if !u.base().ActiveInHierarchy() {
			continue
		}
		u.Update(frame)
		updated++
	}

	up.stats = UpdaterStats{
		Live:         up.reg.liveLen(),
		Updated:      updated,
		LastDuration: time.Since(start),
	}
}

// Stats returns statistics about the last update pass.
func (up *Updater) Stats() UpdaterStats {
	return up.stats
}
