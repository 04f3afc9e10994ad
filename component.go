package blue

import "sync/atomic"

var componentIDs atomic.Uint32

// UpdateFrame carries per-frame timing to update callbacks and coroutines.
type UpdateFrame struct {
	// DeltaTime is the frame delta with the time scale applied.
	DeltaTime float64
	// RawDeltaTime is the unscaled frame delta.
	RawDeltaTime float64
	// Scene is the scene driving this frame, if any.
	Scene *Scene
}

// Component is the common surface of everything attachable to an Entity or
// registered globally on a Scene. Concrete components satisfy it by embedding
// ComponentBase; capability interfaces (Updatable, Renderable, Attacher,
// Detacher) are detected once when the component is attached, never per
// frame.
type Component interface {
	base() *ComponentBase
}

// Updatable components receive one Update call per frame while active.
type Updatable interface {
	Component
	Update(frame *UpdateFrame)
}

// Renderable components are culled against the camera, ordered by render
// order and drawn through the batch.
type Renderable interface {
	Component
	// Bounds returns the world-space bounding rectangle used for culling.
	Bounds() Rect
	// Material returns the material to draw with, or nil for DefaultMaterial.
	Material() *Material
	// Render draws the component. The batch has already been begun with the
	// component's material.
	Render(b Batch)
}

// Attacher components are notified once when attached to an entity.
type Attacher interface {
	OnAttach(e *Entity)
}

// Detacher components are notified once when detached from their entity or
// when the entity is destroyed.
type Detacher interface {
	OnDetach()
}

// ComponentBase supplies the state every component carries: activation,
// ordering keys and the owning entity. Embed it in component structs.
type ComponentBase struct {
	id          uint32
	entity      *Entity
	scene       *Scene
	disabled    bool
	updateOrder int
	renderOrder int
}

func (c *ComponentBase) base() *ComponentBase { return c }

func (c *ComponentBase) ensureID() {
	if c.id == 0 {
		c.id = componentIDs.Add(1)
	}
}

// Entity returns the entity this component is attached to, or nil for a
// detached or scene-global component.
func (c *ComponentBase) Entity() *Entity { return c.entity }

// Scene returns the scene the component is registered with, or nil.
func (c *ComponentBase) Scene() *Scene { return c.scene }

// Enabled reports the component's own activation flag.
func (c *ComponentBase) Enabled() bool { return !c.disabled }

// SetEnabled toggles the component's own activation flag. A disabled
// component stays registered; it is simply skipped during iteration.
func (c *ComponentBase) SetEnabled(enabled bool) { c.disabled = !enabled }

// ActiveInHierarchy reports whether the component should run this frame:
// its own flag AND the activation of its entity's ancestor chain. A
// scene-global component is governed by its own flag alone.
func (c *ComponentBase) ActiveInHierarchy() bool {
	if c.disabled {
		return false
	}
	if c.entity == nil {
		return true
	}
	return c.entity.ActiveInHierarchy()
}

// UpdateOrder returns the key that orders update callbacks, ascending.
func (c *ComponentBase) UpdateOrder() int { return c.updateOrder }

// SetUpdateOrder changes the update order key. The change takes effect after
// the updater's ApplyUpdateOrderChanges is called.
func (c *ComponentBase) SetUpdateOrder(order int) { c.updateOrder = order }

// RenderOrder returns the key that orders render calls, ascending.
func (c *ComponentBase) RenderOrder() int { return c.renderOrder }

// SetRenderOrder changes the render order key. The change takes effect after
// the renderer's ApplyRenderOrderChanges is called.
func (c *ComponentBase) SetRenderOrder(order int) { c.renderOrder = order }
