package blue

import (
	"slices"
	"sync/atomic"
)

var entityIDs atomic.Uint32

// Entity is a node in the scene tree. It owns its components and its child
// entities; the parent reference is a lookup only. An entity is created
// detached and joins a scene through Scene.AddEntity (or by being a
// descendant of an added entity).
type Entity struct {
	Transform Transform

	id       uint32
	name     string
	inactive bool

	parent     *Entity
	children   []*Entity
	components []Component

	scene *Scene
}

// NewEntity creates a detached entity with the given name.
func NewEntity(name string) *Entity {
	e := &Entity{
		id:   entityIDs.Add(1),
		name: name,
	}
	e.Transform = newTransform(e)
	return e
}

// ID returns the entity's process-wide unique identifier.
func (e *Entity) ID() uint32 { return e.id }

// Name returns the entity's name.
func (e *Entity) Name() string { return e.name }

// Scene returns the scene the entity is registered with, or nil.
func (e *Entity) Scene() *Scene { return e.scene }

// Parent returns the parent entity, or nil for a root entity.
func (e *Entity) Parent() *Entity { return e.parent }

// Children returns the entity's children. The returned slice must not be
// mutated.
func (e *Entity) Children() []*Entity { return e.children }

// Active reports the entity's own activation flag.
func (e *Entity) Active() bool { return !e.inactive }

// SetActive toggles the entity's own activation flag. Components of an
// inactive entity stay registered but are skipped during update and render.
func (e *Entity) SetActive(active bool) { e.inactive = !active }

// ActiveInHierarchy reports whether the entity and every ancestor are active.
func (e *Entity) ActiveInHierarchy() bool {
	for n := e; n != nil; n = n.parent {
		if n.inactive {
			return false
		}
	}
	return true
}

// AddChild attaches child to e. If e is scene-registered the child's subtree
// joins the scene as well. A child that already has a parent is re-parented;
// a child that was a scene root stops being one, and a child registered with
// a different scene leaves it first.
func (e *Entity) AddChild(child *Entity) {
	if child == nil || child == e {
		return
	}
	if child.parent != nil {
		child.parent.detachChild(child)
	} else if child.scene != nil {
		child.scene.removeRoot(child)
	}
	if child.scene != nil && child.scene != e.scene {
		child.scene.unregisterEntityTree(child)
	}
	child.parent = e
	e.children = append(e.children, child)
	if e.scene != nil && child.scene != e.scene {
		e.scene.registerEntityTree(child)
	}
}

// RemoveChild detaches child from e. The child and its subtree leave the
// scene.
func (e *Entity) RemoveChild(child *Entity) {
	if child == nil || child.parent != e {
		return
	}
	e.detachChild(child)
	child.parent = nil
	if child.scene != nil {
		child.scene.unregisterEntityTree(child)
	}
}

// SetParent re-parents the entity. A nil parent detaches it from its current
// parent; if it was scene-registered it stays in the scene as a root entity.
func (e *Entity) SetParent(parent *Entity) {
	if parent != nil {
		parent.AddChild(e)
		return
	}
	if e.parent == nil {
		return
	}
	e.parent.detachChild(e)
	e.parent = nil
	if e.scene != nil {
		e.scene.roots = append(e.scene.roots, e)
	}
}

func (e *Entity) detachChild(child *Entity) {
	if i := slices.Index(e.children, child); i >= 0 {
		e.children = slices.Delete(e.children, i, i+1)
	}
}

// AddComponent attaches c to the entity. Attaching registers the component's
// capabilities with the scene's schedulers if the entity is scene-registered
// and fires OnAttach once. Attaching a component that already has an entity
// is a no-op returning false.
func (e *Entity) AddComponent(c Component) bool {
	if c == nil {
		return false
	}
	b := c.base()
	if b.entity != nil {
		return false
	}
	b.ensureID()
	b.entity = e
	e.components = append(e.components, c)
	if e.scene != nil {
		e.scene.registerComponent(c)
	}
	if a, ok := c.(Attacher); ok {
		a.OnAttach(e)
	}
	return true
}

// RemoveComponent detaches c from the entity, unregistering it from the
// scene's schedulers and firing OnDetach.
func (e *Entity) RemoveComponent(c Component) bool {
	if c == nil {
		return false
	}
	i := slices.Index(e.components, c)
	if i < 0 {
		return false
	}
	e.components = slices.Delete(e.components, i, i+1)
	if e.scene != nil {
		e.scene.unregisterComponent(c)
	}
	c.base().entity = nil
	if d, ok := c.(Detacher); ok {
		d.OnDetach()
	}
	return true
}

// Components returns the entity's components. The returned slice must not be
// mutated.
func (e *Entity) Components() []Component { return e.components }

// Destroy removes the entity and all descendants from the scene and detaches
// their components. Scheduler removals take effect at the next commit point.
func (e *Entity) Destroy() {
	if e.parent != nil {
		e.parent.detachChild(e)
		e.parent = nil
	}
	if e.scene != nil {
		e.scene.unregisterEntityTree(e)
	}
	e.destroyComponents()
}

func (e *Entity) destroyComponents() {
	for _, child := range e.children {
		child.destroyComponents()
	}
	for _, c := range e.components {
		c.base().entity = nil
		if d, ok := c.(Detacher); ok {
			d.OnDetach()
		}
	}
	e.components = nil
}

// FindComponent returns the first component of type T attached to e.
func FindComponent[T Component](e *Entity) (T, bool) {
	for _, c := range e.components {
		if t, ok := c.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}
