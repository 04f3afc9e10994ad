package blue

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// Scene owns the entity tree and the three frame-driven schedulers: the
// updater, the renderer and the coroutine scheduler. Each frame the host
// calls Update then Render; both apply their pending registrations first, so
// entities and components added or removed from inside callbacks become
// visible on the following frame, never mid-iteration.
type Scene struct {
	Camera *Camera

	updater    *Updater
	renderer   *Renderer
	coroutines *CoroutineScheduler

	entities *intmap.Map[uint32, *Entity]
	roots    []*Entity
	globals  []Component
}

// NewScene creates an empty scene with the given camera.
func NewScene(cam *Camera) *Scene {
	return &Scene{
		Camera:     cam,
		updater:    NewUpdater(),
		renderer:   NewRenderer(),
		coroutines: NewCoroutineScheduler(),
		entities:   intmap.New[uint32, *Entity](256),
	}
}

// Updater returns the scene's updater.
func (s *Scene) Updater() *Updater { return s.updater }

// Renderer returns the scene's renderer.
func (s *Scene) Renderer() *Renderer { return s.renderer }

// Coroutines returns the scene's coroutine scheduler.
func (s *Scene) Coroutines() *CoroutineScheduler { return s.coroutines }

// AddEntity registers e and all of its descendants with the scene. The
// entity becomes a root entity; to add a child, attach it to a registered
// parent instead. Returns false if e is nil, already registered, or has a
// parent.
func (s *Scene) AddEntity(e *Entity) bool {
	if e == nil || e.scene != nil || e.parent != nil {
		return false
	}
	s.roots = append(s.roots, e)
	s.registerEntityTree(e)
	return true
}

// RemoveEntity unregisters e and all of its descendants. Component removals
// take effect at the schedulers' next commit points.
func (s *Scene) RemoveEntity(e *Entity) bool {
	if e == nil || e.scene != s {
		return false
	}
	if e.parent != nil {
		e.parent.detachChild(e)
		e.parent = nil
	}
	s.unregisterEntityTree(e)
	return true
}

func (s *Scene) registerEntityTree(e *Entity) {
	e.scene = s
	s.entities.Put(e.id, e)
	for _, c := range e.components {
		s.registerComponent(c)
	}
	for _, child := range e.children {
		s.registerEntityTree(child)
	}
}

func (s *Scene) removeRoot(e *Entity) {
	if i := slices.Index(s.roots, e); i >= 0 {
		s.roots = slices.Delete(s.roots, i, i+1)
	}
}

func (s *Scene) unregisterEntityTree(e *Entity) {
	s.removeRoot(e)
	s.entities.Del(e.id)
	for _, c := range e.components {
		s.unregisterComponent(c)
	}
	e.scene = nil
	for _, child := range e.children {
		s.unregisterEntityTree(child)
	}
}

// registerComponent wires a component's capabilities into the schedulers.
// The capability checks happen here, once per attach.
func (s *Scene) registerComponent(c Component) {
	b := c.base()
	b.ensureID()
	b.scene = s
	if u, ok := c.(Updatable); ok {
		s.updater.Register(u)
	}
	if r, ok := c.(Renderable); ok {
		s.renderer.Register(r)
	}
}

func (s *Scene) unregisterComponent(c Component) {
	if u, ok := c.(Updatable); ok {
		s.updater.Unregister(u)
	}
	if r, ok := c.(Renderable); ok {
		s.renderer.Unregister(r)
	}
	c.base().scene = nil
}

// AddGlobalComponent registers a component that belongs to the scene itself
// rather than to an entity. Global components have no transform; their
// activation is governed by their own enabled flag alone.
func (s *Scene) AddGlobalComponent(c Component) bool {
	if c == nil || c.base().scene != nil || c.base().entity != nil {
		return false
	}
	s.globals = append(s.globals, c)
	s.registerComponent(c)
	if a, ok := c.(Attacher); ok {
		a.OnAttach(nil)
	}
	return true
}

// RemoveGlobalComponent unregisters a scene-global component.
func (s *Scene) RemoveGlobalComponent(c Component) bool {
	if c == nil {
		return false
	}
	i := slices.Index(s.globals, c)
	if i < 0 {
		return false
	}
	s.globals = slices.Delete(s.globals, i, i+1)
	s.unregisterComponent(c)
	if d, ok := c.(Detacher); ok {
		d.OnDetach()
	}
	return true
}

// Entity returns the registered entity with the given id.
func (s *Scene) Entity(id uint32) (*Entity, bool) {
	return s.entities.Get(id)
}

// FindEntityByName returns the first registered entity with the given name.
func (s *Scene) FindEntityByName(name string) *Entity {
	var found *Entity
	s.entities.ForEach(func(_ uint32, e *Entity) bool {
		if e.name == name {
			found = e
			return false
		}
		return true
	})
	return found
}

// Roots returns the scene's root entities. The returned slice must not be
// mutated.
func (s *Scene) Roots() []*Entity { return s.roots }

// EntityCount returns the number of registered entities.
func (s *Scene) EntityCount() int { return s.entities.Len() }

// StartCoroutine starts a routine on the scene's coroutine scheduler, with
// owner notified when it finishes. Owner may be nil.
func (s *Scene) StartCoroutine(owner CoroutineOwner, routine Routine) *Coroutine {
	co := s.coroutines.Start(routine)
	if co != nil && owner != nil {
		co.SetOwner(owner)
	}
	return co
}

// Update drives one frame of updates: the updater first, then the coroutine
// scheduler, each committing its own pending changes at the start of its
// pass.
func (s *Scene) Update(frame *UpdateFrame) {
	if frame.Scene == nil {
		frame.Scene = s
	}
	s.updater.Update(frame)
	s.coroutines.Update(frame)
}

// Render draws the scene through the batch using the scene camera.
func (s *Scene) Render(batch Batch) {
	s.renderer.Render(s.Camera, batch)
}
