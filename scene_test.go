package blue_test

import (
	"testing"

	"github.com/NaxHPL/blue"
)

func newTestScene() *blue.Scene {
	return blue.NewScene(blue.NewCamera(100, 100))
}

func TestSceneEntityRegistration(t *testing.T) {
	t.Run("adding an entity registers its subtree", func(t *testing.T) {
		s := newTestScene()
		var log []string

		root := blue.NewEntity("root")
		root.AddComponent(newTestUpdatable("root", 0, &log))
		child := blue.NewEntity("child")
		child.AddComponent(newTestUpdatable("child", 1, &log))
		root.AddChild(child)

		if !s.AddEntity(root) {
			t.Fatal("expected AddEntity to succeed")
		}
		if s.EntityCount() != 2 {
			t.Fatalf("expected 2 registered entities, got %d", s.EntityCount())
		}

		s.Update(frame(0))
		if len(log) != 2 || log[0] != "root" || log[1] != "child" {
			t.Fatalf("expected both components updated in order, got %v", log)
		}
	})

	t.Run("adding a registered or parented entity fails", func(t *testing.T) {
		s := newTestScene()
		root := blue.NewEntity("root")
		child := blue.NewEntity("child")
		root.AddChild(child)

		s.AddEntity(root)
		if s.AddEntity(root) {
			t.Error("expected re-add to fail")
		}
		if s.AddEntity(child) {
			t.Error("expected adding a parented entity to fail")
		}
	})

	t.Run("components attached after registration are scheduled", func(t *testing.T) {
		s := newTestScene()
		var log []string
		e := blue.NewEntity("e")
		s.AddEntity(e)

		e.AddComponent(newTestUpdatable("late", 0, &log))
		s.Update(frame(0))
		if len(log) != 1 {
			t.Fatalf("expected late-attached component to update, got %v", log)
		}
	})

	t.Run("destroy removes the subtree at the next commit", func(t *testing.T) {
		s := newTestScene()
		var log []string
		root := blue.NewEntity("root")
		root.AddComponent(newTestUpdatable("root", 0, &log))
		child := blue.NewEntity("child")
		child.AddComponent(newTestUpdatable("child", 1, &log))
		root.AddChild(child)
		s.AddEntity(root)

		s.Update(frame(0))
		root.Destroy()
		if s.EntityCount() != 0 {
			t.Fatalf("expected entity index cleared, got %d", s.EntityCount())
		}

		log = log[:0]
		s.Update(frame(0))
		if len(log) != 0 {
			t.Fatalf("expected no updates after destroy, got %v", log)
		}
	})

	t.Run("destroy from inside an update is safe", func(t *testing.T) {
		s := newTestScene()
		var log []string

		victim := blue.NewEntity("victim")
		victim.AddComponent(newTestUpdatable("victim", 1, &log))

		killer := blue.NewEntity("killer")
		k := newTestUpdatable("killer", 0, &log)
		k.fn = func(*blue.UpdateFrame) { victim.Destroy() }
		killer.AddComponent(k)

		s.AddEntity(killer)
		s.AddEntity(victim)

		s.Update(frame(0))
		if len(log) != 2 {
			t.Fatalf("victim must still run in the frame it is destroyed, got %v", log)
		}

		log = log[:0]
		s.Update(frame(0))
		if len(log) != 1 {
			t.Fatalf("victim must be gone the next frame, got %v", log)
		}
	})
}

func TestSceneReparenting(t *testing.T) {
	t.Run("adopting a root entity removes it from the root list", func(t *testing.T) {
		s := newTestScene()
		a := blue.NewEntity("a")
		b := blue.NewEntity("b")
		s.AddEntity(a)
		s.AddEntity(b)

		a.AddChild(b)

		roots := s.Roots()
		if len(roots) != 1 || roots[0] != a {
			t.Fatalf("expected a as the only root, got %v", roots)
		}
		if b.Parent() != a {
			t.Error("expected b parented under a")
		}
		if s.EntityCount() != 2 {
			t.Errorf("expected both entities to stay registered, got %d", s.EntityCount())
		}
	})

	t.Run("cross-scene adoption moves the registration", func(t *testing.T) {
		s1 := newTestScene()
		s2 := newTestScene()
		var log []string

		parent := blue.NewEntity("parent")
		s1.AddEntity(parent)

		child := blue.NewEntity("child")
		child.AddComponent(newTestUpdatable("child", 0, &log))
		s2.AddEntity(child)

		parent.AddChild(child)

		if s2.EntityCount() != 0 {
			t.Fatalf("expected the child to leave its old scene, got %d entities", s2.EntityCount())
		}
		if len(s2.Roots()) != 0 {
			t.Fatalf("expected the old scene's root list cleared, got %v", s2.Roots())
		}
		if child.Scene() != s1 {
			t.Fatal("expected the child registered with the new scene")
		}

		s1.Update(frame(0))
		s2.Update(frame(0))
		if len(log) != 1 {
			t.Fatalf("expected exactly one update per frame after the move, got %v", log)
		}
	})
}

func TestSceneLookup(t *testing.T) {
	s := newTestScene()
	e := blue.NewEntity("player")
	s.AddEntity(e)

	got, ok := s.Entity(e.ID())
	if !ok || got != e {
		t.Fatal("expected lookup by id to find the entity")
	}
	if s.FindEntityByName("player") != e {
		t.Error("expected lookup by name to find the entity")
	}
	if s.FindEntityByName("ghost") != nil {
		t.Error("expected lookup of an unknown name to return nil")
	}
}

func TestSceneGlobalComponents(t *testing.T) {
	s := newTestScene()
	var log []string
	g := newTestUpdatable("global", 0, &log)

	if !s.AddGlobalComponent(g) {
		t.Fatal("expected AddGlobalComponent to succeed")
	}
	s.Update(frame(0))
	if len(log) != 1 {
		t.Fatalf("expected global component to update, got %v", log)
	}

	s.RemoveGlobalComponent(g)
	log = log[:0]
	s.Update(frame(0))
	if len(log) != 0 {
		t.Fatalf("expected no updates after removal, got %v", log)
	}
}

func TestSceneCoroutines(t *testing.T) {
	s := newTestScene()
	owner := &testOwner{}
	ran := false

	s.StartCoroutine(owner, func(yield func(blue.YieldInstruction) bool) {
		ran = true
	})

	s.Update(frame(0))
	if !ran {
		t.Fatal("expected the coroutine to run on the first scene update")
	}
	s.Update(frame(0))
	if owner.finished != 1 {
		t.Fatalf("expected one finish notification, got %d", owner.finished)
	}
}
