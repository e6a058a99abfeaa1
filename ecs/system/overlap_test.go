package system

import (
	"testing"

	"github.com/milk9111/divechase/common"
	"github.com/milk9111/divechase/ecs"
	"github.com/milk9111/divechase/ecs/component"
)

func TestOverlapTracksPursuedPlayer(t *testing.T) {
	s := newTestScene(t, wideBounds(), component.DefaultPlayer(), common.V(0, 0))
	mustAdd(t, s.w, s.player, component.ColliderComponent, &component.Collider{Radius: 0.5})
	target := s.addTarget(t, component.DefaultTarget(), common.V(0.8, 0))
	mustAdd(t, s.w, target, component.ColliderComponent, &component.Collider{Radius: 0.5})

	sys := NewOverlapSystem(nil)

	sys.Update(s.w)
	if !s.overlap(target).Player {
		t.Fatalf("expected overlap at distance 0.8")
	}

	s.transform(target).Position = common.V(2, 0)
	sys.Update(s.w)
	if s.overlap(target).Player {
		t.Fatalf("expected no overlap at distance 2")
	}

	// the player moves onto the target
	s.transform(s.player).Position = common.V(2.5, 0.3)
	sys.Update(s.w)
	if !s.overlap(target).Player {
		t.Fatalf("expected overlap after player moved")
	}
}

func TestOverlapIgnoresOtherPlayers(t *testing.T) {
	s := newTestScene(t, wideBounds(), component.DefaultPlayer(), common.V(-5, -5))
	mustAdd(t, s.w, s.player, component.ColliderComponent, &component.Collider{Radius: 0.5})
	target := s.addTarget(t, component.DefaultTarget(), common.V(3, 3))
	mustAdd(t, s.w, target, component.ColliderComponent, &component.Collider{Radius: 0.5})

	other := s.w.CreateEntity()
	mustAdd(t, s.w, other, component.PlayerTagComponent, &component.PlayerTag{})
	mustAdd(t, s.w, other, component.TransformComponent, &component.Transform{Position: common.V(3, 3)})
	mustAdd(t, s.w, other, component.ColliderComponent, &component.Collider{Radius: 0.5})

	sys := NewOverlapSystem(nil)
	sys.Update(s.w)
	if s.overlap(target).Player {
		t.Fatalf("overlap reported for a player the target does not pursue")
	}
}

func TestOverlapDropsDeadBodies(t *testing.T) {
	s := newTestScene(t, wideBounds(), component.DefaultPlayer(), common.V(0, 0))
	mustAdd(t, s.w, s.player, component.ColliderComponent, &component.Collider{Radius: 0.5})
	target := s.addTarget(t, component.DefaultTarget(), common.V(0.5, 0))
	mustAdd(t, s.w, target, component.ColliderComponent, &component.Collider{Radius: 0.5})

	sys := NewOverlapSystem(nil)
	sys.Update(s.w)
	if !s.overlap(target).Player {
		t.Fatalf("expected overlap")
	}

	s.w.DestroyEntity(s.player)
	sys.Update(s.w)
	if s.overlap(target).Player {
		t.Fatalf("overlap with a destroyed player")
	}
	if _, ok := sys.bodies[s.player]; ok {
		t.Fatalf("body of destroyed player was kept")
	}

	ecs.Remove(s.w, target, component.ColliderComponent)
	sys.Update(s.w)
	if len(sys.bodies) != 0 {
		t.Fatalf("got %d bodies, want 0", len(sys.bodies))
	}
}

func TestOverlapResizesCollider(t *testing.T) {
	s := newTestScene(t, wideBounds(), component.DefaultPlayer(), common.V(0, 0))
	mustAdd(t, s.w, s.player, component.ColliderComponent, &component.Collider{Radius: 0.5})
	target := s.addTarget(t, component.DefaultTarget(), common.V(1.5, 0))
	collider := &component.Collider{Radius: 0.5}
	mustAdd(t, s.w, target, component.ColliderComponent, collider)

	sys := NewOverlapSystem(nil)
	sys.Update(s.w)
	if s.overlap(target).Player {
		t.Fatalf("unexpected overlap before resize")
	}

	collider.Radius = 1.25
	sys.Update(s.w)
	if !s.overlap(target).Player {
		t.Fatalf("expected overlap after resize")
	}
}

func TestOverlapFollowsMovingActors(t *testing.T) {
	s := newTestScene(t, wideBounds(), component.DefaultPlayer(), common.V(-6, -6))
	mustAdd(t, s.w, s.player, component.ColliderComponent, &component.Collider{Radius: 0.5})
	target := s.addTarget(t, component.DefaultTarget(), common.V(6, 6))
	mustAdd(t, s.w, target, component.ColliderComponent, &component.Collider{Radius: 0.5})

	sys := NewOverlapSystem(nil)
	sys.Update(s.w)
	if s.overlap(target).Player {
		t.Fatalf("unexpected overlap while apart")
	}

	cases := []struct {
		name   string
		player common.Vec2
		target common.Vec2
		want   bool
	}{
		{"both_moved_together", common.V(2, -3), common.V(2.6, -3), true},
		{"both_moved_apart", common.V(-4, 4), common.V(4, -4), false},
		{"met_far_from_spawn", common.V(8, 8), common.V(8.3, 7.7), true},
		{"back_to_spawn", common.V(-6, -6), common.V(6, 6), false},
	}
	for _, c := range cases {
		s.transform(s.player).Position = c.player
		s.transform(target).Position = c.target
		sys.Update(s.w)
		if got := s.overlap(target).Player; got != c.want {
			t.Fatalf("%s: overlap = %v, want %v", c.name, got, c.want)
		}
	}
}
