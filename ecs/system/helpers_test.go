package system

import (
	"math"
	"testing"

	"github.com/milk9111/divechase/common"
	"github.com/milk9111/divechase/ecs"
	"github.com/milk9111/divechase/ecs/component"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func nearVec(a, b common.Vec2) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

type testScene struct {
	w      *ecs.World
	level  ecs.Entity
	player ecs.Entity
}

func newTestScene(t *testing.T, bounds common.Bounds, tuning component.Player, at common.Vec2) *testScene {
	t.Helper()
	w := ecs.NewWorld()

	level := w.CreateEntity()
	mustAdd(t, w, level, component.LevelTagComponent, &component.LevelTag{})
	mustAdd(t, w, level, component.ClockComponent, &component.Clock{})
	mustAdd(t, w, level, component.LevelBoundsComponent, &component.LevelBounds{Bounds: bounds})

	player := w.CreateEntity()
	mustAdd(t, w, player, component.PlayerTagComponent, &component.PlayerTag{})
	mustAdd(t, w, player, component.PlayerComponent, &tuning)
	mustAdd(t, w, player, component.PlayerMotionComponent, &component.PlayerMotion{})
	mustAdd(t, w, player, component.TransformComponent, &component.Transform{Position: at})
	mustAdd(t, w, player, component.InputComponent, &component.Input{Pointer: at})

	return &testScene{w: w, level: level, player: player}
}

func (s *testScene) addTarget(t *testing.T, tuning component.Target, at common.Vec2) ecs.Entity {
	t.Helper()
	e := s.w.CreateEntity()
	mustAdd(t, s.w, e, component.TargetTagComponent, &component.TargetTag{})
	mustAdd(t, s.w, e, component.TargetComponent, &tuning)
	mustAdd(t, s.w, e, component.TargetMotionComponent, &component.TargetMotion{})
	mustAdd(t, s.w, e, component.TransformComponent, &component.Transform{Position: at})
	mustAdd(t, s.w, e, component.PursuesComponent, &component.Pursues{Player: s.player})
	mustAdd(t, s.w, e, component.OverlapComponent, &component.Overlap{})
	return e
}

func (s *testScene) setClock(now, dt float64) {
	c, _ := ecs.Get(s.w, s.level, component.ClockComponent)
	c.Now = now
	c.Dt = dt
}

func (s *testScene) input() *component.Input {
	in, _ := ecs.Get(s.w, s.player, component.InputComponent)
	return in
}

func (s *testScene) playerMotion() *component.PlayerMotion {
	m, _ := ecs.Get(s.w, s.player, component.PlayerMotionComponent)
	return m
}

func (s *testScene) transform(e ecs.Entity) *component.Transform {
	tr, _ := ecs.Get(s.w, e, component.TransformComponent)
	return tr
}

func (s *testScene) targetMotion(e ecs.Entity) *component.TargetMotion {
	m, _ := ecs.Get(s.w, e, component.TargetMotionComponent)
	return m
}

func (s *testScene) overlap(e ecs.Entity) *component.Overlap {
	o, _ := ecs.Get(s.w, e, component.OverlapComponent)
	return o
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, h ecs.ComponentHandle[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, h, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func wideBounds() common.Bounds {
	return common.Bounds{Min: common.V(-10, -10), Max: common.V(10, 10)}
}
