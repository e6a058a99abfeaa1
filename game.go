package main

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/milk9111/divechase/ecs"
	"github.com/milk9111/divechase/ecs/component"
	"github.com/milk9111/divechase/ecs/entity"
	"github.com/milk9111/divechase/ecs/render"
	"github.com/milk9111/divechase/ecs/system"
	"github.com/milk9111/divechase/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	log       *zap.Logger
	debug     bool
	world     *ecs.World
	scheduler *ecs.Scheduler
	scene     *entity.Scene
	specs     prefabs.SceneSpec
	camera    render.Camera
	input     *InputSystem
	watcher   *prefabs.Watcher
	mods      prefabs.ModTracker
	caught    int
	frames    int
}

func NewGame(log *zap.Logger, specs prefabs.SceneSpec, rng *rand.Rand, debug bool) (*Game, error) {
	world := ecs.NewWorld()
	scene, err := entity.BuildScene(world, specs)
	if err != nil {
		return nil, err
	}

	g := &Game{
		log:    log,
		debug:  debug,
		world:  world,
		scene:  scene,
		specs:  specs,
		camera: render.FitCamera(specs.Level.Bounds, baseWidth, baseHeight),
	}
	g.input = NewInputSystem(&g.camera)
	g.scheduler = ecs.NewScheduler(
		system.NewPlayerControllerSystem(log),
		system.NewOverlapSystem(log),
		system.NewTargetControllerSystem(log, rng),
		system.NewAttachmentSystem(),
	)

	log.Info("scene built",
		zap.String("level", specs.Level.Name),
		zap.Stringer("player", scene.Player),
		zap.Int("targets", len(scene.Targets)),
	)
	return g, nil
}

func (g *Game) Update() error {
	g.frames++
	g.reloadPrefabs()

	// host input and the clock are written before any system runs
	g.input.Update(g.world)
	if clock, ok := ecs.Singleton(g.world, component.ClockComponent); ok {
		clock.Advance(1 / float64(ebiten.TPS()))
	}
	g.scheduler.Update(g.world)

	for _, ev := range g.world.Events().Drain() {
		if ev.Kind != ecs.EventCaptured {
			continue
		}
		g.caught++
		if g.caught == len(g.scene.Targets) {
			g.log.Info("all targets caught", zap.Int("frames", g.frames))
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.specs.Level.Background)
	drawWorld(screen, g.world, g.camera)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f    caught: %d/%d", ebiten.ActualFPS(), g.caught, len(g.scene.Targets)))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

// reloadPrefabs applies tunables from prefab files changed on disk.
func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			name := filepath.Base(path)
			if !g.mods.Changed(name) {
				continue
			}
			if err := g.reload(name); err != nil {
				g.log.Warn("prefab reload rejected", zap.String("file", path), zap.Error(err))
				continue
			}
			g.log.Info("prefab reloaded", zap.String("file", path))
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Warn("prefab watcher", zap.Error(err))
		default:
			return
		}
	}
}

func (g *Game) reload(name string) error {
	switch name {
	case "player.yaml":
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			return err
		}
		if err := entity.ApplyPlayerSpec(g.world, *spec); err != nil {
			return err
		}
		g.specs.Player = *spec
	case "target.yaml":
		spec, err := prefabs.LoadTargetSpec()
		if err != nil {
			return err
		}
		if err := entity.ApplyTargetSpec(g.world, *spec); err != nil {
			return err
		}
		g.specs.Target = *spec
	case "level.yaml":
		spec, err := prefabs.LoadLevelSpec()
		if err != nil {
			return err
		}
		if err := entity.ApplyLevelSpec(g.world, *spec); err != nil {
			return err
		}
		g.specs.Level = *spec
		g.camera = render.FitCamera(spec.Bounds, baseWidth, baseHeight)
	}
	return nil
}
