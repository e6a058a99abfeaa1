package main

import (
	"flag"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/divechase/logging"
	"github.com/milk9111/divechase/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging and overlay")
	seed := flag.Uint64("seed", 0, "seed for target hop jitter (0 picks one at random)")
	watch := flag.Bool("watch", false, "reload prefabs/*.yaml when they change on disk")
	flag.Parse()

	log, err := logging.New(*debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	specs, err := prefabs.LoadSceneSpec()
	if err != nil {
		log.Fatal("load prefabs", zap.Error(err))
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewPCG(*seed, *seed))
	}

	game, err := NewGame(log, *specs, rng, *debug)
	if err != nil {
		log.Fatal("build scene", zap.Error(err))
	}

	if *watch {
		watcher, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Warn("prefab hot reload disabled", zap.String("dir", prefabs.Dir), zap.Error(err))
		} else {
			defer watcher.Close()
			game.watcher = watcher
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("divechase")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("run game", zap.Error(err))
	}
}
