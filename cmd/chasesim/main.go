// Command chasesim runs the chase headless with a bot driving the pointer
// and reports how long the bot took to catch every target.
package main

import (
	"flag"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/milk9111/divechase/logging"
	"github.com/milk9111/divechase/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "log every state change")
	seed := flag.Uint64("seed", 1, "seed for target hop jitter")
	frames := flag.Int("frames", 3600, "maximum frames to simulate")
	tps := flag.Int("tps", 60, "simulated frames per second")
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

	res, err := run(log, *specs, simConfig{
		Frames: *frames,
		Dt:     1 / float64(*tps),
		Rng:    rand.New(rand.NewPCG(*seed, *seed)),
	})
	if err != nil {
		log.Fatal("simulate", zap.Error(err))
	}

	log.Info("simulation finished",
		zap.Int("frames", res.Frames),
		zap.Float64("seconds", res.Seconds),
		zap.Int("caught", res.Caught),
		zap.Int("targets", res.Targets),
		zap.Int("dives", res.Dives),
	)
}
