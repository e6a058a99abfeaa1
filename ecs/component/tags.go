package component

import "github.com/milk9111/divechase/ecs"

type PlayerTag struct{}

var PlayerTagComponent = ecs.NewComponent[PlayerTag]()

type TargetTag struct{}

var TargetTagComponent = ecs.NewComponent[TargetTag]()

type LevelTag struct{}

var LevelTagComponent = ecs.NewComponent[LevelTag]()
