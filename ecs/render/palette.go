// Package render holds the pure presentation rules of the host: how world
// positions map to the screen and which color each state is drawn in.
package render

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/milk9111/divechase/ecs/component"
)

func PlayerColor(state component.PlayerState) color.Color {
	switch state {
	case component.PlayerMoveFast:
		return colornames.White
	case component.PlayerDiving:
		return colornames.Blue
	case component.PlayerRecovering:
		return colornames.Green
	default:
		return colornames.Black
	}
}

func TargetColor(state component.TargetState) color.Color {
	switch state {
	case component.TargetHopStart:
		return colornames.Green
	case component.TargetHop:
		return colornames.Blue
	case component.TargetCaught:
		return colornames.White
	default:
		return colornames.Red
	}
}
