package render

import "github.com/milk9111/divechase/common"

// Camera maps world units to screen pixels. The world origin sits at the
// screen center and world y grows upward.
type Camera struct {
	PixelsPerUnit float64
	ScreenWidth   float64
	ScreenHeight  float64
}

// FitCamera picks the largest scale that shows the whole bounds on screen.
func FitCamera(bounds common.Bounds, screenWidth, screenHeight float64) Camera {
	cam := Camera{PixelsPerUnit: 1, ScreenWidth: screenWidth, ScreenHeight: screenHeight}
	size := bounds.Size()
	// fit the farthest edge from the origin
	halfW := max(-bounds.Min.X, bounds.Max.X)
	halfH := max(-bounds.Min.Y, bounds.Max.Y)
	if size.X <= 0 || size.Y <= 0 || halfW <= 0 || halfH <= 0 {
		return cam
	}
	cam.PixelsPerUnit = min(screenWidth/(2*halfW), screenHeight/(2*halfH))
	return cam
}

func (c Camera) ToScreen(p common.Vec2) (x, y float64) {
	return c.ScreenWidth/2 + p.X*c.PixelsPerUnit, c.ScreenHeight/2 - p.Y*c.PixelsPerUnit
}

func (c Camera) ToWorld(x, y float64) common.Vec2 {
	if c.PixelsPerUnit == 0 {
		return common.Vec2{}
	}
	return common.V((x-c.ScreenWidth/2)/c.PixelsPerUnit, (c.ScreenHeight/2-y)/c.PixelsPerUnit)
}

// Length converts a world distance to pixels.
func (c Camera) Length(d float64) float64 {
	return d * c.PixelsPerUnit
}
