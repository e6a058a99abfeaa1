package common

import "math"

// Vec2 is a world-space vector.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalized returns the unit vector in the direction of v. Vectors too
// short to normalize (including zero and non-finite lengths) yield the zero
// vector.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l < 1e-9 || math.IsInf(l, 0) || math.IsNaN(l) {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Angle returns the direction of v in degrees, measured from +X.
func (v Vec2) Angle() float64 {
	return Rad2Deg(math.Atan2(v.Y, v.X))
}

// Rotate rotates v counter-clockwise by deg degrees.
func (v Vec2) Rotate(deg float64) Vec2 {
	s, c := math.Sincos(Deg2Rad(deg))
	return Vec2{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

// Heading returns the unit vector pointing along deg degrees.
func Heading(deg float64) Vec2 {
	s, c := math.Sincos(Deg2Rad(deg))
	return Vec2{X: c, Y: s}
}

// LerpVec interpolates between a and b with t clamped to [0, 1].
func LerpVec(a, b Vec2, t float64) Vec2 {
	t = Clamp01(t)
	return Vec2{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

// MoveTowards moves current toward target by at most maxDelta without
// overshooting.
func MoveTowards(current, target Vec2, maxDelta float64) Vec2 {
	d := target.Sub(current)
	dist := d.Len()
	if dist == 0 || (maxDelta >= 0 && dist <= maxDelta) {
		return target
	}
	return current.Add(d.Scale(maxDelta / dist))
}
