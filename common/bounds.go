package common

// Bounds is an axis-aligned world rectangle.
type Bounds struct {
	Min Vec2 `yaml:"min"`
	Max Vec2 `yaml:"max"`
}

// Valid reports whether Min <= Max on both axes.
func (b Bounds) Valid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y
}

// Clamp returns p with each axis clamped into the bounds.
func (b Bounds) Clamp(p Vec2) Vec2 {
	return Vec2{
		X: Clamp(p.X, b.Min.X, b.Max.X),
		Y: Clamp(p.Y, b.Min.Y, b.Max.Y),
	}
}

// Contains reports whether p lies inside the bounds, edges included.
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Diagonal returns the length of the bounds' diagonal.
func (b Bounds) Diagonal() float64 {
	return b.Max.Sub(b.Min).Len()
}

func (b Bounds) Size() Vec2 {
	return b.Max.Sub(b.Min)
}
