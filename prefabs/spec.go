package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/divechase/common"
)

// ErrInvalidSpec is returned when a prefab carries values the simulation
// cannot run with.
var ErrInvalidSpec = errors.New("invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type ColliderSpec struct {
	Radius float64 `yaml:"radius"`
}

func (c ColliderSpec) validate(prefab string) error {
	if c.Radius <= 0 {
		return invalid(prefab, "collider.radius", "must be positive, got %v", c.Radius)
	}
	return nil
}

type PlayerSpec struct {
	Name             string       `yaml:"name"`
	MaxSpeed         float64      `yaml:"max_speed"`
	SlowSpeed        float64      `yaml:"slow_speed"`
	IncSpeed         float64      `yaml:"inc_speed"`
	MagnitudeFast    float64      `yaml:"magnitude_fast"`
	MagnitudeSlow    float64      `yaml:"magnitude_slow"`
	FastRotateSpeed  float64      `yaml:"fast_rotate_speed"`
	FastRotateMax    float64      `yaml:"fast_rotate_max"`
	DiveTime         float64      `yaml:"dive_time"`
	DiveRecoveryTime float64      `yaml:"dive_recovery_time"`
	DiveDistance     float64      `yaml:"dive_distance"`
	Collider         ColliderSpec `yaml:"collider"`
}

func (s PlayerSpec) Validate() error {
	const prefab = "player"
	if s.DiveTime <= 0 {
		return invalid(prefab, "dive_time", "must be positive, got %v", s.DiveTime)
	}
	nonNegative := []struct {
		field string
		v     float64
	}{
		{"max_speed", s.MaxSpeed},
		{"slow_speed", s.SlowSpeed},
		{"inc_speed", s.IncSpeed},
		{"magnitude_fast", s.MagnitudeFast},
		{"magnitude_slow", s.MagnitudeSlow},
		{"fast_rotate_speed", s.FastRotateSpeed},
		{"fast_rotate_max", s.FastRotateMax},
		{"dive_recovery_time", s.DiveRecoveryTime},
		{"dive_distance", s.DiveDistance},
	}
	for _, f := range nonNegative {
		if f.v < 0 {
			return invalid(prefab, f.field, "must not be negative, got %v", f.v)
		}
	}
	if s.MagnitudeSlow > s.MagnitudeFast {
		return invalid(prefab, "magnitude_slow", "%v exceeds magnitude_fast %v", s.MagnitudeSlow, s.MagnitudeFast)
	}
	return s.Collider.validate(prefab)
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	return loadValidated[PlayerSpec]("player.yaml")
}

type TargetSpec struct {
	Name            string       `yaml:"name"`
	HopTime         float64      `yaml:"hop_time"`
	HopSpeed        float64      `yaml:"hop_speed"`
	ScaredDistance  float64      `yaml:"scared_distance"`
	MaxMoveAttempts int          `yaml:"max_move_attempts"`
	HopStartDelay   float64      `yaml:"hop_start_delay"`
	HopDistance     float64      `yaml:"hop_distance"`
	CaughtOffset    common.Vec2  `yaml:"caught_offset"`
	Collider        ColliderSpec `yaml:"collider"`
}

func (s TargetSpec) Validate() error {
	const prefab = "target"
	positive := []struct {
		field string
		v     float64
	}{
		{"hop_time", s.HopTime},
		{"hop_start_delay", s.HopStartDelay},
		{"hop_distance", s.HopDistance},
	}
	for _, f := range positive {
		if f.v <= 0 {
			return invalid(prefab, f.field, "must be positive, got %v", f.v)
		}
	}
	if s.HopSpeed < 0 {
		return invalid(prefab, "hop_speed", "must not be negative, got %v", s.HopSpeed)
	}
	if s.ScaredDistance < 0 {
		return invalid(prefab, "scared_distance", "must not be negative, got %v", s.ScaredDistance)
	}
	if s.MaxMoveAttempts < 0 {
		return invalid(prefab, "max_move_attempts", "must not be negative, got %d", s.MaxMoveAttempts)
	}
	return s.Collider.validate(prefab)
}

func LoadTargetSpec() (*TargetSpec, error) {
	return loadValidated[TargetSpec]("target.yaml")
}

type LevelSpec struct {
	Name        string        `yaml:"name"`
	Bounds      common.Bounds `yaml:"bounds"`
	PlayerSpawn common.Vec2   `yaml:"player_spawn"`
	// Targets lists one spawn position per target.
	Targets    []common.Vec2 `yaml:"targets"`
	Background YAMLColor     `yaml:"background"`
}

func (s LevelSpec) Validate() error {
	const prefab = "level"
	if !s.Bounds.Valid() {
		return invalid(prefab, "bounds", "min %v exceeds max %v", s.Bounds.Min, s.Bounds.Max)
	}
	if !s.Bounds.Contains(s.PlayerSpawn) {
		return invalid(prefab, "player_spawn", "%v lies outside the bounds", s.PlayerSpawn)
	}
	for i, p := range s.Targets {
		if !s.Bounds.Contains(p) {
			return invalid(prefab, fmt.Sprintf("targets[%d]", i), "%v lies outside the bounds", p)
		}
	}
	return nil
}

func LoadLevelSpec() (*LevelSpec, error) {
	return loadValidated[LevelSpec]("level.yaml")
}

// SceneSpec bundles every prefab a scene is built from.
type SceneSpec struct {
	Player PlayerSpec
	Target TargetSpec
	Level  LevelSpec
}

func (s SceneSpec) Validate() error {
	return errors.Join(s.Player.Validate(), s.Target.Validate(), s.Level.Validate())
}

func LoadSceneSpec() (*SceneSpec, error) {
	player, err := LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	target, err := LoadTargetSpec()
	if err != nil {
		return nil, err
	}
	level, err := LoadLevelSpec()
	if err != nil {
		return nil, err
	}
	return &SceneSpec{Player: *player, Target: *target, Level: *level}, nil
}

type validator interface {
	Validate() error
}

func loadValidated[T validator](filename string) (*T, error) {
	spec, err := LoadSpec[T](filename)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func invalid(prefab, field, format string, args ...any) error {
	return fmt.Errorf("prefabs: %s.%s %s: %w", prefab, field, fmt.Sprintf(format, args...), ErrInvalidSpec)
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// RGBA falls back to opaque black when no color was decoded.
func (c YAMLColor) RGBA() (r, g, b, a uint32) {
	if c.Color == nil {
		return color.Black.RGBA()
	}
	return c.Color.RGBA()
}
