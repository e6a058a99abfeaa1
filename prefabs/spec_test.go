package prefabs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/divechase/common"
)

func validPlayer() PlayerSpec {
	return PlayerSpec{
		MaxSpeed:         0.1,
		SlowSpeed:        0.066,
		MagnitudeFast:    0.6,
		MagnitudeSlow:    0.06,
		DiveTime:         0.3,
		DiveRecoveryTime: 0.5,
		DiveDistance:     3,
		Collider:         ColliderSpec{Radius: 0.5},
	}
}

func validTarget() TargetSpec {
	return TargetSpec{
		HopTime:        0.2,
		HopSpeed:       6.5,
		ScaredDistance: 3,
		HopStartDelay:  0.1,
		HopDistance:    1.5,
		Collider:       ColliderSpec{Radius: 0.4},
	}
}

func TestPlayerSpecValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*PlayerSpec)
		field  string
	}{
		{"valid", func(*PlayerSpec) {}, ""},
		{"zero_dive_time", func(s *PlayerSpec) { s.DiveTime = 0 }, "dive_time"},
		{"negative_dive_time", func(s *PlayerSpec) { s.DiveTime = -1 }, "dive_time"},
		{"negative_speed", func(s *PlayerSpec) { s.SlowSpeed = -0.1 }, "slow_speed"},
		{"negative_recovery", func(s *PlayerSpec) { s.DiveRecoveryTime = -0.5 }, "dive_recovery_time"},
		{"zero_recovery", func(s *PlayerSpec) { s.DiveRecoveryTime = 0 }, ""},
		{"magnitudes_inverted", func(s *PlayerSpec) { s.MagnitudeSlow = 0.7 }, "magnitude_slow"},
		{"no_collider", func(s *PlayerSpec) { s.Collider.Radius = 0 }, "collider.radius"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := validPlayer()
			c.mutate(&s)
			checkValidation(t, s.Validate(), c.field)
		})
	}
}

func TestTargetSpecValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*TargetSpec)
		field  string
	}{
		{"valid", func(*TargetSpec) {}, ""},
		{"zero_hop_time", func(s *TargetSpec) { s.HopTime = 0 }, "hop_time"},
		{"zero_hop_start_delay", func(s *TargetSpec) { s.HopStartDelay = 0 }, "hop_start_delay"},
		{"zero_hop_distance", func(s *TargetSpec) { s.HopDistance = 0 }, "hop_distance"},
		{"negative_hop_speed", func(s *TargetSpec) { s.HopSpeed = -1 }, "hop_speed"},
		{"negative_scared_distance", func(s *TargetSpec) { s.ScaredDistance = -1 }, "scared_distance"},
		{"zero_scared_distance", func(s *TargetSpec) { s.ScaredDistance = 0 }, ""},
		{"negative_radius", func(s *TargetSpec) { s.Collider.Radius = -0.4 }, "collider.radius"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := validTarget()
			c.mutate(&s)
			checkValidation(t, s.Validate(), c.field)
		})
	}
}

func TestLevelSpecValidate(t *testing.T) {
	bounds := common.Bounds{Min: common.V(-4, -2), Max: common.V(4, 2)}
	cases := []struct {
		name  string
		spec  LevelSpec
		field string
	}{
		{"valid", LevelSpec{Bounds: bounds, Targets: []common.Vec2{common.V(3, 1)}}, ""},
		{"no_targets", LevelSpec{Bounds: bounds}, ""},
		{"degenerate_bounds", LevelSpec{Bounds: common.Bounds{}}, ""},
		{"inverted_x", LevelSpec{Bounds: common.Bounds{Min: common.V(1, 0), Max: common.V(0, 1)}}, "bounds"},
		{"inverted_y", LevelSpec{Bounds: common.Bounds{Min: common.V(0, 1), Max: common.V(1, 0)}}, "bounds"},
		{"player_outside", LevelSpec{Bounds: bounds, PlayerSpawn: common.V(5, 0)}, "player_spawn"},
		{"target_outside", LevelSpec{Bounds: bounds, Targets: []common.Vec2{common.V(0, 0), common.V(0, -3)}}, "targets[1]"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			checkValidation(t, c.spec.Validate(), c.field)
		})
	}
}

func TestSceneSpecValidateJoinsErrors(t *testing.T) {
	s := SceneSpec{Player: validPlayer(), Target: validTarget()}
	s.Player.DiveTime = 0
	s.Target.HopDistance = 0
	s.Level.Bounds = common.Bounds{Min: common.V(1, 1)}

	err := s.Validate()
	if !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("got %v, want ErrInvalidSpec", err)
	}
	for _, field := range []string{"player.dive_time", "target.hop_distance", "level.bounds"} {
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("error %q does not mention %s", err, field)
		}
	}
}

func checkValidation(t *testing.T, err error, field string) {
	t.Helper()
	if field == "" {
		if err != nil {
			t.Fatalf("got %v, want nil", err)
		}
		return
	}
	if !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("got %v, want ErrInvalidSpec", err)
	}
	if !strings.Contains(err.Error(), field) {
		t.Fatalf("error %q does not mention %s", err, field)
	}
}

func TestEmbeddedPrefabsAreValid(t *testing.T) {
	Dir = t.TempDir()
	t.Cleanup(func() { Dir = "prefabs" })

	scene, err := LoadSceneSpec()
	if err != nil {
		t.Fatalf("load scene: %v", err)
	}
	if scene.Player.DiveTime != 0.3 {
		t.Fatalf("dive_time = %v, want 0.3", scene.Player.DiveTime)
	}
	if scene.Target.CaughtOffset != common.V(0, -0.5) {
		t.Fatalf("caught_offset = %v, want (0, -0.5)", scene.Target.CaughtOffset)
	}
	if len(scene.Level.Targets) == 0 {
		t.Fatalf("level has no targets")
	}
}

func TestLoadPrefersDisk(t *testing.T) {
	Dir = t.TempDir()
	t.Cleanup(func() { Dir = "prefabs" })

	data := []byte("name: fast\nhop_time: 0.2\nhop_speed: 12\nhop_start_delay: 0.1\nhop_distance: 2\ncollider:\n  radius: 0.3\n")
	if err := os.WriteFile(filepath.Join(Dir, "target.yaml"), data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	spec, err := LoadTargetSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Name != "fast" || spec.HopSpeed != 12 {
		t.Fatalf("got %+v, want the disk copy", spec)
	}
	if _, ok := ModTime("prefabs/target.yaml"); !ok {
		t.Fatalf("expected a mod time for the disk copy")
	}
	if _, ok := ModTime("player.yaml"); ok {
		t.Fatalf("unexpected mod time for an embedded-only prefab")
	}
}

func TestLoadSpecErrors(t *testing.T) {
	Dir = t.TempDir()
	t.Cleanup(func() { Dir = "prefabs" })

	if _, err := LoadSpec[TargetSpec]("missing.yaml"); err == nil || !strings.HasPrefix(err.Error(), "prefabs: load missing.yaml") {
		t.Fatalf("got %v, want load error", err)
	}

	if err := os.WriteFile(filepath.Join(Dir, "broken.yaml"), []byte("hop_time: [1"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadSpec[TargetSpec]("broken.yaml"); err == nil || !strings.HasPrefix(err.Error(), "prefabs: unmarshal broken.yaml") {
		t.Fatalf("got %v, want unmarshal error", err)
	}

	if err := os.WriteFile(filepath.Join(Dir, "player.yaml"), []byte("dive_time: 0\ncollider: {radius: 1}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadPlayerSpec(); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("got %v, want ErrInvalidSpec", err)
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"'#2e8b57'", color.NRGBA{R: 0x2e, G: 0x8b, B: 0x57, A: 0xff}, false},
		{"'#00000080'", color.NRGBA{A: 0x80}, false},
		{"ffffff", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, false},
		{"'#abc'", color.NRGBA{}, true},
		{"'#gg0000'", color.NRGBA{}, true},
		{"[1, 2]", color.NRGBA{}, true},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Color != c.want {
				t.Fatalf("got %v, want %v", got.Color, c.want)
			}
		})
	}

	var unset YAMLColor
	if _, _, _, a := unset.RGBA(); a != 0xffff {
		t.Fatalf("unset color alpha = %x, want opaque", a)
	}
}
