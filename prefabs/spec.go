package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// TuningFile is the prefab holding every gameplay constant.
const TuningFile = "tuning.yaml"

var ErrInvalidTuning = errors.New("prefabs: invalid tuning")

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

// Tuning holds all simulation constants. Durations are wall-clock and converted
// to ticks with Ticks.
type Tuning struct {
	Name             string         `yaml:"name"`
	TickRate         int            `yaml:"tick_rate"`
	Bounds           BoundsSpec     `yaml:"bounds"`
	Player           PlayerSpec     `yaml:"player"`
	Hostile          HostileSpec    `yaml:"hostile"`
	Boss             BossSpec       `yaml:"boss"`
	Projectile       ProjectileSpec `yaml:"projectile"`
	Healer           HealerSpec     `yaml:"healer"`
	Stealer          StealerSpec    `yaml:"stealer"`
	Shield           ShieldSpec     `yaml:"shield"`
	Touch            TouchSpec      `yaml:"touch"`
	Palette          PaletteSpec    `yaml:"palette"`
	DifficultyScript string         `yaml:"difficulty_script"`
}

type BoundsSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Movement modes for the player.
const (
	MovementDirect = "direct"
	MovementSmooth = "smooth"
)

type PlayerSpec struct {
	Radius         float64 `yaml:"radius"`
	Movement       string  `yaml:"movement"`
	Smoothing      float64 `yaml:"smoothing"`
	TouchSmoothing float64 `yaml:"touch_smoothing"`
}

type HostileSpec struct {
	Radius        float64 `yaml:"radius"`
	BaseSpeed     float64 `yaml:"base_speed"`
	SpeedPerScore float64 `yaml:"speed_per_score"`
	SpawnChance   float64 `yaml:"spawn_chance"`
	ContactDamage float64 `yaml:"contact_damage"`
	Value         int     `yaml:"value"`
}

type BossSpec struct {
	Radius         float64 `yaml:"radius"`
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedPerScore  float64 `yaml:"speed_per_score"`
	BaseHP         float64 `yaml:"base_hp"`
	HPPerScore     float64 `yaml:"hp_per_score"`
	ScoreThreshold int     `yaml:"score_threshold"`
	ScoreInterval  int     `yaml:"score_interval"`
	ContactDamage  float64 `yaml:"contact_damage"`
	HitDamage      int     `yaml:"hit_damage"`
	Value          int     `yaml:"value"`
}

type ProjectileSpec struct {
	Radius       float64       `yaml:"radius"`
	Speed        float64       `yaml:"speed"`
	FireInterval time.Duration `yaml:"fire_interval"`
	MaxLive      int           `yaml:"max_live"`
	CullMargin   float64       `yaml:"cull_margin"`
	MaxAge       time.Duration `yaml:"max_age"`
}

type HealerSpec struct {
	Radius      float64 `yaml:"radius"`
	SpawnChance float64 `yaml:"spawn_chance"`
	Heal        float64 `yaml:"heal"`
}

type StealerSpec struct {
	Radius         float64       `yaml:"radius"`
	Speed          float64       `yaml:"speed"`
	SpawnDelay     time.Duration `yaml:"spawn_delay"`
	ContactDamage  float64       `yaml:"contact_damage"`
	CarryTimeout   time.Duration `yaml:"carry_timeout"`
	AttackDuration time.Duration `yaml:"attack_duration"`
}

type ShieldSpec struct {
	PickupDuration time.Duration `yaml:"pickup_duration"`
}

// TouchSpec overrides values when the host runs on a touch device.
type TouchSpec struct {
	HostileSpawnChance float64 `yaml:"hostile_spawn_chance"`
	HostileBaseSpeed   float64 `yaml:"hostile_base_speed"`
	StealerSpeed       float64 `yaml:"stealer_speed"`
}

type PaletteSpec struct {
	Background YAMLColor `yaml:"background"`
	Player     YAMLColor `yaml:"player"`
	Shield     YAMLColor `yaml:"shield"`
	Hostile    YAMLColor `yaml:"hostile"`
	Boss       YAMLColor `yaml:"boss"`
	Projectile YAMLColor `yaml:"projectile"`
	Healer     YAMLColor `yaml:"healer"`
	Stealer    YAMLColor `yaml:"stealer"`
}

// LoadTuning loads the tuning prefab, preferring the on-disk copy.
func LoadTuning() (*Tuning, error) {
	t, err := LoadSpec[Tuning](TuningFile)
	if err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadTuningFile loads tuning from an explicit path outside the prefab tree.
func LoadTuningFile(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", path, err)
	}
	return ParseTuning(data)
}

func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate rejects tunings the simulation cannot run with.
func (t *Tuning) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: nil", ErrInvalidTuning)
	}
	var problems []string
	check := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, msg)
		}
	}

	check(t.TickRate > 0, "tick_rate must be positive")
	check(t.Bounds.Width > 0 && t.Bounds.Height > 0, "bounds must be positive")
	check(t.Player.Radius > 0, "player.radius must be positive")
	check(t.Hostile.Radius > 0, "hostile.radius must be positive")
	check(t.Boss.Radius > 0, "boss.radius must be positive")
	check(t.Projectile.Radius > 0, "projectile.radius must be positive")
	check(t.Healer.Radius > 0, "healer.radius must be positive")
	check(t.Stealer.Radius > 0, "stealer.radius must be positive")
	check(t.Player.Movement == MovementDirect || t.Player.Movement == MovementSmooth, "player.movement must be direct or smooth")
	check(t.Player.Smoothing > 0 && t.Player.Smoothing <= 1, "player.smoothing must be in (0,1]")
	check(t.Player.TouchSmoothing > 0 && t.Player.TouchSmoothing <= 1, "player.touch_smoothing must be in (0,1]")
	check(chance(t.Hostile.SpawnChance), "hostile.spawn_chance must be in [0,1]")
	check(chance(t.Healer.SpawnChance), "healer.spawn_chance must be in [0,1]")
	check(t.Touch.HostileSpawnChance == 0 || chance(t.Touch.HostileSpawnChance), "touch.hostile_spawn_chance must be in [0,1]")
	check(t.Projectile.MaxLive > 0, "projectile.max_live must be positive")
	check(t.Projectile.FireInterval > 0, "projectile.fire_interval must be positive")
	check(t.Projectile.Speed > 0, "projectile.speed must be positive")
	check(t.Projectile.CullMargin >= 0 && t.Projectile.MaxAge >= 0, "projectile.cull_margin and max_age must not be negative")
	check(t.Hostile.BaseSpeed >= 0 && t.Hostile.SpeedPerScore >= 0, "hostile speeds must not be negative")
	check(t.Boss.BaseSpeed >= 0 && t.Boss.SpeedPerScore >= 0, "boss speeds must not be negative")
	check(t.Stealer.Speed >= 0, "stealer.speed must not be negative")
	check(t.Boss.BaseHP > 0, "boss.base_hp must be positive")
	check(t.Boss.HitDamage > 0, "boss.hit_damage must be positive")
	check(t.Hostile.Value >= 0 && t.Boss.Value >= 0, "score values must not be negative")
	check(t.Hostile.ContactDamage >= 0 && t.Boss.ContactDamage >= 0 && t.Stealer.ContactDamage >= 0, "contact damage must not be negative")

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTuning, strings.Join(problems, "; "))
	}
	return nil
}

func chance(p float64) bool {
	return p >= 0 && p <= 1
}

// ForTouch returns a copy with the touch overrides applied.
func (t *Tuning) ForTouch() *Tuning {
	if t == nil {
		return nil
	}
	out := *t
	if t.Touch.HostileSpawnChance > 0 {
		out.Hostile.SpawnChance = t.Touch.HostileSpawnChance
	}
	if t.Touch.HostileBaseSpeed > 0 {
		out.Hostile.BaseSpeed = t.Touch.HostileBaseSpeed
	}
	if t.Touch.StealerSpeed > 0 {
		out.Stealer.Speed = t.Touch.StealerSpeed
	}
	return &out
}

// TickDuration is the simulated time covered by one tick.
func (t *Tuning) TickDuration() time.Duration {
	if t == nil || t.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(t.TickRate)
}

// Ticks converts d to a whole number of ticks, rounding up so a non-zero
// duration always lasts at least one tick.
func (t *Tuning) Ticks(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	rate := 60
	if t != nil && t.TickRate > 0 {
		rate = t.TickRate
	}
	return int(math.Ceil(d.Seconds()*float64(rate) - 1e-9))
}

// BoundsBB is the visible rectangle in screen space (B is the minimum y).
func (t *Tuning) BoundsBB() cp.BB {
	return cp.BB{L: 0, B: 0, R: t.Bounds.Width, T: t.Bounds.Height}
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or a colornames name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(strings.TrimSpace(value.Value))]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return fmt.Errorf("invalid color %s: %w", value.Value, err)
		}
		rgba[i] = v
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}

// Or returns the decoded color, or fallback when the field was left empty.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}
