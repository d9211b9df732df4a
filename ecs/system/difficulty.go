package system

import (
	"fmt"
	"math"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/pursuit/gamelog"
	"github.com/milk9111/pursuit/prefabs"
)

// Difficulty maps the current score to spawn stats.
type Difficulty interface {
	HostileSpeed(score int) float64
	Boss(score int) (hp int, speed float64)
}

// LinearDifficulty is base + k*score for every stat.
type LinearDifficulty struct {
	Tuning *prefabs.Tuning
}

func (d LinearDifficulty) HostileSpeed(score int) float64 {
	h := d.Tuning.Hostile
	return math.Max(0, h.BaseSpeed+h.SpeedPerScore*float64(score))
}

func (d LinearDifficulty) Boss(score int) (int, float64) {
	b := d.Tuning.Boss
	return bossHP(b.BaseHP + b.HPPerScore*float64(score)), math.Max(0, b.BaseSpeed+b.SpeedPerScore*float64(score))
}

func bossHP(v float64) int {
	hp := int(math.Round(v))
	if hp < 1 {
		return 1
	}
	return hp
}

var difficultyInputs = []string{
	"score",
	"hostile_base_speed", "hostile_speed_per_score",
	"boss_base_speed", "boss_speed_per_score",
	"boss_base_hp", "boss_hp_per_score",
}

// ScriptDifficulty evaluates a tengo script. Any runtime failure falls back to
// the linear curve for that call.
type ScriptDifficulty struct {
	path     string
	compiled *tengo.Compiled
	fallback LinearDifficulty
	log      gamelog.Logger

	lastScore int
	cached    bool
	hostile   float64
	bossSpeed float64
	bossHP    int
}

func NewScriptDifficulty(t *prefabs.Tuning, path string, src []byte, log gamelog.Logger) (*ScriptDifficulty, error) {
	if log == nil {
		log = gamelog.Nop
	}
	script := tengo.NewScript(src)
	for _, name := range difficultyInputs {
		if err := script.Add(name, 0.0); err != nil {
			return nil, fmt.Errorf("difficulty: declare %s: %w", name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("difficulty: compile %s: %w", path, err)
	}
	d := &ScriptDifficulty{path: path, compiled: compiled, fallback: LinearDifficulty{Tuning: t}, log: gamelog.Nop}

	// Outputs only become defined once the script has run.
	if err := d.eval(0); err != nil {
		return nil, fmt.Errorf("difficulty: run %s: %w", path, err)
	}
	for _, out := range []string{"hostile_speed", "boss_speed", "boss_hp"} {
		if !compiled.IsDefined(out) {
			return nil, fmt.Errorf("difficulty: %s does not define %s", path, out)
		}
	}
	d.log = log
	return d, nil
}

func (d *ScriptDifficulty) HostileSpeed(score int) float64 {
	if err := d.eval(score); err != nil {
		return d.fallback.HostileSpeed(score)
	}
	return d.hostile
}

func (d *ScriptDifficulty) Boss(score int) (int, float64) {
	if err := d.eval(score); err != nil {
		return d.fallback.Boss(score)
	}
	return d.bossHP, d.bossSpeed
}

func (d *ScriptDifficulty) eval(score int) error {
	if d.cached && d.lastScore == score {
		return nil
	}
	t := d.fallback.Tuning
	inputs := map[string]float64{
		"score":                   float64(score),
		"hostile_base_speed":      t.Hostile.BaseSpeed,
		"hostile_speed_per_score": t.Hostile.SpeedPerScore,
		"boss_base_speed":         t.Boss.BaseSpeed,
		"boss_speed_per_score":    t.Boss.SpeedPerScore,
		"boss_base_hp":            t.Boss.BaseHP,
		"boss_hp_per_score":       t.Boss.HPPerScore,
	}
	for name, v := range inputs {
		if err := d.compiled.Set(name, v); err != nil {
			return d.fail(err)
		}
	}
	if err := d.compiled.Run(); err != nil {
		return d.fail(err)
	}

	d.hostile = math.Max(0, d.compiled.Get("hostile_speed").Float())
	d.bossSpeed = math.Max(0, d.compiled.Get("boss_speed").Float())
	d.bossHP = bossHP(d.compiled.Get("boss_hp").Float())
	d.lastScore = score
	d.cached = true
	return nil
}

func (d *ScriptDifficulty) fail(err error) error {
	d.cached = false
	d.log.Warn("difficulty script failed, using linear curve", "script", d.path, "err", err)
	return err
}

// LoadDifficulty builds the curve named by the tuning, falling back to linear
// when there is no script or it does not compile.
func LoadDifficulty(t *prefabs.Tuning, log gamelog.Logger) Difficulty {
	linear := LinearDifficulty{Tuning: t}
	path := strings.TrimSpace(t.DifficultyScript)
	if path == "" {
		return linear
	}
	if log == nil {
		log = gamelog.Nop
	}
	src, err := prefabs.LoadScript(path)
	if err != nil {
		log.Warn("difficulty script not found, using linear curve", "script", path, "err", err)
		return linear
	}
	d, err := NewScriptDifficulty(t, path, src, log)
	if err != nil {
		log.Warn("difficulty script rejected, using linear curve", "script", path, "err", err)
		return linear
	}
	return d
}
