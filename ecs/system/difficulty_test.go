package system

import (
	"testing"

	"github.com/milk9111/pursuit/gamelog"
	"github.com/milk9111/pursuit/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptCurveMatchesLinear(t *testing.T) {
	tuning := loadTuning(t)
	src, err := prefabs.LoadScript(tuning.DifficultyScript)
	require.NoError(t, err)

	script, err := NewScriptDifficulty(tuning, tuning.DifficultyScript, src, gamelog.Nop)
	require.NoError(t, err)
	linear := LinearDifficulty{Tuning: tuning}

	for score := 0; score <= 1000; score += 37 {
		assert.InDelta(t, linear.HostileSpeed(score), script.HostileSpeed(score), 1e-9, "hostile speed at %d", score)
		wantHP, wantSpeed := linear.Boss(score)
		gotHP, gotSpeed := script.Boss(score)
		assert.Equal(t, wantHP, gotHP, "boss hp at %d", score)
		assert.InDelta(t, wantSpeed, gotSpeed, 1e-9, "boss speed at %d", score)
	}
}

func TestLinearCurveIsMonotonic(t *testing.T) {
	linear := LinearDifficulty{Tuning: loadTuning(t)}
	prevSpeed := linear.HostileSpeed(0)
	prevHP, _ := linear.Boss(0)
	for score := 1; score < 500; score++ {
		speed := linear.HostileSpeed(score)
		hp, _ := linear.Boss(score)
		require.GreaterOrEqual(t, speed, prevSpeed)
		require.GreaterOrEqual(t, hp, prevHP)
		prevSpeed, prevHP = speed, hp
	}
}

func TestBossHPNeverBelowOne(t *testing.T) {
	tuning := loadTuning(t)
	tuning.Boss.BaseHP = 0.2
	tuning.Boss.HPPerScore = 0
	hp, _ := LinearDifficulty{Tuning: tuning}.Boss(0)
	assert.Equal(t, 1, hp)
}

func TestScriptRejected(t *testing.T) {
	tuning := loadTuning(t)
	cases := []struct {
		name string
		src  string
	}{
		{"syntax", "hostile_speed := ("},
		{"missing_outputs", "hostile_speed := 1.0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewScriptDifficulty(tuning, c.name, []byte(c.src), gamelog.Nop)
			assert.Error(t, err)
		})
	}
}

func TestLoadDifficultyFallsBack(t *testing.T) {
	tuning := loadTuning(t)

	assert.IsType(t, &ScriptDifficulty{}, LoadDifficulty(tuning, nil))

	tuning.DifficultyScript = "scripts/missing.tengo"
	assert.IsType(t, LinearDifficulty{}, LoadDifficulty(tuning, gamelog.Nop))

	tuning.DifficultyScript = ""
	assert.IsType(t, LinearDifficulty{}, LoadDifficulty(tuning, gamelog.Nop))
}
