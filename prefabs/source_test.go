package prefabs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSourceFromEnv(t *testing.T) {
	t.Setenv(EnvTuning, " custom.yaml ")
	t.Setenv(EnvTouch, "true")

	s := SourceFromEnv()
	if s.Path != "custom.yaml" || !s.Touch {
		t.Fatalf("unexpected source %+v", s)
	}

	t.Setenv(EnvTouch, "maybe")
	if SourceFromEnv().Touch {
		t.Fatalf("unparsable %s must leave touch off", EnvTouch)
	}
}

func TestSourceLoadAppliesTouchProfile(t *testing.T) {
	base, err := Source{}.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	touch, err := Source{Touch: true}.Load()
	if err != nil {
		t.Fatalf("load touch: %v", err)
	}
	if touch.Hostile.SpawnChance != base.Touch.HostileSpawnChance {
		t.Fatalf("touch spawn chance = %v, want %v", touch.Hostile.SpawnChance, base.Touch.HostileSpawnChance)
	}
	if base.Hostile.SpawnChance == touch.Hostile.SpawnChance {
		t.Fatalf("base tuning was modified")
	}
}

func TestSourceWatchDirs(t *testing.T) {
	tmp := t.TempDir()
	old := Dir
	Dir = filepath.Join(tmp, "prefabs")
	t.Cleanup(func() { Dir = old })

	if got := (Source{}).WatchDirs(); len(got) != 0 {
		t.Fatalf("expected no dirs, got %v", got)
	}

	if err := os.MkdirAll(filepath.Join(Dir, "scripts"), 0o755); err != nil {
		t.Fatal(err)
	}
	got := Source{Path: filepath.Join(Dir, "tuning.yaml")}.WatchDirs()
	if len(got) != 2 {
		t.Fatalf("expected prefab and script dirs once each, got %v", got)
	}
}
