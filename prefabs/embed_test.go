package prefabs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolvePrefersDisk(t *testing.T) {
	old := Dir
	Dir = t.TempDir()
	t.Cleanup(func() { Dir = old })

	origin, err := Resolve(TuningFile)
	if err != nil || origin != OriginEmbedded {
		t.Fatalf("expected embedded copy, got %s (%v)", origin, err)
	}

	if err := os.WriteFile(filepath.Join(Dir, TuningFile), []byte("name: edited\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	origin, err = Resolve("prefabs/" + TuningFile)
	if err != nil || origin != OriginDisk {
		t.Fatalf("expected disk copy, got %s (%v)", origin, err)
	}
	data, err := Load(TuningFile)
	if err != nil || string(data) != "name: edited\n" {
		t.Fatalf("Load returned %q (%v)", data, err)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for empty name")
	}
	if _, err := LoadScript("missing.tengo"); err == nil {
		t.Fatal("expected error for unknown script")
	}
}

func TestCleanPaths(t *testing.T) {
	cases := []struct {
		in, prefab, script string
	}{
		{"tuning.yaml", "tuning.yaml", "scripts/tuning.yaml"},
		{"prefabs/tuning.yaml", "tuning.yaml", "scripts/tuning.yaml"},
		{"prefabs/scripts/d.tengo", "scripts/d.tengo", "scripts/d.tengo"},
		{"./scripts/d.tengo", "scripts/d.tengo", "scripts/d.tengo"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			if got := cleanPrefabPath(c.in); got != c.prefab {
				t.Fatalf("cleanPrefabPath = %q, want %q", got, c.prefab)
			}
			if got := cleanScriptPath(c.in); got != c.script {
				t.Fatalf("cleanScriptPath = %q, want %q", got, c.script)
			}
		})
	}
}
