package prefabs

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Environment keys read by SourceFromEnv. Hosts load them from .env first.
const (
	EnvTuning = "PURSUIT_TUNING"
	EnvTouch  = "PURSUIT_TOUCH"
)

// Source says where a host's tuning comes from and which profile applies.
type Source struct {
	// Path is an explicit yaml file. Empty means the prefab tree.
	Path  string
	Touch bool
}

func SourceFromEnv() Source {
	s := Source{Path: strings.TrimSpace(os.Getenv(EnvTuning))}
	if v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(EnvTouch))); err == nil {
		s.Touch = v
	}
	return s
}

func (s Source) Load() (*Tuning, error) {
	var (
		t   *Tuning
		err error
	)
	if s.Path != "" {
		t, err = LoadTuningFile(s.Path)
	} else {
		t, err = LoadTuning()
	}
	if err != nil {
		return nil, err
	}
	if s.Touch {
		t = t.ForTouch()
	}
	return t, nil
}

// WatchDirs lists the existing directories whose edits should trigger a reload.
func (s Source) WatchDirs() []string {
	candidates := []string{Dir, filepath.Join(Dir, "scripts")}
	if s.Path != "" {
		candidates = append(candidates, filepath.Dir(s.Path))
	}
	var dirs []string
	seen := map[string]bool{}
	for _, dir := range candidates {
		clean := filepath.Clean(dir)
		if seen[clean] {
			continue
		}
		seen[clean] = true
		if info, err := os.Stat(clean); err == nil && info.IsDir() {
			dirs = append(dirs, clean)
		}
	}
	return dirs
}

// Describe names the file the tuning is read from, for logs.
func (s Source) Describe() string {
	if s.Path != "" {
		return s.Path
	}
	origin, err := Resolve(TuningFile)
	if err != nil {
		return TuningFile
	}
	return origin.String() + " " + TuningFile
}
