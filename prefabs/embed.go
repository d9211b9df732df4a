package prefabs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

//go:embed *.yaml
var PrefabsFS embed.FS

// Dir is the on-disk prefab directory checked before the embedded copies.
var Dir = "prefabs"

// Origin says which copy of a prefab was read.
type Origin uint8

const (
	OriginEmbedded Origin = iota
	OriginDisk
)

func (o Origin) String() string {
	if o == OriginDisk {
		return "disk"
	}
	return "embedded"
}

var errEmptyName = errors.New("prefabs: empty name")

// Load reads a yaml prefab, preferring an edited copy under Dir.
func Load(name string) ([]byte, error) {
	data, _, err := read(PrefabsFS, cleanPrefabPath(name))
	return data, err
}

// LoadScript resolves a script the same way as Load.
func LoadScript(name string) ([]byte, error) {
	data, _, err := read(ScriptsFS, cleanScriptPath(name))
	return data, err
}

// Resolve reports which copy Load would use for name.
func Resolve(name string) (Origin, error) {
	_, origin, err := read(PrefabsFS, cleanPrefabPath(name))
	return origin, err
}

func read(embedded embed.FS, clean string) ([]byte, Origin, error) {
	if clean == "" {
		return nil, OriginEmbedded, errEmptyName
	}
	data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean)))
	if err == nil {
		return data, OriginDisk, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, OriginDisk, fmt.Errorf("prefabs: read %s: %w", clean, err)
	}
	data, err = embedded.ReadFile(clean)
	if err != nil {
		return nil, OriginEmbedded, fmt.Errorf("prefabs: read %s: %w", clean, err)
	}
	return data, OriginEmbedded, nil
}

// cleanPrefabPath makes name relative to the prefab root.
func cleanPrefabPath(name string) string {
	if name == "" {
		return ""
	}
	return strings.TrimPrefix(path.Clean(filepath.ToSlash(name)), "prefabs/")
}

// cleanScriptPath accepts "x.tengo", "scripts/x.tengo" or "prefabs/scripts/x.tengo".
func cleanScriptPath(name string) string {
	if name == "" {
		return ""
	}
	s := strings.TrimPrefix(cleanPrefabPath(name), "scripts/")
	return "scripts/" + s
}
