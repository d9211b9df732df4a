package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pursuit/ecs/component"
)

// Dir is where optional sprites are looked up, one <kind>.png per entity kind.
var Dir = "assets"

var spriteKinds = []component.Kind{
	component.KindPlayer,
	component.KindHostile,
	component.KindBoss,
	component.KindProjectile,
	component.KindHealer,
	component.KindStealer,
}

// LoadImage decodes an image from an assets-relative path on disk.
func LoadImage(path string) (*ebiten.Image, error) {
	b, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(cleanAssetPath(path))))
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadSprites returns whichever entity sprites exist. Missing files are not an
// error; the renderer draws shapes for those kinds.
func LoadSprites() (map[component.Kind]*ebiten.Image, error) {
	sprites := make(map[component.Kind]*ebiten.Image)
	var errs []error
	for _, kind := range spriteKinds {
		img, err := LoadImage(SpriteName(kind))
		switch {
		case err == nil:
			sprites[kind] = img
		case errors.Is(err, fs.ErrNotExist):
		default:
			errs = append(errs, err)
		}
	}
	return sprites, errors.Join(errs...)
}

func SpriteName(kind component.Kind) string {
	return "sprites/" + kind.String() + ".png"
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	return strings.TrimPrefix(s, "assets/")
}
