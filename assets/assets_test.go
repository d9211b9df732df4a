package assets

import (
	"encoding/binary"
	"testing"

	"github.com/milk9111/pursuit/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeLoop(t *testing.T) {
	pcm := SynthesizeLoop(8000)
	perBeat := int(8000 * beatSeconds)
	require.Len(t, pcm, perBeat*len(loopNotes)*4)

	var peak int16
	for i := 0; i+4 <= len(pcm); i += 4 {
		l := int16(binary.LittleEndian.Uint16(pcm[i:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i+2:]))
		require.Equal(t, l, r, "channels differ at frame %d", i/4)
		peak = max(peak, l)
	}
	assert.Positive(t, peak)
}

func TestCleanAssetPath(t *testing.T) {
	cases := map[string]string{
		"":                              "",
		"sprites/boss.png":              "sprites/boss.png",
		"assets/sprites/boss.png":       "sprites/boss.png",
		"/home/me/assets/sprites/x.png": "sprites/x.png",
		"/tmp/x.png":                    "x.png",
	}
	for in, want := range cases {
		assert.Equal(t, want, cleanAssetPath(in), in)
	}
}

func TestSpriteName(t *testing.T) {
	assert.Equal(t, "sprites/stealer.png", SpriteName(component.KindStealer))
}
