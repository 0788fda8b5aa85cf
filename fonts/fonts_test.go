package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults(0.5))

	for _, name := range []FontName{HUD, Small, Banner, Debug} {
		assert.NotNil(t, name.Get(), name)
	}
	assert.Greater(t, Banner.Get().Metrics().Height, Small.Get().Metrics().Height)
}

func TestLoadRejectsGarbage(t *testing.T) {
	err := LoadFontWithSize("broken", []byte("not a font"), 12)
	assert.Error(t, err)
}

func TestMissingFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("nope").Get() })
}
