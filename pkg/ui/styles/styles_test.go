package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoad(t *testing.T) {
	// init() must have populated the registry from the embedded YAML.
	require.NotEmpty(t, StyleRegistry)

	for _, name := range []string{"Header", "TypeName", "Resolved", "Pending", "Error", "Muted"} {
		_, ok := StyleRegistry[name]
		assert.True(t, ok, "style %s should be defined", name)
	}
}

func TestGetStyleUnknownName(t *testing.T) {
	// Unknown names return a usable zero style rather than panicking.
	style := GetStyle("NoSuchStyle")
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestLoadStylesFromData(t *testing.T) {
	data := []byte(`
colors:
  accent:
    light: "#000000"
    dark: "#ffffff"
styles:
  Custom:
    bold: true
    foreground: accent
`)
	require.NoError(t, LoadStylesFromData(data))
	_, ok := StyleRegistry["Custom"]
	assert.True(t, ok)

	// Restore the embedded styles for other tests.
	require.NoError(t, LoadStylesFromData(embeddedStyles))
}

func TestLoadStylesFromDataMalformed(t *testing.T) {
	err := LoadStylesFromData([]byte("styles: [not a map"))
	assert.Error(t, err)
	require.NoError(t, LoadStylesFromData(embeddedStyles))
}
