//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFieldSearchAndPick(t *testing.T) {
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("field"))
	require.True(t, tf.Ready(), "field editor did not become ready")
	require.True(t, tf.SeePlain("No icon selected"))

	// mounting an unset field writes it back as empty
	require.True(t, tf.WaitForState("entry.toml", "icon = ", 3*time.Second), tf.ReadState("entry.toml"))

	require.NoError(t, tf.Type("house"))
	require.True(t, tf.SeePlain("fas fa-house"), tf.SnapshotPlain())

	require.NoError(t, tf.SendKeys(KeyDown))
	require.NoError(t, tf.SendKeys(KeyEnter))
	require.True(t, tf.WaitForState("entry.toml", "far fa-house", 3*time.Second), tf.ReadState("entry.toml"))

	require.NoError(t, tf.Quit())
}

func TestFieldShowsStoredValue(t *testing.T) {
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.WriteState("entry.toml", "[fields]\nicon = 'fab fa-github'\n"))
	require.NoError(t, tf.StartApp("field"))
	require.True(t, tf.Ready())
	require.True(t, tf.SeePlain("fab fa-github"), tf.SnapshotPlain())

	require.NoError(t, tf.Quit())
}

func TestFieldFollowsOutsideEdits(t *testing.T) {
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.WriteState("entry.toml", "[fields]\nicon = 'fas fa-star'\n"))
	require.NoError(t, tf.StartApp("field"))
	require.True(t, tf.Ready())
	require.True(t, tf.SeePlain("fas fa-star"))

	require.NoError(t, tf.WriteState("entry.toml", "[fields]\nicon = 'fas fa-heart'\n"))
	require.True(t, tf.SeePlain("fas fa-heart"), tf.SnapshotPlain())

	require.NoError(t, tf.Quit())
}

func TestFieldHonorsInstallationParameters(t *testing.T) {
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.WriteState("installation.toml", "[parameters]\nminSearchChars = 4\n"))
	require.NoError(t, tf.StartApp("field"))
	require.True(t, tf.Ready())

	require.NoError(t, tf.Type("ho"))
	require.True(t, tf.SeePlain("Type at least 4 characters"), tf.SnapshotPlain())

	require.NoError(t, tf.Quit())
}

func TestConfigSave(t *testing.T) {
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("config"))
	require.True(t, tf.Ready(), "config screen did not become ready")
	require.True(t, tf.SeePlain("Font Awesome Icon Picker Configuration"))
	require.True(t, tf.SeePlain("[x] Enable Solid icons"))

	// uncheck Solid, the first field
	require.NoError(t, tf.SendKeys(KeySpace))
	require.True(t, tf.SeePlain("[ ] Enable Solid icons"))

	require.NoError(t, tf.SendKeys(KeyCtrlS))
	require.True(t, tf.SeePlain("Configuration saved"), tf.SnapshotPlain())
	require.True(t, tf.WaitForState("installation.toml", "[parameters]", 3*time.Second))

	styles := stateLine(tf.ReadState("installation.toml"), "allowedStyles")
	require.Contains(t, styles, "regular")
	require.NotContains(t, styles, "solid")

	require.NoError(t, tf.Quit())
}

// stateLine returns the first line of a state file that starts with key
func stateLine(content, key string) string {
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), key) {
			return line
		}
	}
	return ""
}
