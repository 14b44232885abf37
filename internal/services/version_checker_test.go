package services

import (
	"testing"

	"github.com/Tomas-vilte/MateBacklog/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChecker(t *testing.T, current string) *VersionChecker {
	t.Helper()
	trans, err := i18n.NewTranslations("en", t.TempDir())
	require.NoError(t, err)
	return NewVersionChecker(current, trans)
}

func TestIsUpdateAvailable(t *testing.T) {
	t.Run("should detect a newer release", func(t *testing.T) {
		checker := newChecker(t, "v0.3.0")
		assert.True(t, checker.isUpdateAvailable("v0.4.0"))
	})

	t.Run("should ignore the same version", func(t *testing.T) {
		checker := newChecker(t, "v0.3.0")
		assert.False(t, checker.isUpdateAvailable("v0.3.0"))
	})

	t.Run("should ignore an older release", func(t *testing.T) {
		checker := newChecker(t, "v0.3.0")
		assert.False(t, checker.isUpdateAvailable("v0.2.9"))
	})

	t.Run("should ignore tags that are not semver", func(t *testing.T) {
		checker := newChecker(t, "v0.3.0")
		assert.False(t, checker.isUpdateAvailable("latest"))
		assert.False(t, checker.isUpdateAvailable(""))
	})

	t.Run("should ignore everything when the current version is not semver", func(t *testing.T) {
		checker := newChecker(t, "dev")
		assert.False(t, checker.isUpdateAvailable("v9.9.9"))
	})
}
