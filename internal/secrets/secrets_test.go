// Copyright Niklas Bubeck, 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeKey(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestSemanticScholarKey(t *testing.T) {
	dir := t.TempDir()
	writeKey(t, dir, SemanticScholarKeyFile, "  sk_xyz789  \n")

	assert.Equal(t, "sk_xyz789", SemanticScholarKey(dir))
}

func TestSemanticScholarKeyMissing(t *testing.T) {
	// Neither a missing directory nor a missing file is an error.
	assert.Equal(t, "", SemanticScholarKey(filepath.Join(t.TempDir(), "does-not-exist")))
	assert.Equal(t, "", SemanticScholarKey(t.TempDir()))
}

func TestSemanticScholarKeyUnreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permission bits; cannot make the file unreadable")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, SemanticScholarKeyFile)
	require.NoError(t, os.WriteFile(path, []byte("secret"), 0o000))
	t.Cleanup(func() { os.Chmod(path, 0o644) })

	assert.Equal(t, "", SemanticScholarKey(dir))
}

func TestSemanticScholarKeyEmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeKey(t, dir, SemanticScholarKeyFile, "   \n\t  ")

	assert.Equal(t, "", SemanticScholarKey(dir))
}
