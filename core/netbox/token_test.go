package netbox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveToken_PrefersConfiguredToken(t *testing.T) {
	token, err := ResolveToken(Config{Token: " abc ", TokenFile: "/does/not/exist"})
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestResolveToken_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".token")
	require.NoError(t, os.WriteFile(path, []byte("0123456789abcdef\nignored\n"), 0o600))

	token, err := ResolveToken(Config{TokenFile: path})
	require.NoError(t, err)
	assert.Equal(t, "0123456789abcdef", token)
}

func TestResolveToken_Missing(t *testing.T) {
	_, err := ResolveToken(Config{})
	assert.Error(t, err)

	_, err = ResolveToken(Config{TokenFile: filepath.Join(t.TempDir(), "nope")})
	assert.Error(t, err)
}

func TestReadTokenFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".token")
	require.NoError(t, os.WriteFile(path, []byte("\n"), 0o600))

	_, err := ReadTokenFile(path)
	assert.Error(t, err)
}
