package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nbcli/core/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadIdentifiers(t *testing.T) {
	path := writeFile(t, "  sw1\r\nsw2\t\n\n   \nsw1\n")

	ids, err := ReadIdentifiers(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"sw1", "sw2", "sw1"}, ids)
}

func TestReadIdentifiers_Empty(t *testing.T) {
	ids, err := ReadIdentifiers(writeFile(t, ""))
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestReadIdentifiers_Missing(t *testing.T) {
	_, err := ReadIdentifiers(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, apperr.ErrFileNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCheckReadable(t *testing.T) {
	assert.NoError(t, CheckReadable(writeFile(t, "x")))
	assert.ErrorIs(t, CheckReadable(filepath.Join(t.TempDir(), "nope.txt")), apperr.ErrFileNotFound)
}

func TestParseRenamePairs(t *testing.T) {
	in := "old-sw1\tnew-sw1\n\nold-sw2\t new-sw2 \n"

	pairs, err := ParseRenamePairs(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []RenamePair{
		{OldName: "old-sw1", NewName: "new-sw1", Line: 1},
		{OldName: "old-sw2", NewName: "new-sw2", Line: 3},
	}, pairs)
}

func TestParseRenamePairs_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"MissingNewName", "sw1\tsw1-new\nsw2\n", "line 2"},
		{"EmptyNewName", "sw1\t\n", "line 1"},
		{"TooManyFields", "a\tb\tc\n", "expected 2 fields"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRenamePairs(strings.NewReader(tt.in))
			assert.ErrorIs(t, err, apperr.ErrUserInput)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReadRenamePairs_Missing(t *testing.T) {
	_, err := ReadRenamePairs(filepath.Join(t.TempDir(), "nope.tsv"))
	assert.ErrorIs(t, err, apperr.ErrFileNotFound)
}
