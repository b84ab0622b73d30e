package category_test

import (
	"testing"

	"nbcli/core/apperr"
	"nbcli/core/category"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw     string
		want    category.Category
		wantErr bool
	}{
		{"device", category.Device, false},
		{" IP ", category.IP, false},
		{"ip-address", category.IP, false},
		{"asset", category.AssetTag, false},
		{"asset_tag", category.AssetTag, false},
		{"serial", category.Serial, false},
		{"interface", category.Interface, false},
		{"tenant", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := category.Parse(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperr.ErrUserInput)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllAreValid(t *testing.T) {
	for _, c := range category.All {
		assert.True(t, c.IsValid(), c)
	}
	assert.False(t, category.Category("tenant").IsValid())
}

func TestParseAction(t *testing.T) {
	for _, raw := range []string{"list", "rename", "delete", "export", "LOCATE"} {
		_, err := category.ParseAction(raw)
		assert.NoError(t, err, raw)
	}

	_, err := category.ParseAction("sync")
	assert.ErrorIs(t, err, apperr.ErrUserInput)
	assert.Contains(t, err.Error(), "unrecognized action: -a sync")
}
