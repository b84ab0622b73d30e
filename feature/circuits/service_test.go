package circuits_test

import (
	"context"
	"errors"
	"testing"

	"nbcli/core/apperr"
	"nbcli/core/netbox"
	"nbcli/core/netbox/mocks"
	"nbcli/feature/circuits"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListCircuits(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListCircuits", mock.Anything, mock.Anything).Return([]netbox.Circuit{
		{
			CID:          "CKT-001",
			Type:         &netbox.NestedRef{Name: "Internet"},
			Provider:     &netbox.NestedRef{Name: "Lumen"},
			TerminationA: &netbox.CircuitTermination{Site: &netbox.NestedRef{Name: "AMS1"}},
			Description:  "uplink",
		},
		{CID: "CKT-002", TerminationZ: &netbox.CircuitTermination{Display: "xconnect"}},
	}, nil)

	table, err := circuits.NewService(client, nil).ListCircuits(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ID", "TYPE", "PROVIDER", "A-SIDE", "Z-SIDE", "DESCRIPTION"}, table.Headers())
	assert.Equal(t, [][]string{
		{"CKT-001", "Internet", "Lumen", "AMS1", "-", "uplink"},
		{"CKT-002", "", "", "-", "xconnect", ""},
	}, table.Rows)
}

func TestListCircuits_FetchError(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListCircuits", mock.Anything, mock.Anything).Return(nil, errors.New("502 Bad Gateway"))

	_, err := circuits.NewService(client, nil).ListCircuits(context.Background())
	assert.ErrorAs(t, err, new(*apperr.FetchError))
}
