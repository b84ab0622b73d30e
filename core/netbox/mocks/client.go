package mocks

import (
	"context"
	"net/url"

	"nbcli/core/netbox"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of netbox.Client
type Client struct {
	mock.Mock
}

var _ netbox.Client = (*Client)(nil)

func (m *Client) ListDevices(ctx context.Context, params url.Values) ([]netbox.Device, error) {
	args := m.Called(ctx, params)
	if v, ok := args.Get(0).([]netbox.Device); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ListIPAddresses(ctx context.Context, params url.Values) ([]netbox.IPAddress, error) {
	args := m.Called(ctx, params)
	if v, ok := args.Get(0).([]netbox.IPAddress); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ListPrefixes(ctx context.Context, params url.Values) ([]netbox.Prefix, error) {
	args := m.Called(ctx, params)
	if v, ok := args.Get(0).([]netbox.Prefix); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ListVLANs(ctx context.Context, params url.Values) ([]netbox.VLAN, error) {
	args := m.Called(ctx, params)
	if v, ok := args.Get(0).([]netbox.VLAN); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ListCircuits(ctx context.Context, params url.Values) ([]netbox.Circuit, error) {
	args := m.Called(ctx, params)
	if v, ok := args.Get(0).([]netbox.Circuit); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ListRacks(ctx context.Context, params url.Values) ([]netbox.Rack, error) {
	args := m.Called(ctx, params)
	if v, ok := args.Get(0).([]netbox.Rack); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ListInterfaces(ctx context.Context, params url.Values) ([]netbox.Interface, error) {
	args := m.Called(ctx, params)
	if v, ok := args.Get(0).([]netbox.Interface); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ListTenants(ctx context.Context, params url.Values) ([]netbox.Tenant, error) {
	args := m.Called(ctx, params)
	if v, ok := args.Get(0).([]netbox.Tenant); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) UpdateDevice(ctx context.Context, id int, patch map[string]any) (*netbox.Device, error) {
	args := m.Called(ctx, id, patch)
	if v, ok := args.Get(0).(*netbox.Device); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) DeleteDevices(ctx context.Context, ids []int) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *Client) DeleteIPAddresses(ctx context.Context, ids []int) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}
