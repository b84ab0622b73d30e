package ipam

import (
	"context"

	"nbcli/core/apperr"
	"nbcli/core/netbox"
	"nbcli/core/render"

	"go.uber.org/zap"
)

// Service handles IP address, prefix and VLAN operations.
type Service struct {
	client netbox.Client
	logger *zap.Logger
}

// NewService creates a new ipam service.
func NewService(client netbox.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		logger: logger,
	}
}

// ListAddresses returns the IP address table.
func (s *Service) ListAddresses(ctx context.Context) (*render.Table, error) {
	addresses, err := s.client.ListIPAddresses(ctx, nil)
	if err != nil {
		return nil, apperr.Fetch("ip", err)
	}
	s.logger.Debug("Fetched IP addresses", zap.Int("count", len(addresses)))
	return IPTable(addresses), nil
}

// ListPrefixes returns the prefix table.
func (s *Service) ListPrefixes(ctx context.Context) (*render.Table, error) {
	prefixes, err := s.client.ListPrefixes(ctx, nil)
	if err != nil {
		return nil, apperr.Fetch("prefix", err)
	}
	return PrefixTable(prefixes), nil
}

// ListVLANs returns one row per prefix bound to a VLAN. Prefixes and VLANs
// are fetched once each and joined locally.
func (s *Service) ListVLANs(ctx context.Context) (*render.Table, error) {
	prefixes, err := s.client.ListPrefixes(ctx, nil)
	if err != nil {
		return nil, apperr.Fetch("prefix", err)
	}
	vlans, err := s.client.ListVLANs(ctx, nil)
	if err != nil {
		return nil, apperr.Fetch("vlan", err)
	}
	s.logger.Debug("Joined prefixes with VLANs",
		zap.Int("prefixes", len(prefixes)),
		zap.Int("vlans", len(vlans)))
	return VLANTable(prefixes, vlans), nil
}
