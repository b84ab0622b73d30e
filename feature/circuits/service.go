package circuits

import (
	"context"

	"nbcli/core/apperr"
	"nbcli/core/netbox"
	"nbcli/core/render"

	"go.uber.org/zap"
)

// Service handles circuit operations.
type Service struct {
	client netbox.Client
	logger *zap.Logger
}

// NewService creates a new circuits service.
func NewService(client netbox.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, logger: logger}
}

// ListCircuits returns the circuit table.
func (s *Service) ListCircuits(ctx context.Context) (*render.Table, error) {
	circuits, err := s.client.ListCircuits(ctx, nil)
	if err != nil {
		return nil, apperr.Fetch("circuit", err)
	}
	s.logger.Debug("Fetched circuits", zap.Int("count", len(circuits)))
	return Table(circuits), nil
}

// Table lists circuits with the site of each termination.
func Table(circuits []netbox.Circuit) *render.Table {
	t := render.NewTable(
		render.Column{Header: "ID", Width: 35},
		render.Column{Header: "TYPE", Width: 20},
		render.Column{Header: "PROVIDER", Width: 30},
		render.Column{Header: "A-SIDE", Width: 15},
		render.Column{Header: "Z-SIDE", Width: 15},
		render.Column{Header: "DESCRIPTION", Width: 15},
	)
	for i := range circuits {
		c := &circuits[i]
		t.AddRow(c.CID, c.Type, c.Provider, termination(c.TerminationA), termination(c.TerminationZ), c.Description)
	}
	return t
}

func termination(t *netbox.CircuitTermination) string {
	if s := t.String(); s != "" {
		return s
	}
	return "-"
}
