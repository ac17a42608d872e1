package module

import (
	"context"

	"hearth/internal/services/imports/domain"
	impsvc "hearth/internal/services/imports/service"
)

// Ports declares the injected port(s) this module requires
type Ports struct {
	Labels domain.ExistingLabels
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptImportsPort struct{ svc impsvc.Service }

// Preview runs the household inference pipeline over one ingestion run
func (a adaptImportsPort) Preview(ctx context.Context, in domain.PreviewInput) (domain.ReviewOutput, error) {
	return a.svc.Preview(ctx, in)
}

// Commit persists reviewer-confirmed households atomically
func (a adaptImportsPort) Commit(ctx context.Context, in domain.CommitInput) (domain.CommitReceipt, error) {
	return a.svc.Commit(ctx, in)
}
