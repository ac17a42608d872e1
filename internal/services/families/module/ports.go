package module

import (
	"context"

	"hearth/internal/services/families/domain"
	famsvc "hearth/internal/services/families/service"
)

// Ports exposes the families surfaces other modules may consume
type Ports struct {
	Labels LabelsPort
}

// LabelsPort is the stored-label surface the imports module reconciles
// preview candidates against
type LabelsPort interface {
	Labels(ctx context.Context) ([]string, error)
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptFamiliesPort struct{ svc famsvc.Service }

// List returns stored families with their members
func (a adaptFamiliesPort) List(ctx context.Context, in domain.ListInput) ([]domain.Family, error) {
	return a.svc.List(ctx, in)
}

// Labels returns every stored household label
func (a adaptFamiliesPort) Labels(ctx context.Context) ([]string, error) {
	return a.svc.Labels(ctx)
}
