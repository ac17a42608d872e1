package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	List(ctx context.Context, in ListInput) ([]Family, error)
	Labels(ctx context.Context) ([]string, error)
}
