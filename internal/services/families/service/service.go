// Package service contains family read workflows
package service

import (
	"context"

	"hearth/internal/modkit/repokit"
	"hearth/internal/services/families/domain"
	"hearth/internal/services/families/repo"
)

// Service defines the families service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the families service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a families service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("families.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("families.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// List returns stored families with their members
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.Family, error) {
	rows, err := s.Repo.List(ctx, in.Search, in.Limit)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Family, 0, len(rows))
	index := make(map[string]int, len(rows))
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		index[r.ID] = len(out)
		ids = append(ids, r.ID)
		out = append(out, domain.Family{ID: r.ID, Name: r.Name, CreatedAt: r.CreatedAt})
	}

	members, err := s.Repo.MembersByFamily(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		i, ok := index[m.FamilyID]
		if !ok {
			continue
		}
		out[i].Members = append(out[i].Members, domain.Person{
			ID:             m.ID,
			FamilyID:       m.FamilyID,
			FirstName:      m.FirstName,
			LastName:       m.LastName,
			Email:          m.Email,
			Mobile:         m.Mobile,
			IsMainContact1: m.IsMainContact1,
			IsMainContact2: m.IsMainContact2,
		})
	}
	return out, nil
}

// Labels returns every stored household label for import reconciliation
func (s *Svc) Labels(ctx context.Context) ([]string, error) {
	return s.Repo.Labels(ctx)
}
