// Package repo provides postgres access for import commits
package repo

import (
	"context"

	"hearth/internal/modkit/repokit"
	perr "hearth/internal/platform/errors"
	"hearth/internal/services/imports/domain"
)

type (
	// PG is a Postgres binder for domain.StorageRepo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// NewPG returns a Postgres binder for domain.StorageRepo
func NewPG() repokit.Binder[domain.StorageRepo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) domain.StorageRepo { return &queries{q: q} }

// InsertFamily creates one durable family record
func (r *queries) InsertFamily(ctx context.Context, f domain.FamilyWrite) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO families (id, name, created_at)
		VALUES ($1, $2, now())
	`, f.ID, f.Name)
	return perr.FromPostgresWithField(err, "insert family")
}

// InsertPerson creates one durable person record under its family
func (r *queries) InsertPerson(ctx context.Context, p domain.PersonWrite) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO people
			(id, family_id, first_name, last_name, email, mobile,
			is_main_contact1, is_main_contact2, created_at)
		VALUES ($1, $2, NULLIF($3,''), NULLIF($4,''), NULLIF($5,''), NULLIF($6,''), $7, $8, now())
	`, p.ID, p.FamilyID, p.FirstName, p.LastName, p.Email, p.Mobile,
		p.IsMainContact1, p.IsMainContact2)
	return perr.FromPostgresWithField(err, "insert person")
}
