// Package repo provides postgres access for families
package repo

import (
	"context"

	"hearth/internal/modkit/repokit"
	perr "hearth/internal/platform/errors"
	"hearth/internal/platform/store"
)

// Repo defines the repository contract for families
type Repo interface {
	List(ctx context.Context, search string, limit int) ([]RowFamily, error)
	MembersByFamily(ctx context.Context, familyIDs []string) ([]RowPerson, error)
	Labels(ctx context.Context) ([]string, error)
}

// RowFamily represents a family row from the database
type RowFamily struct {
	ID        string
	Name      string
	CreatedAt string
}

// RowPerson represents a person row from the database
type RowPerson struct {
	ID             string
	FamilyID       string
	FirstName      string
	LastName       string
	Email          string
	Mobile         string
	IsMainContact1 bool
	IsMainContact2 bool
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) List(ctx context.Context, search string, limit int) ([]RowFamily, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	const sql = `
select f.id::text, f.name, f.created_at::text
from families f
where ($1 = '' or f.name ilike '%' || $1 || '%')
order by f.name asc
limit $2
`
	out, err := store.Many(ctx, r.q, func(row store.Row) (RowFamily, error) {
		var rr RowFamily
		return rr, row.Scan(&rr.ID, &rr.Name, &rr.CreatedAt)
	}, sql, search, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "list families")
	}
	return out, nil
}

func (r *queries) MembersByFamily(ctx context.Context, familyIDs []string) ([]RowPerson, error) {
	if len(familyIDs) == 0 {
		return nil, nil
	}
	const sql = `
select p.id::text, p.family_id::text,
coalesce(p.first_name, ''), coalesce(p.last_name, ''),
coalesce(p.email, ''), coalesce(p.mobile, ''),
p.is_main_contact1, p.is_main_contact2
from people p
where p.family_id = any($1)
order by p.family_id, p.created_at asc
`
	out, err := store.Many(ctx, r.q, func(row store.Row) (RowPerson, error) {
		var rr RowPerson
		return rr, row.Scan(
			&rr.ID,
			&rr.FamilyID,
			&rr.FirstName,
			&rr.LastName,
			&rr.Email,
			&rr.Mobile,
			&rr.IsMainContact1,
			&rr.IsMainContact2,
		)
	}, sql, familyIDs)
	if err != nil {
		return nil, perr.FromPostgres(err, "list members")
	}
	return out, nil
}

func (r *queries) Labels(ctx context.Context) ([]string, error) {
	const sql = `select f.name from families f order by f.name asc`

	out, err := store.Many(ctx, r.q, func(row store.Row) (string, error) {
		var name string
		return name, row.Scan(&name)
	}, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "list family labels")
	}
	return out, nil
}
