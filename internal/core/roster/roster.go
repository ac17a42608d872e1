// Package roster normalizes parsed rows into person candidates, the unit of
// identity inference. A row contributes a candidate only when it carries at
// least one usable name; everything else is dropped silently, those rows are
// almost always blank or garbage
package roster

import (
	"strings"

	"hearth/internal/core/fieldmap"
	"hearth/internal/core/tabular"

	"github.com/google/uuid"
)

// PersonCandidate is a run-scoped, not-yet-committed person record. The
// correlation id is unique within one ingestion run and carries no
// persistence meaning; durable ids are assigned by the import committer only
type PersonCandidate struct {
	CorrelationID  string      `json:"correlationId"`
	FirstName      string      `json:"firstName,omitempty"`
	LastName       string      `json:"lastName,omitempty"`
	Email          string      `json:"email,omitempty"`
	Mobile         string      `json:"mobile,omitempty"`
	IsMainContact1 bool        `json:"isMainContact1"`
	IsMainContact2 bool        `json:"isMainContact2"`
	OriginalRow    tabular.Row `json:"-"`
}

// HasName reports whether the candidate carries a usable name
func (p PersonCandidate) HasName() bool { return p.FirstName != "" || p.LastName != "" }

// ContactFields counts non-absent contact fields, 0 to 2
func (p PersonCandidate) ContactFields() int {
	n := 0
	if p.Email != "" {
		n++
	}
	if p.Mobile != "" {
		n++
	}
	return n
}

// HasContact reports whether any contact field is present
func (p PersonCandidate) HasContact() bool { return p.ContactFields() > 0 }

// Normalize maps every row through the field mapping resolved from the first
// row's headers. Whitespace-only values are treated as absent, mobile falls
// back to a phone-labelled column, and rows with neither name are dropped
func Normalize(rows []tabular.Row) []PersonCandidate {
	if len(rows) == 0 {
		return nil
	}
	m := fieldmap.Resolve(rows[0].Headers)

	out := make([]PersonCandidate, 0, len(rows))
	for _, row := range rows {
		p := PersonCandidate{
			CorrelationID: uuid.NewString(),
			FirstName:     value(row, m.First),
			LastName:      value(row, m.Last),
			Email:         value(row, m.Email),
			Mobile:        value(row, m.Mobile),
			OriginalRow:   row,
		}
		if p.Mobile == "" {
			p.Mobile = value(row, m.Phone)
		}
		if !p.HasName() {
			continue
		}
		out = append(out, p)
	}
	return out
}

// value reads a mapped column, collapsing whitespace-only raws to absent
func value(row tabular.Row, header string) string {
	if header == "" {
		return ""
	}
	return strings.TrimSpace(row.Get(header))
}
