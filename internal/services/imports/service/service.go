// Package service provides the imports service implementation: the household
// inference pipeline behind preview, and the atomic batch commit behind
// confirm. The pipeline itself is a pure synchronous pass over the input;
// all I/O sits at the edges of this package
package service

import (
	"context"
	"strings"
	"time"

	"hearth/internal/core/household"
	"hearth/internal/core/namematch"
	"hearth/internal/core/roster"
	"hearth/internal/core/tabular"
	"hearth/internal/modkit/repokit"
	perr "hearth/internal/platform/errors"
	"hearth/internal/platform/logger"
	"hearth/internal/platform/store"
	"hearth/internal/services/imports/domain"

	"github.com/google/uuid"
)

// tabularContentTypes is the allowlist for uploaded bodies. Spreadsheet
// tools routinely mislabel CSV as vnd.ms-excel, so that one is tolerated
var tabularContentTypes = map[string]bool{
	"text/csv":                  true,
	"text/plain":                true,
	"text/tab-separated-values": true,
	"application/csv":           true,
	"application/vnd.ms-excel":  true,
}

// Service defines the imports service contract
type Service interface {
	domain.PreviewPort
	domain.CommitPort
}

// Config for the imports service
type Config struct {
	// AuditTable receives one ClickHouse row per preview run when the CH
	// seam is configured; empty disables the sink
	AuditTable string
}

// Svc implements the imports service
type Svc struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[domain.StorageRepo]
	Labels domain.ExistingLabels
	CH     store.Clickhouse
	Cfg    Config
}

// New constructs the imports service
func New(db repokit.TxRunner, binder repokit.Binder[domain.StorageRepo], labels domain.ExistingLabels, ch store.Clickhouse, cfg Config) *Svc {
	if db == nil {
		panic("imports.Svc requires a non nil TxRunner")
	}
	if binder == nil {
		panic("imports.Svc requires a non nil Repo binder")
	}
	if cfg.AuditTable == "" {
		cfg.AuditTable = "import_runs"
	}
	return &Svc{DB: db, Binder: binder, Labels: labels, CH: ch, Cfg: cfg}
}

// Preview implements domain.PreviewPort. Empty or unparseable input is a
// valid run with zero households, never an error; only a non-tabular
// declared content type rejects the run before parsing
func (s *Svc) Preview(ctx context.Context, in domain.PreviewInput) (domain.ReviewOutput, error) {
	started := time.Now()

	text := in.Text
	if len(in.Content) > 0 {
		ct := baseContentType(in.ContentType)
		if !tabularContentTypes[ct] {
			return domain.ReviewOutput{}, perr.Newf(perr.ErrorCodeValidation,
				"unsupported content type %q; expected tabular text", in.ContentType)
		}
		text = string(in.Content)
	}

	rows := tabular.Parse(text)
	people := roster.Normalize(rows)
	families := household.Group(people)

	if s.Labels != nil && len(families) > 0 {
		labels, err := s.Labels.Labels(ctx)
		if err != nil {
			// reconciliation is advisory; a read failure must not sink the run
			logger.Named("imports").Warn().Err(err).Msg("existing label read failed; skipping already-imported marks")
		} else {
			markAlreadyImported(families, labels)
		}
	}

	out := domain.ReviewOutput{
		Families:       families,
		Stats:          stats(families),
		TargetFamilyID: in.TargetFamilyID,
	}
	s.audit(ctx, len(rows), out, time.Since(started))
	return out, nil
}

// Commit implements domain.CommitPort. One transaction covers the entire
// batch: a failed person insert rolls back every family and person already
// written in this call, partial households are never persisted
func (s *Svc) Commit(ctx context.Context, in domain.CommitInput) (domain.CommitReceipt, error) {
	if len(in.Families) == 0 {
		return domain.CommitReceipt{}, perr.InvalidArgf("commit requires at least one household")
	}
	for _, f := range in.Families {
		if len(f.Members) == 0 {
			return domain.CommitReceipt{}, perr.InvalidArgf("household %q has no members", f.SuggestedName)
		}
	}

	var receipt domain.CommitReceipt
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		r := s.Binder.Bind(q)
		for _, f := range in.Families {
			fam := domain.FamilyWrite{ID: uuid.NewString(), Name: f.SuggestedName}
			if err := r.InsertFamily(ctx, fam); err != nil {
				return err
			}
			receipt.Imported.Families = append(receipt.Imported.Families,
				domain.ImportedRef{ID: fam.ID, Name: fam.Name})

			for _, m := range f.Members {
				p := domain.PersonWrite{
					ID:             uuid.NewString(),
					FamilyID:       fam.ID,
					FirstName:      m.FirstName,
					LastName:       m.LastName,
					Email:          m.Email,
					Mobile:         m.Mobile,
					IsMainContact1: m.IsMainContact1,
					IsMainContact2: m.IsMainContact2,
				}
				if err := r.InsertPerson(ctx, p); err != nil {
					return err
				}
				receipt.Imported.Individuals = append(receipt.Imported.Individuals,
					domain.ImportedRef{ID: p.ID, Name: personName(m)})
			}
		}
		return nil
	})
	if err != nil {
		return domain.CommitReceipt{}, perr.WrapIf(err, perr.ErrorCodeDB, "import commit failed")
	}
	return receipt, nil
}

// audit writes one row per preview run to the columnar sink. Best effort:
// the review response never waits on or fails with the audit write
func (s *Svc) audit(ctx context.Context, rows int, out domain.ReviewOutput, took time.Duration) {
	if s.CH == nil || s.Cfg.AuditTable == "" {
		return
	}
	target := s.Cfg.AuditTable +
		" (ran_at, rows_in, people, families, high, medium, low, took_ms, target_family)"
	row := []any{
		time.Now().UTC(),
		uint32(rows),
		uint32(out.Stats.TotalPeople),
		uint32(out.Stats.TotalFamilies),
		uint32(out.Stats.HighConfidence),
		uint32(out.Stats.MediumConfidence),
		uint32(out.Stats.LowConfidence),
		uint64(took.Milliseconds()),
		out.TargetFamilyID,
	}
	if err := s.CH.Insert(ctx, target, [][]any{row}); err != nil {
		logger.Named("imports").Debug().Err(err).Msg("import audit write skipped")
	}
}

// markAlreadyImported flags candidates whose label plausibly matches a
// stored family. Recall-favoring on purpose: a spurious flag costs the
// reviewer one click, a missed one creates a duplicate family
func markAlreadyImported(families []household.Candidate, labels []string) {
	for i := range families {
		for _, l := range labels {
			if namematch.Match(families[i].SuggestedName, l) {
				families[i].AlreadyImported = true
				break
			}
		}
	}
}

// stats tallies the run for the review surface
func stats(families []household.Candidate) domain.Stats {
	var st domain.Stats
	st.TotalFamilies = len(families)
	for _, f := range families {
		st.TotalPeople += len(f.Members)
		switch f.Confidence {
		case household.ConfidenceLow:
			st.LowConfidence++
		case household.ConfidenceMedium:
			st.MediumConfidence++
		case household.ConfidenceHigh:
			st.HighConfidence++
		}
	}
	return st
}

// personName renders a member for the commit receipt
func personName(m roster.PersonCandidate) string {
	return strings.TrimSpace(strings.TrimSpace(m.FirstName) + " " + strings.TrimSpace(m.LastName))
}

// baseContentType strips parameters like "; charset=utf-8"
func baseContentType(ct string) string {
	ct = strings.TrimSpace(strings.ToLower(ct))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct
}
