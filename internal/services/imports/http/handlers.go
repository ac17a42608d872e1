// Package http provides http transport for imports
package http

import (
	"io"
	stdhttp "net/http"

	"hearth/internal/modkit/httpkit"
	perr "hearth/internal/platform/errors"
	"hearth/internal/services/imports/domain"
	svc "hearth/internal/services/imports/service"
)

// maxUploadBytes caps raw tabular uploads
const maxUploadBytes = 2 << 20

// Register mounts import endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// pasted tabular text
	httpkit.PostJSON[domain.PreviewInput](r, "/preview", h.preview)

	// raw file upload, content type declared by the client
	httpkit.Post(r, "/preview/upload", h.previewUpload)

	// reviewer-confirmed households
	httpkit.PostJSON[domain.CommitInput](r, "/commit", h.commit)
}

type handlers struct{ svc svc.Service }

// @Summary Preview pasted tabular text as inferred households
// @Tags Imports
// @Accept json
// @Produce json
// @Param payload body domain.PreviewInput true "Pasted text and optional target family"
// @Success 200 {object} domain.ReviewOutput "ok"
// @Router /imports/preview [post]
func (h *handlers) preview(r *stdhttp.Request, in domain.PreviewInput) (any, error) {
	return h.svc.Preview(r.Context(), in)
}

// @Summary Preview an uploaded tabular file as inferred households
// @Tags Imports
// @Accept text/csv
// @Produce json
// @Param file body string true "Raw tabular content"
// @Success 200 {object} domain.ReviewOutput "ok"
// @Router /imports/preview/upload [post]
func (h *handlers) previewUpload(r *stdhttp.Request) (any, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes+1))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "read upload body")
	}
	if len(body) > maxUploadBytes {
		return nil, perr.Newf(perr.ErrorCodeValidation, "upload exceeds %d bytes", maxUploadBytes)
	}
	in := domain.PreviewInput{
		Content:        body,
		ContentType:    r.Header.Get("Content-Type"),
		TargetFamilyID: r.URL.Query().Get("target_family_id"),
	}
	return h.svc.Preview(r.Context(), in)
}

// @Summary Commit reviewed households as durable families and people
// @Tags Imports
// @Accept json
// @Produce json
// @Param payload body domain.CommitInput true "Reviewed households"
// @Success 200 {object} domain.CommitReceipt "ok"
// @Router /imports/commit [post]
func (h *handlers) commit(r *stdhttp.Request, in domain.CommitInput) (any, error) {
	return h.svc.Commit(r.Context(), in)
}
