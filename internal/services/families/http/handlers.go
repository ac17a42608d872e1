// Package http provides http transport for families
package http

import (
	stdhttp "net/http"
	"strconv"

	"hearth/internal/modkit/httpkit"
	"hearth/internal/services/families/domain"
	svc "hearth/internal/services/families/service"
)

// Register mounts family endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/labels", h.labels)
}

type handlers struct{ svc svc.Service }

// @Summary List stored families with members
// @Tags Families
// @Produce json
// @Param search query string false "Case-insensitive name filter"
// @Param limit query int false "Max families returned"
// @Success 200 {array} domain.Family "ok"
// @Router /families [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	in := domain.ListInput{
		Search: r.URL.Query().Get("search"),
		Limit:  limit,
	}
	return h.svc.List(r.Context(), in)
}

// @Summary List stored household labels
// @Tags Families
// @Produce json
// @Success 200 {array} string "ok"
// @Router /families/labels [get]
func (h *handlers) labels(r *stdhttp.Request) (any, error) {
	return h.svc.Labels(r.Context())
}
