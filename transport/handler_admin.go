package transport

import (
	"net/http"
)

// AdminDashboard handler
// @Summary Admin dashboard
// @Description Aggregated counts, recent activity and the listing views chart
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.AdminStats
// @Failure 403 {object} Response
// @Router /api/admin/stats [get]
func (s *RestHandler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.StatsApp.AdminDashboard(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
