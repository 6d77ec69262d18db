package analytics

import (
	"context"
	"net/http"

	"github.com/workmesh/workmesh/internal/dto"
	"github.com/workmesh/workmesh/internal/service/analyticsservice"
	"github.com/workmesh/workmesh/pkg/utils"
)

type Service interface {
	Summary(ctx context.Context) (*analyticsservice.Summary, error)
}

type AnalyticsHandler struct {
	analyticsService Service
}

func New(analyticsService Service) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetAnalytics godoc
//
//	@Summary		Get marketplace analytics
//	@Description	Aggregate user counts, job counts and the derived revenue summary.
//	@Tags			Analytics
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AnalyticsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/analytics [get]
func (h *AnalyticsHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analyticsService.Summary(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AnalyticsResponseDTO{
		TotalUsers:  summary.TotalUsers,
		ActiveUsers: summary.ActiveUsers,
		TotalJobs:   summary.TotalJobs,
		OpenJobs:    summary.OpenJobs,
		Revenue: dto.RevenueSummaryDTO{
			Total:      summary.Revenue.Total,
			Week:       summary.Revenue.Week,
			Today:      summary.Revenue.Today,
			GrowthRate: summary.Revenue.GrowthRate,
		},
	})
}
