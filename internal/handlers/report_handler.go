package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bizledger/internal/services"
)

// ReportHandler serves aggregate report endpoints.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ProfitLoss returns a profit and loss statement grouped by expense category.
// @Summary     Profit and loss report
// @Description Aggregate revenue and expenses per category over a date range. Defaults to the current calendar year to date.
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       from query string false "Start date (YYYY-MM-DD or RFC 3339)"
// @Param       to   query string false "End date (YYYY-MM-DD or RFC 3339)"
// @Success     200 {object} services.ProfitLossReport "Profit and loss report"
// @Failure     400 {object} ErrorResponse "Invalid date"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /reports/profit-loss [get]
func (h *ReportHandler) ProfitLoss(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	from, err := parseDateQuery(c, "from")
	if err != nil {
		respondWithError(c, err)
		return
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.reportService.ProfitLoss(userID, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}
