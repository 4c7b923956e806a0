package handlers

import (
	"net/http"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/api/response"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/service"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/validation"
)

// ReportHandler handles the summary, monthly, report and goal endpoints.
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Summary handles GET requests for the totals of every transaction.
//
// Endpoint: GET /api/summary
// Response: 200 OK with Summary
// Error: 500 Internal Server Error if aggregation fails
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportService.GetSummary(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildSummary.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// Monthly handles GET requests for the signed net of each month with activity.
//
// Endpoint: GET /api/monthly
// Response: 200 OK with an object keyed by YYYY-MM
// Error: 500 Internal Server Error if aggregation fails
func (h *ReportHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	monthly, err := h.reportService.GetMonthly(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildSummary.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, monthly)
}

// Report handles GET requests for the full financial report: totals,
// analysis, savings rate, goal status, projection and timeline.
//
// Endpoint: GET /api/report
// Query Parameters:
//   - goal (optional): Savings target overriding the stored goal
//   - horizon (optional): Projection length in months, 1 to 120
//
// Response: 200 OK with Report
// Error: 400 Bad Request if a query parameter is invalid
// Error: 500 Internal Server Error if the report cannot be built
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params, err := request.ParseReportParams(q.Get("goal"), q.Get("horizon"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidQuery.Error(), err.Error())
		return
	}
	if params.Horizon != nil {
		if err := validation.ValidateHorizon(*params.Horizon); err != nil {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidQuery.Error(), err.Error())
			return
		}
	}

	report, err := h.reportService.GetReport(r.Context(), params)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildReport.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, report)
}

// GetGoal handles GET requests for the stored savings goal.
//
// Endpoint: GET /api/goal
// Response: 200 OK with Goal
// Error: 500 Internal Server Error if retrieval fails
func (h *ReportHandler) GetGoal(w http.ResponseWriter, r *http.Request) {
	goal, err := h.reportService.GetGoal(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveGoal.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, goal)
}

// UpdateGoal handles PUT requests to store a new savings goal.
//
// Endpoint: PUT /api/goal
// Request Body: UpdateGoalRequest (target, horizonMonths)
// Response: 200 OK with the updated Goal
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if the update fails
func (h *ReportHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateGoalRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateGoal(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	goal, err := h.reportService.UpdateGoal(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToUpdateGoal.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, goal)
}
