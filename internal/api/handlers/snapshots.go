package handlers

import (
	"net/http"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/api/response"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/service"
)

// SnapshotHandler handles balance snapshot endpoints.
type SnapshotHandler struct {
	snapshotService *service.SnapshotService
}

// NewSnapshotHandler creates a new SnapshotHandler
func NewSnapshotHandler(snapshotService *service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{
		snapshotService: snapshotService,
	}
}

// Snapshots handles GET requests for the latest balance snapshots, newest first.
//
// Endpoint: GET /api/snapshots
// Query Parameters:
//   - limit (optional): 1 to 365, defaults to 30
//
// Response: 200 OK with array of Snapshot
// Error: 400 Bad Request if limit is invalid
// Error: 500 Internal Server Error if retrieval fails
func (h *SnapshotHandler) Snapshots(w http.ResponseWriter, r *http.Request) {
	limit, err := request.ParseLimit(r.URL.Query().Get("limit"), service.DefaultSnapshotLimit, service.MaxSnapshotLimit)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidQuery.Error(), err.Error())
		return
	}

	snapshots, err := h.snapshotService.GetSnapshots(r.Context(), limit)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSnapshots.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, snapshots)
}

// CreateSnapshot handles POST requests to record the current totals.
//
// Endpoint: POST /api/snapshots
// Response: 201 Created with Snapshot
// Error: 500 Internal Server Error if the snapshot cannot be recorded
func (h *SnapshotHandler) CreateSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.snapshotService.TakeSnapshot(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCreateSnapshot.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, snapshot)
}
