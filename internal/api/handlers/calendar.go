package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/api/response"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/model"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/service"
)

// CalendarHandler handles the heat-map calendar endpoints.
type CalendarHandler struct {
	calendarService *service.CalendarService
	now             func() time.Time
}

// NewCalendarHandler creates a new CalendarHandler
func NewCalendarHandler(calendarService *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{
		calendarService: calendarService,
		now:             time.Now,
	}
}

// Month handles GET requests for the day-by-day grid of one month.
//
// Endpoint: GET /api/calendar
// Query Parameters:
//   - year (optional): Defaults to the current year
//   - month (optional): 1-12, defaults to the current month
//
// Response: 200 OK with CalendarMonth
// Error: 400 Bad Request if year or month is invalid
// Error: 500 Internal Server Error if the calendar cannot be built
func (h *CalendarHandler) Month(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	period, err := request.ParseCalendarPeriod(q.Get("year"), q.Get("month"), h.now().UTC())
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidQuery.Error(), err.Error())
		return
	}

	month, err := h.calendarService.GetMonth(r.Context(), period)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildCalendar.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, month)
}

// Day handles GET requests for the transactions of a single day.
//
// Endpoint: GET /api/calendar/{date}
// Response: 200 OK with DayDetail
// Error: 400 Bad Request if date is not YYYY-MM-DD (validated by middleware)
// Error: 500 Internal Server Error if retrieval fails
func (h *CalendarHandler) Day(w http.ResponseWriter, r *http.Request) {
	day, err := time.Parse(model.DateLayout, chi.URLParam(r, "date"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDate.Error(), err.Error())
		return
	}

	detail, err := h.calendarService.GetDay(r.Context(), day)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildCalendar.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, detail)
}
