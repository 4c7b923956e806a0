// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/api/response"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/model"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/validation"
)

// ValidateUUIDMiddleware validates that the uuid URL parameter is present and is a valid UUID.
// Returns 400 Bad Request if the ID is missing or invalid.
//
// Example usage in router:
//
//	r.Route("/{uuid}", func(r chi.Router) {
//	    r.Use(middleware.ValidateUUIDMiddleware)
//	    r.Get("/", handler.Transaction)
//	    r.Delete("/", handler.DeleteTransaction)
//	})
func ValidateUUIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		UUID := chi.URLParam(r, "uuid")

		if UUID == "" {
			response.RespondError(w, http.StatusBadRequest, "valid UUID is required", "")
			return
		}

		if err := validation.ValidateUUID(UUID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid UUID format", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ValidateDateMiddleware validates that the date URL parameter is a
// YYYY-MM-DD calendar date.
func ValidateDateMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		date := chi.URLParam(r, "date")

		if date == "" {
			response.RespondError(w, http.StatusBadRequest, "date is required", "")
			return
		}

		if _, err := time.Parse(model.DateLayout, date); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid date format", "expected YYYY-MM-DD")
			return
		}

		next.ServeHTTP(w, r)
	})
}
