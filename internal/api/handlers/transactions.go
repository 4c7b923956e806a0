package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/api/response"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/logger"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/service"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/validation"
)

// TransactionHandler handles HTTP requests for transaction endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the transactionService.
type TransactionHandler struct {
	transactionService *service.TransactionService
	now                func() time.Time
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		now:                time.Now,
	}
}

// Transactions handles GET requests to list transactions, most recent first.
//
// Endpoint: GET /api/transactions
// Query Parameters:
//   - type (optional): income or expense
//   - start_date (optional): Inclusive lower bound (YYYY-MM-DD or RFC3339)
//   - end_date (optional): Inclusive upper bound (YYYY-MM-DD or RFC3339)
//
// Response: 200 OK with array of Transaction (empty array when nothing matches)
// Error: 400 Bad Request if a query parameter is invalid
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter, err := request.ParseTransactionFilter(q.Get("type"), q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidQuery.Error(), err.Error())
		return
	}

	transactions, err := h.transactionService.GetTransactions(r.Context(), filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransactions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transactions)
}

// GetTransaction handles GET requests to retrieve a single transaction by ID.
//
// Endpoint: GET /api/transactions/{uuid}
// Response: 200 OK with Transaction
// Error: 400 Bad Request if transaction ID is invalid (validated by middleware)
// Error: 404 Not Found if transaction not found
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "uuid")

	transaction, err := h.transactionService.GetTransaction(r.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransaction.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transaction)
}

// CreateTransaction handles POST requests to create a new transaction.
// Validates the request body and creates a transaction record in the database.
//
// Endpoint: POST /api/transactions
// Request Body: CreateTransactionRequest (description, amount, type, date)
//   - date: YYYY-MM-DD or RFC3339; an RFC3339 value is stored as the calendar
//     day it names in its own offset, not the UTC day
//
// Response: 201 Created with Transaction
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateTransaction(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	transaction, err := h.transactionService.CreateTransaction(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCreateTransaction.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, transaction)
}

// DeleteTransaction handles DELETE requests to remove a transaction.
//
// Endpoint: DELETE /api/transactions/{uuid}
// Response: 200 OK with {"success": true}
// Error: 400 Bad Request if transaction ID is invalid (validated by middleware)
// Error: 404 Not Found if transaction not found
// Error: 500 Internal Server Error if deletion fails
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "uuid")

	if _, err := h.transactionService.DeleteTransaction(r.Context(), transactionID); err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToDeleteTransaction.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, response.SuccessResponse{Success: true})
}

// Export formats.
const (
	exportCSV  = "csv"
	exportXLSX = "xlsx"
)

// Export handles GET requests to download every transaction as a file
// formatted for pt-BR spreadsheets.
//
// Endpoint: GET /api/transactions/export
// Query Parameters:
//   - format (optional): csv (default) or xlsx
//
// Response: 200 OK with a text/csv or xlsx attachment
// Error: 400 Bad Request if format is unknown
// Error: 500 Internal Server Error if the export fails
func (h *TransactionHandler) Export(w http.ResponseWriter, r *http.Request) {
	exportFormat := r.URL.Query().Get("format")
	if exportFormat == "" {
		exportFormat = exportCSV
	}

	var (
		contentType string
		write       func(ctx context.Context, w io.Writer) error
	)
	switch exportFormat {
	case exportCSV:
		contentType = "text/csv; charset=utf-8"
		write = h.transactionService.ExportCSV
	case exportXLSX:
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		write = h.transactionService.ExportXLSX
	default:
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidQuery.Error(), "format must be 'csv' or 'xlsx'")
		return
	}

	// Buffer so a failure halfway through still yields a JSON error.
	var buf bytes.Buffer
	if err := write(r.Context(), &buf); err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToExportTransactions.Error(), err.Error())
		return
	}

	filename := fmt.Sprintf("transacoes_%s.%s", h.now().UTC().Format("2006-01-02"), exportFormat)

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log := logger.FromContext(r.Context())
		log.Warn().Err(err).Msg("failed to write export")
	}
}
