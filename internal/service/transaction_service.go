package service

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/engine"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/events"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/format"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/model"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/repository"
)

// TransactionService handles transaction-related business logic operations.
type TransactionService struct {
	db              *sql.DB
	transactionRepo *repository.TransactionRepository
	publisher       events.Publisher
	log             zerolog.Logger
	now             func() time.Time
}

// NewTransactionService creates a new TransactionService with the provided repository dependencies.
// A nil publisher disables events.
func NewTransactionService(
	db *sql.DB,
	transactionRepo *repository.TransactionRepository,
	publisher events.Publisher,
	log zerolog.Logger,
) *TransactionService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &TransactionService{
		db:              db,
		transactionRepo: transactionRepo,
		publisher:       publisher,
		log:             log,
		now:             time.Now,
	}
}

// WithClock replaces the time source. Tests use it to pin "now".
func (s *TransactionService) WithClock(now func() time.Time) *TransactionService {
	s.now = now
	return s
}

// GetTransactions returns the transactions matching filter, most recent first.
// The result is never nil.
func (s *TransactionService) GetTransactions(ctx context.Context, filter model.TransactionFilter) ([]model.Transaction, error) {
	ts, err := s.transactionRepo.GetTransactions(ctx, filter)
	if err != nil {
		return nil, err
	}
	return engine.SortRecentFirst(engine.FilterByKind(ts, filter.Type)), nil
}

// GetTransaction retrieves a single transaction by its ID.
func (s *TransactionService) GetTransaction(ctx context.Context, transactionID string) (model.Transaction, error) {
	return s.transactionRepo.GetTransaction(ctx, transactionID)
}

// CreateTransaction stores a new transaction built from a validated request.
// A missing date means today; a timestamp keeps the calendar day of its own
// offset. The created event is published only after
// the row is written.
func (s *TransactionService) CreateTransaction(ctx context.Context, req request.CreateTransactionRequest) (model.Transaction, error) {
	kind, err := model.ParseKind(req.Type)
	if err != nil {
		return model.Transaction{}, err
	}

	now := s.now().UTC()
	date := model.TruncateDay(now)
	if d := strings.TrimSpace(req.Date); d != "" {
		parsed, err := model.ParseDate(d)
		if err != nil {
			return model.Transaction{}, err
		}
		date = model.CalendarDate(parsed)
	}

	transaction := model.Transaction{
		ID:          uuid.New().String(),
		Description: strings.TrimSpace(req.Description),
		Amount:      req.Amount,
		Type:        kind,
		Date:        date,
		CreatedAt:   now,
	}

	if err := s.transactionRepo.InsertTransaction(ctx, transaction); err != nil {
		return model.Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.publish(ctx, events.TransactionCreated, transaction)

	return transaction, nil
}

// DeleteTransaction removes a transaction and returns what was removed.
// Returns ErrTransactionNotFound if no transaction has the given ID.
func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID string) (model.Transaction, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	repo := s.transactionRepo.WithTx(tx)

	transaction, err := repo.GetTransaction(ctx, transactionID)
	if err != nil {
		return model.Transaction{}, err
	}

	if err := repo.DeleteTransaction(ctx, transactionID); err != nil {
		return model.Transaction{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Transaction{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.publish(ctx, events.TransactionDeleted, transaction)

	return transaction, nil
}

// exportHeader is the header row of both exports, in the user's locale.
var exportHeader = []string{"Data", "Descrição", "Tipo", "Valor"}

// ExportSheet names the worksheet of the spreadsheet export.
const ExportSheet = "Transações"

// amountNumFmt is the built-in "#,##0.00" format; spreadsheet apps render
// it with the reader's locale separators.
const amountNumFmt = 4

// ExportCSV writes every transaction, most recent first, as a semicolon
// separated file formatted for pt-BR spreadsheets.
func (s *TransactionService) ExportCSV(ctx context.Context, w io.Writer) error {
	ts, err := s.GetTransactions(ctx, model.TransactionFilter{})
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, t := range ts {
		record := []string{
			format.Date(t.Date),
			t.Description,
			format.Kind(t.Type),
			format.Number(t.Amount),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// ExportXLSX writes every transaction, most recent first, as a single sheet
// workbook. Amounts are numeric cells so they stay summable.
func (s *TransactionService) ExportXLSX(ctx context.Context, w io.Writer) error {
	ts, err := s.GetTransactions(ctx, model.TransactionFilter{})
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.log.Warn().Err(err).Msg("Failed to close workbook")
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), ExportSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]any, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(ExportSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write xlsx header: %w", err)
	}

	for i, t := range ts {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			format.Date(t.Date),
			t.Description,
			format.Kind(t.Type),
			t.Amount.InexactFloat64(),
		}
		if err := f.SetSheetRow(ExportSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write xlsx row: %w", err)
		}
	}

	if len(ts) > 0 {
		style, err := f.NewStyle(&excelize.Style{NumFmt: amountNumFmt})
		if err != nil {
			return fmt.Errorf("failed to create amount style: %w", err)
		}
		last, err := excelize.CoordinatesToCellName(4, len(ts)+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(ExportSheet, "D2", last, style); err != nil {
			return fmt.Errorf("failed to style amounts: %w", err)
		}
	}

	if err := f.SetColWidth(ExportSheet, "B", "B", 40); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}

// publish announces a change. Failures are logged and never undo the write.
func (s *TransactionService) publish(ctx context.Context, name string, t model.Transaction) {
	err := s.publisher.Publish(context.WithoutCancel(ctx), events.NewTransactionEvent(name, t))
	if err != nil {
		s.log.Warn().
			Err(err).
			Str("event", name).
			Str("transaction_id", t.ID).
			Msg("Failed to publish transaction event")
	}
}
