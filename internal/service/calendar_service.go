package service

import (
	"context"
	"time"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/engine"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/model"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/repository"
)

// CalendarService builds the heat-map calendar.
type CalendarService struct {
	transactionRepo *repository.TransactionRepository
}

// NewCalendarService creates a new CalendarService.
func NewCalendarService(transactionRepo *repository.TransactionRepository) *CalendarService {
	return &CalendarService{transactionRepo: transactionRepo}
}

// GetMonth returns one entry per day of p, including days without
// transactions.
func (s *CalendarService) GetMonth(ctx context.Context, p model.Period) (model.CalendarMonth, error) {
	start := p.Start()
	end := start.AddDate(0, 0, p.Days()-1)

	ts, err := s.transactionRepo.GetTransactions(ctx, model.TransactionFilter{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return model.CalendarMonth{}, err
	}

	byDay := engine.BucketByDay(ts)

	days := make([]model.CalendarDay, 0, p.Days())
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := model.DateKey(d)
		totals := engine.DayTotalsOf(nil)
		if t, ok := byDay[key]; ok {
			totals = t
		}
		days = append(days, model.CalendarDay{
			Date:      key,
			Weekday:   int(d.Weekday()),
			Status:    engine.DayStatusOf(totals),
			DayTotals: totals,
		})
	}

	return model.CalendarMonth{Period: p.Key(), Days: days}, nil
}

// GetDay returns the transactions of a single day with their totals.
func (s *CalendarService) GetDay(ctx context.Context, day time.Time) (model.DayDetail, error) {
	day = model.TruncateDay(day)

	ts, err := s.transactionRepo.GetTransactions(ctx, model.TransactionFilter{
		StartDate: day,
		EndDate:   day,
	})
	if err != nil {
		return model.DayDetail{}, err
	}

	return model.DayDetail{
		Date:         model.DateKey(day),
		Totals:       engine.DayTotalsOf(ts),
		Transactions: engine.SortRecentFirst(ts),
	}, nil
}
