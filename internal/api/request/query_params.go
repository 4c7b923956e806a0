package request

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/model"
)

// ReportParams are the optional overrides of GET /api/report.
type ReportParams struct {
	Goal    *decimal.Decimal
	Horizon *int
}

// ParseTransactionFilter builds a listing filter from the type, start_date
// and end_date query parameters. All are optional.
func ParseTransactionFilter(typeParam, startDateParam, endDateParam string) (model.TransactionFilter, error) {
	var filter model.TransactionFilter

	if typeParam != "" {
		kind, err := model.ParseKind(typeParam)
		if err != nil {
			return filter, fmt.Errorf("invalid type: must be 'income' or 'expense'")
		}
		filter.Type = kind
	}

	if startDateParam != "" {
		startTime, err := model.ParseDate(startDateParam)
		if err != nil {
			return filter, fmt.Errorf("invalid start_date format: %w", err)
		}
		filter.StartDate = model.CalendarDate(startTime)
	}

	if endDateParam != "" {
		endTime, err := model.ParseDate(endDateParam)
		if err != nil {
			return filter, fmt.Errorf("invalid end_date format: %w", err)
		}
		filter.EndDate = model.CalendarDate(endTime)
	}

	if !filter.StartDate.IsZero() && !filter.EndDate.IsZero() && filter.EndDate.Before(filter.StartDate) {
		return filter, fmt.Errorf("invalid date range: end_date is before start_date")
	}

	return filter, nil
}

// ParseReportParams reads the goal and horizon overrides. Range checks on
// the horizon are left to validation.
func ParseReportParams(goalParam, horizonParam string) (ReportParams, error) {
	var params ReportParams

	if goalParam != "" {
		goal, err := decimal.NewFromString(strings.TrimSpace(goalParam))
		if err != nil {
			return params, fmt.Errorf("invalid goal: must be a number")
		}
		if !goal.IsPositive() {
			return params, fmt.Errorf("invalid goal: must be positive")
		}
		if goal.GreaterThan(model.MaxGoalTarget) {
			return params, fmt.Errorf("invalid goal: must be at most %s", model.MaxGoalTarget)
		}
		params.Goal = &goal
	}

	if horizonParam != "" {
		horizon, err := strconv.Atoi(horizonParam)
		if err != nil {
			return params, fmt.Errorf("invalid horizon: must be a number")
		}
		params.Horizon = &horizon
	}

	return params, nil
}

// ParseCalendarPeriod reads year and month, defaulting each to the value of
// now. Month is 1-12.
func ParseCalendarPeriod(yearParam, monthParam string, now time.Time) (model.Period, error) {
	p := model.PeriodOf(now)

	if yearParam != "" {
		year, err := strconv.Atoi(yearParam)
		if err != nil || year < 1 || year > 9999 {
			return p, fmt.Errorf("invalid year: must be between 1 and 9999")
		}
		p.Year = year
	}

	if monthParam != "" {
		month, err := strconv.Atoi(monthParam)
		if err != nil || month < 1 || month > 12 {
			return p, fmt.Errorf("invalid month: must be between 1 and 12")
		}
		p.Month = time.Month(month)
	}

	return p, nil
}

// ParseLimit parses a page size, returning def when empty.
func ParseLimit(limitParam string, def, maxLimit int) (int, error) {
	if limitParam == "" {
		return def, nil
	}
	limit, err := strconv.Atoi(limitParam)
	if err != nil {
		return 0, fmt.Errorf("invalid limit: must be a number")
	}
	if limit < 1 || limit > maxLimit {
		return 0, fmt.Errorf("invalid limit: must be between 1 and %d", maxLimit)
	}
	return limit, nil
}

