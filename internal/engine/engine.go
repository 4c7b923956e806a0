// Package engine turns a snapshot of transactions into totals, period
// buckets, forward projections and goal estimates.
//
// Every function is pure: inputs are read, never mutated, and results depend
// only on the multiset of transactions passed in. Inputs are expected to be
// validated already (positive amount, known kind); a malformed transaction is
// a programming error and makes the engine panic instead of producing
// silently wrong numbers.
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/model"
)

var hundred = decimal.NewFromInt(100)

// checkTransaction enforces the engine preconditions.
func checkTransaction(t model.Transaction) {
	if !t.Amount.IsPositive() {
		panic(fmt.Sprintf("engine: transaction %q has non-positive amount %s", t.ID, t.Amount))
	}
	if !t.Type.Valid() {
		panic(fmt.Sprintf("engine: transaction %q has unknown kind %q", t.ID, string(t.Type)))
	}
}

// Aggregate sums income and expense separately and derives the balance.
// An empty input yields all zeros.
func Aggregate(ts []model.Transaction) model.Summary {
	s := model.Summary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, t := range ts {
		checkTransaction(t)
		switch t.Type {
		case model.KindIncome:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
			s.IncomeCount++
		case model.KindExpense:
			s.TotalExpense = s.TotalExpense.Add(t.Amount)
			s.ExpenseCount++
		}
	}
	s.Balance = s.TotalIncome.Sub(s.TotalExpense)
	return s
}

// BucketByMonth returns the signed net of each calendar month that has at
// least one transaction, keyed "YYYY-MM". Months without transactions are
// absent; callers that need a contiguous series use Timeline.
func BucketByMonth(ts []model.Transaction) map[string]decimal.Decimal {
	buckets := make(map[string]decimal.Decimal)
	for _, t := range ts {
		checkTransaction(t)
		key := model.PeriodOf(t.Date).Key()
		buckets[key] = buckets[key].Add(t.Signed())
	}
	return buckets
}

// BucketByDay groups transactions by their "YYYY-MM-DD" day key.
func BucketByDay(ts []model.Transaction) map[string]model.DayTotals {
	days := make(map[string]model.DayTotals)
	for _, t := range ts {
		key := model.DateKey(t.Date)
		days[key] = addToDay(days[key], t)
	}
	return days
}

// DayTotalsOf aggregates a set of transactions as a single day.
func DayTotalsOf(ts []model.Transaction) model.DayTotals {
	var d model.DayTotals
	for _, t := range ts {
		d = addToDay(d, t)
	}
	return zeroFill(d)
}

func addToDay(d model.DayTotals, t model.Transaction) model.DayTotals {
	checkTransaction(t)
	switch t.Type {
	case model.KindIncome:
		d.Income = d.Income.Add(t.Amount)
	case model.KindExpense:
		d.Expense = d.Expense.Add(t.Amount)
	}
	d.Net = d.Income.Sub(d.Expense)
	d.Count++
	return d
}

func zeroFill(d model.DayTotals) model.DayTotals {
	if d.Count == 0 {
		return model.DayTotals{Income: decimal.Zero, Expense: decimal.Zero, Net: decimal.Zero}
	}
	return d
}

// DayStatusOf maps a day to its heat-map class.
func DayStatusOf(d model.DayTotals) model.DayStatus {
	switch {
	case d.Count == 0:
		return model.DayEmpty
	case d.Net.IsPositive():
		return model.DayPositive
	case d.Net.IsNegative():
		return model.DayNegative
	default:
		return model.DayNeutral
	}
}
