package engine

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/format"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/model"
)

// Project rolls currentBalance forward horizonMonths months at a constant
// monthlyNet and returns horizonMonths+1 points. Point 0 is the current
// balance, labelled model.ProjectionLabelCurrent; points 1..N are labelled
// with the months following start.
//
// A non-positive monthlyNet does not accumulate losses: every point after
// the first holds max(0, currentBalance). This flat line for deficits is the
// product behaviour of the report chart and is kept as is.
func Project(currentBalance, monthlyNet decimal.Decimal, horizonMonths int, start model.Period) []model.ProjectionPoint {
	if horizonMonths < 0 {
		panic(fmt.Sprintf("engine: negative projection horizon %d", horizonMonths))
	}

	points := make([]model.ProjectionPoint, 0, horizonMonths+1)
	points = append(points, model.ProjectionPoint{
		Label:   model.ProjectionLabelCurrent,
		Balance: currentBalance,
	})

	growing := monthlyNet.IsPositive()
	frozen := decimal.Max(decimal.Zero, currentBalance)
	cumulative := currentBalance
	period := start

	for i := 1; i <= horizonMonths; i++ {
		period = period.Next()
		value := frozen
		if growing {
			cumulative = cumulative.Add(monthlyNet)
			value = cumulative
		}
		points = append(points, model.ProjectionPoint{
			Label:   period.Key(),
			Balance: value,
		})
	}
	return points
}

// MonthsToGoal estimates how long it takes to reach target saving monthlyNet
// per month. A goal reached partway through a month counts that month in
// full, so the result is rounded up. A month count beyond int64 is reported
// as unreachable.
func MonthsToGoal(currentBalance, monthlyNet, target decimal.Decimal) model.GoalStatus {
	if currentBalance.GreaterThanOrEqual(target) {
		return model.AlreadyReached()
	}
	if !monthlyNet.IsPositive() {
		return model.Unreachable()
	}

	missing := target.Sub(currentBalance)
	q, r := missing.QuoRem(monthlyNet, 0)
	if q.GreaterThanOrEqual(maxMonths) {
		return model.Unreachable()
	}
	months := q.IntPart()
	if r.IsPositive() {
		months++
	}
	return model.InProgress(months)
}

// maxMonths is the quotient past which the rounded-up count overflows int64.
var maxMonths = decimal.NewFromInt(math.MaxInt64)

// Timeline returns months consecutive periods beginning at start, each with
// the net of the transactions dated in it (zero when there are none) and the
// running total since start.
func Timeline(ts []model.Transaction, start model.Period, months int) []model.TimelinePoint {
	buckets := BucketByMonth(ts)

	points := make([]model.TimelinePoint, 0, months)
	cumulative := decimal.Zero
	for i := 0; i < months; i++ {
		p := start.Add(i)
		net, ok := buckets[p.Key()]
		if !ok {
			net = decimal.Zero
		}
		cumulative = cumulative.Add(net)
		points = append(points, model.TimelinePoint{
			Period:     p.Key(),
			Label:      format.MonthLabel(p.Year, p.Month),
			Net:        net,
			Cumulative: cumulative,
		})
	}
	return points
}

// SavingsRate returns the share of income kept as balance, in percent with
// one decimal. It is zero when there is no income.
func SavingsRate(s model.Summary) decimal.Decimal {
	if !s.TotalIncome.IsPositive() {
		return decimal.Zero
	}
	return s.Balance.Div(s.TotalIncome).Mul(hundred).Round(1)
}

// Analyze classifies the balance of a summary.
func Analyze(s model.Summary) model.Analysis {
	switch {
	case s.Balance.IsPositive():
		yearly := s.Balance.Mul(decimal.NewFromInt(12))
		return model.Analysis{State: model.AnalysisPositive, YearlySavings: &yearly}
	case s.Balance.IsNegative():
		shortfall := s.Balance.Abs()
		return model.Analysis{State: model.AnalysisDeficit, MonthlyShortfall: &shortfall}
	default:
		return model.Analysis{State: model.AnalysisBalanced}
	}
}
