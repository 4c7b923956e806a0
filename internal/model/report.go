package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary holds the totals of a transaction set. Balance may be negative.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
	IncomeCount  int             `json:"incomeCount"`
	ExpenseCount int             `json:"expenseCount"`
}

// ProjectionLabelCurrent marks the first projection point, which carries the
// balance as it is today.
const ProjectionLabelCurrent = "current"

// ProjectionPoint is one step of a forward projection.
type ProjectionPoint struct {
	Label   string          `json:"label"`
	Balance decimal.Decimal `json:"balance"`
}

// GoalState tells where the user stands relative to a savings goal.
type GoalState string

const (
	GoalAlreadyReached GoalState = "already_reached"
	GoalUnreachable    GoalState = "unreachable"
	GoalInProgress     GoalState = "in_progress"
)

// GoalStatus is the result of a time-to-target estimate. Months is only
// meaningful for GoalInProgress.
type GoalStatus struct {
	State  GoalState `json:"state"`
	Months int64     `json:"months,omitempty"`
}

// AlreadyReached, Unreachable and InProgress build GoalStatus values.
func AlreadyReached() GoalStatus { return GoalStatus{State: GoalAlreadyReached} }
func Unreachable() GoalStatus    { return GoalStatus{State: GoalUnreachable} }
func InProgress(months int64) GoalStatus {
	return GoalStatus{State: GoalInProgress, Months: months}
}

// TimelinePoint is one month of the cumulative cash-flow timeline.
type TimelinePoint struct {
	Period     string          `json:"period"`
	Label      string          `json:"label"`
	Net        decimal.Decimal `json:"net"`
	Cumulative decimal.Decimal `json:"cumulative"`
}

// AnalysisState classifies the overall balance.
type AnalysisState string

const (
	AnalysisPositive AnalysisState = "positive"
	AnalysisDeficit  AnalysisState = "deficit"
	AnalysisBalanced AnalysisState = "balanced"
)

// Analysis is the short narrative the report shows next to the totals.
type Analysis struct {
	State            AnalysisState    `json:"state"`
	YearlySavings    *decimal.Decimal `json:"yearlySavings,omitempty"`
	MonthlyShortfall *decimal.Decimal `json:"monthlyShortfall,omitempty"`
}

// MaxGoalTarget is the largest savings goal accepted.
var MaxGoalTarget = decimal.New(1, 12)

// Goal is the persisted savings target.
type Goal struct {
	Target        decimal.Decimal `json:"target"`
	HorizonMonths int             `json:"horizonMonths"`
	UpdatedAt     *time.Time      `json:"updatedAt,omitempty"`
}

// Report bundles everything the report view renders.
type Report struct {
	GeneratedAt time.Time         `json:"generatedAt"`
	Summary     Summary           `json:"summary"`
	Analysis    Analysis          `json:"analysis"`
	SavingsRate decimal.Decimal   `json:"savingsRate"`
	Goal        Goal              `json:"goal"`
	GoalStatus  GoalStatus        `json:"goalStatus"`
	Projection  []ProjectionPoint `json:"projection"`
	Timeline    []TimelinePoint   `json:"timeline"`
}
