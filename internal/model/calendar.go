package model

import "github.com/shopspring/decimal"

// DayStatus is the heat-map colour class of a calendar day.
type DayStatus string

const (
	DayEmpty    DayStatus = "empty"
	DayPositive DayStatus = "positive"
	DayNegative DayStatus = "negative"
	DayNeutral  DayStatus = "neutral"
)

// DayTotals aggregates the transactions of a single day.
type DayTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
	Count   int             `json:"count"`
}

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date    string    `json:"date"`
	Weekday int       `json:"weekday"` // 0 = Sunday
	Status  DayStatus `json:"status"`
	DayTotals
}

// CalendarMonth is the heat-map data for a whole month.
type CalendarMonth struct {
	Period string        `json:"period"`
	Days   []CalendarDay `json:"days"`
}

// DayDetail lists the transactions of one day with their totals.
type DayDetail struct {
	Date         string        `json:"date"`
	Totals       DayTotals     `json:"totals"`
	Transactions []Transaction `json:"transactions"`
}
