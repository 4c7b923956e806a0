package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/engine"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/model"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/repository"
)

// Report defaults.
const (
	DefaultHorizonMonths = 12
	TimelineMonths       = 12
)

// ReportService answers the summary, chart and report queries. It loads a
// snapshot of the store and hands it to the engine; it never writes
// transactions.
type ReportService struct {
	transactionRepo *repository.TransactionRepository
	settingsRepo    *repository.SettingsRepository
	defaultGoal     decimal.Decimal
	now             func() time.Time
}

// NewReportService creates a new ReportService. defaultGoal is the target
// used until the user stores one.
func NewReportService(
	transactionRepo *repository.TransactionRepository,
	settingsRepo *repository.SettingsRepository,
	defaultGoal decimal.Decimal,
) *ReportService {
	return &ReportService{
		transactionRepo: transactionRepo,
		settingsRepo:    settingsRepo,
		defaultGoal:     defaultGoal,
		now:             time.Now,
	}
}

// WithClock replaces the time source. Tests use it to pin "now".
func (s *ReportService) WithClock(now func() time.Time) *ReportService {
	s.now = now
	return s
}

// GetSummary aggregates every stored transaction.
func (s *ReportService) GetSummary(ctx context.Context) (model.Summary, error) {
	ts, err := s.transactionRepo.GetTransactions(ctx, model.TransactionFilter{})
	if err != nil {
		return model.Summary{}, err
	}
	return engine.Aggregate(ts), nil
}

// GetMonthly returns the signed net per month, for months with activity.
func (s *ReportService) GetMonthly(ctx context.Context) (map[string]decimal.Decimal, error) {
	ts, err := s.transactionRepo.GetTransactions(ctx, model.TransactionFilter{})
	if err != nil {
		return nil, err
	}
	return engine.BucketByMonth(ts), nil
}

// GetGoal returns the stored savings goal, filling unset parts with the
// defaults.
func (s *ReportService) GetGoal(ctx context.Context) (model.Goal, error) {
	goal := model.Goal{
		Target:        s.defaultGoal,
		HorizonMonths: DefaultHorizonMonths,
	}

	settings, err := s.settingsRepo.GetSettings(ctx, repository.SettingGoalTarget, repository.SettingGoalHorizon)
	if err != nil {
		return model.Goal{}, err
	}

	if setting, ok := settings[repository.SettingGoalTarget]; ok {
		target, err := decimal.NewFromString(setting.Value)
		if err != nil {
			return model.Goal{}, fmt.Errorf("failed to parse stored goal target: %w", err)
		}
		goal.Target = target
		goal.UpdatedAt = &setting.UpdatedAt
	}

	if setting, ok := settings[repository.SettingGoalHorizon]; ok {
		horizon, err := strconv.Atoi(setting.Value)
		if err != nil {
			return model.Goal{}, fmt.Errorf("failed to parse stored goal horizon: %w", err)
		}
		goal.HorizonMonths = horizon
	}

	return goal, nil
}

// UpdateGoal stores a validated goal update and returns the resulting goal.
func (s *ReportService) UpdateGoal(ctx context.Context, req request.UpdateGoalRequest) (model.Goal, error) {
	values := map[string]string{
		repository.SettingGoalTarget: req.Target.String(),
	}
	if req.HorizonMonths != nil {
		values[repository.SettingGoalHorizon] = strconv.Itoa(*req.HorizonMonths)
	}

	if err := s.settingsRepo.SetSettings(ctx, values, s.now()); err != nil {
		return model.Goal{}, err
	}

	return s.GetGoal(ctx)
}

// GetReport builds the full report. Overrides in params take precedence
// over the stored goal for this report only.
//
// The current balance doubles as the monthly net used for the projection
// and the time-to-goal estimate.
func (s *ReportService) GetReport(ctx context.Context, params request.ReportParams) (model.Report, error) {
	var (
		ts   []model.Transaction
		goal model.Goal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ts, err = s.transactionRepo.GetTransactions(gctx, model.TransactionFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		goal, err = s.GetGoal(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.Report{}, err
	}

	if params.Goal != nil {
		goal.Target = *params.Goal
		goal.UpdatedAt = nil
	}
	if params.Horizon != nil {
		goal.HorizonMonths = *params.Horizon
	}

	now := s.now().UTC()
	current := model.PeriodOf(now)
	summary := engine.Aggregate(ts)
	monthlyNet := summary.Balance

	return model.Report{
		GeneratedAt: now,
		Summary:     summary,
		Analysis:    engine.Analyze(summary),
		SavingsRate: engine.SavingsRate(summary),
		Goal:        goal,
		GoalStatus:  engine.MonthsToGoal(summary.Balance, monthlyNet, goal.Target),
		Projection:  engine.Project(summary.Balance, monthlyNet, goal.HorizonMonths, current),
		Timeline:    engine.Timeline(ts, current, TimelineMonths),
	}, nil
}
