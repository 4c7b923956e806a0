package validation

import (
	"fmt"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/model"
)

// Projection horizon bounds, in months.
const (
	MinHorizonMonths = 1
	MaxHorizonMonths = 120
)

// ValidateUpdateGoal validates a goal update. Target is required; the
// horizon is optional and keeps its stored value when omitted.
func ValidateUpdateGoal(req request.UpdateGoalRequest) error {
	errors := make(map[string]string)

	if req.Target == nil {
		errors["target"] = "target is required"
	} else if !req.Target.IsPositive() {
		errors["target"] = "target must be positive"
	} else if req.Target.GreaterThan(model.MaxGoalTarget) {
		errors["target"] = fmt.Sprintf("target must be at most %s", model.MaxGoalTarget)
	}

	if req.HorizonMonths != nil {
		if err := ValidateHorizon(*req.HorizonMonths); err != nil {
			errors["horizonMonths"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateHorizon checks a projection horizon.
func ValidateHorizon(months int) error {
	if months < MinHorizonMonths || months > MaxHorizonMonths {
		return fmt.Errorf("horizon must be between %d and %d months", MinHorizonMonths, MaxHorizonMonths)
	}
	return nil
}
