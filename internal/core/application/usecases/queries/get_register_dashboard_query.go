package queries

import (
	"errors"
	"time"

	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/pkg/errs"
	"burgercounter/internal/pkg/guard"
)

var ErrGetRegisterDashboardQueryIsNotConstructed = errors.New(
	"GetRegisterDashboardQuery must be created via NewGetRegisterDashboardQuery constructor",
)

// GetRegisterDashboardQuery retrieves the counter's at-a-glance numbers:
// today's sales and orders plus the credit outstanding across all time.
type GetRegisterDashboardQuery struct { //nolint:recvcheck //using for validation
	today time.Time

	guard guard.ConstructorGuard
}

// NewGetRegisterDashboardQuery creates a dashboard query for the day
// containing the given instant.
func NewGetRegisterDashboardQuery(today time.Time) (GetRegisterDashboardQuery, error) {
	if today.IsZero() {
		return GetRegisterDashboardQuery{}, errs.NewValueIsRequiredError("today")
	}
	return GetRegisterDashboardQuery{
		today: today,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRegisterDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetRegisterDashboardQueryIsNotConstructed)
}

// Today returns the instant whose UTC day the dashboard covers.
func (q GetRegisterDashboardQuery) Today() time.Time {
	return q.today
}

// GetRegisterDashboardQueryResponse is the counter's dashboard.
type GetRegisterDashboardQueryResponse struct {
	TodaySales         kernel.Money
	TodayOrderCount    int64
	TodayAverageTicket kernel.Money
	OutstandingCredit  kernel.Money
}
