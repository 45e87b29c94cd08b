package queries

import (
	"errors"
	"fmt"
	"time"

	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/core/domain/model/ledger"
	"burgercounter/internal/pkg/errs"
	"burgercounter/internal/pkg/guard"
)

var ErrGetRegisterReportQueryIsNotConstructed = errors.New(
	"GetRegisterReportQuery must be created via NewGetRegisterReportQuery constructor",
)

// GetRegisterReportQuery retrieves the cash-register report for an inclusive
// time range: per-kind totals, the balance, and the movement list.
type GetRegisterReportQuery struct { //nolint:recvcheck //using for validation
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetRegisterReportQuery creates a validated report query over [from, to].
func NewGetRegisterReportQuery(from, to time.Time) (GetRegisterReportQuery, error) {
	if from.IsZero() {
		return GetRegisterReportQuery{}, errs.NewValueIsRequiredError("from")
	}
	if to.IsZero() {
		return GetRegisterReportQuery{}, errs.NewValueIsRequiredError("to")
	}
	if to.Before(from) {
		return GetRegisterReportQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"to",
			fmt.Errorf("%s is before from %s", to.Format(time.RFC3339), from.Format(time.RFC3339)),
		)
	}

	return GetRegisterReportQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRegisterReportQuery) Validate() error {
	return q.guard.Validate(ErrGetRegisterReportQueryIsNotConstructed)
}

// From returns the inclusive lower bound of the report range.
func (q GetRegisterReportQuery) From() time.Time {
	return q.from
}

// To returns the inclusive upper bound of the report range.
func (q GetRegisterReportQuery) To() time.Time {
	return q.to
}

// MovementResponse represents one ledger movement in a report.
type MovementResponse struct {
	ID          kernel.UUID
	OrderID     *kernel.UUID
	Kind        ledger.Kind
	Amount      kernel.Money
	Description string
	CreatedAt   time.Time
}

// GetRegisterReportQueryResponse is the cash-register report over a range.
// Balance is entries minus exits; credit is tracked separately because the
// money has not hit the register yet. AverageTicket is entries divided by
// the number of orders placed in the range, zero when there were none.
type GetRegisterReportQueryResponse struct {
	Entries       kernel.Money
	Exits         kernel.Money
	Credits       kernel.Money
	Balance       kernel.Money
	OrderCount    int64
	AverageTicket kernel.Money
	Movements     []MovementResponse
}
