package queries

import (
	"errors"
	"fmt"
	"time"

	"burgercounter/internal/core/domain/model/order"
	"burgercounter/internal/pkg/errs"
	"burgercounter/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves the order history, newest first, with optional
// filters. A zero status means any status; zero times mean an open-ended
// range. Filters combine with AND.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	status   order.Status
	dateFrom time.Time
	dateTo   time.Time

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a validated history query. Pass order.Unknown
// and zero times to list everything.
func NewGetOrdersQuery(status order.Status, dateFrom, dateTo time.Time) (GetOrdersQuery, error) {
	q := GetOrdersQuery{
		dateFrom: dateFrom,
		dateTo:   dateTo,
		guard:    guard.NewConstructorGuard(),
	}

	if status != order.Unknown {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
		q.status = status
	}

	if !dateFrom.IsZero() && !dateTo.IsZero() && dateTo.Before(dateFrom) {
		return GetOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"date_to",
			fmt.Errorf("%s is before date_from %s", dateTo.Format(time.RFC3339), dateFrom.Format(time.RFC3339)),
		)
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter; order.Unknown means no filter.
func (q GetOrdersQuery) Status() order.Status {
	return q.status
}

// DateFrom returns the inclusive lower bound; zero means unbounded.
func (q GetOrdersQuery) DateFrom() time.Time {
	return q.dateFrom
}

// DateTo returns the inclusive upper bound; zero means unbounded.
func (q GetOrdersQuery) DateTo() time.Time {
	return q.dateTo
}
