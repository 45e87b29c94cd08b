package queries

import (
	"context"
	"time"

	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/core/domain/model/ledger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetRegisterDashboardQueryHandler computes the dashboard numbers.
// "Today" is the UTC day of the query's instant, matching the timestamps
// written by the command handlers.
type GetRegisterDashboardQueryHandler struct {
	db *gorm.DB
}

// NewGetRegisterDashboardQueryHandler creates a handler for dashboard queries.
func NewGetRegisterDashboardQueryHandler(db *gorm.DB) GetRegisterDashboardQueryHandler {
	return GetRegisterDashboardQueryHandler{db: db}
}

// Handle computes today's sales, order count and average ticket, plus the
// all-time outstanding credit.
func (h GetRegisterDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetRegisterDashboardQuery,
) (GetRegisterDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRegisterDashboardQueryResponse{}, err
	}

	dayStart := query.Today().UTC().Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	var resp GetRegisterDashboardQueryResponse

	var sales decimal.Decimal
	err := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM ledger_movements
		WHERE kind = ? AND created_at BETWEEN ? AND ?
	`, ledger.Entry.String(), dayStart, dayEnd).Scan(&sales).Error
	if err != nil {
		return GetRegisterDashboardQueryResponse{}, err
	}
	if resp.TodaySales, err = kernel.NewMoney(sales); err != nil {
		return GetRegisterDashboardQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE created_at BETWEEN ? AND ?
	`, dayStart, dayEnd).Scan(&resp.TodayOrderCount).Error
	if err != nil {
		return GetRegisterDashboardQueryResponse{}, err
	}

	resp.TodayAverageTicket = averageTicket(resp.TodaySales, resp.TodayOrderCount)

	var credit decimal.Decimal
	err = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM ledger_movements
		WHERE kind = ?
	`, ledger.Credit.String()).Scan(&credit).Error
	if err != nil {
		return GetRegisterDashboardQueryResponse{}, err
	}
	if resp.OutstandingCredit, err = kernel.NewMoney(credit); err != nil {
		return GetRegisterDashboardQueryResponse{}, err
	}

	return resp, nil
}
