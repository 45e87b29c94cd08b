package queries

import (
	"context"
	"database/sql"

	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/core/domain/model/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetRegisterReportQueryHandler computes the cash-register report from the
// ledger. Totals are summed in SQL; the handler only assembles the response.
type GetRegisterReportQueryHandler struct {
	db *gorm.DB
}

// NewGetRegisterReportQueryHandler creates a handler for register reports.
func NewGetRegisterReportQueryHandler(db *gorm.DB) GetRegisterReportQueryHandler {
	return GetRegisterReportQueryHandler{db: db}
}

// Handle builds the report for the query's inclusive range.
func (h GetRegisterReportQueryHandler) Handle(
	ctx context.Context,
	query GetRegisterReportQuery,
) (GetRegisterReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRegisterReportQueryResponse{}, err
	}

	resp := GetRegisterReportQueryResponse{
		Entries: kernel.ZeroMoney(),
		Exits:   kernel.ZeroMoney(),
		Credits: kernel.ZeroMoney(),
	}

	if err := h.sumByKind(ctx, query, &resp); err != nil {
		return GetRegisterReportQueryResponse{}, err
	}
	resp.Balance = resp.Entries.Sub(resp.Exits)

	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE created_at BETWEEN ? AND ?
	`, query.From(), query.To()).Scan(&resp.OrderCount).Error
	if err != nil {
		return GetRegisterReportQueryResponse{}, err
	}

	resp.AverageTicket = averageTicket(resp.Entries, resp.OrderCount)

	movements, err := h.listMovements(ctx, query)
	if err != nil {
		return GetRegisterReportQueryResponse{}, err
	}
	resp.Movements = movements

	return resp, nil
}

func (h GetRegisterReportQueryHandler) sumByKind(
	ctx context.Context,
	query GetRegisterReportQuery,
	resp *GetRegisterReportQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT kind, SUM(amount)
		FROM ledger_movements
		WHERE created_at BETWEEN ? AND ?
		GROUP BY kind
	`, query.From(), query.To()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var kindStr string
		var sum decimal.Decimal
		if err = rows.Scan(&kindStr, &sum); err != nil {
			return err
		}

		kind, kindErr := ledger.ParseKind(kindStr)
		if kindErr != nil {
			return kindErr
		}
		amount, amountErr := kernel.NewMoney(sum)
		if amountErr != nil {
			return amountErr
		}

		switch kind {
		case ledger.Entry:
			resp.Entries = amount
		case ledger.Exit:
			resp.Exits = amount
		case ledger.Credit:
			resp.Credits = amount
		}
	}

	return rows.Err()
}

func (h GetRegisterReportQueryHandler) listMovements(
	ctx context.Context,
	query GetRegisterReportQuery,
) ([]MovementResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, order_id, kind, amount, description, created_at
		FROM ledger_movements
		WHERE created_at BETWEEN ? AND ?
		ORDER BY created_at DESC
	`, query.From(), query.To()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMovementRows(rows)
}

func scanMovementRows(rows *sql.Rows) ([]MovementResponse, error) {
	movements := make([]MovementResponse, 0)

	for rows.Next() {
		var resp MovementResponse
		var id uuid.UUID
		var orderID uuid.NullUUID
		var kindStr string
		var amount decimal.Decimal

		err := rows.Scan(&id, &orderID, &kindStr, &amount, &resp.Description, &resp.CreatedAt)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if orderID.Valid {
			linked, linkErr := kernel.UUIDFromBytes(orderID.UUID[:])
			if linkErr != nil {
				return nil, linkErr
			}
			resp.OrderID = &linked
		}
		if resp.Kind, err = ledger.ParseKind(kindStr); err != nil {
			return nil, err
		}
		if resp.Amount, err = kernel.NewMoney(amount); err != nil {
			return nil, err
		}

		movements = append(movements, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return movements, nil
}

// averageTicket divides sales by order count, rounded to cents.
// No orders means a zero ticket, not a division error.
func averageTicket(entries kernel.Money, orderCount int64) kernel.Money {
	if orderCount == 0 {
		return kernel.ZeroMoney()
	}
	avg, err := kernel.NewMoney(
		entries.Decimal().Div(decimal.NewFromInt(orderCount)).Round(2),
	)
	if err != nil {
		return kernel.ZeroMoney()
	}
	return avg
}
