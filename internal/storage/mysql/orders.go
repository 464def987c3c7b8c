package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"apparel-oms/internal/storage"
)

func (s *Storage) GetOrdersMonth(ctx context.Context, year int, month int, search string) ([]*storage.Order, error) {
	const op = "storage.mysql.orders.GetOrdersMonth"

	var stmt string
	var args []interface{}

	if search != "" {
		stmt = `
			SELECT id, order_num, customer_id, customer_name, status, priority_code,
			       production_mode, total_amount, paid_amount, order_date, due_date, note
			FROM orders
			WHERE order_num LIKE ? OR customer_name LIKE ?
		`
		args = append(args, "%"+search+"%", "%"+search+"%")
	} else {
		startOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		endOfMonth := startOfMonth.AddDate(0, 1, 0)

		stmt = `
			SELECT id, order_num, customer_id, customer_name, status, priority_code,
			       production_mode, total_amount, paid_amount, order_date, due_date, note
			FROM orders
			WHERE order_date >= ? AND order_date < ?
		`
		args = []interface{}{startOfMonth, endOfMonth}
	}

	stmt += " ORDER BY order_date DESC"

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var orders []*storage.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return orders, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(r rowScanner) (*storage.Order, error) {
	var order storage.Order
	var dueDate sql.NullTime
	var note sql.NullString

	err := r.Scan(&order.ID, &order.OrderNum, &order.CustomerID, &order.Customer,
		&order.Status, &order.PriorityCode, &order.ProductionMode,
		&order.TotalAmount, &order.PaidAmount, &order.OrderDate, &dueDate, &note)
	if err != nil {
		return nil, err
	}

	if dueDate.Valid {
		order.DueDate = &dueDate.Time
	}
	if note.Valid {
		order.Note = &note.String
	}

	return &order, nil
}

const selectOrder = `
	SELECT o.id, o.order_num, o.customer_id, o.customer_name, o.status, o.priority_code,
	       o.production_mode, o.total_amount, o.paid_amount, o.order_date, o.due_date, o.note
	FROM orders o
`

func (s *Storage) GetOrder(ctx context.Context, orderID int64) (*storage.Order, error) {
	const op = "storage.mysql.orders.GetOrder"

	order, err := scanOrder(s.db.QueryRowContext(ctx, selectOrder+" WHERE o.id = ?", orderID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: order id=%d: %w", op, orderID, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return order, nil
}

func (s *Storage) GetOrderByNum(ctx context.Context, orderNum string) (*storage.Order, error) {
	const op = "storage.mysql.orders.GetOrderByNum"

	order, err := scanOrder(s.db.QueryRowContext(ctx, selectOrder+" WHERE o.order_num = ?", orderNum))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: order %s: %w", op, orderNum, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return order, nil
}

func (s *Storage) SaveOrder(ctx context.Context, o storage.NewOrder) (int64, error) {
	const op = "storage.mysql.orders.SaveOrder"

	stmt := `
		INSERT INTO orders (order_num, customer_id, customer_name, status, priority_code,
		                    production_mode, total_amount, paid_amount, order_date, due_date, note)
		SELECT ?, c.id, c.name, ?, ?, ?, ?, 0, ?, ?, ?
		FROM customers c WHERE c.id = ?
	`

	res, err := s.db.ExecContext(ctx, stmt,
		o.OrderNum, storage.StatusDraft, o.PriorityCode, o.ProductionMode,
		o.TotalAmount, o.OrderDate, o.DueDate, o.Note, o.CustomerID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetOrderStatus(ctx context.Context, orderID int64) (storage.OrderStatus, error) {
	const op = "storage.mysql.orders.GetOrderStatus"

	var status storage.OrderStatus
	err := s.db.QueryRowContext(ctx, `SELECT status FROM orders WHERE id = ?`, orderID).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%s: order id=%d: %w", op, orderID, ErrNotFound)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return status, nil
}

// UpdateOrderStatus writes the new status only if the row still carries the
// status the transition was validated against.
func (s *Storage) UpdateOrderStatus(ctx context.Context, orderID int64, from, to storage.OrderStatus) error {
	const op = "storage.mysql.orders.UpdateOrderStatus"

	res, err := s.db.ExecContext(ctx,
		`UPDATE orders SET status = ? WHERE id = ? AND status = ?`, to, orderID, from)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: order id=%d: %w", op, orderID, ErrStatusConflict)
	}

	return nil
}

func (s *Storage) SaveStatusHistory(ctx context.Context, h storage.StatusHistory) error {
	const op = "storage.mysql.orders.SaveStatusHistory"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO status_history (order_id, from_status, to_status, reason, changed_by, changed_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		h.OrderID, h.FromStatus, h.ToStatus, h.Reason, h.ChangedBy, h.ChangedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) GetStatusHistoryByOrder(ctx context.Context, orderID int64) ([]storage.StatusHistory, error) {
	const op = "storage.mysql.orders.GetStatusHistoryByOrder"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, order_id, from_status, to_status, reason, changed_by, changed_at
		FROM status_history
		WHERE order_id = ?
		ORDER BY changed_at`, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var history []storage.StatusHistory
	for rows.Next() {
		var h storage.StatusHistory
		err := rows.Scan(&h.ID, &h.OrderID, &h.FromStatus, &h.ToStatus, &h.Reason, &h.ChangedBy, &h.ChangedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		history = append(history, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return history, nil
}

func (s *Storage) UpdateOrderPriority(ctx context.Context, orderID int64, priority string) error {
	const op = "storage.mysql.orders.UpdateOrderPriority"

	res, err := s.db.ExecContext(ctx, `UPDATE orders SET priority_code = ? WHERE id = ?`, priority, orderID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: order id=%d: %w", op, orderID, ErrNotFound)
	}

	return nil
}
