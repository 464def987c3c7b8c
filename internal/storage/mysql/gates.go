package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"apparel-oms/internal/storage"
)

func (s *Storage) GetGatesByOrder(ctx context.Context, orderID int64) ([]storage.ApprovalGate, error) {
	const op = "storage.mysql.gates.GetGatesByOrder"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, order_id, gate_type, status, is_mandatory, requires_customer_approval,
		       customer_confirmed, approved_items, total_items, note
		FROM approval_gates
		WHERE order_id = ?`, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var gates []storage.ApprovalGate
	for rows.Next() {
		var g storage.ApprovalGate
		var note sql.NullString

		err := rows.Scan(&g.ID, &g.OrderID, &g.GateType, &g.Status, &g.IsMandatory,
			&g.RequiresCustomerApproval, &g.CustomerConfirmed, &g.ApprovedItems, &g.TotalItems, &note)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if note.Valid {
			g.Note = &note.String
		}

		gates = append(gates, g)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return gates, nil
}

func (s *Storage) SaveGate(ctx context.Context, g storage.ApprovalGate) (int64, error) {
	const op = "storage.mysql.gates.SaveGate"

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO approval_gates (order_id, gate_type, status, is_mandatory,
		                            requires_customer_approval, customer_confirmed,
		                            approved_items, total_items, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.OrderID, g.GateType, g.Status, g.IsMandatory, g.RequiresCustomerApproval,
		g.CustomerConfirmed, g.ApprovedItems, g.TotalItems, g.Note)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateGate(ctx context.Context, gateID int64, upd storage.UpdateGate) error {
	const op = "storage.mysql.gates.UpdateGate"

	res, err := s.db.ExecContext(ctx, `
		UPDATE approval_gates
		SET status = ?, customer_confirmed = ?, approved_items = ?, total_items = ?, note = ?
		WHERE id = ?`,
		upd.Status, upd.CustomerConfirmed, upd.ApprovedItems, upd.TotalItems, upd.Note, gateID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: gate id=%d: %w", op, gateID, ErrNotFound)
	}

	return nil
}
