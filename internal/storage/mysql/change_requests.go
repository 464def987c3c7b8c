package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"apparel-oms/internal/storage"
)

func (s *Storage) SaveChangeRequest(ctx context.Context, cr storage.ChangeRequest) (int64, error) {
	const op = "storage.mysql.change_requests.SaveChangeRequest"

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO change_requests (order_id, change_type, order_phase, status, impact_level,
		                             affects_schedule, description, base_fee, design_fee, rework_fee,
		                             material_fee, waste_fee, rush_fee, other_fee, discount, total_fee,
		                             requested_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		cr.OrderID, cr.ChangeType, cr.OrderPhase, cr.Status, cr.ImpactLevel,
		cr.AffectsSchedule, cr.Description, cr.Fees.BaseFee, cr.Fees.DesignFee, cr.Fees.ReworkFee,
		cr.Fees.MaterialFee, cr.Fees.WasteFee, cr.Fees.RushFee, cr.Fees.OtherFee, cr.Fees.Discount,
		cr.Fees.TotalFee, cr.RequestedAt)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetChangeRequestsByOrder(ctx context.Context, orderID int64) ([]storage.ChangeRequest, error) {
	const op = "storage.mysql.change_requests.GetChangeRequestsByOrder"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, order_id, change_type, order_phase, status, impact_level, affects_schedule,
		       description, base_fee, design_fee, rework_fee, material_fee, waste_fee,
		       rush_fee, other_fee, discount, total_fee, requested_at
		FROM change_requests
		WHERE order_id = ?
		ORDER BY requested_at DESC`, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var list []storage.ChangeRequest
	for rows.Next() {
		var cr storage.ChangeRequest
		var description sql.NullString

		err := rows.Scan(&cr.ID, &cr.OrderID, &cr.ChangeType, &cr.OrderPhase, &cr.Status,
			&cr.ImpactLevel, &cr.AffectsSchedule, &description,
			&cr.Fees.BaseFee, &cr.Fees.DesignFee, &cr.Fees.ReworkFee, &cr.Fees.MaterialFee,
			&cr.Fees.WasteFee, &cr.Fees.RushFee, &cr.Fees.OtherFee, &cr.Fees.Discount,
			&cr.Fees.TotalFee, &cr.RequestedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if description.Valid {
			cr.Description = &description.String
		}

		list = append(list, cr)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return list, nil
}

func (s *Storage) UpdateChangeRequestStatus(ctx context.Context, id int64, status storage.ChangeRequestStatus) error {
	const op = "storage.mysql.change_requests.UpdateChangeRequestStatus"

	res, err := s.db.ExecContext(ctx,
		`UPDATE change_requests SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: change request id=%d: %w", op, id, ErrNotFound)
	}

	return nil
}
