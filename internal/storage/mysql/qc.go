package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"apparel-oms/internal/storage"
)

func (s *Storage) SaveQCRecord(ctx context.Context, rec storage.QCRecord) (int64, error) {
	const op = "storage.mysql.qc.SaveQCRecord"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: begin: %w", op, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO qc_records (order_id, total_qty, passed_qty, failed_qty, rework_qty,
		                        pass_rate, overall_result, inspector, inspected_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.OrderID, rec.TotalQty, rec.PassedQty, rec.FailedQty, rec.ReworkQty,
		rec.PassRate, rec.OverallResult, rec.Inspector, rec.InspectedAt)
	if err != nil {
		return 0, fmt.Errorf("%s: record: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	for _, cp := range rec.Checkpoints {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO qc_checkpoints (qc_record_id, name, passed, defect_severity, note)
			VALUES (?, ?, ?, ?, ?)`,
			id, cp.Name, cp.Passed, cp.DefectSeverity, cp.Note)
		if err != nil {
			return 0, fmt.Errorf("%s: checkpoint %q: %w", op, cp.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: commit: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetQCByOrder(ctx context.Context, orderID int64) ([]storage.QCRecord, error) {
	const op = "storage.mysql.qc.GetQCByOrder"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, order_id, total_qty, passed_qty, failed_qty, rework_qty,
		       pass_rate, overall_result, inspector, inspected_at
		FROM qc_records
		WHERE order_id = ?
		ORDER BY inspected_at DESC`, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var records []storage.QCRecord
	for rows.Next() {
		var rec storage.QCRecord
		err := rows.Scan(&rec.ID, &rec.OrderID, &rec.TotalQty, &rec.PassedQty, &rec.FailedQty,
			&rec.ReworkQty, &rec.PassRate, &rec.OverallResult, &rec.Inspector, &rec.InspectedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range records {
		records[i].Checkpoints, err = s.getCheckpoints(ctx, records[i].ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return records, nil
}

func (s *Storage) getCheckpoints(ctx context.Context, recordID int64) ([]storage.QCCheckpoint, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, passed, defect_severity, note
		FROM qc_checkpoints
		WHERE qc_record_id = ?
		ORDER BY id`, recordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checkpoints []storage.QCCheckpoint
	for rows.Next() {
		var cp storage.QCCheckpoint
		var severity sql.NullString
		var note sql.NullString

		if err := rows.Scan(&cp.Name, &cp.Passed, &severity, &note); err != nil {
			return nil, err
		}

		if severity.Valid {
			sev := storage.DefectSeverity(severity.String)
			cp.DefectSeverity = &sev
		}
		if note.Valid {
			cp.Note = &note.String
		}

		checkpoints = append(checkpoints, cp)
	}

	return checkpoints, rows.Err()
}
