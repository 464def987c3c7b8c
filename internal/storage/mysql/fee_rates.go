package mysql

import (
	"context"
	"fmt"

	"apparel-oms/internal/service/changefee"
	"apparel-oms/internal/storage"
)

func (s *Storage) GetFeeRates(ctx context.Context) ([]*storage.FeeRateAdmin, error) {
	const op = "storage.mysql.fee_rates.GetFeeRates"

	rows, err := s.db.QueryContext(ctx, `
		SELECT phase, design_fee, base_fee, quantity_change_pct, add_work_pct,
		       remove_work_penalty_pct, cancel_penalty_pct, is_active
		FROM fee_rates
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var rates []*storage.FeeRateAdmin
	for rows.Next() {
		var r storage.FeeRateAdmin
		err := rows.Scan(&r.Phase, &r.DesignFee, &r.BaseFee, &r.QuantityChangePct,
			&r.AddWorkPct, &r.RemoveWorkPenaltyPct, &r.CancelPenaltyPct, &r.IsActive)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		rates = append(rates, &r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rates, nil
}

// LoadRateTable turns the active fee_rates rows into the calculator's rate
// map, falling back to the built-in defaults for phases with no active row.
func (s *Storage) LoadRateTable(ctx context.Context, defaults map[storage.ProductionPhase]changefee.Rates) (map[storage.ProductionPhase]changefee.Rates, error) {
	const op = "storage.mysql.fee_rates.LoadRateTable"

	rows, err := s.GetFeeRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	table := make(map[storage.ProductionPhase]changefee.Rates, len(defaults))
	for phase, r := range defaults {
		table[phase] = r
	}
	for _, r := range rows {
		if !r.IsActive {
			continue
		}
		table[r.Phase] = changefee.Rates{
			DesignFee:            r.DesignFee,
			BaseFee:              r.BaseFee,
			QuantityChangePct:    r.QuantityChangePct,
			AddWorkPct:           r.AddWorkPct,
			RemoveWorkPenaltyPct: r.RemoveWorkPenaltyPct,
			CancelPenaltyPct:     r.CancelPenaltyPct,
		}
	}

	return table, nil
}

func (s *Storage) UpdateFeeRate(ctx context.Context, phase storage.ProductionPhase, r storage.FeeRateAdmin) error {
	const op = "storage.mysql.fee_rates.UpdateFeeRate"

	res, err := s.db.ExecContext(ctx, `
		UPDATE fee_rates
		SET design_fee = ?, base_fee = ?, quantity_change_pct = ?, add_work_pct = ?,
		    remove_work_penalty_pct = ?, cancel_penalty_pct = ?, is_active = ?
		WHERE phase = ?`,
		r.DesignFee, r.BaseFee, r.QuantityChangePct, r.AddWorkPct,
		r.RemoveWorkPenaltyPct, r.CancelPenaltyPct, r.IsActive, phase)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: phase %s: %w", op, phase, ErrNotFound)
	}

	return nil
}
