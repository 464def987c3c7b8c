package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"apparel-oms/internal/storage"
)

func (s *Storage) GetStockItems(ctx context.Context, category, search string) ([]*storage.StockItem, error) {
	const op = "storage.mysql.stock.GetStockItems"

	stmt := `
		SELECT id, sku, name, category, color, size, qty, unit, location, is_active
		FROM stock_items
		WHERE is_active = 1
	`
	var args []interface{}
	if category != "" {
		stmt += " AND category = ?"
		args = append(args, category)
	}
	if search != "" {
		stmt += " AND (sku LIKE ? OR name LIKE ?)"
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	stmt += " ORDER BY sku"

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []*storage.StockItem
	for rows.Next() {
		var it storage.StockItem
		var color, size, location sql.NullString

		err := rows.Scan(&it.ID, &it.SKU, &it.Name, &it.Category, &color, &size, &it.Qty, &it.Unit, &location, &it.IsActive)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if color.Valid {
			it.Color = &color.String
		}
		if size.Valid {
			it.Size = &size.String
		}
		if location.Valid {
			it.Location = &location.String
		}

		items = append(items, &it)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func (s *Storage) SaveStockItem(ctx context.Context, it storage.StockItem) (int64, error) {
	const op = "storage.mysql.stock.SaveStockItem"

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO stock_items (sku, name, category, color, size, qty, unit, location, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 1)`,
		it.SKU, it.Name, it.Category, it.Color, it.Size, it.Qty, it.Unit, it.Location)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateStockItem(ctx context.Context, id int64, it storage.StockItem) error {
	const op = "storage.mysql.stock.UpdateStockItem"

	res, err := s.db.ExecContext(ctx, `
		UPDATE stock_items
		SET sku = ?, name = ?, category = ?, color = ?, size = ?, qty = ?, unit = ?, location = ?, is_active = ?
		WHERE id = ?`,
		it.SKU, it.Name, it.Category, it.Color, it.Size, it.Qty, it.Unit, it.Location, it.IsActive, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: stock item id=%d: %w", op, id, ErrNotFound)
	}

	return nil
}
