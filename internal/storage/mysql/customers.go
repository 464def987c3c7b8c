package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"apparel-oms/internal/storage"
)

func (s *Storage) GetCustomers(ctx context.Context, search string) ([]*storage.Customer, error) {
	const op = "storage.mysql.customers.GetCustomers"

	stmt := `
		SELECT id, code, name, phone, line_id, email, address, note, is_active
		FROM customers
		WHERE is_active = 1
	`
	var args []interface{}
	if search != "" {
		stmt += " AND (name LIKE ? OR code LIKE ? OR phone LIKE ?)"
		args = append(args, "%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	stmt += " ORDER BY name"

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var customers []*storage.Customer
	for rows.Next() {
		var c storage.Customer
		var phone, lineID, email, address, note sql.NullString

		err := rows.Scan(&c.ID, &c.Code, &c.Name, &phone, &lineID, &email, &address, &note, &c.IsActive)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if phone.Valid {
			c.Phone = &phone.String
		}
		if lineID.Valid {
			c.LineID = &lineID.String
		}
		if email.Valid {
			c.Email = &email.String
		}
		if address.Valid {
			c.Address = &address.String
		}
		if note.Valid {
			c.Note = &note.String
		}

		customers = append(customers, &c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return customers, nil
}

func (s *Storage) SaveCustomer(ctx context.Context, c storage.Customer) (int64, error) {
	const op = "storage.mysql.customers.SaveCustomer"

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO customers (code, name, phone, line_id, email, address, note, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, 1)`,
		c.Code, c.Name, c.Phone, c.LineID, c.Email, c.Address, c.Note)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateCustomer(ctx context.Context, id int64, c storage.Customer) error {
	const op = "storage.mysql.customers.UpdateCustomer"

	res, err := s.db.ExecContext(ctx, `
		UPDATE customers
		SET code = ?, name = ?, phone = ?, line_id = ?, email = ?, address = ?, note = ?, is_active = ?
		WHERE id = ?`,
		c.Code, c.Name, c.Phone, c.LineID, c.Email, c.Address, c.Note, c.IsActive, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: customer id=%d: %w", op, id, ErrNotFound)
	}

	return nil
}
