package postgres

import (
	"context"
	"database/sql"

	"fitfuel/internal/domain"
)

const groceryColumns = "id, name, quantity, category, purchased, notes"

func scanGrocery(s scanner) (domain.GroceryItem, error) {
	var it domain.GroceryItem
	err := s.Scan(&it.ID, &it.Name, &it.Quantity, &it.Category, &it.Purchased, &it.Notes)
	return it, err
}

func collectGroceries(rows *sql.Rows, err error) ([]domain.GroceryItem, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := []domain.GroceryItem{}
	for rows.Next() {
		it, err := scanGrocery(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// ListGroceryItems returns every grocery item ordered by category, then name.
func (d *DB) ListGroceryItems(ctx context.Context) ([]domain.GroceryItem, error) {
	return collectGroceries(d.sql.QueryContext(ctx,
		`SELECT `+groceryColumns+` FROM grocery_items ORDER BY category COLLATE "C", name COLLATE "C", id;`))
}

// ListGroceryItemsByCategory returns the items in c ordered by name.
func (d *DB) ListGroceryItemsByCategory(ctx context.Context, c domain.GroceryCategory) ([]domain.GroceryItem, error) {
	return collectGroceries(d.sql.QueryContext(ctx,
		`SELECT `+groceryColumns+` FROM grocery_items WHERE category=$1 ORDER BY name COLLATE "C", id;`, c))
}

// GetGroceryItem retrieves a grocery item by ID.
func (d *DB) GetGroceryItem(ctx context.Context, id int64) (*domain.GroceryItem, error) {
	it, err := scanGrocery(d.sql.QueryRowContext(ctx, "SELECT "+groceryColumns+" FROM grocery_items WHERE id=$1;", id))
	if err != nil {
		return nil, notFound(err)
	}
	return &it, nil
}

// InsertGroceryItem stores a grocery item and returns its new ID.
func (d *DB) InsertGroceryItem(ctx context.Context, it domain.GroceryItem) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO grocery_items(name, quantity, category, purchased, notes) VALUES($1, $2, $3, $4, $5) RETURNING id;",
		it.Name, it.Quantity, it.Category, it.Purchased, it.Notes,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	d.Publish(domain.KindGrocery)
	return id, nil
}

// UpdateGroceryItem replaces a stored grocery item.
func (d *DB) UpdateGroceryItem(ctx context.Context, it domain.GroceryItem) error {
	err := d.exec(ctx,
		"UPDATE grocery_items SET name=$1, quantity=$2, category=$3, purchased=$4, notes=$5 WHERE id=$6;",
		it.Name, it.Quantity, it.Category, it.Purchased, it.Notes, it.ID)
	if err != nil {
		return err
	}
	d.Publish(domain.KindGrocery)
	return nil
}

// DeleteGroceryItem removes a grocery item by ID.
func (d *DB) DeleteGroceryItem(ctx context.Context, id int64) error {
	if err := d.exec(ctx, "DELETE FROM grocery_items WHERE id=$1;", id); err != nil {
		return err
	}
	d.Publish(domain.KindGrocery)
	return nil
}

// DeletePurchasedGroceryItems removes every purchased item.
func (d *DB) DeletePurchasedGroceryItems(ctx context.Context) (int64, error) {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM grocery_items WHERE purchased;")
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		d.Publish(domain.KindGrocery)
	}
	return n, nil
}

// SetAllGroceryItemsPurchased sets the purchased flag on every item.
func (d *DB) SetAllGroceryItemsPurchased(ctx context.Context, purchased bool) (int64, error) {
	res, err := d.sql.ExecContext(ctx,
		"UPDATE grocery_items SET purchased = $1 WHERE purchased <> $1;", purchased)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		d.Publish(domain.KindGrocery)
	}
	return n, nil
}
