package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/model"
)

// StockRepository provides data access methods for the stocks table.
type StockRepository struct {
	db *sql.DB
}

// NewStockRepository creates a new StockRepository with the provided database connection.
func NewStockRepository(db *sql.DB) *StockRepository {
	return &StockRepository{db: db}
}

// Insert stores a new stock record. The caller supplies the ID, timestamps
// and the current price fetched at creation time.
func (r *StockRepository) Insert(ctx context.Context, stock *model.Stock) error {
	query := `
		INSERT INTO stocks (id, symbol, name, quantity, buy_price, current_price, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		stock.ID,
		stock.Symbol,
		stock.Name,
		stock.Quantity,
		stock.BuyPrice,
		stock.CurrentPrice,
		stock.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert stock: %w", err)
	}

	return nil
}

// List retrieves all stocks in insertion order. The order is significant:
// portfolio distribution entries are emitted in the same order.
func (r *StockRepository) List(ctx context.Context) ([]model.Stock, error) {
	query := `
		SELECT id, symbol, name, quantity, buy_price, current_price, created_at
		FROM stocks
		ORDER BY rowid ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stocks table: %w", err)
	}
	defer rows.Close()

	stocks := []model.Stock{}

	for rows.Next() {
		var s model.Stock

		err := rows.Scan(
			&s.ID,
			&s.Symbol,
			&s.Name,
			&s.Quantity,
			&s.BuyPrice,
			&s.CurrentPrice,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stocks table results: %w", err)
		}
		stocks = append(stocks, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stocks table: %w", err)
	}

	return stocks, nil
}

// GetByID retrieves a single stock by its ID.
// Returns apperrors.ErrStockNotFound if no such stock exists.
func (r *StockRepository) GetByID(ctx context.Context, id string) (model.Stock, error) {
	query := `
		SELECT id, symbol, name, quantity, buy_price, current_price, created_at
		FROM stocks
		WHERE id = ?
	`

	var s model.Stock
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID,
		&s.Symbol,
		&s.Name,
		&s.Quantity,
		&s.BuyPrice,
		&s.CurrentPrice,
		&s.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Stock{}, apperrors.ErrStockNotFound
	}
	if err != nil {
		return model.Stock{}, fmt.Errorf("failed to query stock: %w", err)
	}

	return s, nil
}

// Update replaces the mutable fields of a stock in a single conditional
// mutation. A zero-row update means the ID does not exist and returns
// apperrors.ErrStockNotFound, so there is no read-then-write race window.
func (r *StockRepository) Update(ctx context.Context, stock *model.Stock) error {
	query := `
		UPDATE stocks
		SET symbol = ?, name = ?, quantity = ?, buy_price = ?, created_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		stock.Symbol,
		stock.Name,
		stock.Quantity,
		stock.BuyPrice,
		stock.CreatedAt,
		stock.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrStockNotFound
	}

	return nil
}

// UpdateCurrentPrice stores a freshly fetched price in the audit-trail
// current_price column. Used by the background refresh job; the live read
// path never consults this column.
func (r *StockRepository) UpdateCurrentPrice(ctx context.Context, id string, price float64) error {
	result, err := r.db.ExecContext(ctx, `UPDATE stocks SET current_price = ? WHERE id = ?`, price, id)
	if err != nil {
		return fmt.Errorf("failed to update current price: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrStockNotFound
	}

	return nil
}

// Delete removes a stock permanently. Like Update, this is a single
// conditional mutation: zero affected rows returns apperrors.ErrStockNotFound.
func (r *StockRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM stocks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete stock: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrStockNotFound
	}

	return nil
}
