package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/merch-checkout/internal/checkout/domain"
	"github.com/Lexv0lk/merch-checkout/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type ProductRepository struct {
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// LockProduct reads the product row and holds it until the surrounding transaction ends.
func (pr *ProductRepository) LockProduct(ctx context.Context, querier database.Querier, productID int) (domain.ProductSnapshot, error) {
	lockProductSQL := `SELECT id, name, category, price, tax, quantity FROM products WHERE id = $1 FOR UPDATE`

	var product domain.ProductSnapshot
	err := querier.QueryRow(ctx, lockProductSQL, productID).Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.Price,
		&product.Tax,
		&product.Quantity,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ProductSnapshot{}, &domain.ProductNotFoundError{Msg: fmt.Sprintf("product with id %d not found", productID)}
		}

		return domain.ProductSnapshot{}, fmt.Errorf("failed to lock product row: %w", err)
	}

	return product, nil
}

func (pr *ProductRepository) ChangeAmount(ctx context.Context, executor database.Executor, productID int, delta int) error {
	changeAmountSQL := `UPDATE products SET quantity = quantity + $1 WHERE id = $2 AND quantity + $1 >= 0`

	tag, err := executor.Exec(ctx, changeAmountSQL, delta, productID)
	if err != nil {
		return fmt.Errorf("failed to change product amount: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return &domain.InsufficientStockError{Msg: fmt.Sprintf("product with id %d cannot change by %d", productID, delta)}
	}

	return nil
}
