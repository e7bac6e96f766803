package postgres

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/merch-checkout/internal/checkout/domain"
	"github.com/Lexv0lk/merch-checkout/internal/pkg/database"
)

type CartRepository struct {
}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

func (cr *CartRepository) GetCart(ctx context.Context, querier database.Querier, userID int) (domain.Cart, error) {
	selectCartSQL := `SELECT product_id, quantity FROM cart_items WHERE user_id = $1 ORDER BY id FOR UPDATE`

	rows, err := querier.Query(ctx, selectCartSQL, userID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("failed to select cart items: %w", err)
	}
	defer rows.Close()

	cart := domain.Cart{UserID: userID}
	for rows.Next() {
		var line domain.CartLine
		err = rows.Scan(&line.ProductID, &line.Quantity)
		if err != nil {
			return domain.Cart{}, fmt.Errorf("failed to scan cart item: %w", err)
		}
		cart.Lines = append(cart.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("failed to read cart items: %w", err)
	}

	return cart, nil
}

func (cr *CartRepository) ClearCart(ctx context.Context, executor database.Executor, userID int) error {
	clearCartSQL := `DELETE FROM cart_items WHERE user_id = $1`

	_, err := executor.Exec(ctx, clearCartSQL, userID)
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}
