package application

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/merch-checkout/internal/checkout/domain"
	"github.com/Lexv0lk/merch-checkout/internal/pkg/database"
	"github.com/Lexv0lk/merch-checkout/internal/pkg/logging"
)

type InventoryReserver struct {
	productRepository domain.ProductRepository
	policy            domain.StockPolicy
	logger            logging.Logger
}

func NewInventoryReserver(productRepository domain.ProductRepository, policy domain.StockPolicy, logger logging.Logger) *InventoryReserver {
	return &InventoryReserver{
		productRepository: productRepository,
		policy:            policy,
		logger:            logger,
	}
}

// ReserveLine decrements stock for one cart line on the caller's transaction.
// reserved is false when the line was skipped under StockPolicySkip.
func (r *InventoryReserver) ReserveLine(ctx context.Context, executor database.QueryExecuter, line domain.CartLine) (domain.PurchaseLineItem, bool, error) {
	if line.Quantity <= 0 {
		return domain.PurchaseLineItem{}, false, &domain.InvalidArgumentsError{
			Msg: fmt.Sprintf("cart line for product %d has non-positive quantity %d", line.ProductID, line.Quantity),
		}
	}

	product, err := r.productRepository.LockProduct(ctx, executor, line.ProductID)
	if err != nil {
		return domain.PurchaseLineItem{}, false, err
	}

	if line.Quantity > product.Quantity {
		if r.policy == domain.StockPolicyReject {
			return domain.PurchaseLineItem{}, false, &domain.InsufficientStockError{
				Msg: fmt.Sprintf("product %d has %d units, %d requested", product.ID, product.Quantity, line.Quantity),
			}
		}

		r.logger.Warn("skipping cart line with insufficient stock",
			"product_id", product.ID, "requested", line.Quantity, "available", product.Quantity)
		return domain.PurchaseLineItem{}, false, nil
	}

	err = r.productRepository.ChangeAmount(ctx, executor, product.ID, -line.Quantity)
	if err != nil {
		return domain.PurchaseLineItem{}, false, err
	}

	r.logger.Info("product reserved", "product_id", product.ID, "name", product.Name, "quantity", line.Quantity)

	return domain.PurchaseLineItem{
		ProductID: product.ID,
		Name:      product.Name,
		Quantity:  line.Quantity,
		Category:  product.Category,
		Price:     product.Price,
		Tax:       product.Tax,
	}, true, nil
}
